package options

// Merge returns the field options with container defaults applied.
//
// keep_rc, keep_arc and hashmap are inherited only when the field does not
// set them itself. A lenient container renamer (trim_start_all,
// trim_end_all) is inherited when the field has no renamer. Ignored and
// removed fields are returned unchanged. Neither input is modified.
func Merge(field, container *Options) *Options {
	out := *field
	out.entries = append([]entry(nil), field.entries...)

	if container == nil || field.Ignore.Set || field.Remove.Set {
		return &out
	}

	inherit := func(own *Flag, parent Flag) {
		if !own.Set && parent.Set {
			*own = Flag{Set: true, Loc: parent.Loc, Inherited: true}
		}
	}

	inherit(&out.KeepRC, container.KeepRC)
	inherit(&out.KeepArc, container.KeepArc)
	inherit(&out.MapAsHash, container.MapAsHash)

	if out.Renamer == nil && container.Renamer != nil && container.Renamer.Rule.IsLenient() {
		r := *container.Renamer
		r.Inherited = true
		out.Renamer = &r
	}

	return &out
}
