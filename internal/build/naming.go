package build

import (
	"strings"

	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/match"
	"unwrapgen/internal/options"
	"unwrapgen/internal/rewrite"
)

// Marker words recognised by automatic naming, and the suffix used when
// stripping a marker is not possible.
var autoNameMarkers = []string{"Observable", "Signal"}

const autoNameSuffix = "Plain"

func containerName(c *decl.Container, copts *options.Options) (string, error) {
	ren := copts.Renamer
	if ren == nil {
		return AutoName(c.Name), nil
	}

	name, err := ren.Rule.Apply(c.Name)
	if err != nil {
		return "", rewrite.RenameError(err, ren, c.Name, "container "+c.Name).WithElement(c.Name)
	}

	if name == c.Name {
		return "", diagnostic.New(diagnostic.KindConflict, "self_rename", ren.Loc,
			"`%s` leaves container name %s unchanged", ren.Rule, c.Name).WithElement(c.Name)
	}

	return name, nil
}

// AutoName derives a name for containers without a renamer: a leading or
// trailing marker word is stripped, otherwise a suffix is appended.
//
//	ObservableBean -> Bean
//	BeanSignal     -> Bean
//	Signal         -> SignalPlain
//	Bean           -> BeanPlain
func AutoName(name string) string {
	words := match.Words(name)
	if len(words) > 1 {
		for _, marker := range autoNameMarkers {
			switch {
			case strings.EqualFold(words[0], marker):
				return name[len(words[0]):]
			case strings.EqualFold(words[len(words)-1], marker):
				return name[:len(name)-len(words[len(words)-1])]
			}
		}
	}

	return name + autoNameSuffix
}
