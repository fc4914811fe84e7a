package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted dumps Go output that failed to format next to the
// intended file, as "<name>.unformatted.go".
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	name := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, name), content, filePerm)
}
