/*
Package sourcefile loads Sigma source files for the driver.

Grounded on the teacher's file/file.go, repurposed from a runtime
file-object API (fopen/fread/fwrite/...) into the driver's one
source-loading collaborator: read the whole file, then strip an optional
leading shebang line before the lexer ever sees it, per spec.md §6.
*/
package sourcefile

import (
	"fmt"
	"os"
	"strings"
)

// Read loads path and strips a leading shebang line (`#!...` up to and
// including its newline), if present. The returned source is exactly what
// the lexer should scan.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file %q: %w", path, err)
	}
	return stripShebang(string(data)), nil
}

func stripShebang(src string) string {
	if !strings.HasPrefix(src, "#!") {
		return src
	}
	if idx := strings.IndexByte(src, '\n'); idx != -1 {
		return src[idx+1:]
	}
	return ""
}
