package scan

import (
	"fmt"
	"os"

	"scout/internal/fspath"
)

// ValidationError reports a rejected command-line argument.
type ValidationError struct {
	Arg   string
	Cause string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Cause)
}

// ParseArgs qualifies each raw argument into an absolute DirectoryPath
// and verifies it names an existing directory.
func ParseArgs(args []string) ([]fspath.DirectoryPath, error) {
	if len(args) == 0 {
		return nil, &ValidationError{Arg: "<dirs>", Cause: "no directories provided"}
	}

	var out []fspath.DirectoryPath
	for _, raw := range args {
		dir, err := fspath.QualifyDir(raw)
		if err != nil {
			return nil, &ValidationError{Arg: raw, Cause: err.Error()}
		}

		info, err := os.Stat(dir.AsAbsoluteString())
		if err != nil {
			return nil, &ValidationError{Arg: raw, Cause: "not found or not accessible"}
		}
		if !info.IsDir() {
			return nil, &ValidationError{Arg: raw, Cause: "not a directory"}
		}

		out = append(out, dir)
	}
	return out, nil
}
