package cmd

import (
	"fmt"
	"strings"
)

// multiValueFlags take one or more values after a single occurrence,
// e.g. --package-root a:x b:y.
var multiValueFlags = map[string]bool{
	"--compatibility-matrix": true,
	"--package-root":         true,
}

// splitMultiValueFlags rewrites "--flag a b" into "--flag a --flag b" for
// multiValueFlags so pflag sees one value per occurrence. Values run until
// the next argument starting with "-". Arguments after "--" are left alone.
func splitMultiValueFlags(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...), nil
		}
		if !multiValueFlags[arg] {
			out = append(out, arg)
			continue
		}

		n := 0
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			n++
			out = append(out, arg, args[i])
		}
		if n == 0 {
			return nil, fmt.Errorf("flag %s: expected at least one argument", arg)
		}
	}
	return out, nil
}
