// Package flagx parses a small, named subset of the command line so each
// component can read its own flags without tripping over flags registered
// elsewhere in the process.
package flagx

import (
	"flag"
	"strings"
)

// Pick returns only the named flags from args, with their values. Both the
// "-f value" and "-f=value" spellings are recognized; everything else,
// including unknown flags and positional arguments, is dropped.
func Pick(args []string, names ...string) []string {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, hasValue := strings.Cut(arg, "="); hasValue {
			if wanted[name] {
				out = append(out, arg)
			}
			continue
		}

		if !wanted[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// StringValue parses the given flag spellings out of args into one string
// value, the last occurrence winning. The spellings are aliases of the same
// flag, e.g. StringValue(args, "-c", "-config"). Returns "" when none is
// present or a value fails to parse.
func StringValue(args []string, names ...string) string {
	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)

	var value string
	for _, n := range names {
		fs.StringVar(&value, strings.TrimLeft(n, "-"), "", "")
	}
	_ = fs.Parse(Pick(args, names...))
	return value
}
