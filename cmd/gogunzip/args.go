// cmd/gogunzip/args.go
package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/creativeyann17/go-gunzip/internal/format"
)

// splitArgs sets the long switches of fs named in args and returns the rest,
// in order, as input candidates. An argument with the .gz extension is always
// a candidate, so a file such as "-v.gz" or "--verbose.gz" is never taken for
// a switch. A "--" separator is skipped. Unknown switches are left to the
// file selector, which drops them like any other non-.gz argument.
func splitArgs(fs *pflag.FlagSet, args []string) []string {
	candidates := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--" {
			continue
		}
		if !format.HasSuffix(arg) && strings.HasPrefix(arg, "--") {
			if f := fs.Lookup(strings.TrimPrefix(arg, "--")); f != nil && f.Value.Type() == "bool" {
				_ = fs.Set(f.Name, "true")
				continue
			}
		}
		candidates = append(candidates, arg)
	}
	return candidates
}
