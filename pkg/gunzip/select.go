// pkg/gunzip/select.go
package gunzip

import (
	"os"

	"github.com/creativeyann17/go-gunzip/internal/format"
)

// Select keeps the arguments naming an existing regular file with the .gz
// extension, in their original order. Anything else is dropped silently.
func Select(args []string) []string {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		if !format.HasSuffix(arg) {
			continue
		}
		info, err := os.Stat(arg)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, arg)
	}
	return files
}
