package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// NewFlagSet creates a flag set that writes usage to out and reports parse
// errors instead of exiting
func NewFlagSet(name, description string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "%s\n\nUsage of %s:\n", description, name)
		fs.PrintDefaults()
	}
	return fs
}

// RequireFlags returns an error naming every listed flag that was not set
func RequireFlags(fs *pflag.FlagSet, names ...string) error {
	var missing []string
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil || !f.Changed || f.Value.String() == "" {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}
	return nil
}
