// Command icaltemporal unfolds, folds and converts the temporal values used
// in iCalendar and vCard text.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/spf13/afero"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
