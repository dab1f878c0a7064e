package cli

import (
	"fmt"
	"io"

	"github.com/example/contrack/internal/config"
)

// PrintLocations shows where state is kept for this invocation.
func PrintLocations(out io.Writer, loc *config.Locations) {
	fmt.Fprintf(out, "Database:      %s (%s)\n", loc.Database, loc.Source)
	fmt.Fprintf(out, "Config file:   %s\n", loc.RegistryPath())
	fmt.Fprintf(out, "Loadouts:      %s\n", loc.LoadoutDir())
	fmt.Fprintf(out, "Project dir:   %s\n", orDash(loc.ProjectDir))
	fmt.Fprintf(out, "App data dir:  %s\n", orDash(loc.AppDir))
}
