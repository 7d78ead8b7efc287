// automates-desktop: launcher that runs the bundled Automates backend on a
// free local port and stops it on exit.
package main

import (
	"os"

	"automates-desktop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
