package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"automates-desktop/internal/backend"
	"automates-desktop/internal/config"
	"automates-desktop/internal/paths"
)

// ErrDoctorFailed is returned when at least one check fails.
var ErrDoctorFailed = errors.New("doctor found problems")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the Java runtime and the bundled backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags(), flags)
		if err != nil {
			return err
		}
		return runDoctor(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(out io.Writer, cfg *config.Config) error {
	fmt.Fprintln(out, "Dependency checks:")
	ok := true

	if p, err := exec.LookPath(cfg.Java); err != nil {
		fmt.Fprintf(out, "  ✗ %s not found in PATH\n", cfg.Java)
		ok = false
	} else {
		fmt.Fprintf(out, "  ✓ %s found (%s)\n", cfg.Java, p)
	}

	dir, err := paths.ResourceDir(cfg.ResourceDir)
	if err != nil {
		fmt.Fprintf(out, "  ✗ resource directory: %v\n", err)
		ok = false
	} else {
		jar := filepath.Join(dir, backend.JarName)
		if fi, err := os.Stat(jar); err != nil || fi.IsDir() {
			fmt.Fprintf(out, "  ✗ %s missing\n", jar)
			ok = false
		} else {
			fmt.Fprintf(out, "  ✓ %s present\n", jar)
		}
	}

	if !ok {
		fmt.Fprintln(out, "Problems detected. Fix the items marked ✗ and retry.")
		return ErrDoctorFailed
	}
	fmt.Fprintln(out, "Everything needed to start the backend was found.")
	return nil
}
