package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "come",
	Short: "come compiles a small imperative source language to portable C",
	Long: `come is a source-to-C compiler: it lexes and parses ".come" modules
and emits a single translation unit of portable C, suitable for handing to
any host C toolchain.

come does not link multiple modules into a build graph, does not implement
the runtime library itself, and does not discover imports across files --
those remain the job of an external build driver. "come build" is a thin
convenience that runs the full pipeline for a single file and shells out to
a host compiler.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
