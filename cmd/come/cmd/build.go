package cmd

import (
	"github.com/spf13/cobra"

	"github.com/comelang/come-go/internal/driver"
)

var (
	buildOutput           string
	buildNoLineDirectives bool
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Compile a come file to a native binary",
	Long: `Run the full pipeline -- lex, parse, codegen -- on a single .come
file, then shell out to a host C compiler to produce a binary.

The host compiler defaults to "cc" and can be overridden with the CC
environment variable or the "cc:" key of a come.yaml found next to the
input file (or in the working directory). When come.yaml names a
runtime_lib, it is passed to the linker.

Examples:
  # Build a program, producing ./main next to main.come
  come build main.come

  # Choose the output binary path explicitly
  come build main.come -o bin/myprog`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output binary path (default: <input> without extension)")
	buildCmd.Flags().BoolVar(&buildNoLineDirectives, "no-line-directives", false, "suppress #line directives in the intermediate C")
}

func runBuild(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := driver.Options{
		OutputPath: buildOutput,
		Verbose:    verbose,
	}
	if buildNoLineDirectives {
		off := false
		opts.LineDirectives = &off
	}

	res, err := driver.Build(args[0], opts)
	if err != nil {
		return err
	}
	if !verbose {
		cmd.Printf("built %s\n", res.BinaryPath)
	}
	return nil
}
