package cmd

import (
	"github.com/spf13/cobra"

	"github.com/comelang/come-go/internal/driver"
)

var (
	gencOutput           string
	gencNoLineDirectives bool
)

var gencCmd = &cobra.Command{
	Use:   "genc [file]",
	Short: "Translate a come file to C without invoking a host compiler",
	Long: `Run the lex -> parse -> codegen pipeline on a single .come file and
write the resulting C translation unit, without shelling out to a C
compiler.

Examples:
  # Translate a module, writing alongside it as <file>.c
  come genc main.come

  # Choose the output path explicitly
  come genc main.come -o build/main.c`,
	Args: cobra.ExactArgs(1),
	RunE: runGenC,
}

func init() {
	rootCmd.AddCommand(gencCmd)

	gencCmd.Flags().StringVarP(&gencOutput, "output", "o", "", "output .c path (default: <input> with .c extension)")
	gencCmd.Flags().BoolVar(&gencNoLineDirectives, "no-line-directives", false, "suppress #line directives in generated C")
}

func runGenC(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := driver.Options{
		OutputPath: gencOutput,
		Verbose:    verbose,
	}
	if gencNoLineDirectives {
		off := false
		opts.LineDirectives = &off
	}

	res, err := driver.GenC(args[0], opts)
	if err != nil {
		return err
	}
	if !verbose {
		cmd.Printf("wrote %s\n", res.CPath)
	}
	return nil
}
