package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"propbind/internal/bindfile"
	"propbind/internal/diagnostic"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate binding files",
	Long: `Check parses each binding file and checks directions, property paths,
events, converters, enum parameters, indices and cultures. It exits non-zero
if any file has errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0

		for _, path := range args {
			ok, err := checkFile(cmd.OutOrStdout(), path)
			if err != nil {
				return err
			}

			if !ok {
				invalid++
			}
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d binding files invalid", invalid, len(args))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkFile validates one file and reports to w. It returns false if the
// file has error diagnostics, and an error only if the check itself failed.
func checkFile(w io.Writer, path string) (bool, error) {
	reg, err := registry()
	if err != nil {
		return false, err
	}

	f, err := bindfile.LoadFile(path, cfg.FileFormat())
	if err != nil {
		fmt.Fprintf(w, "%s: error: %v\n", path, err)
		return false, nil
	}

	res := bindfile.Validate(f, reg)
	printDiagnostics(w, path, res)

	bindings := 0
	for _, v := range f.Views {
		for _, m := range v.Members {
			bindings += len(m.Bindings)
		}
	}

	fmt.Fprintf(w, "%s: %d views, %d bindings, %d errors, %d warnings\n",
		path, len(f.Views), bindings, len(res.Errors), len(res.Warnings))

	return res.IsValid(), nil
}

func printDiagnostics(w io.Writer, path string, res *diagnostic.Diagnostics) {
	for _, d := range res.All() {
		fmt.Fprintf(w, "%s: %s: %s\n", path, d.Severity, d)
	}
}
