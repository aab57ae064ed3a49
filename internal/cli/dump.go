package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"propbind/internal/bindfile"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print the descriptors a binding file compiles to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry()
		if err != nil {
			return err
		}

		f, err := bindfile.LoadFile(args[0], cfg.FileFormat())
		if err != nil {
			return err
		}

		set, res, err := bindfile.Compile(f, reg)
		if err != nil {
			printDiagnostics(cmd.ErrOrStderr(), args[0], res)
			return err
		}

		w := cmd.OutOrStdout()
		for _, view := range set.Views() {
			fmt.Fprintf(w, "view %s\n", view)

			for _, e := range set.Entries(view) {
				fmt.Fprintf(w, "member %s\n", e.Member)
				dumpConfig.Fdump(w, e.Descriptor)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
