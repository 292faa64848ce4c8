package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EdwardMesmine/VDPPDF-Merger/internal/source"
)

// newInspectCmd creates the inspect command for reporting a PDF's page count
// and per-page dimensions. Useful for checking that a master template has the
// two pages the merge requires.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.pdf>",
		Short: "Report page count and page dimensions of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := source.Load(args[0], source.RoleContent)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d pages\n", args[0], doc.PageCount())
			for i := 1; i <= doc.PageCount(); i++ {
				size := doc.PageSize(i)
				fmt.Printf("  page %d: %.2f x %.2f pt\n", i, size.W, size.H)
			}
			return nil
		},
	}
}
