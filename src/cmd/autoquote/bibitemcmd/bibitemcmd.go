package bibitemcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"autoquote/src/internal/bibitem"
	"autoquote/src/internal/gbt"
	"autoquote/src/internal/parse"
)

// New returns the bibitem command, which normalizes one citation string and
// wraps it as a LaTeX \bibitem block.
func New() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "bibitem",
		Short: "Emit a LaTeX \\bibitem block for a raw citation string",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := parse.Parse(text)
			if err != nil {
				return err
			}
			formatted, err := gbt.Format(entry)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bibitem.Build(entry, formatted))
			return err
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "Raw citation string")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}
