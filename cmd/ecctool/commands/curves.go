package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-eccore/pkg/ecc"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List supported curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFAMILY\tP BITS\tQ BITS\tFAST P\tFAST Q\tENCODING")
			for _, c := range ecc.Curves() {
				enc := "-"
				if c.EncodedLen > 0 {
					enc = fmt.Sprintf("%d bytes", c.EncodedLen)
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
					c.Name, c.Family, c.FieldBits, c.OrderBits, yesNo(c.FastField), yesNo(c.FastOrder), enc)
			}
			return w.Flush()
		},
	}
}
