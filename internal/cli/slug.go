package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug LABEL...",
		Short: "Print the template field id derived from each label",
		Example: `  formctl slug "Military Status"
  military_status`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, label := range args {
				id := formschema.GenerateFieldID(label)
				if id == "" {
					return fmt.Errorf("label %q yields an empty id; supply one explicitly", label)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported input types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TYPE\tLABEL\tCHOICES\tRANGE\tGROUP")
			for _, info := range formschema.Registry() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					info.Type, info.Label, yesNo(info.IsChoiceBearing), yesNo(info.IsRangeBearing), yesNo(info.IsComposite))
			}
			return w.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
