// Package cli implements the formctl command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the formctl root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formctl",
		Short: "Inspect and validate job application form schemas",
		Long: `formctl works with the JSON form schemas attached to job postings.
It validates and canonicalizes schema files, derives template field ids
from labels, and lists the supported input types.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newValidateCmd(),
		newSlugCmd(),
		newTypesCmd(),
	)
	return cmd
}
