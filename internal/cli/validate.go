package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

func newValidateCmd() *cobra.Command {
	var bilingual bool

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a form schema file and print its canonical form",
		Long: `Validate a JSON array of field definitions.
On success the canonical schema is printed. Otherwise every violation is
listed with the path of the offending field. Use "-" to read stdin.`,
		Example: `  # Validate a schema for a single-language job
  formctl validate schema.json

  # Keep secondary-locale text independent
  formctl validate --bilingual schema.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), data, bilingual)
		},
	}

	cmd.Flags().BoolVar(&bilingual, "bilingual", false, "treat the schema as bilingual")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path) //nolint:gosec // path is provided by the user
}

func runValidate(out, errOut io.Writer, data []byte, bilingual bool) error {
	candidates, err := formschema.ParseCandidates(data)
	if err != nil {
		return err
	}

	res, err := formschema.Normalize(candidates, bilingual)
	for _, w := range res.Warnings {
		_, _ = fmt.Fprintf(errOut, "warning: %s at %s: %s\n", w.Code, w.Path, w.Message)
	}

	if verrs, ok := formschema.AsValidationErrors(err); ok {
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "CODE\tPATH\tFIELD\tMESSAGE")
		for _, v := range verrs {
			field := v.FieldID
			if field == "" {
				field = "-"
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Code, strings.Join(v.Paths, ","), field, v.Message)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		return fmt.Errorf("%d violation(s) found", len(verrs))
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Schema)
}
