package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"fieldId": "f1", "label": {"primary": "Experience"}, "inputType": "number", "minValue": 0, "maxValue": 50, "isRequired": true, "displayOrder": 1},
		{"fieldId": "skills", "label": {"primary": "Skills"}, "inputType": "tags"}
	]`), 0o600))

	out, errOut, err := run(t, "", "validate", path)
	require.NoError(t, err)

	var schema formschema.Schema
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	require.Len(t, schema, 2)
	assert.Equal(t, "Experience", schema[0].Label.Secondary)
	assert.Contains(t, errOut, "EmptyChoices")
}

func TestValidate_Violations(t *testing.T) {
	stdin := `[
		{"fieldId": "f1", "label": {"primary": "A"}, "inputType": "text"},
		{"fieldId": "f1", "label": {"primary": "B"}, "inputType": "text"}
	]`
	out, _, err := run(t, stdin, "validate", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 violation(s)")
	assert.Contains(t, out, "DuplicateFieldId")
	assert.Contains(t, out, "0,1")
}

func TestValidate_NotAnArray(t *testing.T) {
	_, _, err := run(t, `{"fieldId": "x"}`, "validate", "-")
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	out, _, err := run(t, "", "slug", "Military Status", "Years of Experience")
	require.NoError(t, err)
	assert.Equal(t, "military_status\nyears_of_experience\n", out)

	_, _, err = run(t, "", "slug", "!!!")
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, _, err := run(t, "", "types")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(formschema.AllTypes())+1)
	assert.Contains(t, lines[len(lines)-1], "group")
}
