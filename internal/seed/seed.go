// Package seed loads the recommended-field library shipped with a deployment.
package seed

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

// File is the layout of a template seed file.
type File struct {
	Templates []formschema.Candidate `yaml:"templates"`
}

// LoadTemplates reads template candidates from a YAML file.
func LoadTemplates(path string) ([]formschema.Candidate, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return Decode(f)
}

// Decode reads template candidates from r. Unknown keys are rejected so a
// misspelled attribute does not silently drop data.
func Decode(r io.Reader) ([]formschema.Candidate, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode template seed: %w", err)
	}
	return file.Templates, nil
}
