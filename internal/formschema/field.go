// Package formschema models the dynamic application form attached to a job
// posting: typed, optionally nested and bilingual field definitions, the
// normalizer that turns untrusted candidates into a canonical schema, and the
// helpers the editor uses to mutate a schema in memory.
package formschema

// LocalizedText holds a primary and secondary locale string.
type LocalizedText struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
}

// Text returns a LocalizedText with both locales set to s.
func Text(s string) LocalizedText {
	return LocalizedText{Primary: s, Secondary: s}
}

// FieldDefinition is one canonical field of a job form. Values of this type
// are produced by Normalize; attributes that do not apply to InputType are
// always absent.
type FieldDefinition struct {
	FieldID      string            `json:"fieldId"`
	Label        LocalizedText     `json:"label"`
	InputType    FieldType         `json:"inputType"`
	IsRequired   bool              `json:"isRequired"`
	MinValue     *float64          `json:"minValue,omitempty"`
	MaxValue     *float64          `json:"maxValue,omitempty"`
	Choices      []LocalizedText   `json:"choices,omitempty"`
	Children     []FieldDefinition `json:"children,omitempty"`
	DisplayOrder int               `json:"displayOrder"`
}

// Schema is the ordered list of top-level fields owned by one job.
type Schema []FieldDefinition

// Candidate is an untrusted field record as submitted by an editor, an API
// client or a seed file. DisplayOrder is optional.
type Candidate struct {
	FieldID      string          `json:"fieldId" yaml:"fieldId"`
	Label        LocalizedText   `json:"label" yaml:"label"`
	InputType    FieldType       `json:"inputType" yaml:"inputType"`
	IsRequired   bool            `json:"isRequired" yaml:"isRequired"`
	MinValue     *float64        `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue     *float64        `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
	Choices      []LocalizedText `json:"choices,omitempty" yaml:"choices,omitempty"`
	Children     []Candidate     `json:"children,omitempty" yaml:"children,omitempty"`
	DisplayOrder *int            `json:"displayOrder,omitempty" yaml:"displayOrder,omitempty"`
}

// Candidate converts f back into candidate form, keeping its display order.
func (f FieldDefinition) Candidate() Candidate {
	order := f.DisplayOrder
	c := Candidate{
		FieldID:      f.FieldID,
		Label:        f.Label,
		InputType:    f.InputType,
		IsRequired:   f.IsRequired,
		MinValue:     cloneFloat(f.MinValue),
		MaxValue:     cloneFloat(f.MaxValue),
		Choices:      cloneChoices(f.Choices),
		DisplayOrder: &order,
	}
	if len(f.Children) > 0 {
		c.Children = make([]Candidate, len(f.Children))
		for i, child := range f.Children {
			c.Children[i] = child.Candidate()
		}
	}
	return c
}

// Candidates converts every field of s into candidate form.
func (s Schema) Candidates() []Candidate {
	out := make([]Candidate, len(s))
	for i, f := range s {
		out[i] = f.Candidate()
	}
	return out
}

// Clone returns a deep copy of f.
func (f FieldDefinition) Clone() FieldDefinition {
	out := f
	out.MinValue = cloneFloat(f.MinValue)
	out.MaxValue = cloneFloat(f.MaxValue)
	out.Choices = cloneChoices(f.Choices)
	if f.Children != nil {
		out.Children = make([]FieldDefinition, len(f.Children))
		for i, child := range f.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of s.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	out := make(Schema, len(s))
	for i, f := range s {
		out[i] = f.Clone()
	}
	return out
}

// Walk calls fn for every field of s, children included, in order.
func (s Schema) Walk(fn func(f FieldDefinition)) {
	for _, f := range s {
		fn(f)
		Schema(f.Children).Walk(fn)
	}
}

// FieldIDs returns every field id in s, children included.
func (s Schema) FieldIDs() []string {
	var ids []string
	s.Walk(func(f FieldDefinition) { ids = append(ids, f.FieldID) })
	return ids
}

// Find returns the field with the given id, searching children as well.
func (s Schema) Find(fieldID string) (FieldDefinition, bool) {
	var (
		found FieldDefinition
		ok    bool
	)
	s.Walk(func(f FieldDefinition) {
		if !ok && f.FieldID == fieldID {
			found, ok = f, true
		}
	})
	return found, ok
}

// maxDisplayOrder returns -1 for an empty schema.
func (s Schema) maxDisplayOrder() int {
	max := -1
	for _, f := range s {
		if f.DisplayOrder > max {
			max = f.DisplayOrder
		}
	}
	return max
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneChoices(in []LocalizedText) []LocalizedText {
	if in == nil {
		return nil
	}
	out := make([]LocalizedText, len(in))
	copy(out, in)
	return out
}
