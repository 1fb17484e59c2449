package formschema

import (
	"fmt"

	"github.com/google/uuid"
)

// EditCommand is one discrete change an editor makes to a candidate schema.
type EditCommand interface {
	apply(s Schema) (Schema, error)
}

// ApplyEdit returns the schema that results from cmd. s is left untouched.
func ApplyEdit(s Schema, cmd EditCommand) (Schema, error) {
	if cmd == nil {
		return s, nil
	}
	out, err := cmd.apply(s.Clone())
	if err != nil {
		return s, err
	}
	return out, nil
}

// NewFieldID mints an id for a field added by hand.
func NewFieldID() string {
	return "f_" + uuid.NewString()
}

// Patch is a partial update of a field. Nil members are left unchanged; an
// empty non-nil Choices or Children slice clears the list.
type Patch struct {
	Label      *LocalizedText    `json:"label,omitempty"`
	InputType  *FieldType        `json:"inputType,omitempty"`
	IsRequired *bool             `json:"isRequired,omitempty"`
	MinValue   *float64          `json:"minValue,omitempty"`
	MaxValue   *float64          `json:"maxValue,omitempty"`
	ClearRange bool              `json:"clearRange,omitempty"`
	Choices    []LocalizedText   `json:"choices,omitempty"`
	Children   []FieldDefinition `json:"children,omitempty"`
}

// ApplyTo returns f with the patch merged in.
func (p Patch) ApplyTo(f FieldDefinition) FieldDefinition {
	out := f.Clone()
	if p.Label != nil {
		out.Label = *p.Label
	}
	if p.InputType != nil {
		out.InputType = *p.InputType
	}
	if p.IsRequired != nil {
		out.IsRequired = *p.IsRequired
	}
	if p.ClearRange {
		out.MinValue, out.MaxValue = nil, nil
	}
	if p.MinValue != nil {
		out.MinValue = cloneFloat(p.MinValue)
	}
	if p.MaxValue != nil {
		out.MaxValue = cloneFloat(p.MaxValue)
	}
	if p.Choices != nil {
		out.Choices = cloneChoices(p.Choices)
	}
	if p.Children != nil {
		out.Children = Schema(p.Children).Clone()
	}
	return out
}

// AddField appends Field at the end of the top-level list. A missing id is
// minted with NewFieldID.
type AddField struct {
	Field FieldDefinition
}

func (c AddField) apply(s Schema) (Schema, error) {
	f := c.Field.Clone()
	if f.FieldID == "" {
		f.FieldID = NewFieldID()
	}
	f.DisplayOrder = s.maxDisplayOrder() + 1
	return append(s, f), nil
}

// AddChild appends Field to the children of the group GroupID.
type AddChild struct {
	GroupID string
	Field   FieldDefinition
}

func (c AddChild) apply(s Schema) (Schema, error) {
	return s, s.update(c.GroupID, func(g *FieldDefinition) error {
		if g.InputType != TypeGroup {
			return fmt.Errorf("%w: %s", ErrNotAGroup, c.GroupID)
		}
		f := c.Field.Clone()
		if f.FieldID == "" {
			f.FieldID = NewFieldID()
		}
		f.DisplayOrder = Schema(g.Children).maxDisplayOrder() + 1
		g.Children = append(g.Children, f)
		return nil
	})
}

// RemoveField deletes a top-level field or a group child.
type RemoveField struct {
	FieldID string
}

func (c RemoveField) apply(s Schema) (Schema, error) {
	for i, f := range s {
		if f.FieldID == c.FieldID {
			return append(s[:i], s[i+1:]...), nil
		}
		for j, child := range f.Children {
			if child.FieldID == c.FieldID {
				s[i].Children = append(f.Children[:j], f.Children[j+1:]...)
				return s, nil
			}
		}
	}
	return s, fmt.Errorf("%w: %s", ErrFieldNotFound, c.FieldID)
}

// MoveField moves a top-level field to index To and resequences every
// top-level DisplayOrder to its position.
type MoveField struct {
	FieldID string
	To      int
}

func (c MoveField) apply(s Schema) (Schema, error) {
	from := -1
	for i, f := range s {
		if f.FieldID == c.FieldID {
			from = i
			break
		}
	}
	if from < 0 {
		return s, fmt.Errorf("%w: %s", ErrFieldNotFound, c.FieldID)
	}
	if c.To < 0 || c.To >= len(s) {
		return s, fmt.Errorf("%w: %d", ErrIndexOutOfRange, c.To)
	}
	f := s[from]
	s = append(s[:from], s[from+1:]...)
	s = append(s[:c.To], append(Schema{f}, s[c.To:]...)...)
	for i := range s {
		s[i].DisplayOrder = i
	}
	return s, nil
}

// SetProperty merges Patch into the field FieldID.
type SetProperty struct {
	FieldID string
	Patch   Patch
}

func (c SetProperty) apply(s Schema) (Schema, error) {
	return s, s.update(c.FieldID, func(f *FieldDefinition) error {
		*f = c.Patch.ApplyTo(*f)
		return nil
	})
}

// AddChoice appends Choice to the choice list of FieldID.
type AddChoice struct {
	FieldID string
	Choice  LocalizedText
}

func (c AddChoice) apply(s Schema) (Schema, error) {
	return s, s.update(c.FieldID, func(f *FieldDefinition) error {
		f.Choices = append(f.Choices, c.Choice)
		return nil
	})
}

// RemoveChoice deletes the choice at Index from FieldID.
type RemoveChoice struct {
	FieldID string
	Index   int
}

func (c RemoveChoice) apply(s Schema) (Schema, error) {
	return s, s.update(c.FieldID, func(f *FieldDefinition) error {
		if c.Index < 0 || c.Index >= len(f.Choices) {
			return fmt.Errorf("%w: %d", ErrIndexOutOfRange, c.Index)
		}
		f.Choices = append(f.Choices[:c.Index], f.Choices[c.Index+1:]...)
		return nil
	})
}

// update runs fn on the field with the given id, in place.
func (s Schema) update(fieldID string, fn func(f *FieldDefinition) error) error {
	for i := range s {
		if s[i].FieldID == fieldID {
			return fn(&s[i])
		}
		for j := range s[i].Children {
			if s[i].Children[j].FieldID == fieldID {
				return fn(&s[i].Children[j])
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrFieldNotFound, fieldID)
}
