package formschema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Result is the outcome of a successful Normalize call.
type Result struct {
	Schema   Schema    `json:"fields"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Normalize validates candidates and returns the canonical schema. It never
// stops at the first problem: on failure the returned error is a
// ValidationErrors holding every violation found. Normalize is pure and
// idempotent over its own output.
func Normalize(candidates []Candidate, bilingual bool) (Result, error) {
	n := &normalizer{
		bilingual: bilingual,
		seen:      make(map[string]string),
	}
	schema := n.level(candidates, "", false)
	if len(n.violations) > 0 {
		return Result{Warnings: n.warnings}, n.violations
	}
	return Result{Schema: Schema(schema), Warnings: n.warnings}, nil
}

// NormalizeField validates a single standalone definition, such as a
// template library entry.
func NormalizeField(c Candidate, bilingual bool) (FieldDefinition, []Warning, error) {
	res, err := Normalize([]Candidate{c}, bilingual)
	if err != nil {
		return FieldDefinition{}, res.Warnings, err
	}
	return res.Schema[0], res.Warnings, nil
}

type normalizer struct {
	bilingual  bool
	seen       map[string]string // fieldId -> path of first occurrence, whole schema
	violations ValidationErrors
	warnings   []Warning
}

type ordered struct {
	field FieldDefinition
	index int
}

func (n *normalizer) level(candidates []Candidate, prefix string, nested bool) []FieldDefinition {
	explicit := false
	for _, c := range candidates {
		if c.DisplayOrder != nil {
			explicit = true
			break
		}
	}

	items := make([]ordered, 0, len(candidates))
	for i, c := range candidates {
		path := prefix + strconv.Itoa(i)
		f := n.field(c, path, nested)
		f.DisplayOrder = i
		if explicit && c.DisplayOrder != nil {
			f.DisplayOrder = *c.DisplayOrder
		}
		items = append(items, ordered{field: f, index: i})
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].field.DisplayOrder < items[b].field.DisplayOrder
	})

	out := make([]FieldDefinition, len(items))
	for i, it := range items {
		out[i] = it.field
	}
	return out
}

func (n *normalizer) field(c Candidate, path string, nested bool) FieldDefinition {
	id := strings.TrimSpace(c.FieldID)
	switch {
	case id == "":
		n.violate(MissingFieldID, id, "field id is required", path)
	default:
		if first, dup := n.seen[id]; dup {
			n.violate(DuplicateFieldID, id, fmt.Sprintf("field id %q is already used at %s", id, first), first, path)
		} else {
			n.seen[id] = path
		}
	}

	label := Mirror(c.Label, n.bilingual)
	if label.Primary == "" {
		n.violate(MissingLabel, id, "label is required", path)
	}

	f := FieldDefinition{
		FieldID:    id,
		Label:      label,
		InputType:  c.InputType,
		IsRequired: c.IsRequired,
	}

	info := Describe(c.InputType)
	if !c.InputType.Known() {
		n.violate(UnknownFieldType, id, fmt.Sprintf("unknown input type %q", c.InputType), path)
		n.checkDiscarded(c.Children, path)
		return f
	}

	var ignored []string

	if info.IsRangeBearing {
		f.MinValue = cloneFloat(c.MinValue)
		f.MaxValue = cloneFloat(c.MaxValue)
		if f.MinValue != nil && f.MaxValue != nil && *f.MinValue > *f.MaxValue {
			n.violate(InvalidRange, id, fmt.Sprintf("minValue %v is greater than maxValue %v", *f.MinValue, *f.MaxValue), path)
		}
	} else if c.MinValue != nil || c.MaxValue != nil {
		ignored = append(ignored, "minValue/maxValue")
	}

	if info.IsChoiceBearing {
		f.Choices = MirrorAll(c.Choices, n.bilingual)
		if len(f.Choices) == 0 {
			n.warn(EmptyChoices, id, path, "field has no choices and cannot be answered")
		}
	} else if len(c.Choices) > 0 {
		ignored = append(ignored, "choices")
	}

	if info.IsComposite {
		if nested {
			n.violate(NestedGroupNotAllowed, id, "a group cannot contain another group", path)
			n.checkDiscarded(c.Children, path)
			return f
		}
		if len(c.Children) == 0 {
			n.warn(EmptyGroup, id, path, "group has no child fields")
		} else {
			f.Children = n.level(c.Children, path+".children.", true)
		}
	} else if len(c.Children) > 0 {
		ignored = append(ignored, "children")
	}

	if len(ignored) > 0 {
		n.warn(IgnoredAttributes, id, path,
			fmt.Sprintf("%s not applicable to %s fields were dropped", strings.Join(ignored, ", "), c.InputType))
	}
	return f
}

// checkDiscarded validates the children of a rejected field so their
// violations are reported too. The result is dropped.
func (n *normalizer) checkDiscarded(children []Candidate, path string) {
	if len(children) > 0 {
		n.level(children, path+".children.", true)
	}
}

func (n *normalizer) violate(code ViolationCode, fieldID, msg string, paths ...string) {
	n.violations = append(n.violations, Violation{
		Code:    code,
		Paths:   paths,
		FieldID: fieldID,
		Message: msg,
	})
}

func (n *normalizer) warn(code WarningCode, fieldID, path, msg string) {
	n.warnings = append(n.warnings, Warning{
		Code:    code,
		Path:    path,
		FieldID: fieldID,
		Message: msg,
	})
}
