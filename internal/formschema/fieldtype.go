package formschema

// FieldType is the input type of a single form field.
type FieldType string

const (
	TypeText     FieldType = "text"
	TypeNumber   FieldType = "number"
	TypeEmail    FieldType = "email"
	TypeDate     FieldType = "date"
	TypeURL      FieldType = "url"
	TypeCheckbox FieldType = "checkbox"
	TypeRadio    FieldType = "radio"
	TypeDropdown FieldType = "dropdown"
	TypeTextarea FieldType = "textarea"
	TypeTags     FieldType = "tags"
	TypeGroup    FieldType = "group"
)

// TypeInfo describes what a FieldType carries besides a plain value.
type TypeInfo struct {
	Type            FieldType `json:"type"`
	Label           string    `json:"label"`
	IsChoiceBearing bool      `json:"isChoiceBearing"`
	IsRangeBearing  bool      `json:"isRangeBearing"`
	IsComposite     bool      `json:"isComposite"`
}

// registry is kept in declaration order; editors list types in this order.
var registry = []TypeInfo{
	{Type: TypeText, Label: "Text"},
	{Type: TypeNumber, Label: "Number", IsRangeBearing: true},
	{Type: TypeEmail, Label: "Email"},
	{Type: TypeDate, Label: "Date"},
	{Type: TypeURL, Label: "URL"},
	{Type: TypeCheckbox, Label: "Checkbox", IsChoiceBearing: true},
	{Type: TypeRadio, Label: "Radio", IsChoiceBearing: true},
	{Type: TypeDropdown, Label: "Dropdown", IsChoiceBearing: true},
	{Type: TypeTextarea, Label: "Text Area"},
	{Type: TypeTags, Label: "Tags", IsChoiceBearing: true},
	{Type: TypeGroup, Label: "Repeatable Group", IsComposite: true},
}

var registryIndex = func() map[FieldType]TypeInfo {
	idx := make(map[FieldType]TypeInfo, len(registry))
	for _, info := range registry {
		idx[info.Type] = info
	}
	return idx
}()

// AllTypes returns every known FieldType in declaration order.
func AllTypes() []FieldType {
	out := make([]FieldType, len(registry))
	for i, info := range registry {
		out[i] = info.Type
	}
	return out
}

// Registry returns a copy of the full type table.
func Registry() []TypeInfo {
	out := make([]TypeInfo, len(registry))
	copy(out, registry)
	return out
}

// Describe returns the traits of t. Unknown types yield a zero TypeInfo
// carrying only the type itself; the normalizer is where they are rejected.
func Describe(t FieldType) TypeInfo {
	if info, ok := registryIndex[t]; ok {
		return info
	}
	return TypeInfo{Type: t}
}

// Known reports whether t belongs to the registry.
func (t FieldType) Known() bool {
	_, ok := registryIndex[t]
	return ok
}

// IsChoiceBearing reports whether fields of type t carry a choice list.
func (t FieldType) IsChoiceBearing() bool { return Describe(t).IsChoiceBearing }

// IsRangeBearing reports whether fields of type t accept minValue and maxValue.
func (t FieldType) IsRangeBearing() bool { return Describe(t).IsRangeBearing }

// IsComposite reports whether fields of type t hold child fields.
func (t FieldType) IsComposite() bool { return Describe(t).IsComposite }
