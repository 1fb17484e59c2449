package formschema

import "fmt"

// InstancePrefix marks job-local copies of template library fields.
const InstancePrefix = "rf_"

// InstanceID is the job-local id minted for a copy of the given template.
func InstanceID(templateID string) string {
	return InstancePrefix + templateID
}

// IsInstantiated reports whether schema already holds the template, either
// under its own id or under the id minted by Instantiate.
func IsInstantiated(templateID string, schema Schema) bool {
	instance := InstanceID(templateID)
	for _, id := range schema.FieldIDs() {
		if id == templateID || id == instance {
			return true
		}
	}
	return false
}

// Instantiate appends a decoupled copy of each template not yet present in
// schema and returns the new schema along with the ids of the fields it
// added. Templates already present, including repeats within templates, are
// skipped. The input schema is not modified.
func Instantiate(templates []FieldDefinition, schema Schema) (Schema, []string) {
	out := schema.Clone()
	if out == nil {
		out = Schema{}
	}
	taken := make(map[string]bool)
	for _, id := range out.FieldIDs() {
		taken[id] = true
	}
	var added []string
	for _, tmpl := range templates {
		if IsInstantiated(tmpl.FieldID, out) {
			continue
		}
		inst := instanceOf(tmpl, taken)
		inst.DisplayOrder = out.maxDisplayOrder() + 1
		out = append(out, inst)
		added = append(added, inst.FieldID)
	}
	return out, added
}

// childSeparator joins an instance id and a child id. GenerateFieldID never
// emits it, so slugged ids cannot combine into the same child id.
const childSeparator = "."

func instanceOf(tmpl FieldDefinition, taken map[string]bool) FieldDefinition {
	inst := tmpl.Clone()
	inst.FieldID = InstanceID(tmpl.FieldID)
	taken[inst.FieldID] = true
	for i := range inst.Children {
		inst.Children[i].FieldID = unusedID(inst.FieldID+childSeparator+tmpl.Children[i].FieldID, taken)
	}
	return inst
}

// unusedID returns id, or id with the smallest numeric suffix not in taken,
// and marks the result as taken.
func unusedID(id string, taken map[string]bool) string {
	out := id
	for n := 2; taken[out]; n++ {
		out = fmt.Sprintf("%s_%d", id, n)
	}
	taken[out] = true
	return out
}
