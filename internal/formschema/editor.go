package formschema

// Capabilities are the permissions an editor session is constructed with.
type Capabilities struct {
	CanEditSchema      bool `json:"canEditSchema"`
	CanManageTemplates bool `json:"canManageTemplates"`
}

// Editor holds one in-memory candidate schema for a single editing session.
// It is not safe for concurrent use. Abandoning an Editor discards its
// changes; nothing is persisted until the caller saves the Submit result.
type Editor struct {
	schema    Schema
	bilingual bool
	caps      Capabilities
	history   []EditCommand
}

// NewEditor starts a session over a copy of initial.
func NewEditor(initial Schema, bilingual bool, caps Capabilities) *Editor {
	s := initial.Clone()
	if s == nil {
		s = Schema{}
	}
	return &Editor{schema: s, bilingual: bilingual, caps: caps}
}

// Apply runs cmd against the candidate. A failed command leaves the
// candidate unchanged.
func (e *Editor) Apply(cmd EditCommand) error {
	if !e.caps.CanEditSchema {
		return ErrNotPermitted
	}
	next, err := ApplyEdit(e.schema, cmd)
	if err != nil {
		return err
	}
	e.schema = next
	e.history = append(e.history, cmd)
	return nil
}

// Instantiate copies the given templates into the candidate, skipping those
// already present, and returns the ids of the new fields.
func (e *Editor) Instantiate(templates []FieldDefinition) ([]string, error) {
	if !e.caps.CanEditSchema {
		return nil, ErrNotPermitted
	}
	next, added := Instantiate(templates, e.schema)
	e.schema = next
	return added, nil
}

// IsInstantiated reports whether the template is already in the candidate.
func (e *Editor) IsInstantiated(templateID string) bool {
	return IsInstantiated(templateID, e.schema)
}

// Schema returns a copy of the current candidate.
func (e *Editor) Schema() Schema {
	return e.schema.Clone()
}

// History returns the commands applied so far, oldest first.
func (e *Editor) History() []EditCommand {
	out := make([]EditCommand, len(e.history))
	copy(out, e.history)
	return out
}

func (e *Editor) Bilingual() bool { return e.bilingual }

func (e *Editor) Capabilities() Capabilities { return e.caps }

// Submit normalizes the candidate. The candidate itself is kept as is so a
// rejected submission can be corrected and resubmitted.
func (e *Editor) Submit() (Result, error) {
	return Normalize(e.schema.Candidates(), e.bilingual)
}
