package formschema

import (
	"errors"
	"fmt"
	"strings"
)

// ViolationCode classifies a rejected field.
type ViolationCode string

const (
	MissingFieldID        ViolationCode = "MissingFieldId"
	DuplicateFieldID      ViolationCode = "DuplicateFieldId"
	MissingLabel          ViolationCode = "MissingLabel"
	UnknownFieldType      ViolationCode = "UnknownFieldType"
	InvalidRange          ViolationCode = "InvalidRange"
	NestedGroupNotAllowed ViolationCode = "NestedGroupNotAllowed"
)

// WarningCode classifies an accepted but questionable field.
type WarningCode string

const (
	EmptyChoices      WarningCode = "EmptyChoices"
	EmptyGroup        WarningCode = "EmptyGroup"
	IgnoredAttributes WarningCode = "IgnoredAttributes"
)

// Violation is a single reason a candidate schema was rejected. Paths holds
// the dotted location of the offending field ("2", "2.children.0"); for
// DuplicateFieldID it holds the first occurrence followed by the repeat.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Paths   []string      `json:"paths"`
	FieldID string        `json:"fieldId,omitempty"`
	Message string        `json:"message"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s at %s: %s", v.Code, strings.Join(v.Paths, ", "), v.Message)
}

// Warning flags a field that was accepted as-is but is likely unusable.
type Warning struct {
	Code    WarningCode `json:"code"`
	Path    string      `json:"path"`
	FieldID string      `json:"fieldId,omitempty"`
	Message string      `json:"message"`
}

// ValidationErrors is every violation found in one pass over a candidate.
type ValidationErrors []Violation

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return "form schema: no violations"
	case 1:
		return "form schema: " + e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("form schema: %d violations: %s", len(e), strings.Join(msgs, "; "))
}

// Has reports whether any violation carries code.
func (e ValidationErrors) Has(code ViolationCode) bool {
	return len(e.ByCode(code)) > 0
}

// ByCode returns the violations carrying code.
func (e ValidationErrors) ByCode(code ViolationCode) []Violation {
	var out []Violation
	for _, v := range e {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}

// AsValidationErrors unwraps err into its violations, if it carries any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

var (
	ErrFieldNotFound   = errors.New("form schema: field not found")
	ErrIndexOutOfRange = errors.New("form schema: index out of range")
	ErrNotAGroup       = errors.New("form schema: field is not a group")
	ErrNotPermitted    = errors.New("form schema: editing not permitted")
)
