package dtos

import (
	"fmt"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

const (
	OpAddField     = "addField"
	OpAddChild     = "addChild"
	OpRemoveField  = "removeField"
	OpMoveField    = "moveField"
	OpSetProperty  = "setProperty"
	OpAddChoice    = "addChoice"
	OpRemoveChoice = "removeChoice"
)

type EditRequest struct {
	Edits []EditOp `json:"edits" binding:"required,min=1,dive"`
}

// EditOp is the wire form of one formschema.EditCommand
type EditOp struct {
	Op      string                      `json:"op" binding:"required,oneof=addField addChild removeField moveField setProperty addChoice removeChoice"`
	FieldID string                      `json:"field_id"`
	To      *int                        `json:"to"`
	Index   *int                        `json:"index"`
	Field   *formschema.FieldDefinition `json:"field"`
	Patch   *formschema.Patch           `json:"patch"`
	Choice  *formschema.LocalizedText   `json:"choice"`
}

// ToCommand checks that op carries what its kind needs
func (op EditOp) ToCommand() (formschema.EditCommand, error) {
	switch op.Op {
	case OpAddField:
		if op.Field == nil {
			return nil, fmt.Errorf("%s: field is required", op.Op)
		}
		return formschema.AddField{Field: *op.Field}, nil
	case OpAddChild:
		if op.Field == nil || op.FieldID == "" {
			return nil, fmt.Errorf("%s: field_id and field are required", op.Op)
		}
		return formschema.AddChild{GroupID: op.FieldID, Field: *op.Field}, nil
	case OpRemoveField:
		if op.FieldID == "" {
			return nil, fmt.Errorf("%s: field_id is required", op.Op)
		}
		return formschema.RemoveField{FieldID: op.FieldID}, nil
	case OpMoveField:
		if op.FieldID == "" || op.To == nil {
			return nil, fmt.Errorf("%s: field_id and to are required", op.Op)
		}
		return formschema.MoveField{FieldID: op.FieldID, To: *op.To}, nil
	case OpSetProperty:
		if op.FieldID == "" || op.Patch == nil {
			return nil, fmt.Errorf("%s: field_id and patch are required", op.Op)
		}
		return formschema.SetProperty{FieldID: op.FieldID, Patch: *op.Patch}, nil
	case OpAddChoice:
		if op.FieldID == "" || op.Choice == nil {
			return nil, fmt.Errorf("%s: field_id and choice are required", op.Op)
		}
		return formschema.AddChoice{FieldID: op.FieldID, Choice: *op.Choice}, nil
	case OpRemoveChoice:
		if op.FieldID == "" || op.Index == nil {
			return nil, fmt.Errorf("%s: field_id and index are required", op.Op)
		}
		return formschema.RemoveChoice{FieldID: op.FieldID, Index: *op.Index}, nil
	}
	return nil, fmt.Errorf("unknown op %q", op.Op)
}

// Commands converts every op, failing on the first malformed one
func (r EditRequest) Commands() ([]formschema.EditCommand, error) {
	cmds := make([]formschema.EditCommand, 0, len(r.Edits))
	for i, op := range r.Edits {
		cmd, err := op.ToCommand()
		if err != nil {
			return nil, fmt.Errorf("edit %d: %w", i, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
