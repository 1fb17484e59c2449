package services

import (
	"errors"
	"fmt"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/database"
)

var (
	ErrNotFound       = database.ErrNotFound
	ErrTemplateExists = errors.New("template already exists")
	ErrForbidden      = errors.New("operation not permitted")
	ErrLLMDisabled    = errors.New("schema drafting is disabled: no LLM API key configured")

	errDuplicate = database.ErrDuplicate
)

// PersistenceError wraps a failed store call. The store's message is kept
// verbatim; nothing is retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// storeErr passes not-found through and wraps everything else.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
