package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

// TemplateStore is the persistence collaborator for the template library.
type TemplateStore interface {
	List(ctx context.Context) ([]formschema.FieldDefinition, error)
	Get(ctx context.Context, fieldID string) (formschema.FieldDefinition, error)
	Create(ctx context.Context, def formschema.FieldDefinition) error
	Update(ctx context.Context, def formschema.FieldDefinition) error
	Delete(ctx context.Context, fieldID string) error
}

// TemplateService manages recommended fields. Template definitions are
// always normalized in bilingual mode so both locales survive; a job that
// is not bilingual mirrors them when the copy is normalized into its schema.
type TemplateService struct {
	Store TemplateStore
	// Optional; nil disables caching
	Cache TemplateCache
	Caps  formschema.Capabilities
}

func NewTemplateService(store TemplateStore, cache TemplateCache, caps formschema.Capabilities) *TemplateService {
	return &TemplateService{
		Store: store,
		Cache: cache,
		Caps:  caps,
	}
}

func (s *TemplateService) List(ctx context.Context) ([]formschema.FieldDefinition, error) {
	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx)
		if err != nil {
			log.Printf("⚠️  Template cache read failed, using database: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	templates, err := s.Store.List(ctx)
	if err != nil {
		return nil, storeErr("list templates", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, templates); err != nil {
			log.Printf("⚠️  Template cache write failed: %v", err)
		}
	}
	return templates, nil
}

func (s *TemplateService) Get(ctx context.Context, fieldID string) (formschema.FieldDefinition, error) {
	def, err := s.Store.Get(ctx, fieldID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return def, fmt.Errorf("template %q: %w", fieldID, ErrNotFound)
		}
		return def, storeErr("get template", err)
	}
	return def, nil
}

// Create validates and stores a new template. When the candidate has no id
// one is derived from its primary label; an id already in use is rejected.
func (s *TemplateService) Create(ctx context.Context, c formschema.Candidate) (formschema.FieldDefinition, []formschema.Warning, error) {
	if !s.Caps.CanManageTemplates {
		return formschema.FieldDefinition{}, nil, ErrForbidden
	}
	return s.create(ctx, c)
}

func (s *TemplateService) create(ctx context.Context, c formschema.Candidate) (formschema.FieldDefinition, []formschema.Warning, error) {
	if c.FieldID == "" {
		c.FieldID = formschema.GenerateFieldID(c.Label.Primary)
	}

	def, warnings, err := formschema.NormalizeField(c, true)
	if err != nil {
		return def, warnings, err
	}

	_, err = s.Store.Get(ctx, def.FieldID)
	switch {
	case err == nil:
		return def, warnings, fmt.Errorf("template %q: %w", def.FieldID, ErrTemplateExists)
	case !errors.Is(err, ErrNotFound):
		return def, warnings, storeErr("get template", err)
	}

	if err := s.Store.Create(ctx, def); err != nil {
		// lost a race with a concurrent create of the same id
		if errors.Is(err, errDuplicate) {
			return def, warnings, fmt.Errorf("template %q: %w", def.FieldID, ErrTemplateExists)
		}
		return def, warnings, storeErr("create template", err)
	}
	s.invalidate(ctx)
	log.Printf("Template %s created", def.FieldID)
	return def, warnings, nil
}

// Update merges patch into the template and re-validates the result. The id
// never changes; jobs that already copied the template are unaffected.
func (s *TemplateService) Update(ctx context.Context, fieldID string, patch formschema.Patch) (formschema.FieldDefinition, []formschema.Warning, error) {
	if !s.Caps.CanManageTemplates {
		return formschema.FieldDefinition{}, nil, ErrForbidden
	}
	existing, err := s.Get(ctx, fieldID)
	if err != nil {
		return existing, nil, err
	}

	merged := patch.ApplyTo(existing)
	merged.FieldID = fieldID

	def, warnings, err := formschema.NormalizeField(merged.Candidate(), true)
	if err != nil {
		return def, warnings, err
	}
	if err := s.Store.Update(ctx, def); err != nil {
		if errors.Is(err, ErrNotFound) {
			return def, warnings, fmt.Errorf("template %q: %w", fieldID, ErrNotFound)
		}
		return def, warnings, storeErr("update template", err)
	}
	s.invalidate(ctx)
	return def, warnings, nil
}

func (s *TemplateService) Delete(ctx context.Context, fieldID string) error {
	if !s.Caps.CanManageTemplates {
		return ErrForbidden
	}
	if err := s.Store.Delete(ctx, fieldID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("template %q: %w", fieldID, ErrNotFound)
		}
		return storeErr("delete template", err)
	}
	s.invalidate(ctx)
	log.Printf("Template %s deleted", fieldID)
	return nil
}

// Resolve fetches the templates for ids in the requested order.
func (s *TemplateService) Resolve(ctx context.Context, ids []string) ([]formschema.FieldDefinition, error) {
	out := make([]formschema.FieldDefinition, 0, len(ids))
	for _, id := range ids {
		def, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}

// EnsureSeeded creates every seed template whose id is not yet taken and
// returns how many were added. Invalid seeds are logged and skipped. Seeding
// is run by the process at startup and does not need CanManageTemplates.
func (s *TemplateService) EnsureSeeded(ctx context.Context, seeds []formschema.Candidate) (int, error) {
	created := 0
	for _, c := range seeds {
		_, _, err := s.create(ctx, c)
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrTemplateExists):
		default:
			if _, ok := formschema.AsValidationErrors(err); ok {
				log.Printf("⚠️  Skipping invalid seed template %q: %v", c.Label.Primary, err)
				continue
			}
			return created, err
		}
	}
	return created, nil
}

func (s *TemplateService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		log.Printf("⚠️  Template cache invalidation failed: %v", err)
	}
}
