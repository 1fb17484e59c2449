package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/dtos"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/models"
)

// JobStore is the persistence collaborator for jobs and their schemas.
type JobStore interface {
	CreateJob(ctx context.Context, companyName string, job *models.Job) error
	GetJob(ctx context.Context, id uint) (*models.Job, error)
	SaveSchema(ctx context.Context, jobID uint, schema []byte, details string) error
	// SaveSchemaAndMode stores the language mode and the schema together
	SaveSchemaAndMode(ctx context.Context, jobID uint, bilingual bool, schema []byte, details string) error
}

// TemplateResolver looks up template library entries by id.
type TemplateResolver interface {
	Resolve(ctx context.Context, ids []string) ([]formschema.FieldDefinition, error)
}

// JobSchema is a job's canonical form together with the job attributes
// that govern it.
type JobSchema struct {
	JobID       uint
	Title       string
	Description string
	Bilingual   bool
	Fields      formschema.Schema
}

type JobService struct {
	Store     JobStore
	Templates TemplateResolver
	Caps      formschema.Capabilities
}

func NewJobService(store JobStore, templates TemplateResolver, caps formschema.Capabilities) *JobService {
	return &JobService{
		Store:     store,
		Templates: templates,
		Caps:      caps,
	}
}

// CreateJob creates the job, normalizing the optional initial fields in the
// job's language mode before anything is stored.
func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, []formschema.Warning, error) {
	res, err := formschema.Normalize(req.Fields, req.Bilingual)
	if err != nil {
		return nil, res.Warnings, err
	}
	data, err := formschema.Serialize(res.Schema)
	if err != nil {
		return nil, res.Warnings, err
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Bilingual:   req.Bilingual,
		FormSchema:  data,
	}
	if err := s.Store.CreateJob(ctx, req.CompanyName, job); err != nil {
		return nil, res.Warnings, storeErr("create job", err)
	}
	return job, res.Warnings, nil
}

func (s *JobService) GetJobSchema(ctx context.Context, jobID uint) (*JobSchema, error) {
	job, err := s.Store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
		}
		return nil, storeErr("get job", err)
	}
	fields, err := formschema.Parse(job.FormSchema)
	if err != nil {
		return nil, fmt.Errorf("job %d: stored schema is unreadable: %w", jobID, err)
	}
	return &JobSchema{
		JobID:       job.ID,
		Title:       job.Title,
		Description: job.Description,
		Bilingual:   job.Bilingual,
		Fields:      fields,
	}, nil
}

// SaveJobSchema normalizes candidates in the job's language mode and
// replaces the stored schema with the result.
func (s *JobService) SaveJobSchema(ctx context.Context, jobID uint, candidates []formschema.Candidate) (formschema.Result, error) {
	if !s.Caps.CanEditSchema {
		return formschema.Result{}, ErrForbidden
	}
	current, err := s.GetJobSchema(ctx, jobID)
	if err != nil {
		return formschema.Result{}, err
	}
	res, err := formschema.Normalize(candidates, current.Bilingual)
	if err != nil {
		return res, err
	}
	return res, s.persist(ctx, jobID, res.Schema, fmt.Sprintf("Schema saved with %d fields", len(res.Schema)))
}

// ApplyEdits replays cmds against the stored schema in an editor session
// and saves the outcome. Nothing is saved if any command or the final
// normalization fails.
func (s *JobService) ApplyEdits(ctx context.Context, jobID uint, cmds []formschema.EditCommand) (formschema.Result, error) {
	editor, err := s.openEditor(ctx, jobID)
	if err != nil {
		return formschema.Result{}, err
	}
	for i, cmd := range cmds {
		if err := editor.Apply(cmd); err != nil {
			return formschema.Result{}, fmt.Errorf("edit %d: %w", i, err)
		}
	}
	res, err := editor.Submit()
	if err != nil {
		return res, err
	}
	return res, s.persist(ctx, jobID, res.Schema, fmt.Sprintf("Schema edited (%d changes)", len(cmds)))
}

// InstantiateTemplates copies the requested templates into the job's schema.
// Templates the job already has are skipped, so repeating a request is a
// no-op and nothing is written.
func (s *JobService) InstantiateTemplates(ctx context.Context, jobID uint, templateIDs []string) (formschema.Result, []string, error) {
	editor, err := s.openEditor(ctx, jobID)
	if err != nil {
		return formschema.Result{}, nil, err
	}

	var pending []string
	for _, id := range templateIDs {
		if !editor.IsInstantiated(id) {
			pending = append(pending, id)
		}
	}
	templates, err := s.Templates.Resolve(ctx, pending)
	if err != nil {
		return formschema.Result{}, nil, err
	}

	added, err := editor.Instantiate(templates)
	if err != nil {
		return formschema.Result{}, nil, err
	}
	res, err := editor.Submit()
	if err != nil {
		return res, nil, err
	}
	if len(added) == 0 {
		return res, nil, nil
	}
	log.Printf("Job %d: instantiated templates %v", jobID, added)
	return res, added, s.persist(ctx, jobID, res.Schema, fmt.Sprintf("Templates added: %v", added))
}

// DuplicateSchema copies the schema of another job into targetID, replacing
// whatever it had. Text is re-mirrored for the target's language mode.
func (s *JobService) DuplicateSchema(ctx context.Context, sourceID, targetID uint) (formschema.Result, error) {
	if !s.Caps.CanEditSchema {
		return formschema.Result{}, ErrForbidden
	}
	source, err := s.GetJobSchema(ctx, sourceID)
	if err != nil {
		return formschema.Result{}, err
	}
	target, err := s.GetJobSchema(ctx, targetID)
	if err != nil {
		return formschema.Result{}, err
	}
	res, err := formschema.Normalize(source.Fields.Candidates(), target.Bilingual)
	if err != nil {
		return res, err
	}
	return res, s.persist(ctx, targetID, res.Schema, fmt.Sprintf("Schema duplicated from job %d", sourceID))
}

// SetBilingual switches the job's language mode and re-canonicalizes its
// schema; turning bilingual off overwrites every secondary text. The flag
// and the schema are stored in one write, so a failure changes neither.
func (s *JobService) SetBilingual(ctx context.Context, jobID uint, bilingual bool) (formschema.Result, error) {
	if !s.Caps.CanEditSchema {
		return formschema.Result{}, ErrForbidden
	}
	current, err := s.GetJobSchema(ctx, jobID)
	if err != nil {
		return formschema.Result{}, err
	}
	res, err := formschema.Normalize(current.Fields.Candidates(), bilingual)
	if err != nil {
		return res, err
	}
	data, err := formschema.Serialize(res.Schema)
	if err != nil {
		return res, err
	}
	if err := s.Store.SaveSchemaAndMode(ctx, jobID, bilingual, data, fmt.Sprintf("Bilingual set to %t, schema re-mirrored", bilingual)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return res, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
		}
		return res, storeErr("set bilingual", err)
	}
	return res, nil
}

func (s *JobService) openEditor(ctx context.Context, jobID uint) (*formschema.Editor, error) {
	if !s.Caps.CanEditSchema {
		return nil, ErrForbidden
	}
	current, err := s.GetJobSchema(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return formschema.NewEditor(current.Fields, current.Bilingual, s.Caps), nil
}

func (s *JobService) persist(ctx context.Context, jobID uint, schema formschema.Schema, details string) error {
	data, err := formschema.Serialize(schema)
	if err != nil {
		return err
	}
	if err := s.Store.SaveSchema(ctx, jobID, data, details); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("job %d: %w", jobID, ErrNotFound)
		}
		return storeErr("save schema", err)
	}
	return nil
}
