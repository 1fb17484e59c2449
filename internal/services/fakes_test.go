package services

import (
	"context"
	"errors"
	"sync"

	"github.com/tmc/langchaingo/llms"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/models"
)

var errStoreDown = errors.New("connection refused")

type memTemplateStore struct {
	mu    sync.Mutex
	order []string
	items map[string]formschema.FieldDefinition
	fail  error
}

func newMemTemplateStore(defs ...formschema.FieldDefinition) *memTemplateStore {
	s := &memTemplateStore{items: make(map[string]formschema.FieldDefinition)}
	for _, d := range defs {
		s.order = append(s.order, d.FieldID)
		s.items[d.FieldID] = d
	}
	return s
}

func (s *memTemplateStore) List(context.Context) ([]formschema.FieldDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	out := make([]formschema.FieldDefinition, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out, nil
}

func (s *memTemplateStore) Get(_ context.Context, id string) (formschema.FieldDefinition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return formschema.FieldDefinition{}, s.fail
	}
	d, ok := s.items[id]
	if !ok {
		return formschema.FieldDefinition{}, ErrNotFound
	}
	return d.Clone(), nil
}

func (s *memTemplateStore) Create(_ context.Context, def formschema.FieldDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if _, ok := s.items[def.FieldID]; ok {
		return errDuplicate
	}
	s.order = append(s.order, def.FieldID)
	s.items[def.FieldID] = def.Clone()
	return nil
}

func (s *memTemplateStore) Update(_ context.Context, def formschema.FieldDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if _, ok := s.items[def.FieldID]; !ok {
		return ErrNotFound
	}
	s.items[def.FieldID] = def.Clone()
	return nil
}

func (s *memTemplateStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type memCache struct {
	templates   []formschema.FieldDefinition
	filled      bool
	gets        int
	invalidated int
	getErr      error
}

func (c *memCache) Get(context.Context) ([]formschema.FieldDefinition, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.templates, c.filled, nil
}

func (c *memCache) Set(_ context.Context, templates []formschema.FieldDefinition) error {
	c.templates, c.filled = templates, true
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.templates, c.filled = nil, false
	c.invalidated++
	return nil
}

type memJobStore struct {
	mu     sync.Mutex
	nextID uint
	jobs   map[uint]*models.Job
	events []models.JobEvent
	fail   error
	// failWrites fails only the schema writes
	failWrites error
}

func newMemJobStore() *memJobStore {
	return &memJobStore{nextID: 1, jobs: make(map[uint]*models.Job)}
}

func (s *memJobStore) CreateJob(_ context.Context, companyName string, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	job.ID = s.nextID
	s.nextID++
	job.Company = models.Company{Name: companyName}
	stored := *job
	s.jobs[job.ID] = &stored
	s.events = append(s.events, models.JobEvent{JobID: job.ID, EventType: models.EventJobCreated})
	return nil
}

func (s *memJobStore) GetJob(_ context.Context, id uint) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (s *memJobStore) SaveSchema(_ context.Context, jobID uint, schema []byte, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if s.failWrites != nil {
		return s.failWrites
	}
	job, ok := s.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	job.FormSchema = append([]byte(nil), schema...)
	s.events = append(s.events, models.JobEvent{JobID: jobID, EventType: models.EventSchemaSaved, Details: details})
	return nil
}

func (s *memJobStore) SaveSchemaAndMode(_ context.Context, jobID uint, bilingual bool, schema []byte, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	if s.failWrites != nil {
		return s.failWrites
	}
	job, ok := s.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	job.Bilingual = bilingual
	job.FormSchema = append([]byte(nil), schema...)
	s.events = append(s.events, models.JobEvent{JobID: jobID, EventType: models.EventBilingualChanged, Details: details})
	return nil
}

func (s *memJobStore) savedCount(jobID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.events {
		if e.JobID == jobID && e.EventType == models.EventSchemaSaved {
			n++
		}
	}
	return n
}

type fakeModel struct {
	response string
	err      error
	prompts  []string
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.response}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}
