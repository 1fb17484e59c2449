package dtos

import "github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"

type JobCreationRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Title       string `json:"role_title" binding:"required"`
	Description string `json:"description"`
	Bilingual   bool   `json:"bilingual"`

	// Optional initial form; also how a duplicated job is pre-populated
	Fields []formschema.Candidate `json:"fields"`
}

type SchemaRequest struct {
	Fields []formschema.Candidate `json:"fields"`
}

type ValidateSchemaRequest struct {
	Fields    []formschema.Candidate `json:"fields"`
	Bilingual bool                   `json:"bilingual"`
}

type InstantiateRequest struct {
	TemplateIDs []string `json:"template_ids" binding:"required,min=1,dive,required"`
}

type DuplicateRequest struct {
	SourceJobID uint `json:"source_job_id" binding:"required"`
}

type BilingualRequest struct {
	Bilingual *bool `json:"bilingual" binding:"required"`
}

// SchemaResponse is what every schema endpoint returns on success
type SchemaResponse struct {
	JobID     uint                 `json:"job_id,omitempty"`
	Bilingual bool                 `json:"bilingual"`
	Fields    formschema.Schema    `json:"fields"`
	Warnings  []formschema.Warning `json:"warnings,omitempty"`
	Added     []string             `json:"added,omitempty"`
}
