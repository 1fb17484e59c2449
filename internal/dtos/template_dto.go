package dtos

import "github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"

type TemplateResponse struct {
	Template formschema.FieldDefinition `json:"template"`
	Warnings []formschema.Warning       `json:"warnings,omitempty"`
}

type DraftRequest struct {
	// Raw job description; HTML is stripped before prompting
	Description string `json:"description" binding:"required"`
	Bilingual   bool   `json:"bilingual"`
}
