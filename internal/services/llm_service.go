package services

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/config"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

const maxDescriptionLen = 20000

// descriptionPolicy strips all markup from job descriptions
var descriptionPolicy = bluemonday.StrictPolicy()

type LLMService struct {
	// nil when no API key is configured
	Client llms.Model
}

// NewLLMService initializes the Gemini client. Without an API key the
// service is returned disabled rather than failing startup.
func NewLLMService(ctx context.Context, cfg config.LLMConfig) (*LLMService, error) {
	if cfg.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY is empty; schema drafting disabled.")
		return &LLMService{}, nil
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return NewLLMServiceWithModel(llm), nil
}

// NewLLMServiceWithModel wraps an already configured model
func NewLLMServiceWithModel(model llms.Model) *LLMService {
	return &LLMService{Client: model}
}

func (s *LLMService) Enabled() bool {
	return s != nil && s.Client != nil
}

const schemaDraftPrompt = `
You are an expert recruiting assistant. Your task is to propose the application form a candidate should fill in for the job below.

### INSTRUCTIONS:
1. **Read** the job description and decide which details the hiring team needs from applicants.
2. **Do not** include name, email or phone; those are collected separately.
3. **Use** only these input types: %s.
4. **Format** the output as a valid JSON array only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA (one element per field):
{
    "fieldId": "snake_case identifier, unique",
    "label": {"primary": "English label", "secondary": "Arabic label or empty string"},
    "inputType": "one of the types above",
    "isRequired": true,
    "minValue": 0,
    "maxValue": 10,
    "choices": [{"primary": "Option", "secondary": ""}],
    "children": []
}
minValue/maxValue only for "number"; choices only for checkbox, radio, dropdown and tags; children only for "group", and a group never contains another group.

### JOB DESCRIPTION:
%s
`

// DraftSchema asks the model for a candidate form for description and runs
// it through the normalizer. The draft is never stored; callers review it
// and save it through the usual schema endpoints.
func (s *LLMService) DraftSchema(ctx context.Context, description string, bilingual bool) (formschema.Result, error) {
	if !s.Enabled() {
		return formschema.Result{}, ErrLLMDisabled
	}

	text := html.UnescapeString(descriptionPolicy.Sanitize(description))
	text = strings.TrimSpace(text)
	text = truncate(text, maxDescriptionLen)

	types := make([]string, 0, len(formschema.AllTypes()))
	for _, t := range formschema.AllTypes() {
		types = append(types, string(t))
	}

	prompt := fmt.Sprintf(schemaDraftPrompt, strings.Join(types, ", "), text)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return formschema.Result{}, fmt.Errorf("draft schema: %w", err)
	}

	candidates, err := formschema.ParseCandidates([]byte(stripCodeFence(resp)))
	if err != nil {
		log.Printf("❌ Draft schema parse error: %v. Raw: %s", err, resp)
		return formschema.Result{}, fmt.Errorf("draft schema: %w", err)
	}
	for i := range candidates {
		if candidates[i].FieldID == "" {
			candidates[i].FieldID = formschema.GenerateFieldID(candidates[i].Label.Primary)
		}
	}
	return formschema.Normalize(candidates, bilingual)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stripCodeFence removes a ```json ... ``` wrapper models add despite being told not to
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
