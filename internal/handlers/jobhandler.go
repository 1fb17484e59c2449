package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/dtos"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/services"
)

type JobHandler struct {
	LLMService *services.LLMService
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(llm *services.LLMService, j *services.JobService) *JobHandler {
	return &JobHandler{
		LLMService: llm,
		JobService: j,
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	job, warnings, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, warnings)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job, "warnings": warnings})
}

// GetSchema is the GET /jobs/:id/schema endpoint read by editors and renderers
func (h *JobHandler) GetSchema(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	js, err := h.JobService.GetJobSchema(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dtos.SchemaResponse{JobID: js.JobID, Bilingual: js.Bilingual, Fields: js.Fields})
}

// SaveSchema replaces the job's schema with the submitted candidate
func (h *JobHandler) SaveSchema(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.SchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.JobService.SaveJobSchema(c.Request.Context(), id, req.Fields)
	h.respondSchema(c, id, res, nil, err)
}

func (h *JobHandler) ApplyEdits(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	cmds, err := req.Commands()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.JobService.ApplyEdits(c.Request.Context(), id, cmds)
	h.respondSchema(c, id, res, nil, err)
}

func (h *JobHandler) InstantiateTemplates(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.InstantiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, added, err := h.JobService.InstantiateTemplates(c.Request.Context(), id, req.TemplateIDs)
	h.respondSchema(c, id, res, added, err)
}

func (h *JobHandler) DuplicateSchema(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.DuplicateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.JobService.DuplicateSchema(c.Request.Context(), req.SourceJobID, id)
	h.respondSchema(c, id, res, nil, err)
}

func (h *JobHandler) SetBilingual(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.BilingualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.JobService.SetBilingual(c.Request.Context(), id, *req.Bilingual)
	if err != nil {
		respondError(c, err, res.Warnings)
		return
	}
	c.JSON(http.StatusOK, dtos.SchemaResponse{JobID: id, Bilingual: *req.Bilingual, Fields: res.Schema, Warnings: res.Warnings})
}

// DraftSchema proposes a schema from the job's own description. Nothing is saved.
func (h *JobHandler) DraftSchema(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	js, err := h.JobService.GetJobSchema(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	res, err := h.LLMService.DraftSchema(c.Request.Context(), js.Description, js.Bilingual)
	if err != nil {
		respondError(c, err, res.Warnings)
		return
	}
	c.JSON(http.StatusOK, dtos.SchemaResponse{JobID: id, Bilingual: js.Bilingual, Fields: res.Schema, Warnings: res.Warnings})
}

// DraftFromDescription is the POST /schema/draft endpoint for jobs not yet created
func (h *JobHandler) DraftFromDescription(c *gin.Context) {
	var req dtos.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.LLMService.DraftSchema(c.Request.Context(), req.Description, req.Bilingual)
	if err != nil {
		respondError(c, err, res.Warnings)
		return
	}
	c.JSON(http.StatusOK, dtos.SchemaResponse{Bilingual: req.Bilingual, Fields: res.Schema, Warnings: res.Warnings})
}

// ValidateSchema runs the normalizer without touching any job
func (h *JobHandler) ValidateSchema(c *gin.Context) {
	var req dtos.ValidateSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := formschema.Normalize(req.Fields, req.Bilingual)
	if err != nil {
		respondError(c, err, res.Warnings)
		return
	}
	c.JSON(http.StatusOK, dtos.SchemaResponse{Bilingual: req.Bilingual, Fields: res.Schema, Warnings: res.Warnings})
}

// respondSchema answers with the schema as stored after a successful write
func (h *JobHandler) respondSchema(c *gin.Context, id uint, res formschema.Result, added []string, err error) {
	if err != nil {
		respondError(c, err, res.Warnings)
		return
	}
	js, err := h.JobService.GetJobSchema(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dtos.SchemaResponse{
		JobID:     id,
		Bilingual: js.Bilingual,
		Fields:    js.Fields,
		Warnings:  res.Warnings,
		Added:     added,
	})
}

func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid job id %q", c.Param("id"))})
		return 0, false
	}
	return uint(id), true
}
