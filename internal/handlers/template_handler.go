package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/dtos"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/services"
)

type TemplateHandler struct {
	TemplateService *services.TemplateService
}

func NewTemplateHandler(t *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{TemplateService: t}
}

// ListTemplates is the GET /templates endpoint
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.TemplateService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	def, err := h.TemplateService.Get(c.Request.Context(), c.Param("fieldId"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dtos.TemplateResponse{Template: def})
}

// CreateTemplate accepts one field definition; fieldId may be omitted
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req formschema.Candidate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	def, warnings, err := h.TemplateService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, warnings)
		return
	}
	c.JSON(http.StatusCreated, dtos.TemplateResponse{Template: def, Warnings: warnings})
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var patch formschema.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	def, warnings, err := h.TemplateService.Update(c.Request.Context(), c.Param("fieldId"), patch)
	if err != nil {
		respondError(c, err, warnings)
		return
	}
	c.JSON(http.StatusOK, dtos.TemplateResponse{Template: def, Warnings: warnings})
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.TemplateService.Delete(c.Request.Context(), c.Param("fieldId")); err != nil {
		respondError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFieldTypes is the GET /field-types endpoint used to fill editor pickers
func ListFieldTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": formschema.Registry()})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
