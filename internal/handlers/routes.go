package handlers

import "github.com/gin-gonic/gin"

// Register mounts every endpoint under api
func Register(api *gin.RouterGroup, jobs *JobHandler, templates *TemplateHandler) {
	api.GET("/health", HealthCheck)
	api.GET("/field-types", ListFieldTypes)

	// Template library
	api.GET("/templates", templates.ListTemplates)
	api.POST("/templates", templates.CreateTemplate)
	api.GET("/templates/:fieldId", templates.GetTemplate)
	api.PATCH("/templates/:fieldId", templates.UpdateTemplate)
	api.DELETE("/templates/:fieldId", templates.DeleteTemplate)

	// Jobs and their form schemas
	api.POST("/jobs", jobs.CreateJob)
	api.GET("/jobs/:id/schema", jobs.GetSchema)
	api.PUT("/jobs/:id/schema", jobs.SaveSchema)
	api.POST("/jobs/:id/schema/edits", jobs.ApplyEdits)
	api.POST("/jobs/:id/schema/templates", jobs.InstantiateTemplates)
	api.POST("/jobs/:id/schema/duplicate", jobs.DuplicateSchema)
	api.POST("/jobs/:id/schema/draft", jobs.DraftSchema)
	api.PUT("/jobs/:id/bilingual", jobs.SetBilingual)

	// Stateless helpers
	api.POST("/schema/validate", jobs.ValidateSchema)
	api.POST("/schema/draft", jobs.DraftFromDescription)
}
