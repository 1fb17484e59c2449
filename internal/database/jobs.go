package database

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/models"
)

// JobRepository persists job postings and their form schemas.
type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// CreateJob stores job under the named company, creating the company entry
// if it does not exist yet.
func (r *JobRepository) CreateJob(ctx context.Context, companyName string, job *models.Job) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.Where(models.Company{Name: companyName}).FirstOrCreate(&company).Error; err != nil {
			return err
		}
		job.CompanyID = company.ID
		job.Company = company
		if err := tx.Omit("Company").Create(job).Error; err != nil {
			return err
		}
		return tx.Create(&models.JobEvent{
			JobID:     job.ID,
			EventType: models.EventJobCreated,
			Details:   fmt.Sprintf("Job %q created", job.Title),
		}).Error
	})
}

func (r *JobRepository) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := r.DB.WithContext(ctx).Preload("Company").First(&job, id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

// SaveSchema replaces the job's form schema and logs the change. The last
// writer wins; no version token is compared.
func (r *JobRepository) SaveSchema(ctx context.Context, jobID uint, schema []byte, details string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Job{}).Where("id = ?", jobID).Update("form_schema", datatypes.JSON(schema))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(&models.JobEvent{
			JobID:     jobID,
			EventType: models.EventSchemaSaved,
			Details:   details,
		}).Error
	})
}

// SaveSchemaAndMode sets the bilingual flag and replaces the schema in a
// single transaction.
func (r *JobRepository) SaveSchemaAndMode(ctx context.Context, jobID uint, bilingual bool, schema []byte, details string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Job{}).Where("id = ?", jobID).Updates(map[string]any{
			"bilingual":   bilingual,
			"form_schema": datatypes.JSON(schema),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(&models.JobEvent{
			JobID:     jobID,
			EventType: models.EventBilingualChanged,
			Details:   details,
		}).Error
	})
}
