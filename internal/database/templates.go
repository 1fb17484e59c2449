package database

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
	"github.com/justsurfingit/Hiring-Form-Builder/internal/models"
)

// TemplateRepository persists the recommended-field library.
type TemplateRepository struct {
	DB *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) List(ctx context.Context) ([]formschema.FieldDefinition, error) {
	var rows []models.RecommendedField
	if err := r.DB.WithContext(ctx).Order("created_at, field_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]formschema.FieldDefinition, 0, len(rows))
	for _, row := range rows {
		def, err := decodeTemplate(row)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}

func (r *TemplateRepository) Get(ctx context.Context, fieldID string) (formschema.FieldDefinition, error) {
	var row models.RecommendedField
	if err := r.DB.WithContext(ctx).First(&row, "field_id = ?", fieldID).Error; err != nil {
		return formschema.FieldDefinition{}, translate(err)
	}
	return decodeTemplate(row)
}

func (r *TemplateRepository) Create(ctx context.Context, def formschema.FieldDefinition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode template %s: %w", def.FieldID, err)
	}
	row := models.RecommendedField{FieldID: def.FieldID, Definition: datatypes.JSON(data)}
	return translate(r.DB.WithContext(ctx).Create(&row).Error)
}

func (r *TemplateRepository) Update(ctx context.Context, def formschema.FieldDefinition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode template %s: %w", def.FieldID, err)
	}
	res := r.DB.WithContext(ctx).Model(&models.RecommendedField{}).
		Where("field_id = ?", def.FieldID).
		Update("definition", datatypes.JSON(data))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, fieldID string) error {
	res := r.DB.WithContext(ctx).Delete(&models.RecommendedField{}, "field_id = ?", fieldID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeTemplate(row models.RecommendedField) (formschema.FieldDefinition, error) {
	var def formschema.FieldDefinition
	if err := json.Unmarshal(row.Definition, &def); err != nil {
		return def, fmt.Errorf("decode template %s: %w", row.FieldID, err)
	}
	def.FieldID = row.FieldID
	return def, nil
}
