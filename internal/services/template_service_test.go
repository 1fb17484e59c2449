package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

var allCaps = formschema.Capabilities{CanEditSchema: true, CanManageTemplates: true}

func militaryCandidate() formschema.Candidate {
	return formschema.Candidate{
		Label:     formschema.LocalizedText{Primary: "Military Status", Secondary: "الموقف من التجنيد"},
		InputType: formschema.TypeDropdown,
		Choices: []formschema.LocalizedText{
			{Primary: "Completed"},
			{Primary: "Exempted", Secondary: "معفى"},
		},
	}
}

func TestTemplateService_CreateGeneratesID(t *testing.T) {
	svc := NewTemplateService(newMemTemplateStore(), nil, allCaps)

	def, warnings, err := svc.Create(context.Background(), militaryCandidate())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "military_status", def.FieldID)
	assert.Equal(t, "الموقف من التجنيد", def.Label.Secondary)
	assert.Equal(t, formschema.Text("Completed"), def.Choices[0])

	got, err := svc.Get(context.Background(), "military_status")
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestTemplateService_CreateRejectsCollision(t *testing.T) {
	svc := NewTemplateService(newMemTemplateStore(), nil, allCaps)
	_, _, err := svc.Create(context.Background(), militaryCandidate())
	require.NoError(t, err)

	_, _, err = svc.Create(context.Background(), militaryCandidate())
	assert.ErrorIs(t, err, ErrTemplateExists)
}

// staleReadStore misses rows on Get, like a read that ran before a
// concurrent insert committed.
type staleReadStore struct {
	*memTemplateStore
}

func (staleReadStore) Get(context.Context, string) (formschema.FieldDefinition, error) {
	return formschema.FieldDefinition{}, ErrNotFound
}

func TestTemplateService_CreateRaceReportsConflict(t *testing.T) {
	store := newMemTemplateStore()
	svc := NewTemplateService(staleReadStore{store}, nil, allCaps)
	_, _, err := svc.Create(context.Background(), militaryCandidate())
	require.NoError(t, err)

	_, _, err = svc.Create(context.Background(), militaryCandidate())
	assert.ErrorIs(t, err, ErrTemplateExists)
	var perr *PersistenceError
	assert.False(t, errors.As(err, &perr))
}

func TestTemplateService_CreateValidation(t *testing.T) {
	svc := NewTemplateService(newMemTemplateStore(), nil, allCaps)

	_, _, err := svc.Create(context.Background(), formschema.Candidate{
		FieldID:   "age",
		Label:     formschema.Text("Age"),
		InputType: formschema.TypeNumber,
		MinValue:  func() *float64 { v := 10.0; return &v }(),
		MaxValue:  func() *float64 { v := 5.0; return &v }(),
	})
	verrs, ok := formschema.AsValidationErrors(err)
	require.True(t, ok)
	assert.True(t, verrs.Has(formschema.InvalidRange))

	_, _, err = svc.Create(context.Background(), formschema.Candidate{Label: formschema.Text("الحالة"), InputType: formschema.TypeText})
	verrs, ok = formschema.AsValidationErrors(err)
	require.True(t, ok, "label with no ascii letters yields an empty id")
	assert.True(t, verrs.Has(formschema.MissingFieldID))
}

func TestTemplateService_UpdateMergesPatch(t *testing.T) {
	store := newMemTemplateStore()
	svc := NewTemplateService(store, nil, allCaps)
	_, _, err := svc.Create(context.Background(), militaryCandidate())
	require.NoError(t, err)

	required := true
	updated, _, err := svc.Update(context.Background(), "military_status", formschema.Patch{
		IsRequired: &required,
		Choices:    []formschema.LocalizedText{{Primary: "Postponed"}},
	})
	require.NoError(t, err)
	assert.True(t, updated.IsRequired)
	assert.Equal(t, []formschema.LocalizedText{formschema.Text("Postponed")}, updated.Choices)
	assert.Equal(t, "Military Status", updated.Label.Primary)

	_, _, err = svc.Update(context.Background(), "unknown", formschema.Patch{})
	assert.ErrorIs(t, err, ErrNotFound)

	bad := formschema.FieldType("slider")
	_, _, err = svc.Update(context.Background(), "military_status", formschema.Patch{InputType: &bad})
	_, ok := formschema.AsValidationErrors(err)
	assert.True(t, ok)

	stored, err := svc.Get(context.Background(), "military_status")
	require.NoError(t, err)
	assert.Equal(t, formschema.TypeDropdown, stored.InputType, "rejected update must not be stored")
}

func TestTemplateService_Delete(t *testing.T) {
	svc := NewTemplateService(newMemTemplateStore(), nil, allCaps)
	_, _, err := svc.Create(context.Background(), militaryCandidate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "military_status"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "military_status"), ErrNotFound)
}

func TestTemplateService_Capabilities(t *testing.T) {
	svc := NewTemplateService(newMemTemplateStore(), nil, formschema.Capabilities{CanEditSchema: true})

	_, _, err := svc.Create(context.Background(), militaryCandidate())
	assert.ErrorIs(t, err, ErrForbidden)
	_, _, err = svc.Update(context.Background(), "x", formschema.Patch{})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), "x"), ErrForbidden)

	_, err = svc.List(context.Background())
	assert.NoError(t, err)
}

func TestTemplateService_ListUsesCache(t *testing.T) {
	store := newMemTemplateStore()
	cache := &memCache{}
	svc := NewTemplateService(store, cache, allCaps)

	_, _, err := svc.Create(context.Background(), militaryCandidate())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, cache.filled)

	store.fail = errStoreDown
	second, err := svc.List(context.Background())
	require.NoError(t, err, "served from cache")
	assert.Equal(t, first, second)

	store.fail = nil
	require.NoError(t, svc.Delete(context.Background(), "military_status"))
	assert.False(t, cache.filled)

	third, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestTemplateService_PersistenceFailure(t *testing.T) {
	store := newMemTemplateStore()
	store.fail = errStoreDown
	svc := NewTemplateService(store, &memCache{getErr: errStoreDown}, allCaps)

	_, err := svc.List(context.Background())
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "list templates", perr.Op)
	assert.ErrorIs(t, err, errStoreDown)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestTemplateService_EnsureSeeded(t *testing.T) {
	svc := NewTemplateService(newMemTemplateStore(), nil, allCaps)
	seeds := []formschema.Candidate{
		militaryCandidate(),
		{Label: formschema.Text("Expected Salary"), InputType: formschema.TypeNumber},
		{Label: formschema.Text(""), InputType: formschema.TypeText},
	}

	n, err := svc.EnsureSeeded(context.Background(), seeds)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.EnsureSeeded(context.Background(), seeds)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestTemplateService_EnsureSeededWithoutManageCapability(t *testing.T) {
	svc := NewTemplateService(newMemTemplateStore(), nil, formschema.Capabilities{CanEditSchema: true})

	n, err := svc.EnsureSeeded(context.Background(), []formschema.Candidate{militaryCandidate()})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, _, err = svc.Create(context.Background(), formschema.Candidate{Label: formschema.Text("Notice Period"), InputType: formschema.TypeText})
	assert.ErrorIs(t, err, ErrForbidden)
}
