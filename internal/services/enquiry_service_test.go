package services

import (
	"testing"

	"visualvibe_backend/internal/models"
	"visualvibe_backend/internal/repositories"
	"visualvibe_backend/internal/services/dto"
	"visualvibe_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnquiryRequest() *dto.CreateEnquiryRequest {
	return &dto.CreateEnquiryRequest{
		FullName:           "Jane Doe",
		Email:              "jane@example.com",
		Phone:              "+7 700 000 0000",
		ServiceType:        dto.StringList{"Logo Design", "Branding"},
		ProjectType:        "New project",
		ProjectDescription: "A brand refresh for a coffee shop.",
		ContactPreference:  dto.StringList{"Email"},
	}
}

func TestEnquiryService_CreateFlattensMultiSelects(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(repositories.NewEnquiryRepository())

	id, err := svc.Create(db, validEnquiryRequest())
	require.NoError(t, err)
	require.NotZero(t, id)

	stored, err := svc.Get(db, id)
	require.NoError(t, err)
	assert.Equal(t, "Logo Design, Branding", stored.ServiceType)
	assert.Equal(t, "Email", stored.ContactPreference)
	assert.Equal(t, models.EnquiryStatusPending, stored.Status)
}

func TestEnquiryService_CreateRejectsMissingRequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(repositories.NewEnquiryRepository())

	req := validEnquiryRequest()
	req.Email = ""

	_, err := svc.Create(db, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "Missing required fields", appErr.Message)

	// Nothing was written.
	var count int64
	require.NoError(t, db.Model(&models.Enquiry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnquiryService_CreateTrimsWhitespaceBeforeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(repositories.NewEnquiryRepository())

	req := validEnquiryRequest()
	req.FullName = "   "

	_, err := svc.Create(db, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Missing required fields", appErr.Message)
}

func TestEnquiryService_SubmitRequiresContactPreference(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(repositories.NewEnquiryRepository())

	req := validEnquiryRequest()
	req.ContactPreference = nil

	_, err := svc.Submit(db, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Please fill all required fields", appErr.Message)

	// The JSON API path does not require it.
	req2 := validEnquiryRequest()
	req2.ContactPreference = nil
	_, err = svc.Create(db, req2)
	assert.NoError(t, err)
}

func TestEnquiryService_ListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(repositories.NewEnquiryRepository())

	seed := []*dto.CreateEnquiryRequest{
		validEnquiryRequest(),
		{
			FullName:           "Bolat Akhmetov",
			Email:              "bolat@example.com",
			Phone:              "+7 701 111 1111",
			ServiceType:        dto.StringList{"Web Development"},
			ProjectType:        "Redesign",
			ProjectDescription: "Corporate site overhaul.",
		},
	}
	ids := make([]uint, 0, len(seed))
	for _, req := range seed {
		id, err := svc.Create(db, req)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, svc.UpdateStatus(db, ids[1], "reviewed"))

	t.Run("no filter returns everything", func(t *testing.T) {
		all, err := svc.List(db, repositories.EnquiryFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("all is no filter", func(t *testing.T) {
		all, err := svc.List(db, repositories.EnquiryFilter{Status: "all", Service: "all"})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := svc.List(db, repositories.EnquiryFilter{Status: "reviewed"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bolat Akhmetov", got[0].FullName)
	})

	t.Run("service filter matches the flattened value", func(t *testing.T) {
		got, err := svc.List(db, repositories.EnquiryFilter{Service: "Web Development"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bolat Akhmetov", got[0].FullName)
	})

	t.Run("search is case-insensitive across name email phone", func(t *testing.T) {
		got, err := svc.List(db, repositories.EnquiryFilter{Search: "JANE"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Jane Doe", got[0].FullName)

		got, err = svc.List(db, repositories.EnquiryFilter{Search: "bolat@"})
		require.NoError(t, err)
		require.Len(t, got, 1)

		got, err = svc.List(db, repositories.EnquiryFilter{Search: "701 111"})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("combined filters use AND semantics", func(t *testing.T) {
		got, err := svc.List(db, repositories.EnquiryFilter{Status: "pending", Search: "bolat"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEnquiryService_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(repositories.NewEnquiryRepository())

	id, err := svc.Create(db, validEnquiryRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(db, id, "contacted"))
	stored, err := svc.Get(db, id)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusContacted, stored.Status)

	// Empty payload falls back to pending.
	require.NoError(t, svc.UpdateStatus(db, id, ""))
	stored, err = svc.Get(db, id)
	require.NoError(t, err)
	assert.Equal(t, models.EnquiryStatusPending, stored.Status)

	// Unknown statuses never reach the database.
	err = svc.UpdateStatus(db, id, "escalated")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "Invalid status", appErr.Message)
}

func TestEnquiryService_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(repositories.NewEnquiryRepository())

	_, err := svc.Get(db, 42)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, "Enquiry not found", appErr.Message)
}

func TestEnquiryService_DeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnquiryService(repositories.NewEnquiryRepository())

	id, err := svc.Create(db, validEnquiryRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(db, id))
	require.NoError(t, svc.Delete(db, id))
}
