package services

import (
	"encoding/json"
	"testing"

	"visualvibe_backend/internal/content"
	"visualvibe_backend/internal/models"
	"visualvibe_backend/internal/repositories"
	"visualvibe_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlidesService() ContentService[models.CarouselSlide] {
	return NewContentService(content.Slides, repositories.NewContentRepository(content.Slides))
}

func TestContentService_CreateDefaultsActive(t *testing.T) {
	db := newTestDB(t)
	svc := newSlidesService()

	id, err := svc.Create(db, &models.CarouselSlide{Title: "Hero"})
	require.NoError(t, err)
	require.NotZero(t, id)

	slide, err := svc.Get(db, id)
	require.NoError(t, err)
	assert.True(t, slide.Active())
	assert.Equal(t, 0, slide.DisplayOrder)
}

func TestContentService_CreateExplicitInactiveIsKept(t *testing.T) {
	db := newTestDB(t)
	svc := newSlidesService()

	id, err := svc.Create(db, &models.CarouselSlide{
		ContentBase: models.ContentBase{IsActive: boolPtr(false)},
		Title:       "Draft",
	})
	require.NoError(t, err)

	// Inactive items are invisible to the public read paths.
	_, err = svc.Get(db, id)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
	assert.Equal(t, "Slide not found", appErr.Message)

	listed, err := svc.List(db)
	require.NoError(t, err)
	assert.Empty(t, listed.([]models.CarouselSlide))
}

func TestContentService_ListOrdersByDisplayOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newSlidesService()

	for _, s := range []models.CarouselSlide{
		{ContentBase: models.ContentBase{DisplayOrder: 2}, Title: "second"},
		{ContentBase: models.ContentBase{DisplayOrder: 1}, Title: "first"},
		{ContentBase: models.ContentBase{DisplayOrder: 3}, Title: "third"},
	} {
		slide := s
		_, err := svc.Create(db, &slide)
		require.NoError(t, err)
	}

	listed, err := svc.List(db)
	require.NoError(t, err)

	slides := listed.([]models.CarouselSlide)
	require.Len(t, slides, 3)
	assert.Equal(t, "first", slides[0].Title)
	assert.Equal(t, "second", slides[1].Title)
	assert.Equal(t, "third", slides[2].Title)
}

func TestContentService_UpdateIsFullOverwrite(t *testing.T) {
	db := newTestDB(t)
	svc := newSlidesService()

	id, err := svc.Create(db, &models.CarouselSlide{Title: "Hero", Subtitle: "Original"})
	require.NoError(t, err)

	// The payload omits Subtitle; full-replace semantics clear it.
	require.NoError(t, svc.Update(db, id, &models.CarouselSlide{Title: "Hero v2"}))

	slide, err := svc.Get(db, id)
	require.NoError(t, err)
	assert.Equal(t, "Hero v2", slide.Title)
	assert.Equal(t, "", slide.Subtitle)
	assert.True(t, slide.Active())
}

func TestContentService_DeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newSlidesService()

	id, err := svc.Create(db, &models.CarouselSlide{Title: "Hero"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(db, id))
	require.NoError(t, svc.Delete(db, id))
	require.NoError(t, svc.Delete(db, 9999))
}

func TestContentService_GraphicsDefaultsDesignType(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(content.Graphics, repositories.NewContentRepository(content.Graphics))

	_, err := svc.Create(db, &models.GraphicDesign{Title: "Poster"})
	require.NoError(t, err)

	var stored models.GraphicDesign
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "2D", stored.DesignType)
}

func TestContentService_GraphicsListIsGrouped(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(content.Graphics, repositories.NewContentRepository(content.Graphics))

	for _, g := range []models.GraphicDesign{
		{Title: "Poster", DesignType: "2D"},
		{Title: "Render", DesignType: "3D"},
		{Title: "Odd", DesignType: "vector"},
	} {
		item := g
		_, err := svc.Create(db, &item)
		require.NoError(t, err)
	}

	listed, err := svc.List(db)
	require.NoError(t, err)

	out, err := json.Marshal(listed)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"2D":`)
	assert.Contains(t, string(out), `"3D":`)
	assert.Contains(t, string(out), "Poster")
	assert.Contains(t, string(out), "Render")
	assert.NotContains(t, string(out), "Odd")
}

func TestContentService_TeamListGroupsByCategoryInOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(content.Team, repositories.NewContentRepository(content.Team))

	for _, m := range []models.TeamMember{
		{Name: "Bek", Category: "Development"},
		{Name: "Aidana", Category: "Design"},
		{Name: "Dana", Category: "Design"},
	} {
		member := m
		_, err := svc.Create(db, &member)
		require.NoError(t, err)
	}

	listed, err := svc.List(db)
	require.NoError(t, err)

	grouped, ok := listed.(*content.OrderedGroups[models.TeamMember])
	require.True(t, ok)

	// Rows sort by category first, so Design appears before Development.
	assert.Equal(t, []string{"Design", "Development"}, grouped.Keys())
	assert.Len(t, grouped.Bucket("Design"), 2)
	assert.Equal(t, "Aidana", grouped.Bucket("Design")[0].Name)
}

func TestContentService_CountActiveExcludesInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newSlidesService()

	_, err := svc.Create(db, &models.CarouselSlide{Title: "visible"})
	require.NoError(t, err)
	_, err = svc.Create(db, &models.CarouselSlide{
		ContentBase: models.ContentBase{IsActive: boolPtr(false)},
		Title:       "hidden",
	})
	require.NoError(t, err)

	count, err := svc.CountActive(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
