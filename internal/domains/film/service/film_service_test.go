package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-backend/internal/domains/film/model"
)

func TestCreateFilmDefaults(t *testing.T) {
	repo := newFakeFilmRepo()
	svc := NewFilmService(repo)

	f, err := svc.Create(context.Background(), model.CreateFilmRequest{Title: "Untitled Project"})
	require.NoError(t, err)

	assert.Equal(t, model.StatusDraft, f.Status)
	assert.Equal(t, 3, f.Evaluation)
	assert.Equal(t, model.SourceAdmin, f.Source)
	assert.Nil(t, f.ReleaseDate)
}

func TestCreateFilmRejectsBadDate(t *testing.T) {
	svc := NewFilmService(newFakeFilmRepo())

	_, err := svc.Create(context.Background(), model.CreateFilmRequest{
		Title:       "Bad Date Film",
		ReleaseDate: "16/07/2010",
	})
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestArchiveSetsStatus(t *testing.T) {
	repo := newFakeFilmRepo()
	svc := NewFilmService(repo)

	f, err := svc.Create(context.Background(), model.CreateFilmRequest{
		Title:  "To Archive",
		Status: model.StatusPublished,
	})
	require.NoError(t, err)

	archived, err := svc.Archive(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusArchived, archived.Status)
}

func TestArchiveMissingFilm(t *testing.T) {
	svc := NewFilmService(newFakeFilmRepo())

	_, err := svc.Archive(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrFilmNotFound)
}

func TestListIgnoresInvalidFilters(t *testing.T) {
	repo := newFakeFilmRepo()
	svc := NewFilmService(repo)

	_, err := svc.List(context.Background(), "BOGUS", "whatever")
	require.NoError(t, err)

	// Giá trị filter lạ bị bỏ qua thay vì báo lỗi
	assert.Empty(t, repo.lastFilter.Status)
	assert.Empty(t, repo.lastFilter.Source)

	_, err = svc.List(context.Background(), model.StatusPublished, model.SourceTMDB)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, repo.lastFilter.Status)
	assert.Equal(t, model.SourceTMDB, repo.lastFilter.Source)
}

func TestUpdateFilmPartialFields(t *testing.T) {
	repo := newFakeFilmRepo()
	svc := NewFilmService(repo)

	f, err := svc.Create(context.Background(), model.CreateFilmRequest{
		Title:       "Original Title",
		Description: "Original description",
		Evaluation:  2,
	})
	require.NoError(t, err)

	newTitle := "Updated Title"
	updated, err := svc.Update(context.Background(), f.ID, model.UpdateFilmRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Updated Title", updated.Title)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, 2, updated.Evaluation)
}
