package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adverx/adverx-backend/internal/kv"
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/types"
)

func newProjectFixture(seed []repository.Project) (ProjectService, repository.ProjectRepository) {
	repo := repository.NewProjectRepository(kv.NewMemoryStore(), seed)
	return NewProjectService(repo, nil), repo
}

func portfolioSeed() []repository.Project {
	return []repository.Project{
		{ID: "1", Title: "Mountain Film", Category: types.CategoryVideography, Featured: true},
		{ID: "2", Title: "Studio Portraits", Category: types.CategoryPhotography, Featured: true},
		{ID: "3", Title: "Street Series", Category: types.CategoryPhotography},
	}
}

func TestProjectListFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectFixture(portfolioSeed())

	assert.Len(t, svc.List(ctx, "", nil), 3)
	assert.Len(t, svc.List(ctx, types.CategoryPhotography, nil), 2)

	featured := true
	assert.Len(t, svc.List(ctx, "", &featured), 2)
	assert.Len(t, svc.List(ctx, types.CategoryPhotography, &featured), 1)

	notFeatured := false
	got := svc.List(ctx, "", &notFeatured)
	require.Len(t, got, 1)
	assert.Equal(t, "Street Series", got[0].Title)
}

func TestProjectCreate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectFixture(nil)

	created, err := svc.Create(ctx, repository.Project{
		Title:    "Drone Reel",
		Category: types.CategoryVideography,
		Tags:     []string{"aerial"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	stored, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drone Reel", stored.Title)
}

func TestProjectCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newProjectFixture(nil)

	_, err := svc.Create(ctx, repository.Project{Title: "   ", Category: types.CategoryVideography})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, repository.Project{Title: "Untitled", Category: "sculpture"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProjectUpdateAppliesPatch(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectFixture(portfolioSeed())

	title := "Mountain Film (Director's Cut)"
	featured := false
	tags := []string{"alpine", "4k"}
	err := svc.Update(ctx, "1", ProjectPatch{Title: &title, Featured: &featured, Tags: &tags})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, title, stored.Title)
	assert.False(t, stored.Featured)
	assert.Equal(t, tags, stored.Tags)
	// Untouched fields survive.
	assert.Equal(t, types.CategoryVideography, stored.Category)
}

func TestProjectUpdateEdgeCases(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectFixture(portfolioSeed())

	bad := "sculpture"
	err := svc.Update(ctx, "1", ProjectPatch{Category: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Missing id is a silent no-op.
	title := "Ghost"
	require.NoError(t, svc.Update(ctx, "no-such-id", ProjectPatch{Title: &title}))
	assert.Len(t, repo.List(ctx), 3)
}

func TestProjectDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newProjectFixture(portfolioSeed())

	require.NoError(t, svc.Delete(ctx, "2"))
	_, err := repo.FindByID(ctx, "2")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "2"))
	assert.Len(t, repo.List(ctx), 2)
}
