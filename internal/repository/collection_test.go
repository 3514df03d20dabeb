package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adverx/adverx-backend/internal/kv"
	"github.com/adverx/adverx-backend/internal/types"
)

func seedProjects() []Project {
	return []Project{
		{ID: "1", Title: "Mountain Film", Category: types.CategoryVideography, Featured: true},
		{ID: "2", Title: "Studio Portraits", Category: types.CategoryPhotography},
	}
}

func TestProjectRepositorySeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewProjectRepository(store, seedProjects())

	projects := repo.List(ctx)
	require.Len(t, projects, 2)
	assert.Equal(t, "Mountain Film", projects[0].Title)

	// The seed is persisted on first read, not just returned.
	data, err := store.Get(ctx, KeyProjects)
	require.NoError(t, err)
	var stored []Project
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 2)
}

func TestProjectRepositoryReseedsMalformedValue(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyProjects, []byte(`[{"id": "1", "title":`)))

	repo := NewProjectRepository(store, seedProjects())
	projects := repo.List(ctx)
	require.Len(t, projects, 2)
	assert.Equal(t, "1", projects[0].ID)

	data, err := store.Get(ctx, KeyProjects)
	require.NoError(t, err)
	var stored []Project
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 2)
}

func TestProjectRepositoryCreateAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(kv.NewMemoryStore(), seedProjects())

	id, err := repo.Create(ctx, func(id string) Project {
		return Project{ID: id, Title: "Drone Reel", Category: types.CategoryVideography}
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	projects := repo.List(ctx)
	require.Len(t, projects, 3)
	assert.Equal(t, id, projects[2].ID, "new projects go to the end of the portfolio")
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(kv.NewMemoryStore())

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		id, err := repo.Create(ctx, func(id string) ContactMessage {
			return ContactMessage{ID: id, Name: "a", Email: "a@b.c", Message: "hi", Status: types.MessageUnread}
		})
		require.NoError(t, err)
		assert.False(t, seen[id], "id %q assigned twice", id)
		seen[id] = true
	}
}

func TestMessageRepositoryCreatePrepends(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(kv.NewMemoryStore())

	_, err := repo.Create(ctx, func(id string) ContactMessage {
		return ContactMessage{ID: id, Name: "first"}
	})
	require.NoError(t, err)
	latest, err := repo.Create(ctx, func(id string) ContactMessage {
		return ContactMessage{ID: id, Name: "second"}
	})
	require.NoError(t, err)

	messages := repo.List(ctx)
	require.Len(t, messages, 2)
	assert.Equal(t, latest, messages[0].ID, "most recent message comes first")
}

func TestUpdateMissingIDIsSilent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewProjectRepository(store, seedProjects())
	repo.List(ctx) // persist the seed

	before, err := store.Get(ctx, KeyProjects)
	require.NoError(t, err)

	mutated := false
	err = repo.Update(ctx, "no-such-id", func(p *Project) { mutated = true })
	require.NoError(t, err)
	assert.False(t, mutated)

	after, err := store.Get(ctx, KeyProjects)
	require.NoError(t, err)
	assert.Equal(t, before, after, "collection persisted unchanged")
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(kv.NewMemoryStore(), seedProjects())

	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "never-existed"))

	assert.Len(t, repo.List(ctx), 1)
}

func TestFindByIDMissingReturnsErrNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(kv.NewMemoryStore(), seedProjects())

	found, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Studio Portraits", found.Title)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkAllReadFlipsOnlyUnread(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(kv.NewMemoryStore())

	var ids []string
	for _, status := range []string{types.MessageUnread, types.MessageReplied, types.MessageUnread} {
		id, err := repo.Create(ctx, func(id string) ContactMessage {
			return ContactMessage{ID: id, Name: "n", Status: status}
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, repo.MarkAllRead(ctx))

	for _, m := range repo.List(ctx) {
		switch m.ID {
		case ids[1]:
			assert.Equal(t, types.MessageReplied, m.Status, "replied stays replied")
		default:
			assert.Equal(t, types.MessageRead, m.Status)
		}
	}
}

func TestMarkAllReviewedFlipsOnlyPending(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(kv.NewMemoryStore())

	pendingID, err := repo.Create(ctx, func(id string) CustomRequest {
		return CustomRequest{ID: id, Name: "n", Status: types.RequestPending}
	})
	require.NoError(t, err)
	quotedID, err := repo.Create(ctx, func(id string) CustomRequest {
		return CustomRequest{ID: id, Name: "n", Status: types.RequestQuoted}
	})
	require.NoError(t, err)

	require.NoError(t, repo.MarkAllReviewed(ctx))

	for _, r := range repo.List(ctx) {
		switch r.ID {
		case pendingID:
			assert.Equal(t, types.RequestReviewed, r.Status)
		case quotedID:
			assert.Equal(t, types.RequestQuoted, r.Status)
		}
	}
}
