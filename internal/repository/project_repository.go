package repository

import (
	"context"

	"github.com/adverx/adverx-backend/internal/kv"
)

// Project is one portfolio entry on the public site.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"` // photography | videography
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images,omitempty"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Date        string   `json:"date"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
}

func (p Project) recordID() string { return p.ID }

type ProjectRepository interface {
	List(ctx context.Context) []Project
	FindByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, build func(id string) Project) (string, error)
	Update(ctx context.Context, id string, mutate func(*Project)) error
	Delete(ctx context.Context, id string) error
}

type kvProjectRepository struct {
	col *collection[Project]
}

// NewProjectRepository creates a project store over the given backend,
// seeded with the default portfolio when storage is empty. New projects are
// appended so the portfolio keeps its curated order.
func NewProjectRepository(store kv.Store, seed []Project) ProjectRepository {
	return &kvProjectRepository{
		col: newCollection(store, KeyProjects, seed, false),
	}
}

func (r *kvProjectRepository) List(ctx context.Context) []Project {
	return r.col.load(ctx)
}

func (r *kvProjectRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	return r.col.find(ctx, id)
}

func (r *kvProjectRepository) Create(ctx context.Context, build func(id string) Project) (string, error) {
	return r.col.add(ctx, build)
}

func (r *kvProjectRepository) Update(ctx context.Context, id string, mutate func(*Project)) error {
	return r.col.update(ctx, id, mutate)
}

func (r *kvProjectRepository) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
