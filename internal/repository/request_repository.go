package repository

import (
	"context"
	"time"

	"github.com/adverx/adverx-backend/internal/kv"
	"github.com/adverx/adverx-backend/internal/types"
)

// CustomRequest is one custom project request built with the price
// calculator on the public site.
type CustomRequest struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	ProjectDuration   int       `json:"projectDuration"` // days
	QualityLevel      string    `json:"qualityLevel"`    // standard | premium | cinematic
	SoundEquipment    bool      `json:"soundEquipment"`
	Stabilizers       bool      `json:"stabilizers"`
	Lighting          bool      `json:"lighting"`
	Drones            bool      `json:"drones"`
	AdditionalCameras int       `json:"additionalCameras"`
	Services          []string  `json:"services"`
	Message           string    `json:"message"`
	EstimatedPrice    int64     `json:"estimatedPrice"`
	Status            string    `json:"status"` // pending | reviewed | quoted | accepted
	CreatedAt         time.Time `json:"createdAt"`
}

func (r CustomRequest) recordID() string { return r.ID }

type RequestRepository interface {
	List(ctx context.Context) []CustomRequest
	FindByID(ctx context.Context, id string) (*CustomRequest, error)
	Create(ctx context.Context, build func(id string) CustomRequest) (string, error)
	Update(ctx context.Context, id string, mutate func(*CustomRequest)) error
	// MarkAllReviewed flips every pending request to reviewed in one write.
	MarkAllReviewed(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type kvRequestRepository struct {
	col *collection[CustomRequest]
}

// NewRequestRepository creates a custom request store over the given
// backend. New requests are prepended so the most recent appears first.
func NewRequestRepository(store kv.Store) RequestRepository {
	return &kvRequestRepository{
		col: newCollection[CustomRequest](store, KeyCustomRequests, nil, true),
	}
}

func (r *kvRequestRepository) List(ctx context.Context) []CustomRequest {
	return r.col.load(ctx)
}

func (r *kvRequestRepository) FindByID(ctx context.Context, id string) (*CustomRequest, error) {
	return r.col.find(ctx, id)
}

func (r *kvRequestRepository) Create(ctx context.Context, build func(id string) CustomRequest) (string, error) {
	return r.col.add(ctx, build)
}

func (r *kvRequestRepository) Update(ctx context.Context, id string, mutate func(*CustomRequest)) error {
	return r.col.update(ctx, id, mutate)
}

func (r *kvRequestRepository) MarkAllReviewed(ctx context.Context) error {
	return r.col.updateEach(ctx, func(req *CustomRequest) bool {
		if req.Status != types.RequestPending {
			return false
		}
		req.Status = types.RequestReviewed
		return true
	})
}

func (r *kvRequestRepository) Delete(ctx context.Context, id string) error {
	return r.col.remove(ctx, id)
}
