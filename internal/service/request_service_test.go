package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adverx/adverx-backend/internal/config"
	"github.com/adverx/adverx-backend/internal/kv"
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/types"
)

func newRequestFixture() (RequestService, repository.RequestRepository) {
	repo := repository.NewRequestRepository(kv.NewMemoryStore())
	svc := NewRequestService(&config.Config{}, repo, nil, nil, nil)
	return svc, repo
}

func validRequestInput() RequestInput {
	return RequestInput{
		Name:            "Ada",
		Email:           "ada@example.com",
		Phone:           "+49 30 1234567",
		ProjectDuration: 2,
		QualityLevel:    types.QualityPremium,
		Drones:          true,
		Services:        []string{"editing", "color-grading"},
		Message:         "Corporate image film.",
	}
}

func TestRequestSubmitPricesServerSide(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRequestFixture()

	in := validRequestInput()
	req, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, types.RequestPending, req.Status)

	want, err := Estimate(EstimateInput{
		ProjectDuration:   in.ProjectDuration,
		QualityLevel:      in.QualityLevel,
		SoundEquipment:    in.SoundEquipment,
		Stabilizers:       in.Stabilizers,
		Lighting:          in.Lighting,
		Drones:            in.Drones,
		AdditionalCameras: in.AdditionalCameras,
		Services:          in.Services,
	})
	require.NoError(t, err)
	assert.Equal(t, want, req.EstimatedPrice)

	stored, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, want, stored.EstimatedPrice)
}

func TestRequestSubmitRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newRequestFixture()

	in := validRequestInput()
	in.Name = ""
	_, err := svc.Submit(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = validRequestInput()
	in.QualityLevel = "imax"
	_, err = svc.Submit(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = validRequestInput()
	in.ProjectDuration = 0
	_, err = svc.Submit(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRequestListForAdminMarksReviewed(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRequestFixture()

	req, err := svc.Submit(ctx, validRequestInput())
	require.NoError(t, err)

	listed, err := svc.ListForAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, types.RequestPending, listed[0].Status)

	stored, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RequestReviewed, stored.Status)
}

func TestRequestUpdateStatusForwardOnly(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRequestFixture()

	req, err := svc.Submit(ctx, validRequestInput())
	require.NoError(t, err)

	// Skipping straight ahead is allowed, going back is not.
	require.NoError(t, svc.UpdateStatus(ctx, req.ID, types.RequestQuoted))
	err = svc.UpdateStatus(ctx, req.ID, types.RequestPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	require.NoError(t, svc.UpdateStatus(ctx, req.ID, types.RequestAccepted))

	stored, err := repo.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, types.RequestAccepted, stored.Status)

	// Unknown status and missing id.
	assert.ErrorIs(t, svc.UpdateStatus(ctx, req.ID, "cancelled"), ErrInvalidInput)
	assert.NoError(t, svc.UpdateStatus(ctx, "no-such-id", types.RequestQuoted))
}

func TestRequestDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newRequestFixture()

	req, err := svc.Submit(ctx, validRequestInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, req.ID))
	_, err = repo.FindByID(ctx, req.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
