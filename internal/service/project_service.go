package service

import (
	"context"
	"strings"

	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/socket"
	"github.com/adverx/adverx-backend/internal/types"
)

// ============================================
// Project Service
// ============================================

// ProjectPatch carries a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Title       *string
	Description *string
	Category    *string
	ImageURL    *string
	Images      *[]string
	VideoURL    *string
	Date        *string
	Featured    *bool
	Tags        *[]string
}

type ProjectService interface {
	// List returns the portfolio, optionally filtered by category and the
	// featured flag.
	List(ctx context.Context, category string, featured *bool) []repository.Project
	GetByID(ctx context.Context, id string) (*repository.Project, error)
	Create(ctx context.Context, project repository.Project) (*repository.Project, error)
	// Update applies a partial update. A missing id is a silent no-op.
	Update(ctx context.Context, id string, patch ProjectPatch) error
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	projects    repository.ProjectRepository
	broadcaster *socket.Broadcaster
}

func NewProjectService(projects repository.ProjectRepository, broadcaster *socket.Broadcaster) ProjectService {
	return &projectService{projects: projects, broadcaster: broadcaster}
}

func (s *projectService) List(ctx context.Context, category string, featured *bool) []repository.Project {
	projects := s.projects.List(ctx)
	if category == "" && featured == nil {
		return projects
	}

	filtered := make([]repository.Project, 0, len(projects))
	for _, p := range projects {
		if category != "" && p.Category != category {
			continue
		}
		if featured != nil && p.Featured != *featured {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func (s *projectService) GetByID(ctx context.Context, id string) (*repository.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *projectService) Create(ctx context.Context, project repository.Project) (*repository.Project, error) {
	if strings.TrimSpace(project.Title) == "" || !types.IsValidCategory(project.Category) {
		return nil, ErrInvalidInput
	}

	id, err := s.projects.Create(ctx, func(id string) repository.Project {
		project.ID = id
		return project
	})
	if err != nil {
		return nil, err
	}
	project.ID = id

	if s.broadcaster != nil {
		s.broadcaster.BroadcastProjectCreated(projectPayload(&project))
	}
	return &project, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch ProjectPatch) error {
	if patch.Category != nil && !types.IsValidCategory(*patch.Category) {
		return ErrInvalidInput
	}

	var updated *repository.Project
	err := s.projects.Update(ctx, id, func(p *repository.Project) {
		applyProjectPatch(p, patch)
		copied := *p
		updated = &copied
	})
	if err != nil {
		return err
	}

	if updated != nil && s.broadcaster != nil {
		s.broadcaster.BroadcastProjectUpdated(projectPayload(updated))
	}
	return nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastProjectDeleted(id)
	}
	return nil
}

func applyProjectPatch(p *repository.Project, patch ProjectPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.VideoURL != nil {
		p.VideoURL = *patch.VideoURL
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
}

func projectPayload(p *repository.Project) map[string]interface{} {
	return map[string]interface{}{
		"id":       p.ID,
		"title":    p.Title,
		"category": p.Category,
		"featured": p.Featured,
	}
}
