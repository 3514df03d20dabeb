package cron

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/adverx/adverx-backend/internal/service"
)

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron     *cron.Cron
	services *service.Services
}

// NewScheduler creates a new scheduler
func NewScheduler(services *service.Services) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		services: services,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Hourly - drop a stale session record so an expired login does not
	// linger in storage between admin visits.
	s.cron.AddFunc("0 * * * *", func() {
		log.Println("[Cron] Running expired session purge...")
		if err := s.services.Auth.PurgeExpired(context.Background()); err != nil {
			log.Printf("[Cron] Session purge failed: %v", err)
		}
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}
