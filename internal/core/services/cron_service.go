package services

import (
	"context"
	"log"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	eventRepo        repositories.EventRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	scheduler        *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(
	eventRepo repositories.EventRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *CronService {
	return &CronService{
		eventRepo:        eventRepo,
		refreshTokenRepo: refreshTokenRepo,
		scheduler:        cron.New(),
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() error {
	// Close ended events shortly after midnight
	if _, err := s.scheduler.AddFunc("10 0 * * *", s.closeEndedEvents); err != nil {
		return err
	}

	// Purge expired refresh tokens hourly
	if _, err := s.scheduler.AddFunc("@hourly", s.purgeExpiredTokens); err != nil {
		return err
	}

	s.scheduler.Start()
	log.Println("✅ Cron jobs started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
	log.Println("✅ Cron jobs stopped")
}

// closeEndedEvents moves OPEN events whose end date has passed to CLOSED
func (s *CronService) closeEndedEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	events, err := s.eventRepo.ListEndedWithStatus(ctx, time.Now(), models.EventStatusOpen)
	if err != nil {
		log.Printf("⚠️ Close ended events failed: %v", err)
		return
	}

	for _, event := range events {
		event.Status = models.EventStatusClosed
		if err := s.eventRepo.Update(ctx, event); err != nil {
			log.Printf("⚠️ Failed to close event %d: %v", event.ID, err)
			continue
		}
		log.Printf("✅ Event closed: %s (ID: %d)", event.Name, event.ID)
	}
}

// purgeExpiredTokens deletes refresh tokens past their expiry
func (s *CronService) purgeExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("⚠️ Purge expired tokens failed: %v", err)
	}
}
