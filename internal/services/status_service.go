package services

import (
	"database/sql"
	"fmt"
	"time"

	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Status Check DTOs ---
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// StatusCheckService covers the legacy health-check records kept for older clients.
type StatusCheckService interface {
	CreateStatusCheck(req CreateStatusCheckRequest) (*models.StatusCheck, error)
	GetStatusChecks() ([]models.StatusCheck, error)
}

type statusCheckService struct {
	statusRepo repositories.StatusCheckRepository
	db         *sql.DB
	now        func() time.Time
}

// NewStatusCheckService creates a new instance of StatusCheckService.
func NewStatusCheckService(repo repositories.StatusCheckRepository, db *sql.DB) StatusCheckService {
	return &statusCheckService{
		statusRepo: repo,
		db:         db,
		now:        time.Now,
	}
}

func (s *statusCheckService) CreateStatusCheck(req CreateStatusCheckRequest) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  s.now().UTC(),
	}

	if err := s.statusRepo.CreateStatusCheck(s.db, check); err != nil {
		return nil, fmt.Errorf("failed to create status check in repository: %w", err)
	}
	return check, nil
}

func (s *statusCheckService) GetStatusChecks() ([]models.StatusCheck, error) {
	checks, err := s.statusRepo.GetStatusChecks(listCap)
	if err != nil {
		return nil, fmt.Errorf("failed to get status checks: %w", err)
	}
	return checks, nil
}
