package services

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_backend/internal/models"
	"inventory_backend/internal/repositories"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Resident ---
var (
	ErrResidentNotFound = errors.New("resident not found")
)

// listCap bounds every list query; there is no pagination beyond it.
const listCap = 1000

// --- Resident DTOs ---
type CreateResidentRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateResidentRequest struct {
	Name string `json:"name" binding:"required"`
}

// --- ResidentService Interface ---
type ResidentService interface {
	CreateResident(req CreateResidentRequest) (*models.Resident, error)
	GetResidents() ([]models.Resident, error)
	UpdateResident(residentID string, req UpdateResidentRequest) (*models.Resident, error)
	DeleteResident(residentID string) error
}

// --- residentService Implementation ---
type residentService struct {
	residentRepo repositories.ResidentRepository
	itemRepo     repositories.ItemRepository
	db           *sql.DB
}

// NewResidentService creates a new instance of ResidentService. The item
// repository is needed for the cascading delete of a resident's items.
func NewResidentService(residentRepo repositories.ResidentRepository, itemRepo repositories.ItemRepository, db *sql.DB) ResidentService {
	return &residentService{
		residentRepo: residentRepo,
		itemRepo:     itemRepo,
		db:           db,
	}
}

func (s *residentService) CreateResident(req CreateResidentRequest) (*models.Resident, error) {
	resident := &models.Resident{
		ID:   uuid.NewString(),
		Name: req.Name,
	}

	if err := s.residentRepo.CreateResident(s.db, resident); err != nil {
		return nil, fmt.Errorf("failed to create resident in repository: %w", err)
	}
	return resident, nil
}

func (s *residentService) GetResidents() ([]models.Resident, error) {
	residents, err := s.residentRepo.GetResidents(listCap)
	if err != nil {
		return nil, fmt.Errorf("failed to get residents: %w", err)
	}
	return residents, nil
}

func (s *residentService) UpdateResident(residentID string, req UpdateResidentRequest) (*models.Resident, error) {
	resident, err := s.residentRepo.GetResidentByID(residentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrResidentNotFound
		}
		return nil, fmt.Errorf("failed to find resident for update: %w", err)
	}

	resident.Name = req.Name
	if err := s.residentRepo.UpdateResident(s.db, resident); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrResidentNotFound
		}
		return nil, fmt.Errorf("failed to update resident in repository: %w", err)
	}
	return s.residentRepo.GetResidentByID(residentID)
}

// DeleteResident removes the resident and then every item the resident owned.
// The two deletions are separate statements with no surrounding transaction;
// if the second fails the resident is already gone.
func (s *residentService) DeleteResident(residentID string) error {
	if err := s.residentRepo.DeleteResident(s.db, residentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrResidentNotFound
		}
		return fmt.Errorf("failed to delete resident in repository: %w", err)
	}

	if _, err := s.itemRepo.DeleteItemsByResident(s.db, residentID); err != nil {
		return fmt.Errorf("failed to delete items of resident %s: %w", residentID, err)
	}
	return nil
}
