package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_backend/internal/models"
)

// ResidentRepository defines the interface for resident-related database operations.
type ResidentRepository interface {
	CreateResident(executor SQLExecutor, resident *models.Resident) error
	GetResidentByID(id string) (*models.Resident, error)
	GetResidents(limit int) ([]models.Resident, error)
	UpdateResident(executor SQLExecutor, resident *models.Resident) error
	DeleteResident(executor SQLExecutor, id string) error
}

type residentRepository struct {
	db *sql.DB
}

// NewResidentRepository creates a new instance of ResidentRepository.
func NewResidentRepository(db *sql.DB) ResidentRepository {
	return &residentRepository{db: db}
}

// CreateResident inserts a new resident. The caller is responsible for having
// generated the id.
func (r *residentRepository) CreateResident(executor SQLExecutor, resident *models.Resident) error {
	query := `INSERT INTO residents (id, name) VALUES ($1, $2)`

	if _, err := executor.Exec(query, resident.ID, resident.Name); err != nil {
		return fmt.Errorf("%w: creating resident: %v", ErrDatabaseError, err)
	}
	return nil
}

// GetResidentByID retrieves a resident by their ID.
func (r *residentRepository) GetResidentByID(id string) (*models.Resident, error) {
	resident := &models.Resident{}
	query := `SELECT id, name FROM residents WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(&resident.ID, &resident.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting resident by ID %s: %v", ErrDatabaseError, id, err)
	}
	return resident, nil
}

// GetResidents retrieves residents in natural storage order, capped at limit.
func (r *residentRepository) GetResidents(limit int) ([]models.Resident, error) {
	residents := []models.Resident{}
	query := `SELECT id, name FROM residents LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying residents: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var resident models.Resident
		if err := rows.Scan(&resident.ID, &resident.Name); err != nil {
			return nil, fmt.Errorf("%w: scanning resident: %v", ErrDatabaseError, err)
		}
		residents = append(residents, resident)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating resident rows: %v", ErrDatabaseError, err)
	}
	return residents, nil
}

// UpdateResident replaces the mutable fields of an existing resident.
func (r *residentRepository) UpdateResident(executor SQLExecutor, resident *models.Resident) error {
	query := `UPDATE residents SET name = $1 WHERE id = $2`

	result, err := executor.Exec(query, resident.Name, resident.ID)
	if err != nil {
		return fmt.Errorf("%w: updating resident ID %s: %v", ErrDatabaseError, resident.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating resident ID %s: %v", ErrDatabaseError, resident.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteResident removes a resident. Deleting the resident's items is a
// separate call on the item repository; the two are intentionally not atomic.
func (r *residentRepository) DeleteResident(executor SQLExecutor, id string) error {
	query := `DELETE FROM residents WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting resident ID %s: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting resident ID %s: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
