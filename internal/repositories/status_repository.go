package repositories

import (
	"database/sql"
	"fmt"

	"inventory_backend/internal/models"
)

// StatusCheckRepository defines the interface for the legacy status-check records.
type StatusCheckRepository interface {
	CreateStatusCheck(executor SQLExecutor, check *models.StatusCheck) error
	GetStatusChecks(limit int) ([]models.StatusCheck, error)
}

type statusCheckRepository struct {
	db *sql.DB
}

// NewStatusCheckRepository creates a new instance of StatusCheckRepository.
func NewStatusCheckRepository(db *sql.DB) StatusCheckRepository {
	return &statusCheckRepository{db: db}
}

func (r *statusCheckRepository) CreateStatusCheck(executor SQLExecutor, check *models.StatusCheck) error {
	query := `INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`

	if _, err := executor.Exec(query, check.ID, check.ClientName, check.Timestamp); err != nil {
		return fmt.Errorf("%w: creating status check: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *statusCheckRepository) GetStatusChecks(limit int) ([]models.StatusCheck, error) {
	checks := []models.StatusCheck{}
	query := `SELECT id, client_name, timestamp FROM status_checks LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying status checks: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var check models.StatusCheck
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: scanning status check: %v", ErrDatabaseError, err)
		}
		checks = append(checks, check)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating status check rows: %v", ErrDatabaseError, err)
	}
	return checks, nil
}
