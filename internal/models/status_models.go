package models

import "time"

// StatusCheck is the legacy health-check record, kept for compatibility with
// older clients. It is unrelated to the inventory domain.
type StatusCheck struct {
	ID         string    `json:"id" db:"id"`
	ClientName string    `json:"client_name" db:"client_name" binding:"required"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
}
