package dtos

import (
	"time"

	"github.com/google/uuid"
)

// ReseedRun records one admin catalog replacement.
type ReseedRun struct {
	ID              uuid.UUID  `json:"id"`
	Status          string     `json:"status"` // pending, processing, completed, failed
	Mode            string     `json:"mode"`   // literal, derive
	Atomic          bool       `json:"atomic"`
	StartedBy       string     `json:"started_by"`
	Total           int        `json:"total"`
	Deleted         int64      `json:"deleted"`
	Created         int        `json:"created"`
	CreatedProducts []string   `json:"created_products"`
	Error           string     `json:"error,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
}

// RunStatus constants
const (
	RunStatusPending    = "pending"
	RunStatusProcessing = "processing"
	RunStatusCompleted  = "completed"
	RunStatusFailed     = "failed"
)

// ReseedResponse is the body of POST /api/admin/catalog/reseed.
type ReseedResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Stats   *ReseedStats `json:"stats,omitempty"`
	Error   string       `json:"error,omitempty"`
	RunID   *uuid.UUID   `json:"run_id,omitempty"`
}

type ReseedStats struct {
	Deleted int64 `json:"deleted"`
	Created int   `json:"created"`
}
