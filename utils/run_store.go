package utils

import (
	"sort"
	"sync"
	"time"

	"fruitbasket-backend/dtos"

	"github.com/google/uuid"
)

// runRetention is how long finished reseed runs stay queryable.
const runRetention = 24 * time.Hour

// RunStore keeps reseed runs in memory. Runs are lost on restart.
type RunStore struct {
	runs map[uuid.UUID]*dtos.ReseedRun
	mu   sync.RWMutex
}

func NewRunStore() *RunStore {
	return &RunStore{runs: make(map[uuid.UUID]*dtos.ReseedRun)}
}

// CleanupOldRuns removes completed/failed runs older than the retention window.
func (rs *RunStore) CleanupOldRuns() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	cutoff := time.Now().Add(-runRetention)
	for id, run := range rs.runs {
		if run.CompletedAt != nil && run.CompletedAt.Before(cutoff) {
			delete(rs.runs, id)
		}
	}
}

// CreateRun registers a new pending run.
func (rs *RunStore) CreateRun(total int, mode string, atomic bool, startedBy string) dtos.ReseedRun {
	// Clean up old runs on each new creation
	rs.CleanupOldRuns()

	rs.mu.Lock()
	defer rs.mu.Unlock()

	run := &dtos.ReseedRun{
		ID:              uuid.New(),
		Status:          dtos.RunStatusPending,
		Mode:            mode,
		Atomic:          atomic,
		StartedBy:       startedBy,
		Total:           total,
		CreatedProducts: []string{},
		StartedAt:       time.Now(),
	}

	rs.runs[run.ID] = run
	return snapshot(run)
}

// GetRun returns a copy of the run so callers never share state with the store.
func (rs *RunStore) GetRun(id uuid.UUID) (dtos.ReseedRun, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	run, exists := rs.runs[id]
	if !exists {
		return dtos.ReseedRun{}, false
	}
	return snapshot(run), true
}

// ListRuns returns every retained run, newest first.
func (rs *RunStore) ListRuns() []dtos.ReseedRun {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	runs := make([]dtos.ReseedRun, 0, len(rs.runs))
	for _, run := range rs.runs {
		runs = append(runs, snapshot(run))
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs
}

// SetProcessing marks run as processing
func (rs *RunStore) SetProcessing(id uuid.UUID) {
	rs.update(id, func(run *dtos.ReseedRun) {
		run.Status = dtos.RunStatusProcessing
	})
}

func (rs *RunStore) SetDeleted(id uuid.UUID, n int64) {
	rs.update(id, func(run *dtos.ReseedRun) {
		run.Deleted = n
	})
}

func (rs *RunStore) AddCreated(id uuid.UUID, product string) {
	rs.update(id, func(run *dtos.ReseedRun) {
		run.Created++
		run.CreatedProducts = append(run.CreatedProducts, product)
	})
}

// CompleteRun marks a run as finished. A non-nil err marks it failed.
func (rs *RunStore) CompleteRun(id uuid.UUID, err error) {
	rs.update(id, func(run *dtos.ReseedRun) {
		run.Status = dtos.RunStatusCompleted
		if err != nil {
			run.Status = dtos.RunStatusFailed
			run.Error = err.Error()
		}
		now := time.Now()
		run.CompletedAt = &now
	})
}

func (rs *RunStore) update(id uuid.UUID, fn func(*dtos.ReseedRun)) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if run, exists := rs.runs[id]; exists {
		fn(run)
	}
}

func snapshot(run *dtos.ReseedRun) dtos.ReseedRun {
	cp := *run
	cp.CreatedProducts = append([]string(nil), run.CreatedProducts...)
	if run.CompletedAt != nil {
		t := *run.CompletedAt
		cp.CompletedAt = &t
	}
	return cp
}
