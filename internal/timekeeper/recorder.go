package timekeeper

import (
	"context"
	"fmt"
	"time"

	"github.com/meterhq/meter/internal/models"
)

// EntryStore is the persistence port the recorder writes through.
//
//go:generate mockgen -source=recorder.go -destination=mock_store_test.go -package=timekeeper
type EntryStore interface {
	SaveEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
}

// Recorder converts a finished timer session into a persisted time entry.
// It does not retry or cache; storage failures surface to the caller.
type Recorder struct {
	clock Clock
	store EntryStore
}

// NewRecorder returns a recorder writing through the given store.
func NewRecorder(clock Clock, store EntryStore) *Recorder {
	return &Recorder{clock: clock, store: store}
}

// Record persists a finished session of the given elapsed duration. The entry
// ends now and starts elapsed ago, so the stored interval reproduces the
// billable duration. Zero-length sessions are rejected with ErrInvalidDuration
// and never reach the store.
func (r *Recorder) Record(ctx context.Context, project, description string, elapsed time.Duration) (models.Entry, error) {
	if elapsed <= 0 {
		return models.Entry{}, fmt.Errorf("record entry for %q: %w", project, ErrInvalidDuration)
	}
	end := r.clock.Now()
	start := end.Add(-elapsed)
	entry := models.Entry{
		Project:     project,
		Description: description,
		Start:       start,
		End:         &end,
	}
	saved, err := r.store.SaveEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("record entry for %q: %w", project, err)
	}
	return saved, nil
}
