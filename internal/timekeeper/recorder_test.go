package timekeeper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/meterhq/meter/internal/models"
)

func TestRecorderRecord(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	clock := newFakeClock()
	store := NewMockEntryStore(mockCtrl)
	recorder := NewRecorder(clock, store)

	store.EXPECT().
		SaveEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Entry) (models.Entry, error) {
			e.ID = 7
			return e, nil
		})

	entry, err := recorder.Record(context.Background(), "acme", "api work", 90*time.Minute)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if entry.ID != 7 {
		t.Fatalf("expected stored ID 7, got %d", entry.ID)
	}
	if entry.End == nil || !entry.End.Equal(clock.Now()) {
		t.Fatalf("expected entry to end now, got %v", entry.End)
	}
	if got := entry.End.Sub(entry.Start); got != 90*time.Minute {
		t.Fatalf("expected 90m interval, got %v", got)
	}
	if entry.DurationHours() != 1.5 {
		t.Fatalf("expected 1.5 billable hours, got %v", entry.DurationHours())
	}
	if entry.Billed {
		t.Fatalf("new entry must start unbilled")
	}
}

func TestRecorderRejectsNonPositiveDuration(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	store := NewMockEntryStore(mockCtrl)
	recorder := NewRecorder(newFakeClock(), store)

	// No SaveEntry expectation: the store must never be called.
	for _, d := range []time.Duration{0, -time.Minute} {
		if _, err := recorder.Record(context.Background(), "acme", "noop", d); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("duration %v: expected ErrInvalidDuration, got %v", d, err)
		}
	}
}

func TestRecorderPropagatesStoreError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	store := NewMockEntryStore(mockCtrl)
	recorder := NewRecorder(newFakeClock(), store)

	storeErr := fmt.Errorf("disk full")
	store.EXPECT().
		SaveEntry(gomock.Any(), gomock.Any()).
		Return(models.Entry{}, storeErr)

	if _, err := recorder.Record(context.Background(), "acme", "api work", time.Hour); !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestTimerToRecorderFlow(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	clock := newFakeClock()
	store := NewMockEntryStore(mockCtrl)
	store.EXPECT().
		SaveEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Entry) (models.Entry, error) {
			e.ID = 1
			return e, nil
		})

	timer := NewTimer(clock)
	recorder := NewRecorder(clock, store)

	if err := timer.Start("acme", "api work"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	clock.Advance(45 * time.Minute)
	elapsed, err := timer.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	entry, err := recorder.Record(context.Background(), "acme", "api work", elapsed)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if entry.DurationHours() != 0.75 {
		t.Fatalf("expected 0.75 hours, got %v", entry.DurationHours())
	}
}
