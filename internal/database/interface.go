package database

import (
	"context"
	"time"

	"github.com/meterhq/meter/internal/models"
)

// EntryRepository defines entry-related database operations.
type EntryRepository interface {
	SaveEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	StartEntry(ctx context.Context, project, description string) (models.Entry, error)
	ActiveEntry(ctx context.Context) (*models.Entry, error)
	StopActiveEntry(ctx context.Context) (models.Entry, error)
	GetEntry(ctx context.Context, id int64) (models.Entry, error)
	ListEntries(ctx context.Context, billed *bool) ([]models.Entry, error)
	ListEntriesByDateRange(ctx context.Context, start, end time.Time, billed *bool) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, entry models.Entry) error
	DeleteEntry(ctx context.Context, id int64) error
	SetEntryBilled(ctx context.Context, id int64, billed bool) error
	SetAllEntriesBilled(ctx context.Context, billed bool) (int64, error)
}

// ProjectRepository defines project-related database operations.
type ProjectRepository interface {
	SyncProjectsFromEntries(ctx context.Context) error
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByName(ctx context.Context, name string) (models.Project, error)
	SetProjectRate(ctx context.Context, name string, rate *float64, currency *string) error
	ProjectRates(ctx context.Context) (map[string]models.Project, error)
}

// ClientRepository defines client-related database operations.
type ClientRepository interface {
	AddClient(ctx context.Context, c models.Client) (int64, error)
	UpdateClient(ctx context.Context, c models.Client) error
	DeleteClient(ctx context.Context, id int64) error
	GetClient(ctx context.Context, id int64) (models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
}

// SettingsRepository defines settings-related database operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	GetPomodoroConfig(ctx context.Context) models.PomodoroConfig
	SetPomodoroConfig(ctx context.Context, cfg models.PomodoroConfig) error
	SetPomodoroEnabled(ctx context.Context, enabled bool) error
	GetInvoiceSettings(ctx context.Context) models.InvoiceSettings
	SetInvoiceSettings(ctx context.Context, s models.InvoiceSettings) error
	NextInvoiceNumber(ctx context.Context) (int64, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	EntryRepository
	ProjectRepository
	ClientRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
