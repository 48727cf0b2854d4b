package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/meterhq/meter/internal/models"
)

// SyncProjectsFromEntries inserts a project row for every project name that
// appears in entries but not yet in projects. Run at startup so rates can be
// attached to projects created implicitly by `meter start`.
func (d *Database) SyncProjectsFromEntries(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO projects (name)
		SELECT DISTINCT project FROM entries`)
	return wrapProjectErr("sync", 0, err)
}

// ListProjects returns all projects ordered by name.
func (d *Database) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT id, name, rate, currency FROM projects ORDER BY name ASC")
	if err != nil {
		return nil, wrapProjectErr("list", 0, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, wrapProjectErr("list", 0, err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProjectByName returns the project with the given name, or ErrNotFound.
func (d *Database) GetProjectByName(ctx context.Context, name string) (models.Project, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT id, name, rate, currency FROM projects WHERE name = ?", name)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, wrapProjectErr("get", 0, ErrNotFound)
	}
	if err != nil {
		return models.Project{}, wrapProjectErr("get", 0, err)
	}
	return p, nil
}

// SetProjectRate upserts the hourly rate and currency for a project. A nil
// rate clears it.
func (d *Database) SetProjectRate(ctx context.Context, name string, rate *float64, currency *string) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO projects (name, rate, currency) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET rate = excluded.rate, currency = excluded.currency`,
		name, rateArg(rate), currencyArg(currency))
	return wrapProjectErr("set rate", 0, err)
}

// ProjectRates returns a name-to-project map for invoice rate lookups.
func (d *Database) ProjectRates(ctx context.Context) (map[string]models.Project, error) {
	projects, err := d.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	rates := make(map[string]models.Project, len(projects))
	for _, p := range projects {
		rates[p.Name] = p
	}
	return rates, nil
}

func scanProject(row interface{ Scan(...interface{}) error }) (models.Project, error) {
	var (
		p        models.Project
		rate     sql.NullFloat64
		currency sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &rate, &currency); err != nil {
		return models.Project{}, err
	}
	if rate.Valid {
		p.Rate = &rate.Float64
	}
	if currency.Valid && currency.String != "" {
		p.Currency = &currency.String
	}
	return p, nil
}

func rateArg(rate *float64) interface{} {
	if rate == nil {
		return nil
	}
	return *rate
}

func currencyArg(currency *string) interface{} {
	if currency == nil || *currency == "" {
		return nil
	}
	return *currency
}
