package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/meterhq/meter/internal/models"
)

const entryColumns = "id, project, description, start, end, billed"

func scanEntry(row interface{ Scan(...interface{}) error }) (models.Entry, error) {
	var (
		e        models.Entry
		startStr string
		endStr   sql.NullString
		billed   int64
	)
	if err := row.Scan(&e.ID, &e.Project, &e.Description, &startStr, &endStr, &billed); err != nil {
		return models.Entry{}, err
	}
	start, err := parseTime(startStr)
	if err != nil {
		return models.Entry{}, err
	}
	e.Start = start
	end, err := scanNullTime(endStr)
	if err != nil {
		return models.Entry{}, err
	}
	e.End = end
	e.Billed = billed != 0
	return e, nil
}

// SaveEntry inserts a finished or running entry and returns it with its
// assigned ID. Satisfies the recorder's EntryStore port.
func (d *Database) SaveEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	res, err := d.db.ExecContext(ctx,
		"INSERT INTO entries (project, description, start, end, billed) VALUES (?, ?, ?, ?, ?)",
		entry.Project, entry.Description, formatTime(entry.Start), nullableTime(entry.End), boolToInt(entry.Billed))
	if err != nil {
		return models.Entry{}, wrapEntryErr("insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Entry{}, wrapEntryErr("insert", 0, err)
	}
	entry.ID = id
	return entry, nil
}

// StartEntry opens a running entry (nil end) for the given project. Fails with
// ErrEntryRunning when one is already open.
func (d *Database) StartEntry(ctx context.Context, project, description string) (models.Entry, error) {
	if active, err := d.ActiveEntry(ctx); err != nil {
		return models.Entry{}, err
	} else if active != nil {
		return models.Entry{}, wrapEntryErr("start", active.ID, ErrEntryRunning)
	}
	entry := models.Entry{
		Project:     project,
		Description: description,
		Start:       time.Now(),
	}
	return d.SaveEntry(ctx, entry)
}

// ActiveEntry returns the most recent running entry, or nil when none is open.
func (d *Database) ActiveEntry(ctx context.Context) (*models.Entry, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE end IS NULL ORDER BY start DESC LIMIT 1")
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapEntryErr("get active", 0, err)
	}
	return &e, nil
}

// StopActiveEntry closes the running entry at the current instant and returns
// the finished entry. Fails with ErrNoActiveEntry when nothing is running.
func (d *Database) StopActiveEntry(ctx context.Context) (models.Entry, error) {
	active, err := d.ActiveEntry(ctx)
	if err != nil {
		return models.Entry{}, err
	}
	if active == nil {
		return models.Entry{}, wrapEntryErr("stop", 0, ErrNoActiveEntry)
	}
	now := time.Now()
	if _, err := d.db.ExecContext(ctx,
		"UPDATE entries SET end = ? WHERE id = ?", formatTime(now), active.ID); err != nil {
		return models.Entry{}, wrapEntryErr("stop", active.ID, err)
	}
	return d.GetEntry(ctx, active.ID)
}

// GetEntry returns a single entry by ID, or ErrNotFound.
func (d *Database) GetEntry(ctx context.Context, id int64) (models.Entry, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, wrapEntryErr("get", id, ErrNotFound)
	}
	if err != nil {
		return models.Entry{}, wrapEntryErr("get", id, err)
	}
	return e, nil
}

// ListEntries returns all entries newest first. A non-nil billed filters by
// billed status.
func (d *Database) ListEntries(ctx context.Context, billed *bool) ([]models.Entry, error) {
	query := "SELECT " + entryColumns + " FROM entries ORDER BY start DESC"
	args := []interface{}{}
	if billed != nil {
		query = "SELECT " + entryColumns + " FROM entries WHERE billed = ? ORDER BY start DESC"
		args = append(args, boolToInt(*billed))
	}
	return d.queryEntries(ctx, "list", query, args...)
}

// ListEntriesByDateRange returns finished entries whose end falls in
// [start, end], newest first, optionally filtered by billed status.
func (d *Database) ListEntriesByDateRange(ctx context.Context, start, end time.Time, billed *bool) ([]models.Entry, error) {
	query := "SELECT " + entryColumns + ` FROM entries
		WHERE end IS NOT NULL AND end >= ? AND end <= ?`
	args := []interface{}{formatTime(start), formatTime(end)}
	if billed != nil {
		query += " AND billed = ?"
		args = append(args, boolToInt(*billed))
	}
	query += " ORDER BY start DESC"
	return d.queryEntries(ctx, "list by range", query, args...)
}

func (d *Database) queryEntries(ctx context.Context, op, query string, args ...interface{}) ([]models.Entry, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapEntryErr(op, 0, err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, wrapEntryErr(op, 0, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpdateEntry rewrites the mutable fields of an entry.
func (d *Database) UpdateEntry(ctx context.Context, entry models.Entry) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE entries SET project = ?, description = ?, start = ?, end = ? WHERE id = ?",
		entry.Project, entry.Description, formatTime(entry.Start), nullableTime(entry.End), entry.ID)
	if err != nil {
		return wrapEntryErr("update", entry.ID, err)
	}
	return checkAffected("update", entry.ID, res)
}

// DeleteEntry removes an entry by ID.
func (d *Database) DeleteEntry(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return wrapEntryErr("delete", id, err)
	}
	return checkAffected("delete", id, res)
}

// SetEntryBilled flips the billed flag on one entry.
func (d *Database) SetEntryBilled(ctx context.Context, id int64, billed bool) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE entries SET billed = ? WHERE id = ?", boolToInt(billed), id)
	if err != nil {
		return wrapEntryErr("set billed", id, err)
	}
	return checkAffected("set billed", id, res)
}

// SetAllEntriesBilled flips the billed flag on every entry currently in the
// opposite state, returning how many changed.
func (d *Database) SetAllEntriesBilled(ctx context.Context, billed bool) (int64, error) {
	res, err := d.db.ExecContext(ctx,
		"UPDATE entries SET billed = ? WHERE billed = ?", boolToInt(billed), boolToInt(!billed))
	if err != nil {
		return 0, wrapEntryErr("set all billed", 0, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapEntryErr("set all billed", 0, err)
	}
	return n, nil
}

func checkAffected(op string, id int64, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrapEntryErr(op, id, err)
	}
	if n == 0 {
		return wrapEntryErr(op, id, ErrNotFound)
	}
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
