package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/meterhq/meter/internal/models"
)

const clientColumns = `id, name, contact_person, email,
	address_street, address_city, address_state, address_postal, address_country`

func scanClient(row interface{ Scan(...interface{}) error }) (models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Email,
		&c.AddressStreet, &c.AddressCity, &c.AddressState, &c.AddressPostal, &c.AddressCountry)
	return c, err
}

// AddClient inserts a client and returns its assigned ID.
func (d *Database) AddClient(ctx context.Context, c models.Client) (int64, error) {
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO clients (name, contact_person, email,
			address_street, address_city, address_state, address_postal, address_country)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.ContactPerson, c.Email,
		c.AddressStreet, c.AddressCity, c.AddressState, c.AddressPostal, c.AddressCountry)
	if err != nil {
		return 0, wrapClientErr("insert", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapClientErr("insert", 0, err)
	}
	return id, nil
}

// UpdateClient rewrites all fields of a client.
func (d *Database) UpdateClient(ctx context.Context, c models.Client) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE clients SET name = ?, contact_person = ?, email = ?,
			address_street = ?, address_city = ?, address_state = ?,
			address_postal = ?, address_country = ?
		WHERE id = ?`,
		c.Name, c.ContactPerson, c.Email,
		c.AddressStreet, c.AddressCity, c.AddressState, c.AddressPostal, c.AddressCountry,
		c.ID)
	if err != nil {
		return wrapClientErr("update", c.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapClientErr("update", c.ID, err)
	}
	if n == 0 {
		return wrapClientErr("update", c.ID, ErrNotFound)
	}
	return nil
}

// DeleteClient removes a client by ID.
func (d *Database) DeleteClient(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return wrapClientErr("delete", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapClientErr("delete", id, err)
	}
	if n == 0 {
		return wrapClientErr("delete", id, ErrNotFound)
	}
	return nil
}

// GetClient returns a client by ID, or ErrNotFound.
func (d *Database) GetClient(ctx context.Context, id int64) (models.Client, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE id = ?", id)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, wrapClientErr("get", id, ErrNotFound)
	}
	if err != nil {
		return models.Client{}, wrapClientErr("get", id, err)
	}
	return c, nil
}

// ListClients returns all clients ordered by name.
func (d *Database) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients ORDER BY name ASC")
	if err != nil {
		return nil, wrapClientErr("list", 0, err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, wrapClientErr("list", 0, err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
