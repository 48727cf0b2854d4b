// Package testutil provides fluent fixture builders shared across tests.
package testutil

import (
	"time"

	"github.com/meterhq/meter/internal/models"
)

// EntryBuilder provides fluent API for creating test entries. The default is
// a finished one-hour session ending 2025-06-02 10:00 UTC.
type EntryBuilder struct {
	entry models.Entry
}

func NewEntry() *EntryBuilder {
	end := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	return &EntryBuilder{
		entry: models.Entry{
			Project:     "Test Project",
			Description: "Work session",
			Start:       end.Add(-time.Hour),
			End:         &end,
		},
	}
}

func (b *EntryBuilder) WithProject(name string) *EntryBuilder {
	b.entry.Project = name
	return b
}

func (b *EntryBuilder) WithDescription(d string) *EntryBuilder {
	b.entry.Description = d
	return b
}

// WithDuration keeps the end instant and moves the start back.
func (b *EntryBuilder) WithDuration(d time.Duration) *EntryBuilder {
	b.entry.Start = b.entry.End.Add(-d)
	return b
}

// EndingAt moves the whole session so it ends at the given instant,
// preserving its duration.
func (b *EntryBuilder) EndingAt(end time.Time) *EntryBuilder {
	d := b.entry.End.Sub(b.entry.Start)
	b.entry.Start = end.Add(-d)
	b.entry.End = &end
	return b
}

// Running clears the end, producing an open entry.
func (b *EntryBuilder) Running() *EntryBuilder {
	b.entry.End = nil
	return b
}

func (b *EntryBuilder) Billed() *EntryBuilder {
	b.entry.Billed = true
	return b
}

func (b *EntryBuilder) Build() models.Entry {
	return b.entry
}

// ClientBuilder provides fluent API for creating test clients.
type ClientBuilder struct {
	client models.Client
}

func NewClient() *ClientBuilder {
	return &ClientBuilder{
		client: models.Client{
			Name:          "Globex Corp",
			ContactPerson: "H. Simpson",
			Email:         "billing@globex.test",
			AddressStreet: "100 Industry Way",
			AddressCity:   "Cypress Creek",
			AddressState:  "OR",
			AddressPostal: "97000",
		},
	}
}

func (b *ClientBuilder) WithName(name string) *ClientBuilder {
	b.client.Name = name
	return b
}

func (b *ClientBuilder) WithEmail(email string) *ClientBuilder {
	b.client.Email = email
	return b
}

func (b *ClientBuilder) Build() models.Client {
	return b.client
}
