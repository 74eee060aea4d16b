package models

import (
	"database/sql"
	"time"
)

// Contact is a contact-form submission stored in the contacts table.
type Contact struct {
	ID        int64          `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Email     string         `db:"email" json:"email"`
	Phone     sql.NullString `db:"phone" json:"-"`
	Course    sql.NullString `db:"course" json:"-"`
	Message   sql.NullString `db:"message" json:"-"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// ContactRow is the JSON projection of a Contact with optional columns
// flattened to plain strings.
type ContactRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Course    string    `json:"course,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Row converts the stored record into its JSON projection.
func (c Contact) Row() ContactRow {
	return ContactRow{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone.String,
		Course:    c.Course.String,
		Message:   c.Message.String,
		CreatedAt: c.CreatedAt,
	}
}
