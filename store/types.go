// Package store holds the result types of the sample user and order
// statements. The analyzer and auto-mapping tests load it as a fixture.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"rowmap/store/shared"
)

// Status is a user account state stored as text.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusDisabled Status = "DISABLED"
)

// Audit carries timestamps shared by several rows.
type Audit struct {
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// Profile is a nested value with no type handler of its own.
type Profile struct {
	Bio    string
	Avatar []byte
}

// User is the result type of the UserMapper statements.
type User struct {
	ID       int64 `db:"id"`
	UserName string
	Email    sql.NullString
	Status   Status
	Tags     map[string]string
	Profile  Profile
	Audit

	passwordHash string
}

// PasswordHash returns the hash loaded by the credentials statement.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Money is an amount in cents read through Scan.
type Money struct {
	cents int64
}

// Scan implements sql.Scanner.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		m.cents = v
	case nil:
		m.cents = 0
	default:
		return fmt.Errorf("store: cannot scan %T into Money", src)
	}

	return nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Order is the result type of the OrderMapper statements.
type Order struct {
	ID       int64 `db:"order_id"`
	UserID   int64
	Total    Money
	Note     *string
	Internal string `db:"-"`
}

// Comment is the result type of the CommentMapper statements.
type Comment struct {
	ID    int64 `db:"id"`
	Body  string
	Meta  map[string]any
	Extra interface{}
	shared.Base
}

// Event is the result type of the EventMapper statements. Its details are
// loaded separately and are not auto-mapping targets.
type Event struct {
	ID int64 `db:"id"`
	*details
}

type details struct {
	Note string
}
