package types

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinDepositContentLength = 1
	MaxDepositContentLength = 5000
)

// Deposit is a single journal entry written by a user.
type Deposit struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"userId"`
	Content   string          `db:"content" json:"content" form:"content"`
	Category  DepositCategory `db:"category" json:"category" form:"category"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// Validate trims Content in place and checks it against the shared limits.
func (d *Deposit) Validate() error {
	if strings.TrimSpace(d.UserID) == "" {
		return ErrMissingUserID
	}

	d.Content = strings.TrimSpace(d.Content)
	length := utf8.RuneCountInString(d.Content)
	if length < MinDepositContentLength {
		return ErrContentTooShort
	}
	if length > MaxDepositContentLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrContentTooLong, length, MaxDepositContentLength)
	}

	if !d.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, d.Category)
	}

	return nil
}

type DepositFilter struct {
	Category DepositCategory
	Limit    uint64
}

const (
	DefaultDepositLimit uint64 = 50
	MaxDepositLimit     uint64 = 200
)

// Normalize clamps Limit into (0, MaxDepositLimit].
func (f DepositFilter) Normalize() DepositFilter {
	if f.Limit == 0 {
		f.Limit = DefaultDepositLimit
	}
	if f.Limit > MaxDepositLimit {
		f.Limit = MaxDepositLimit
	}

	return f
}

type CategoryCount struct {
	Category DepositCategory `db:"category" json:"category"`
	Count    int64           `db:"count" json:"count"`
}
