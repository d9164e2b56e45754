package types

import "time"

type User struct {
	ID          string    `db:"id" json:"id"`
	Language    Language  `db:"language" json:"language"`
	Email       *string   `db:"email" json:"email,omitempty"`
	DisplayName *string   `db:"display_name" json:"displayName,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
