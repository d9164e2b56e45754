package types

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDepositNotFound = errors.New("deposit not found")

	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidCategory = errors.New("invalid deposit category")
	ErrMissingUserID   = errors.New("deposit user id is required")
	ErrContentTooShort = errors.New("deposit content is too short")
	ErrContentTooLong  = errors.New("deposit content is too long")
)
