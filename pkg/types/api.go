package types

import "time"

type LocaleInfo struct {
	Language    Language `json:"language"`
	Direction   string   `json:"direction"`
	LocaleTag   string   `json:"localeTag"`
	RTL         bool     `json:"rtl"`
	DisplayName string   `json:"displayName"`
}

type DepositResponse struct {
	ID               string          `json:"id"`
	Content          string          `json:"content"`
	Category         DepositCategory `json:"category"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedAtDisplay string          `json:"createdAtDisplay"`
	Direction        string          `json:"direction"`
}

type DepositListResponse struct {
	Deposits []*DepositResponse `json:"deposits"`
	Count    int                `json:"count"`
}

type CategoryResponse struct {
	ID    DepositCategory `json:"id"`
	Name  string          `json:"name"`
	Icon  string          `json:"icon,omitempty"`
	Color string          `json:"color"`
}

type StatsResponse struct {
	Total        int64            `json:"total"`
	TotalDisplay string           `json:"totalDisplay"`
	ByCategory   []*CategoryCount `json:"byCategory"`
	Direction    string           `json:"direction"`
}

type ThemeResponse struct {
	Palette        Palette                    `json:"palette"`
	CategoryColors map[DepositCategory]string `json:"categoryColors"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// DepositExport is the archive document written by the export command.
type DepositExport struct {
	UserID     string     `json:"userId"`
	Language   Language   `json:"language"`
	ExportedAt time.Time  `json:"exportedAt"`
	Deposits   []*Deposit `json:"deposits"`
}
