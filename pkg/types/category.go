package types

import "time"

type DepositCategory string

const (
	DepositCategoryGratitude     DepositCategory = "gratitude"
	DepositCategoryAchievement   DepositCategory = "achievement"
	DepositCategoryMemory        DepositCategory = "memory"
	DepositCategoryRelationships DepositCategory = "relationships"
	DepositCategoryHope          DepositCategory = "hope"
	DepositCategoryRelease       DepositCategory = "release"
)

// DepositCategories is ordered the way UI layers display them.
var DepositCategories = []DepositCategory{
	DepositCategoryGratitude,
	DepositCategoryAchievement,
	DepositCategoryMemory,
	DepositCategoryRelationships,
	DepositCategoryHope,
	DepositCategoryRelease,
}

func (c DepositCategory) Valid() bool {
	for _, known := range DepositCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Category is the stored, localized description of a DepositCategory.
type Category struct {
	ID           DepositCategory `db:"id" json:"id"`
	NameEN       string          `db:"name_en" json:"nameEn"`
	NameHE       string          `db:"name_he" json:"nameHe"`
	Icon         *string         `db:"icon" json:"icon,omitempty"`
	Color        string          `db:"color" json:"color"`
	DisplayOrder int             `db:"display_order" json:"displayOrder"`
	IsActive     bool            `db:"is_active" json:"isActive"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}

func (c *Category) Name(language Language) string {
	if language == LanguageHebrew && c.NameHE != "" {
		return c.NameHE
	}
	return c.NameEN
}
