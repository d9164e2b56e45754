package seed

import (
	"context"
	"fmt"

	"heartbank/internal/utils"
	"heartbank/pkg/types"

	"github.com/sirupsen/logrus"
)

type CategoryStore interface {
	AllCategoriesUnfiltered(ctx context.Context) ([]*types.Category, error)
	UpsertCategory(ctx context.Context, category *types.Category) error
	DeleteCategory(ctx context.Context, id types.DepositCategory) error
}

type SyncResult struct {
	Upserted int
	Deleted  int
}

// Categories is the source of truth for the deposit_categories table. Its
// order and IDs follow types.DepositCategories.
func Categories() []types.Category {
	return []types.Category{
		{
			ID:     types.DepositCategoryGratitude,
			NameEN: "Gratitude",
			NameHE: "הכרת תודה",
			Icon:   utils.StringPtr("heart"),
		},
		{
			ID:     types.DepositCategoryAchievement,
			NameEN: "Achievement",
			NameHE: "הישג",
			Icon:   utils.StringPtr("star"),
		},
		{
			ID:     types.DepositCategoryMemory,
			NameEN: "Memory",
			NameHE: "זיכרון",
			Icon:   utils.StringPtr("book-open"),
		},
		{
			ID:     types.DepositCategoryRelationships,
			NameEN: "Relationships",
			NameHE: "קשרים",
			Icon:   utils.StringPtr("users"),
		},
		{
			ID:     types.DepositCategoryHope,
			NameEN: "Hope",
			NameHE: "תקווה",
			Icon:   utils.StringPtr("sunrise"),
		},
		{
			ID:     types.DepositCategoryRelease,
			NameEN: "Letting Go",
			NameHE: "שחרור",
			Icon:   utils.StringPtr("wind"),
		},
	}
}

// SeedCategories syncs the database with Categories():
// - Inserts categories that don't exist
// - Updates existing categories that have changed
// - Deletes categories from DB that aren't in the list
func SeedCategories(ctx context.Context, repo CategoryStore, logger logrus.FieldLogger) (*SyncResult, error) {
	categories := Categories()
	for i := range categories {
		categories[i].DisplayOrder = i + 1
		categories[i].IsActive = true
		categories[i].Color = types.CategoryColors[categories[i].ID]
	}

	logger.WithField("count", len(categories)).Info("starting category sync")

	seedIDs := make(map[types.DepositCategory]bool)
	for _, cat := range categories {
		seedIDs[cat.ID] = true
	}

	existing, err := repo.AllCategoriesUnfiltered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing categories: %w", err)
	}
	logger.WithField("count", len(existing)).Info("database categories loaded")

	result := new(SyncResult)
	for _, existingCat := range existing {
		if seedIDs[existingCat.ID] {
			continue
		}

		logger.WithField("category", existingCat.ID).Info("deleting category")
		if err := repo.DeleteCategory(ctx, existingCat.ID); err != nil {
			return nil, fmt.Errorf("failed to delete category %s: %w", existingCat.ID, err)
		}
		result.Deleted++
	}

	for _, cat := range categories {
		logger.WithField("category", cat.ID).Debug("upserting category")
		if err := repo.UpsertCategory(ctx, &cat); err != nil {
			return nil, fmt.Errorf("failed to upsert category %s: %w", cat.ID, err)
		}
		result.Upserted++
	}

	logger.WithFields(logrus.Fields{
		"upserted": result.Upserted,
		"deleted":  result.Deleted,
	}).Info("category sync complete")

	return result, nil
}
