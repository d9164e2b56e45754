package store

import (
	"testing"

	"heartbank/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateClause(t *testing.T) {
	clause := buildUpdateClause(map[string]any{
		"name_he": "x",
		"color":   "y",
		"name_en": "z",
	})

	assert.Equal(t, "color = EXCLUDED.color, name_en = EXCLUDED.name_en, name_he = EXCLUDED.name_he", clause)
}

func TestDepositsByUserQuery(t *testing.T) {
	query, args, err := depositsByUserQuery("user-1", types.DepositFilter{})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, user_id, content, category, created_at FROM heartbank.deposits WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT 50",
		query,
	)
	assert.Equal(t, []any{"user-1"}, args)
}

func TestDepositsByUserQuery_CategoryAndLimit(t *testing.T) {
	query, args, err := depositsByUserQuery("user-1", types.DepositFilter{
		Category: types.DepositCategoryHope,
		Limit:    1000,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE user_id = $1 AND category = $2")
	assert.Contains(t, query, "LIMIT 200")
	assert.Equal(t, []any{"user-1", types.DepositCategoryHope}, args)
}

func TestUpsertCategoryQuery(t *testing.T) {
	query, _, err := upsertCategoryQuery(&types.Category{
		ID:     types.DepositCategoryGratitude,
		NameEN: "Gratitude",
		NameHE: "הכרת תודה",
		Color:  "#F2C879",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO heartbank.deposit_categories")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET")
	assert.NotContains(t, query, "id = EXCLUDED.id")
	assert.NotContains(t, query, "created_at = EXCLUDED.created_at")
	assert.Contains(t, query, "name_he = EXCLUDED.name_he")
}
