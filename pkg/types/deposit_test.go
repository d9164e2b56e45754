package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit_Validate(t *testing.T) {
	tests := []struct {
		name    string
		deposit Deposit
		wantErr error
	}{
		{
			name:    "valid",
			deposit: Deposit{UserID: "u1", Content: "Had a calm morning walk", Category: DepositCategoryGratitude},
		},
		{
			name:    "missing user",
			deposit: Deposit{Content: "text", Category: DepositCategoryHope},
			wantErr: ErrMissingUserID,
		},
		{
			name:    "whitespace only content",
			deposit: Deposit{UserID: "u1", Content: "   \n\t", Category: DepositCategoryHope},
			wantErr: ErrContentTooShort,
		},
		{
			name:    "content over limit",
			deposit: Deposit{UserID: "u1", Content: strings.Repeat("a", MaxDepositContentLength+1), Category: DepositCategoryHope},
			wantErr: ErrContentTooLong,
		},
		{
			name:    "unknown category",
			deposit: Deposit{UserID: "u1", Content: "text", Category: "sports"},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "empty category",
			deposit: Deposit{UserID: "u1", Content: "text"},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deposit.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeposit_ValidateTrimsContent(t *testing.T) {
	d := Deposit{UserID: "u1", Content: "  שלום  ", Category: DepositCategoryMemory}
	require.NoError(t, d.Validate())
	assert.Equal(t, "שלום", d.Content)
}

func TestDeposit_ValidateCountsRunes(t *testing.T) {
	// Hebrew letters are two bytes each; the limit applies to characters.
	d := Deposit{UserID: "u1", Content: strings.Repeat("א", MaxDepositContentLength), Category: DepositCategoryRelease}
	assert.NoError(t, d.Validate())
}

func TestDepositFilter_Normalize(t *testing.T) {
	assert.Equal(t, DefaultDepositLimit, DepositFilter{}.Normalize().Limit)
	assert.Equal(t, MaxDepositLimit, DepositFilter{Limit: 10_000}.Normalize().Limit)
	assert.Equal(t, uint64(5), DepositFilter{Limit: 5}.Normalize().Limit)
}

func TestCategoryColorsCoverEveryCategory(t *testing.T) {
	for _, c := range DepositCategories {
		assert.NotEmpty(t, CategoryColors[c], "missing colour for %s", c)
	}
}
