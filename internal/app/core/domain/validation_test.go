package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.NullDecimal
		wantErr error
	}{
		{name: "absent", amount: decimal.NullDecimal{}, wantErr: ErrInvalidAmount},
		{name: "zero", amount: decimal.NewNullDecimal(decimal.Zero), wantErr: ErrInvalidAmount},
		{name: "negative", amount: decimal.NewNullDecimal(dec("-10")), wantErr: ErrInvalidAmount},
		{name: "positive", amount: decimal.NewNullDecimal(dec("0.01"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequireAmount(tt.amount)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.amount.Decimal))
		})
	}
}

func TestInitialAmount(t *testing.T) {
	got, err := InitialAmount(decimal.NullDecimal{})
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = InitialAmount(decimal.NewNullDecimal(dec("10")))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("10")))

	_, err = InitialAmount(decimal.NewNullDecimal(dec("-10")))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRequireNameAndID(t *testing.T) {
	require.ErrorIs(t, RequireName(""), ErrInvalidArgument)
	require.NoError(t, RequireName("name"))

	require.ErrorIs(t, RequireAccountID(NoAccountID), ErrInvalidArgument)
	require.NoError(t, RequireAccountID(1))
}

func TestIsBusinessError(t *testing.T) {
	assert.True(t, IsBusinessError(fmt.Errorf("%w: account #1", ErrAccountNotFound)))
	assert.True(t, IsBusinessError(ErrInsufficientFunds))
	assert.False(t, IsBusinessError(errors.New("disk on fire")))
	assert.False(t, IsBusinessError(nil))
}
