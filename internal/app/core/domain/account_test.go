package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyDelta(t *testing.T) {
	acc := NewAccount(1, "alice", dec("10"))

	require.NoError(t, acc.ApplyDelta(dec("5")))
	assert.True(t, acc.State().Balance.Equal(dec("15")))

	err := acc.ApplyDelta(dec("-20"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, acc.State().Balance.Equal(dec("15")), "balance must stay untouched on failure")
}

func TestApplyDeltaExactBalanceBoundary(t *testing.T) {
	acc := NewAccount(1, "alice", dec("15.25"))

	require.ErrorIs(t, acc.ApplyDelta(dec("-15.2500001")), ErrInsufficientFunds)
	assert.True(t, acc.State().Balance.Equal(dec("15.25")))

	require.NoError(t, acc.ApplyDelta(dec("-15.25")))
	assert.True(t, acc.State().Balance.IsZero())
}

func TestApplyDeltaIsExact(t *testing.T) {
	acc := NewAccount(1, "alice", decimal.Zero)
	for i := 0; i < 10; i++ {
		require.NoError(t, acc.ApplyDelta(dec("0.1")))
	}
	assert.Equal(t, "1", acc.State().Balance.String())
}

func TestMoveFunds(t *testing.T) {
	from := NewAccount(1, "from", dec("15"))
	to := NewAccount(2, "to", decimal.Zero)

	require.NoError(t, MoveFunds(from, to, dec("15")))
	assert.True(t, from.State().Balance.IsZero())
	assert.True(t, to.State().Balance.Equal(dec("15")))

	err := MoveFunds(from, to, dec("1"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, from.State().Balance.IsZero())
	assert.True(t, to.State().Balance.Equal(dec("15")), "destination must not be credited when the debit fails")
}

func TestLockOrder(t *testing.T) {
	low := NewAccount(3, "low", decimal.Zero)
	high := NewAccount(9, "high", decimal.Zero)

	first, second := LockOrder(low, high)
	assert.Same(t, high, first)
	assert.Same(t, low, second)

	first, second = LockOrder(high, low)
	assert.Same(t, high, first)
	assert.Same(t, low, second)
}

func TestLockPairReleasesBoth(t *testing.T) {
	a := NewAccount(1, "a", decimal.Zero)
	b := NewAccount(2, "b", decimal.Zero)

	unlock := LockPair(a, b)
	unlock()

	assert.True(t, a.mu.TryLock())
	assert.True(t, b.mu.TryLock())
}

func TestSnapshot(t *testing.T) {
	acc := NewAccount(4, "bob", dec("7.5"))
	snap := acc.Snapshot()

	assert.Equal(t, int64(4), snap.ID)
	assert.Equal(t, "bob", snap.Name)
	assert.True(t, snap.Balance.Equal(dec("7.5")))
}
