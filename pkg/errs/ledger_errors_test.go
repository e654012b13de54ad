package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidSymbol(t *testing.T) {
	require.EqualError(t, NewInvalidSymbol("a").Extend("b"), "b: a")
	require.True(t, IsValidationError(NewInvalidSymbol("")))
}

func TestNewInvalidAmount(t *testing.T) {
	require.EqualError(t, NewInvalidAmount("a").Extend("b"), "b: a")
}

func TestNewSymbolMismatch(t *testing.T) {
	require.EqualError(t, NewSymbolMismatch("a").Extend("b"), "b: a")
}

func TestNewNotFound(t *testing.T) {
	require.EqualError(t, Extend(NewNotFound("a"), "b"), "b: a")
}

func TestNewMemoTooLong(t *testing.T) {
	rs := NewMemoTooLong(300, 256)
	require.Equal(t, "memo of 300 bytes exceeds the limit of 256", rs.Error())
}

func TestErrorIsCompatibility(t *testing.T) {
	assert.True(t, errors.Is(NewInvalidSymbol("test"), InvalidSymbol{}))
	assert.False(t, errors.Is(NewInvalidSymbol("test"), InvalidAmount{}))

	assert.True(t, errors.Is(NewInvalidAmount("test"), InvalidAmount{}))
	assert.False(t, errors.Is(NewInvalidAmount("test"), SymbolMismatch{}))

	assert.True(t, errors.Is(NewSymbolMismatch("test"), SymbolMismatch{}))
	assert.False(t, errors.Is(NewSymbolMismatch("test"), Overflow{}))

	assert.True(t, errors.Is(NewOverflow("test"), Overflow{}))
	assert.False(t, errors.Is(NewOverflow("test"), Underflow{}))

	assert.True(t, errors.Is(NewUnderflow("test"), Underflow{}))
	assert.False(t, errors.Is(NewUnderflow("test"), AlreadyExists{}))

	assert.True(t, errors.Is(NewAlreadyExists("test"), AlreadyExists{}))
	assert.False(t, errors.Is(NewAlreadyExists("test"), NotFound{}))

	assert.True(t, errors.Is(NewNotFound("test"), NotFound{}))
	assert.False(t, errors.Is(NewNotFound("test"), Unauthorized{}))

	assert.True(t, errors.Is(NewUnauthorized("test"), Unauthorized{}))
	assert.False(t, errors.Is(NewUnauthorized("test"), ExceedsMaxSupply{}))

	assert.True(t, errors.Is(NewExceedsMaxSupply("test"), ExceedsMaxSupply{}))
	assert.False(t, errors.Is(NewExceedsMaxSupply("test"), InsufficientBalance{}))

	assert.True(t, errors.Is(NewInsufficientBalance("test"), InsufficientBalance{}))
	assert.False(t, errors.Is(NewInsufficientBalance("test"), SameAccount{}))

	assert.True(t, errors.Is(NewSameAccount("test"), SameAccount{}))
	assert.False(t, errors.Is(NewSameAccount("test"), MemoTooLong{}))

	assert.True(t, errors.Is(NewMemoTooLong(1, 0), MemoTooLong{}))
	assert.False(t, errors.Is(NewMemoTooLong(1, 0), BalanceNotZero{}))

	assert.True(t, errors.Is(NewBalanceNotZero("test"), BalanceNotZero{}))
	assert.False(t, errors.Is(NewBalanceNotZero("test"), InvalidSymbol{}))
}
