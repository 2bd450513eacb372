package gate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingValidator struct {
	calls int
	valid bool
}

func (v *countingValidator) IsConditionValid(_ context.Context, _, _ string) (bool, error) {
	v.calls++
	return v.valid, nil
}

func TestCachedValidator(t *testing.T) {
	inner := &countingValidator{valid: true}
	v := NewCachedValidator(inner, time.Minute)

	ok, err := v.IsConditionValid(context.Background(), "gate-1", "0xabc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.IsConditionValid(context.Background(), "gate-1", "0xabc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, inner.calls)

	// different address misses the cache
	_, err = v.IsConditionValid(context.Background(), "gate-1", "0xdef")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
