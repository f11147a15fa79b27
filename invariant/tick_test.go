package invariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krazyTry/invariant-lp-go/decimals"
)

func TestCalculatePriceSqrt(t *testing.T) {
	tests := []struct {
		tick int32
		want string
	}{
		{0, "1000000000000000000000000"},
		{1, "1000049998750000000000000"},
		{-1, "999950003749000000000000"},
		{100, "1005012269622000000000000"},
		{-100, "995012727930000000000000"},
		{44363, "9189293893553000000000000"},
		{-44363, "108822289458000000000000"},
		{44364, "9189753346760000000000000"},
		{-44364, "108816848751000000000000"},
		{MAX_TICK, "65535383934512647000000000000"},
		{-MAX_TICK, "15258932000000000000"},
	}
	for _, tt := range tests {
		got, err := CalculatePriceSqrt(tt.tick)
		require.NoError(t, err, "tick %d", tt.tick)
		assert.Equal(t, tt.want, got.String(), "tick %d", tt.tick)
	}
}

func TestCalculatePriceSqrtOutOfBounds(t *testing.T) {
	for _, tick := range []int32{MAX_TICK + 1, -MAX_TICK - 1} {
		_, err := CalculatePriceSqrt(tick)
		assert.ErrorIs(t, err, ErrTickOutOfBounds)
	}
}

func TestCalculatePriceSqrtMonotonic(t *testing.T) {
	prev, err := CalculatePriceSqrt(-1000)
	require.NoError(t, err)
	for tick := int32(-999); tick <= 1000; tick++ {
		cur, err := CalculatePriceSqrt(tick)
		require.NoError(t, err)
		require.True(t, cur.GreaterThan(prev), "tick %d", tick)
		prev = cur
	}
}

func TestGetMaxTick(t *testing.T) {
	tests := []struct {
		spacing uint16
		want    int32
	}{
		{1, 44363},
		{2, 88726},
		{3, 133089},
		{5, 221815},
		{7, 221816},
		{100, 221800},
		{65535, 196605},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetMaxTick(tt.spacing), "spacing %d", tt.spacing)
		assert.Equal(t, -tt.want, GetMinTick(tt.spacing), "spacing %d", tt.spacing)
	}
}

func TestMathMaxTick(t *testing.T) {
	assert.Equal(t, MAX_TICK, Math{}.MaxTick())
	assert.Equal(t, GetMaxTick(10), Math{}.GetMaxTick(10))

	p, err := Math{}.CalculatePriceSqrt(100)
	require.NoError(t, err)
	assert.True(t, p.Equal(decimals.MustFromString("1005012269622000000000000")))
}
