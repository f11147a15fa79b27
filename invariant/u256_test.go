package invariant

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits(t *testing.T) {
	assert.Equal(t, "1000000000000000000000000", priceOne.Dec())
	assert.Equal(t, "1000000", liquidityOne.Dec())
	assert.Equal(t, "1000000000000", fixedPointOne.Dec())
}

func TestMulDivRounding(t *testing.T) {
	down, err := mulDiv(uint256.NewInt(7), uint256.NewInt(3), uint256.NewInt(2), false)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), down.Uint64())

	up, err := mulDiv(uint256.NewInt(7), uint256.NewInt(3), uint256.NewInt(2), true)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), up.Uint64())

	_, err = mulDiv(uint256.NewInt(1), uint256.NewInt(1), new(uint256.Int), true)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
