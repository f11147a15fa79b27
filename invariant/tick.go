package invariant

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/krazyTry/invariant-lp-go/decimals"
)

const (
	MAX_TICK   int32 = 221_818
	TICK_LIMIT int32 = 44_364
)

// sqrtPriceFactors[i] is sqrt(1.0001^(2^i)) at 12 decimal places.
var sqrtPriceFactors = [...]uint64{
	1_000_049_998_750,
	1_000_100_000_000,
	1_000_200_010_000,
	1_000_400_060_004,
	1_000_800_280_056,
	1_001_601_200_560,
	1_003_204_964_963,
	1_006_420_201_726,
	1_012_881_622_442,
	1_025_929_181_080,
	1_052_530_684_591,
	1_107_820_842_005,
	1_227_267_017_980,
	1_506_184_333_421,
	2_268_591_246_242,
	5_146_506_242_525,
	26_486_526_504_348,
	701_536_086_265_529,
}

// CalculatePriceSqrt returns sqrt(1.0001^tickIndex) at price scale.
func CalculatePriceSqrt(tickIndex int32) (decimals.Decimal, error) {
	tick := tickIndex
	if tick < 0 {
		tick = -tick
	}
	if tick > MAX_TICK {
		return decimals.Decimal{}, fmt.Errorf("tick %d: %w", tickIndex, ErrTickOutOfBounds)
	}

	price := new(uint256.Int).Set(fixedPointOne)
	for bit, factor := range sqrtPriceFactors {
		if tick&(1<<bit) != 0 {
			price.Mul(price, uint256.NewInt(factor))
			price.Div(price, fixedPointOne)
		}
	}

	if tickIndex < 0 {
		one := new(uint256.Int).Mul(fixedPointOne, fixedPointOne)
		price.Div(one, price)
	}
	return fromU256(price.Mul(price, fixedPointOne)), nil
}

// GetMaxTick returns the highest tick a full-range position may use: at most
// TICK_LIMIT-1 spacings from zero and a multiple of the spacing.
func GetMaxTick(tickSpacing uint16) int32 {
	if tickSpacing == 0 {
		return 0
	}
	spacing := int64(tickSpacing)
	byLimit := int64(TICK_LIMIT-1) * spacing
	aligned := int64(MAX_TICK) - int64(MAX_TICK)%spacing
	return int32(min(byLimit, aligned))
}

func GetMinTick(tickSpacing uint16) int32 {
	return -GetMaxTick(tickSpacing)
}
