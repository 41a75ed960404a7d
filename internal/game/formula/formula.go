// Package formula holds the pure numeric formulas of the simulation:
// damage, experience curves, floor scaling, gold rewards and the random
// helpers built on an injected rand source. Every randomized function takes
// the *rand.Rand explicitly so tests can seed it.
package formula

import (
	"math"
	"math/rand/v2"
)

// damage formula coefficients
const (
	physAtkMult = 1.2
	physDefMult = 0.5
	magAtkMult  = 1.4
	magDefMult  = 0.3
	variance    = 0.2
)

// RandInt returns a uniform integer in [min, max] inclusive.
func RandInt(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// Choice picks a uniform random element.
func Choice[T any](rng *rand.Rand, s []T) T {
	return s[rng.IntN(len(s))]
}

// Shuffle returns a shuffled copy, leaving the input untouched.
func Shuffle[T any](rng *rand.Rand, s []T) []T {
	out := append([]T(nil), s...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// PickN returns n distinct random elements (fewer if the slice is shorter).
func PickN[T any](rng *rand.Rand, s []T, n int) []T {
	out := Shuffle(rng, s)
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

// XPForLevel is the experience required to advance past the given level:
// floor(50 * level^1.8). Strictly increasing.
func XPForLevel(level int) int {
	return int(math.Floor(50 * math.Pow(float64(level), 1.8)))
}

// Damage is the physical damage formula:
// max(1, floor((atk*1.2 - def*0.5) * (1 ± 20%))).
func Damage(rng *rand.Rand, atk, def int) int {
	return rollDamage(rng, float64(atk)*physAtkMult-float64(def)*physDefMult)
}

// MagicDamage is the magic damage formula:
// max(1, floor((mag*1.4 - def*0.3) * (1 ± 20%))).
func MagicDamage(rng *rand.Rand, mag, def int) int {
	return rollDamage(rng, float64(mag)*magAtkMult-float64(def)*magDefMult)
}

func rollDamage(rng *rand.Rand, base float64) int {
	if base < 1 {
		base = 1
	}
	mult := 1 + (rng.Float64()*2-1)*variance
	dmg := int(math.Floor(base * mult))
	if dmg < 1 {
		return 1
	}
	return dmg
}

// FloorScaling is the difficulty multiplier applied to enemy template stats:
// 1 + (floor-1)*0.18 + (floor/10)^1.5. Strictly increasing.
func FloorScaling(floor int) float64 {
	f := float64(floor)
	return 1 + (f-1)*0.18 + math.Pow(f/10, 1.5)
}

// GoldReward is the base combat gold drop before any bonus multipliers:
// floor((5 + floor*3) * enemyCount * uniform(0.8, 1.2)).
func GoldReward(rng *rand.Rand, floor, enemyCount int) int {
	return int(math.Floor(float64(5+floor*3) * float64(enemyCount) * (0.8 + rng.Float64()*0.4)))
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
