package primes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/camel/primes"
)

const propSeed = 0xC0FFEE

const propRounds = 256

// TestPrimes_Small pins the sieve on a hand-checkable range.
func TestPrimes_Small(t *testing.T) {
	assert.Equal(t,
		[]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29},
		primes.Primes(30))
}

// TestPrimes_Edges covers the degenerate limits and the inclusive
// upper bound.
func TestPrimes_Edges(t *testing.T) {
	assert.Empty(t, primes.Primes(0))
	assert.Empty(t, primes.Primes(1))
	assert.Equal(t, []uint64{2}, primes.Primes(2))
	assert.Equal(t, []uint64{2, 3}, primes.Primes(3))
	assert.Equal(t, []uint64{2, 3}, primes.Primes(4))

	// A prime limit must itself appear.
	got := primes.Primes(29)
	assert.Equal(t, uint64(29), got[len(got)-1])
}

// TestIsPrime_AgreesWithSieve cross-checks the 6k±1 test against the
// sieve over a contiguous range.
func TestIsPrime_AgreesWithSieve(t *testing.T) {
	const limit = 10_000

	inSieve := make(map[uint64]bool, 1300)
	for _, p := range primes.Primes(limit) {
		inSieve[p] = true
	}
	for n := uint64(0); n <= limit; n++ {
		assert.Equal(t, inSieve[n], primes.IsPrime(n), "disagreement at n=%d", n)
	}
}

// TestFactors pins the worked example and the degenerate inputs.
func TestFactors(t *testing.T) {
	assert.Equal(t, []uint64{2, 2, 2, 3, 3, 5}, primes.Factors(360))
	assert.Equal(t, []uint64{2}, primes.Factors(2))
	assert.Equal(t, []uint64{97}, primes.Factors(97), "a prime is its own sole factor")
	assert.Empty(t, primes.Factors(0))
	assert.Empty(t, primes.Factors(1))
}

// TestFactors_Property checks that factorisation reconstructs n and
// yields only primes, in nondecreasing order.
func TestFactors_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))

	var n, product, prev uint64
	for i := 0; i < propRounds; i++ {
		n = rng.Uint64()%1_000_000 + 2

		product, prev = 1, 0
		for _, f := range primes.Factors(n) {
			assert.True(t, primes.IsPrime(f), "factor %d of %d is not prime", f, n)
			assert.LessOrEqual(t, prev, f, "factors of %d out of order", n)
			product *= f
			prev = f
		}
		assert.Equal(t, n, product, "factors of %d do not multiply back", n)
	}
}

// TestGCD pins the classics and the zero identities.
func TestGCD(t *testing.T) {
	assert.Equal(t, uint64(21), primes.GCD(1071, 462))
	assert.Equal(t, uint64(21), primes.GCD(462, 1071), "gcd is symmetric")
	assert.Equal(t, uint64(1), primes.GCD(17, 13), "coprime inputs")
	assert.Equal(t, uint64(12), primes.GCD(12, 12))
	assert.Equal(t, uint64(5), primes.GCD(0, 5))
	assert.Equal(t, uint64(5), primes.GCD(5, 0))
	assert.Equal(t, uint64(0), primes.GCD(0, 0))
	assert.Equal(t, uint64(32), primes.GCD(96, 32), "shared powers of two survive the shift")
}

// TestLCM pins the worked example and the zero rule.
func TestLCM(t *testing.T) {
	assert.Equal(t, uint64(36), primes.LCM(12, 18))
	assert.Equal(t, uint64(0), primes.LCM(0, 7))
	assert.Equal(t, uint64(0), primes.LCM(7, 0))
	assert.Equal(t, uint64(7), primes.LCM(1, 7))
}

// TestGCDLCM_Product checks gcd(a,b)·lcm(a,b) = a·b for random nonzero
// inputs, and that gcd divides both arguments.
func TestGCDLCM_Product(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))

	var a, b, g uint64
	for i := 0; i < propRounds; i++ {
		a = rng.Uint64()%100_000 + 1
		b = rng.Uint64()%100_000 + 1

		g = primes.GCD(a, b)
		assert.Zero(t, a%g, "gcd(%d,%d)=%d does not divide a", a, b, g)
		assert.Zero(t, b%g, "gcd(%d,%d)=%d does not divide b", a, b, g)
		assert.Equal(t, a*b, g*primes.LCM(a, b), "gcd·lcm must equal a·b for a=%d b=%d", a, b)
	}
}
