package primes_test

import (
	"testing"

	"github.com/katalvlaran/camel/primes"
)

var (
	benchBool  bool
	benchSlice []uint64
	benchU64   uint64
)

func BenchmarkIsPrime(b *testing.B) {
	// Large prime, worst case for trial division.
	for i := 0; i < b.N; i++ {
		benchBool = primes.IsPrime(1_000_000_007)
	}
}

func BenchmarkPrimes_1e4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSlice = primes.Primes(10_000)
	}
}

func BenchmarkPrimes_1e6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSlice = primes.Primes(1_000_000)
	}
}

func BenchmarkFactors(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSlice = primes.Factors(600_851_475_143)
	}
}

func BenchmarkGCD(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchU64 = primes.GCD(1_836_311_903, 1_134_903_170)
	}
}
