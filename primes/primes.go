package primes

// initialFactorCap seeds the factor slice; 10 covers every n below
// 2¹⁰ = 1024 and most practical inputs without a regrow.
const initialFactorCap = 10

// IsPrime reports whether n is prime.
//
// After the small cases it only probes divisors of the form 6k±1, since
// every prime above 3 has that shape. Runs in O(√n).
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Primes returns every prime ≤ limit in ascending order. The result is
// empty (non-nil) for limit < 2.
//
// The sieve tracks odd numbers only: one byte per candidate, so the
// scratch space is (limit+1)/2 bytes. Index i stands for the odd number
// 2i+1; composites are struck from i·i upward in steps of the odd prime
// itself. Runs in O(limit·log log limit).
func Primes(limit uint64) []uint64 {
	if limit < 2 {
		return []uint64{}
	}

	half := (limit + 1) / 2
	composite := make([]bool, half)

	for i := uint64(1); (2*i+1)*(2*i+1) <= limit; i++ {
		if composite[i] {
			continue
		}
		p := 2*i + 1
		// First odd multiple worth striking is p², at index (p²-1)/2;
		// each further strike advances the represented value by 2p,
		// which is p index slots.
		for j := (p*p - 1) / 2; j < half; j += p {
			composite[j] = true
		}
	}

	out := make([]uint64, 0, half/2+1)
	out = append(out, 2)
	for i := uint64(1); i < half; i++ {
		if !composite[i] && 2*i+1 <= limit {
			out = append(out, 2*i+1)
		}
	}

	return out
}

// Factors returns the prime factorisation of n with multiplicity,
// smallest factor first, so the product of the result equals n.
// Returns an empty slice for n < 2.
//
// Factors of 2 are stripped first, then odd candidates are trial-divided
// while i² ≤ n; the bound shrinks together with n. Whatever remains
// above 2 at the end is itself prime. Runs in O(√n) worst case.
func Factors(n uint64) []uint64 {
	out := make([]uint64, 0, initialFactorCap)
	if n < 2 {
		return out
	}

	for n%2 == 0 {
		out = append(out, 2)
		n /= 2
	}
	for i := uint64(3); i*i <= n; i += 2 {
		for n%i == 0 {
			out = append(out, i)
			n /= i
		}
	}
	if n > 2 {
		out = append(out, n)
	}

	return out
}

// GCD returns the greatest common divisor of a and b using Stein's
// binary algorithm: only shifts, comparisons, and subtractions.
// GCD(0, b) = b and GCD(a, 0) = a.
func GCD(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	// Shared power of two, restored at the end.
	var shift uint
	for (a|b)&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
	}
	for a&1 == 0 {
		a >>= 1
	}
	for {
		for b&1 == 0 {
			b >>= 1
		}
		if a > b {
			a, b = b, a
		}
		b -= a
		if b == 0 {
			break
		}
	}

	return a << shift
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// Dividing before multiplying keeps the intermediate within uint64
// whenever the true lcm fits.
func LCM(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}
