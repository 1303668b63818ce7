// Package primes provides the number-theory kernel: primality testing,
// prime generation, factorisation, and gcd/lcm over uint64.
//
// What you get:
//
//   - 🔍 IsPrime - 6k±1 trial division, O(√n) with a constant factor
//     of one third of the naive scan.
//   - 🧮 Primes - sieve of Eratosthenes over odd numbers only, one byte
//     per candidate, O(n·log log n) time and (limit+1)/2 bytes of
//     scratch space.
//   - ✂️ Factors - trial division with multiplicity, smallest factor
//     first, O(√n) worst case.
//   - 🤝 GCD / LCM - Stein's binary gcd (shifts and subtractions only)
//     and the overflow-aware lcm built on top of it.
//
// Everything is a pure function over machine integers. No operation
// allocates except the two that return slices, and those hand the
// slice to the caller outright.
//
// Quick start:
//
//	primes.IsPrime(97)      // true
//	primes.Primes(30)       // [2 3 5 7 11 13 17 19 23 29]
//	primes.Factors(360)     // [2 2 2 3 3 5]
//	primes.GCD(1071, 462)   // 21
//	primes.LCM(12, 18)      // 36
//
// See also package scalar for the floating-point side of the numeric
// foundation.
package primes
