package primes_test

import (
	"fmt"

	"github.com/katalvlaran/camel/primes"
)

// ExamplePrimes lists every prime up to 30.
func ExamplePrimes() {
	fmt.Println(primes.Primes(30))
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
}

// ExampleFactors decomposes 360 into primes with multiplicity.
func ExampleFactors() {
	fmt.Println(primes.Factors(360))
	// Output:
	// [2 2 2 3 3 5]
}

// ExampleGCD reduces the textbook pair 1071/462.
func ExampleGCD() {
	fmt.Println(primes.GCD(1071, 462))
	// Output:
	// 21
}

// ExampleLCM finds the least common multiple of 12 and 18.
func ExampleLCM() {
	fmt.Println(primes.LCM(12, 18))
	// Output:
	// 36
}

// ExampleIsPrime probes a few candidates.
func ExampleIsPrime() {
	for _, n := range []uint64{1, 2, 9, 97} {
		fmt.Printf("%d: %v\n", n, primes.IsPrime(n))
	}
	// Output:
	// 1: false
	// 2: true
	// 9: false
	// 97: true
}
