// Package prover runs the interval iteration for the Collatz main-term map
//
//	f(x) = x * 3/2   if ceil(x) is odd
//	f(x) = x * 1/2   if ceil(x) is even
//
// Starting from an open-closed interval, each round applies f to every
// unproven piece, splits the images at integers, merges neighbours that
// rejoin at a non-integer point and drops every piece already inside the
// target (0, 1]. The interval is proven once nothing is left.
//
// The iteration has no termination guarantee. Stepper exposes it one round
// at a time; Prove drives it under a context and an optional round limit.
package prover
