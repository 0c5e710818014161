// SPDX-License-Identifier: MIT
// Package: hopweight/builder
//
// fixtures.go - name-based lookup of constructors for command-line harnesses.

package builder

import (
	"fmt"
	"sort"
)

// Fixture names accepted by Named.
const (
	FixtureSample = "sample"
	FixturePath   = "path"
	FixtureCycle  = "cycle"
	FixtureStar   = "star"
	FixtureGrid   = "grid"
	FixtureRandom = "random"
)

// randomDegree is the expected out-degree of the "random" fixture.
const randomDegree = 2.0

// FixtureNames lists every name Named accepts, sorted.
func FixtureNames() []string {
	names := []string{FixtureSample, FixturePath, FixtureCycle, FixtureStar, FixtureGrid, FixtureRandom}
	sort.Strings(names)

	return names
}

// Named resolves a fixture name and size into a Constructor.
//
//   - sample: WeightedSample when weighted, UnweightedSample otherwise (size ignored).
//   - path, cycle, star: n = size.
//   - grid: size × size.
//   - random: RandomSparse(size, p) with p chosen for an expected out-degree of 2.
//
// Unknown names return ErrConstructFailed.
func Named(name string, size int, weighted bool) (Constructor, error) {
	switch name {
	case FixtureSample:
		if weighted {
			return WeightedSample(), nil
		}
		return UnweightedSample(), nil
	case FixturePath:
		return Path(size), nil
	case FixtureCycle:
		return Cycle(size), nil
	case FixtureStar:
		return Star(size), nil
	case FixtureGrid:
		return Grid(size, size), nil
	case FixtureRandom:
		p := 1.0
		if size > 1 {
			p = randomDegree / float64(size-1)
		}
		if p > probMax {
			p = probMax
		}
		return RandomSparse(size, p), nil
	}

	return nil, fmt.Errorf("builder: unknown fixture %q (want one of %v): %w", name, FixtureNames(), ErrConstructFailed)
}
