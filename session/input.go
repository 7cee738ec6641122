package session

import "strconv"

// ParseWeight parses a weight entry from the set editor. Input that is
// not a non-negative number keeps the prior value, so a typo never
// zeroes a set or pushes an invalid draft into the autosave loop.
func ParseWeight(input string, prior float64) float64 {
	weight, err := strconv.ParseFloat(input, 64)
	if err != nil || weight < 0 {
		return prior
	}
	return weight
}

// ParseRepetitions parses a repetition-count entry, keeping the prior
// value on invalid or negative input.
func ParseRepetitions(input string, prior int) int {
	repetitions, err := strconv.Atoi(input)
	if err != nil || repetitions < 0 {
		return prior
	}
	return repetitions
}
