// Package grading holds the small pure helpers from the basics exercises:
// letter grading, fizzbuzz sequences, string repetition and failure-free
// division.
package grading

import "strconv"

// Grade maps a numeric score to one of five letter grades using descending
// threshold bands. There is no bounds checking: scores above 100 or below 0
// still map through the same bands.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// FizzBuzz builds the fizzbuzz sequence for 1..n. Multiples of 3 become
// "Fizz", multiples of 5 "Buzz", multiples of both "FizzBuzz"; every other
// entry is its decimal representation. A non-positive n yields an empty
// sequence.
func FizzBuzz(n int) []string {
	if n <= 0 {
		return nil
	}

	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		var s string
		if i%3 == 0 {
			s += "Fizz"
		}
		if i%5 == 0 {
			s += "Buzz"
		}
		if s == "" {
			s = strconv.Itoa(i)
		}
		out = append(out, s)
	}

	return out
}

// Repeat joins s with itself times times, separated by sep.
// A non-positive times yields the empty string.
func Repeat(s string, times int, sep string) string {
	if times <= 0 {
		return ""
	}

	out := s
	for i := 1; i < times; i++ {
		out += sep + s
	}

	return out
}

// SafeDiv divides a by b and reports whether a result exists. Division by
// zero and operands that are not numeric are both a normal "no result"
// outcome, never a panic or an error.
func SafeDiv(a, b any) (float64, bool) {
	x, ok := toFloat(a)
	if !ok {
		return 0, false
	}

	y, ok := toFloat(b)
	if !ok || y == 0 {
		return 0, false
	}

	return x / y, true
}

// toFloat widens any Go numeric kind to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
