// Package collections groups the record and sequence helpers from the
// idioms exercises: filtering, identity-based dedup, keyed aggregation and a
// couple of comprehension-style transforms.
package collections

import (
	"sort"

	"goworkshop/models"
)

// Entry is one row fed into SumByKey: a grouping key and a value to sum.
type Entry struct {
	Key   string
	Value int
}

// GroupTotal is the aggregated result for one distinct key.
type GroupTotal struct {
	Key   string
	Total int
}

// SumByKey sums Value per distinct Key and returns one GroupTotal per key,
// ordered by ascending key.
//
// The aggregation itself is an adjacent-run pass and is only correct on
// key-sorted input, so the function sorts a copy of entries first rather
// than trusting the caller to have sorted. Callers that already hold
// sorted data pay the sort again.
func SumByKey(entries []Entry) []GroupTotal {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	totals := make([]GroupTotal, 0, len(sorted))
	current := GroupTotal{Key: sorted[0].Key}
	for _, e := range sorted {
		if e.Key != current.Key {
			totals = append(totals, current)
			current = GroupTotal{Key: e.Key}
		}
		current.Total += e.Value
	}
	totals = append(totals, current)

	return totals
}

// ActiveUsers returns the users whose Active flag is set, preserving the
// input order.
func ActiveUsers(users []models.User) []models.User {
	active := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Active {
			active = append(active, u)
		}
	}

	return active
}

// DedupeByID drops records whose identity was already seen, keeping the
// first occurrence and its position. Records with equal identity but
// different contents are still duplicates.
func DedupeByID[R models.Record](records []R) []R {
	seen := make(map[int64]struct{}, len(records))
	result := make([]R, 0, len(records))
	for _, r := range records {
		id := r.Identity()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, r)
	}

	return result
}

// ScoreMap zips names and scores into a map. Extra entries on the longer
// slice are ignored.
func ScoreMap(names []string, scores []int) map[string]int {
	n := len(names)
	if len(scores) < n {
		n = len(scores)
	}

	m := make(map[string]int, n)
	for i := 0; i < n; i++ {
		m[names[i]] = scores[i]
	}

	return m
}

// EvenSquares returns the squares of the even inputs, in input order.
func EvenSquares(nums []int) []int {
	out := make([]int, 0, len(nums))
	for _, n := range nums {
		if n%2 == 0 {
			out = append(out, n*n)
		}
	}

	return out
}
