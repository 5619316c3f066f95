package idgen

import "fmt"

// DefaultVerifyCount is the number of IDs VerifyUniqueness generates.
const DefaultVerifyCount = 100_000

// DuplicateReport describes repeated values in a batch.
// HasDuplicateFree is true when no duplicates were found.
type DuplicateReport struct {
	HasDuplicateFree bool     `json:"has_duplicate_free"`
	CollisionNotes   []string `json:"collision_notes"`
	DuplicateValues  []ID     `json:"duplicate_values"`
}

// VerifyUniqueness generates DefaultVerifyCount IDs and reports whether all
// of them were distinct.
func (g *Generator) VerifyUniqueness() (bool, error) {
	return g.VerifyUniquenessN(DefaultVerifyCount)
}

// VerifyUniquenessN is VerifyUniqueness with n trials.
func (g *Generator) VerifyUniquenessN(n int) (bool, error) {
	return Verify(g.Generate, n)
}

// FindDuplicates reports repeated values in values.
func (g *Generator) FindDuplicates(values []ID) DuplicateReport {
	return FindDuplicates(values)
}

// Verify calls next n times and returns false at the first repeated ID.
func Verify(next func() (ID, error), n int) (bool, error) {
	seen := make(map[ID]struct{}, max(n, 0))
	for i := 0; i < n; i++ {
		id, err := next()
		if err != nil {
			return false, err
		}
		if _, ok := seen[id]; ok {
			return false, nil
		}
		seen[id] = struct{}{}
	}
	return true, nil
}

// FindDuplicates compares every value against the first occurrence of the
// same value. Each later occurrence yields one collision note and one entry
// in DuplicateValues. values is not modified.
func FindDuplicates(values []ID) DuplicateReport {
	first := make(map[ID]int, len(values))
	for i, v := range values {
		if _, ok := first[v]; !ok {
			first[v] = i
		}
	}

	report := DuplicateReport{
		CollisionNotes:  []string{},
		DuplicateValues: []ID{},
	}
	for i, v := range values {
		if j := first[v]; j != i {
			report.CollisionNotes = append(report.CollisionNotes, fmt.Sprintf("Case %d and %d are duplicates", i, j))
			report.DuplicateValues = append(report.DuplicateValues, v)
		}
	}
	report.HasDuplicateFree = len(report.DuplicateValues) == 0
	return report
}
