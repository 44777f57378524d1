package terrain

import "math/rand"

// GradientTable holds a seeded permutation of 0..255, duplicated to 512
// entries so that corner lookups of the form perm[i] and perm[i+1] stay in
// range without a modulo. Built once per seed and never mutated, so it can
// be shared by any number of concurrent evaluations.
type GradientTable struct {
	perm [512]int
}

// NewGradientTable builds the permutation for the given seed. Equal seeds
// produce identical tables.
func NewGradientTable(seed int64) *GradientTable {
	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	t := &GradientTable{}
	for i := range t.perm {
		t.perm[i] = p[i&255]
	}
	return t
}

// Hash maps any integer lattice index to a table entry.
func (t *GradientTable) Hash(i int) int {
	return t.perm[i&255]
}
