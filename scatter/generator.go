// Package scatter places vocabulary words at random non-overlapping
// positions on a bounded character grid.
//
// Placement is best-effort: each word gets a bounded number of
// collision-avoiding attempts and then an unchecked fallback position,
// so generation always terminates and every sampled word that fits the
// canvas width is placed. Words wider than the canvas are dropped.
package scatter

import (
	"math/rand"
	"time"
	"unicode/utf8"
)

const (
	// cellsPerWord is the canvas area, in cells, budgeted per word at
	// density 1.0.
	cellsPerWord = 40

	// maxAttempts caps the collision-avoiding placement tries per word
	// before the unchecked fallback is used.
	maxAttempts = 100

	// minGap is the minimum number of empty cells required between two
	// words on the same row.
	minGap = 2
)

// Word is one vocabulary entry available for placement. Source is the
// document it came from and may be empty.
type Word struct {
	Text   string
	Source string
}

// Placement is one word's assigned position. The word occupies the cells
// [X, X+len) on row Y, where len is the word's length in runes.
type Placement struct {
	Word   string
	X      int
	Y      int
	Source string
}

// Generator produces randomized scatters from a fixed word pool.
type Generator struct {
	pool []Word
	rng  *rand.Rand
}

// NewGenerator creates a Generator with its own time-seeded random
// source. Successive Generate calls yield different scatters.
func NewGenerator(pool []Word) *Generator {
	return NewGeneratorWithRand(pool, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGeneratorWithRand creates a Generator drawing randomness from rng.
// Callers that need reproducible scatters pass a seeded source.
func NewGeneratorWithRand(pool []Word, rng *rand.Rand) *Generator {
	return &Generator{pool: pool, rng: rng}
}

// FromStrings wraps bare words (no source attribution) for placement.
func FromStrings(words []string) []Word {
	pool := make([]Word, len(words))
	for i, w := range words {
		pool[i] = Word{Text: w}
	}
	return pool
}

// PoolSize returns the number of words available for placement.
func (g *Generator) PoolSize() int {
	return len(g.pool)
}

// Generate samples a density-scaled subset of the pool and places each
// word on a width×height grid. The returned order is stable for the life
// of the slice, so callers may key selection state by index. A canvas too
// small for any word yields an empty result, not an error.
func (g *Generator) Generate(width, height int, density float64) []Placement {
	if width <= 0 || height <= 0 {
		return []Placement{}
	}

	count := g.drawCount(width*height, density)
	selected := g.sample(count)

	// A fresh shuffle decides which words get first pick of positions.
	g.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	placements := make([]Placement, 0, len(selected))
	occupied := make([]span, 0, len(selected))

	for _, w := range selected {
		wlen := utf8.RuneCountInString(w.Text)
		if wlen > width {
			continue // can never fit, drop silently
		}
		maxX := width - wlen

		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			x := g.rng.Intn(maxX + 1)
			y := g.rng.Intn(height)

			if overlapsTight(x, y, wlen, occupied) {
				continue
			}

			occupied = append(occupied, span{x: x, y: y, width: wlen})
			placements = append(placements, Placement{Word: w.Text, X: x, Y: y, Source: w.Source})
			placed = true
			break
		}

		// Unchecked fallback: the word fits the canvas, so place it
		// even if every attempt collided.
		if !placed {
			x := g.rng.Intn(maxX + 1)
			y := g.rng.Intn(height)
			placements = append(placements, Placement{Word: w.Text, X: x, Y: y, Source: w.Source})
		}
	}

	return placements
}

// drawCount picks how many words to place for the given canvas area and
// density. The count is randomized inside a ±30% band around the area
// budget so successive generations vary. Clamp order matters when the
// pool is small: the lower clamp to 2 happens before the pool-size cap.
func (g *Generator) drawCount(area int, density float64) int {
	if area < 0 {
		area = 0
	}

	base := int(float64(area) / cellsPerWord * density)
	if base < 2 {
		base = 2
	}

	minCount := base * 70 / 100
	if minCount < 2 {
		minCount = 2
	}
	maxCount := base * 130 / 100
	if maxCount > len(g.pool) {
		maxCount = len(g.pool)
	}

	if minCount < maxCount {
		return minCount + g.rng.Intn(maxCount-minCount+1)
	}
	if minCount > len(g.pool) {
		return len(g.pool)
	}
	return minCount
}

// sample draws count distinct words from the pool without replacement.
func (g *Generator) sample(count int) []Word {
	if count > len(g.pool) {
		count = len(g.pool)
	}
	if count <= 0 {
		return nil
	}

	perm := g.rng.Perm(len(g.pool))
	selected := make([]Word, count)
	for i := 0; i < count; i++ {
		selected[i] = g.pool[perm[i]]
	}
	return selected
}

// span records the cells one placed word occupies.
type span struct {
	x, y  int
	width int
}

// overlapsTight reports whether a candidate at (x, y) with the given
// width conflicts with an already-placed word: same row and horizontal
// spans intersecting once each is padded by minGap on both sides. Words
// on different rows never conflict.
func overlapsTight(x, y, width int, occupied []span) bool {
	for _, s := range occupied {
		if s.y != y {
			continue
		}
		if x+width+minGap > s.x && x < s.x+s.width+minGap {
			return true
		}
	}
	return false
}
