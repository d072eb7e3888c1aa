//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

func TestShuffle(t *testing.T) {
	t.Parallel()

	t.Run("should keep every element", func(t *testing.T) {
		t.Parallel()

		// given
		items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

		// when
		result := entities.Shuffle(items, entities.NewSeededRand(42))

		// then
		assert.ElementsMatch(t, items, result)
	})

	t.Run("should not mutate the input", func(t *testing.T) {
		t.Parallel()

		// given
		items := []string{"a", "b", "c", "d", "e"}

		// when
		_ = entities.Shuffle(items, entities.NewSeededRand(7))

		// then
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
	})

	t.Run("should be reproducible for the same seed", func(t *testing.T) {
		t.Parallel()

		// given
		items := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

		// when
		first := entities.Shuffle(items, entities.NewSeededRand(1234))
		second := entities.Shuffle(items, entities.NewSeededRand(1234))

		// then
		assert.Equal(t, first, second)
	})

	t.Run("should handle empty and single-element input", func(t *testing.T) {
		t.Parallel()

		// given
		var empty []string
		single := []string{"only"}

		// when
		emptyResult := entities.Shuffle(empty, nil)
		singleResult := entities.Shuffle(single, nil)

		// then
		assert.Empty(t, emptyResult)
		assert.Equal(t, []string{"only"}, singleResult)
	})

	t.Run("should produce every permutation over many runs", func(t *testing.T) {
		t.Parallel()

		// given
		items := []string{"a", "b", "c"}
		rng := entities.NewSeededRand(99)
		seen := map[string]int{}

		// when
		for range 600 {
			result := entities.Shuffle(items, rng)
			seen[result[0]+result[1]+result[2]]++
		}

		// then
		assert.Len(t, seen, 6)
		for permutation, count := range seen {
			assert.Greater(t, count, 50, "permutation %s is underrepresented", permutation)
		}
	})
}
