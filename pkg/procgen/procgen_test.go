package procgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	t.Run("empty string maps to zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), Seed(""))
	})

	t.Run("seed is the byte-value sum", func(t *testing.T) {
		assert.Equal(t, uint64('a'+'b'+'c'), Seed("abc"))
	})

	t.Run("same identifier always yields same seed", func(t *testing.T) {
		assert.Equal(t, Seed("route_easy_12345"), Seed("route_easy_12345"))
	})

	t.Run("order independent", func(t *testing.T) {
		assert.Equal(t, Seed("ab"), Seed("ba"))
	})
}

func TestSeedFor(t *testing.T) {
	t.Run("no discriminators equals plain seed", func(t *testing.T) {
		assert.Equal(t, Seed("trail_1"), SeedFor("trail_1"))
	})

	t.Run("discriminator changes the seed", func(t *testing.T) {
		assert.NotEqual(t, SeedFor("trail_1", "history"), SeedFor("trail_1", "fantasy"))
	})

	t.Run("each discriminated seed is itself stable", func(t *testing.T) {
		assert.Equal(t, SeedFor("trail_1", "history"), SeedFor("trail_1", "history"))
	})
}

func TestNewReproducesSequences(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestSample(t *testing.T) {
	bank := []string{"a", "b", "c", "d", "e"}

	t.Run("draws without replacement", func(t *testing.T) {
		out := Sample(New(7), bank, 5)
		assert.Len(t, out, 5)
		seen := map[string]bool{}
		for _, v := range out {
			assert.False(t, seen[v], "duplicate draw %q", v)
			seen[v] = true
		}
	})

	t.Run("count beyond bank size returns whole bank", func(t *testing.T) {
		out := Sample(New(7), bank, 50)
		assert.Len(t, out, len(bank))
	})

	t.Run("zero or negative count returns nothing", func(t *testing.T) {
		assert.Nil(t, Sample(New(7), bank, 0))
		assert.Nil(t, Sample(New(7), bank, -1))
	})

	t.Run("same seed same selection", func(t *testing.T) {
		assert.Equal(t, Sample(New(99), bank, 3), Sample(New(99), bank, 3))
	})
}

func TestBetween(t *testing.T) {
	rng := New(1)
	for i := 0; i < 100; i++ {
		v := Between(rng, 3, 10)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 10)
	}
	assert.Equal(t, 5, Between(rng, 5, 5))
	assert.Equal(t, 5, Between(rng, 5, 2))
}

func TestFloatBetween(t *testing.T) {
	rng := New(1)
	for i := 0; i < 100; i++ {
		v := FloatBetween(rng, 1.5, 8.5)
		assert.GreaterOrEqual(t, v, 1.5)
		assert.Less(t, v, 8.5)
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 3.1, Round1(3.14))
	assert.Equal(t, 3.2, Round1(3.15))
	assert.Equal(t, 0.0, Round1(0.04))
}

func TestIDSuffix(t *testing.T) {
	assert.Equal(t, "12345", IDSuffix("route_easy_12345", 5))
	assert.Equal(t, "ab", IDSuffix("ab", 5))
	assert.Equal(t, "", IDSuffix("", 5))
}
