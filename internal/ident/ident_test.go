package ident

import "testing"

func TestNext(t *testing.T) {
	t.Run("strictly_increasing", func(t *testing.T) {
		var g Generator
		prev := int64(0)
		for i := 0; i < 1000; i++ {
			id := g.Next()
			if id <= prev {
				t.Fatalf("expected strictly increasing IDs, got %d after %d", id, prev)
			}
			prev = id
		}
	})

	t.Run("unique_under_rapid_generation", func(t *testing.T) {
		var g Generator
		seen := make(map[int64]bool)
		for i := 0; i < 500; i++ {
			id := g.Next()
			if seen[id] {
				t.Fatalf("ID %d issued twice", id)
			}
			seen[id] = true
		}
	})
}

func TestSeed(t *testing.T) {
	t.Run("never_reissues_seeded_id", func(t *testing.T) {
		var g Generator
		seeded := int64(1<<62 - 1)
		g.Seed(seeded)
		if id := g.Next(); id <= seeded {
			t.Errorf("expected ID greater than seed %d, got %d", seeded, id)
		}
	})

	t.Run("seeding_backwards_is_ignored", func(t *testing.T) {
		var g Generator
		first := g.Next()
		g.Seed(first - 1000)
		if id := g.Next(); id <= first {
			t.Errorf("expected ID greater than %d after backwards seed, got %d", first, id)
		}
	})
}
