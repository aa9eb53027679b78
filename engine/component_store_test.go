package engine

import (
	"slices"
	"testing"

	"github.com/lixenwraith/pickin-sticks/core"
)

func TestStoreSetGet(t *testing.T) {
	s := NewStore[int]()

	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(1, 11) // update keeps position

	if v, ok := s.Get(1); !ok || v != 11 {
		t.Fatalf("Get(1) = %d,%v, want 11,true", v, ok)
	}
	if _, ok := s.Get(3); ok {
		t.Error("Get(3) reported a missing entity present")
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
}

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[string]()
	for _, e := range []core.Entity{5, 1, 3} {
		s.Set(e, "x")
	}
	s.Set(1, "y")

	want := []core.Entity{5, 1, 3}
	if got := s.All(); !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 1)

	all := s.All()
	all[0] = 99

	if got := s.All(); got[0] != 1 {
		t.Errorf("All() exposed internal slice, got %v", got)
	}
}
