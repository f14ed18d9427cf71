package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/iho/moneyflow/internal/domain"
	"github.com/iho/moneyflow/internal/store"
)

func TestStore_CreateRead(t *testing.T) {
	s := store.New[domain.Customer]()

	created := s.Create(domain.Customer{ID: 1, DataHash: "abc"})
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	got, err := s.Read(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.DataHash != "abc" {
		t.Errorf("expected data hash %q, got %q", "abc", got.DataHash)
	}
}

func TestStore_ReadMissing(t *testing.T) {
	s := store.New[domain.Customer]()

	if _, err := s.Read(42); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_UpdateInsertsAbsent(t *testing.T) {
	s := store.New[domain.Customer]()

	// Update is an upsert: no existence check.
	s.Update(domain.Customer{ID: 7, DataHash: "new"})

	got, err := s.Read(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.DataHash != "new" {
		t.Errorf("expected data hash %q, got %q", "new", got.DataHash)
	}
}

func TestStore_Delete(t *testing.T) {
	s := store.New[domain.Customer]()
	s.Create(domain.Customer{ID: 1, DataHash: "abc"})

	removed := s.Delete(1)
	if removed.DataHash != "abc" {
		t.Errorf("expected removed entity, got %+v", removed)
	}

	if _, err := s.Read(1); !errors.Is(err, store.ErrNotFound) {
		t.Error("entity should be gone after delete")
	}

	// Deleting an absent id succeeds with the zero value.
	zero := s.Delete(1)
	if zero.ID != 0 {
		t.Errorf("expected zero value, got %+v", zero)
	}
}

func TestStore_Select(t *testing.T) {
	s := store.New[domain.Customer]()

	base := time.Unix(1000, 0).UTC()
	s.Create(domain.Customer{ID: 1, CreatedAt: base.Add(3 * time.Second), Blocked: true})
	s.Create(domain.Customer{ID: 2, CreatedAt: base.Add(1 * time.Second), Blocked: true})
	s.Create(domain.Customer{ID: 3, CreatedAt: base.Add(2 * time.Second), Blocked: false})

	blocked := s.Select(
		func(c domain.Customer) bool { return c.Blocked },
		func(a, b domain.Customer) bool { return a.CreatedAt.Before(b.CreatedAt) },
	)

	if len(blocked) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(blocked))
	}

	if blocked[0].ID != 2 || blocked[1].ID != 1 {
		t.Errorf("expected order [2 1], got [%d %d]", blocked[0].ID, blocked[1].ID)
	}
}

// Entities are stored and returned by value: mutating what Read returned
// must not leak into the store.
func TestStore_CopyOnRead(t *testing.T) {
	s := store.New[domain.Customer]()
	s.Create(domain.Customer{ID: 1, DataHash: "original"})

	got, _ := s.Read(1)
	got.DataHash = "mutated"

	again, _ := s.Read(1)
	if again.DataHash != "original" {
		t.Error("mutation of a read value leaked into the store")
	}
}

func TestSequence(t *testing.T) {
	var seq store.Sequence

	for want := int64(1); want <= 3; want++ {
		if got := seq.Next(); got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}
