package core_test

import (
	"testing"
	"time"

	"github.com/lorekeep/lorekeep/pkg/core"
)

func TestNewStore(t *testing.T) {
	s := core.NewStore()

	if s.Meta.Version != core.SchemaVersion {
		t.Errorf("expected schema version %d, got %d", core.SchemaVersion, s.Meta.Version)
	}
	if s.Settings.CampaignName != "Untitled Campaign" {
		t.Errorf("unexpected campaign name: %q", s.Settings.CampaignName)
	}
	if s.Settings.System != "D&D 5e" {
		t.Errorf("unexpected system: %q", s.Settings.System)
	}
	for _, sec := range core.Sections {
		if _, ok := s.Order[sec.Key]; !ok {
			t.Errorf("missing order list for section %s", sec.Key)
		}
	}
	if err := s.CheckIntegrity(); err != nil {
		t.Errorf("fresh store fails integrity: %v", err)
	}
}

func TestStoreClone(t *testing.T) {
	s := core.DefaultStore()
	c := s.Clone()

	// Mutating the clone must not leak into the original.
	for id, n := range c.Items {
		n.Title = "mutated"
		c.Order[n.Section] = append(c.Order[n.Section], "bogus")
		_ = id
		break
	}

	for _, n := range s.Items {
		if n.Title == "mutated" {
			t.Fatal("clone shares note pointers with original")
		}
	}
	for _, sec := range core.Sections {
		for _, id := range s.Order[sec.Key] {
			if id == "bogus" {
				t.Fatal("clone shares order slices with original")
			}
		}
	}
}

func TestStoreFindByTitle(t *testing.T) {
	s := core.DefaultStore()

	t.Run("Case Insensitive", func(t *testing.T) {
		n := s.FindByTitle("cAPTAIN mERROW")
		if n == nil || n.Title != "Captain Merrow" {
			t.Fatalf("expected Captain Merrow, got %+v", n)
		}
	})

	t.Run("Trimmed", func(t *testing.T) {
		n := s.FindByTitle("  Town of Ashford  ")
		if n == nil || n.Title != "Town of Ashford" {
			t.Fatalf("expected Town of Ashford, got %+v", n)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if n := s.FindByTitle("Ghost Port"); n != nil {
			t.Fatalf("expected nil, got %+v", n)
		}
	})
}

func TestDefaultStoreSeed(t *testing.T) {
	s := core.DefaultStore()

	if len(s.Items) != 7 {
		t.Fatalf("expected 7 seeded notes, got %d", len(s.Items))
	}
	if err := s.CheckIntegrity(); err != nil {
		t.Fatalf("seeded store fails integrity: %v", err)
	}

	for _, title := range []string{
		"Campaign premise",
		"First session plan",
		"Captain Merrow",
		"Town of Ashford",
		"Missing lanterns",
		"Session 0 (template)",
		"Potion of Night-Glass",
	} {
		if s.FindByTitle(title) == nil {
			t.Errorf("seed missing note %q", title)
		}
	}

	// Two fresh stores must not share note ids.
	other := core.DefaultStore()
	for id := range s.Items {
		if _, clash := other.Items[id]; clash {
			t.Fatal("seeded ids are not unique across stores")
		}
	}
}

func TestStoreStamp(t *testing.T) {
	s := core.NewStore()
	before := s.Meta.UpdatedAt
	time.Sleep(time.Millisecond)
	s.Stamp()
	if !s.Meta.UpdatedAt.After(before) {
		t.Error("Stamp did not advance updatedAt")
	}
}
