package handle

import (
	"errors"
	"testing"
)

func TestTable_PutGet(t *testing.T) {
	tbl := NewTable[string]()

	h := tbl.Put("value")
	if h == 0 {
		t.Fatal("Put() returned the zero handle")
	}

	got, err := tbl.Get(h)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "value" {
		t.Errorf("Get() = %q, want %q", got, "value")
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestTable_ZeroHandle(t *testing.T) {
	tbl := NewTable[int]()
	if _, err := tbl.Get(0); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Get(0) error = %v, want ErrStaleHandle", err)
	}
}

func TestTable_DoubleRelease(t *testing.T) {
	tbl := NewTable[int]()
	h := tbl.Put(7)

	got, err := tbl.Release(h)
	if err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if got != 7 {
		t.Errorf("Release() = %d, want 7", got)
	}

	if _, err := tbl.Release(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("second Release() error = %v, want ErrStaleHandle", err)
	}
	if _, err := tbl.Get(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Get() after Release error = %v, want ErrStaleHandle", err)
	}
}

func TestTable_RecycledSlotRejectsOldHandle(t *testing.T) {
	tbl := NewTable[int]()

	old := tbl.Put(1)
	if _, err := tbl.Release(old); err != nil {
		t.Fatalf("Release() error = %v", err)
	}

	// Reusing the slot bumps the generation; the old handle stays dead.
	fresh := tbl.Put(2)
	if fresh == old {
		t.Fatal("recycled slot issued an identical handle")
	}
	if _, err := tbl.Get(old); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Get(old) error = %v, want ErrStaleHandle", err)
	}
	got, err := tbl.Get(fresh)
	if err != nil {
		t.Fatalf("Get(fresh) error = %v", err)
	}
	if got != 2 {
		t.Errorf("Get(fresh) = %d, want 2", got)
	}
}

func TestTable_Len(t *testing.T) {
	tbl := NewTable[int]()
	h1 := tbl.Put(1)
	tbl.Put(2)
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
	tbl.Release(h1)
	if tbl.Len() != 1 {
		t.Errorf("Len() after release = %d, want 1", tbl.Len())
	}
}
