package filesystem_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/example/contrack/internal/adapters/filesystem"
	"github.com/example/contrack/internal/core/loadout"
)

func TestLoadoutStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "loadouts")
	store := filesystem.NewLoadoutStore(dir)
	ctx := context.Background()

	t.Run("empty before the directory exists", func(t *testing.T) {
		names, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(names) != 0 {
			t.Errorf("expected no loadouts, got %v", names)
		}
	})

	original := loadout.Default()
	original.Name = "team"
	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, &loadout.Loadout{Name: "alpha"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Run("lists saved names in order", func(t *testing.T) {
		names, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if !reflect.DeepEqual(names, []string{"alpha", "team"}) {
			t.Errorf("names = %v", names)
		}
	})

	t.Run("reads back the same content", func(t *testing.T) {
		got, err := store.Get(ctx, "team")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !reflect.DeepEqual(got, original) {
			t.Errorf("got %+v\nwant %+v", got, original)
		}
	})

	t.Run("missing loadout is nil", func(t *testing.T) {
		got, err := store.Get(ctx, "missing")
		if err != nil || got != nil {
			t.Errorf("Get(missing) = %v, %v; want nil, nil", got, err)
		}
	})

	t.Run("rejects unsafe names", func(t *testing.T) {
		if _, err := store.Get(ctx, "../escape"); err == nil {
			t.Error("expected error for unsafe name")
		}
	})

	t.Run("deletes a loadout", func(t *testing.T) {
		if err := store.Delete(ctx, "alpha"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "alpha.yaml")); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("file still present: %v", err)
		}
		if err := store.Delete(ctx, "alpha"); err == nil {
			t.Error("expected error deleting a missing loadout")
		}
	})
}
