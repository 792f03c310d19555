package gilded_test

import (
	"errors"
	"testing"

	"github.com/gilded-go/gilded"
)

func TestUse_CachesSchema(t *testing.T) {
	gilded.Reset()
	t.Cleanup(gilded.Reset)

	builds := 0
	build := func() (*gilded.Schema, error) {
		builds++
		return gilded.NewSchema(formulaDesc)
	}

	first, err := gilded.Use("formula", build)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	second, err := gilded.Use("formula", build)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if first != second {
		t.Error("Use() should return the cached schema instance")
	}
	if builds != 1 {
		t.Errorf("build ran %d times, want 1", builds)
	}
}

func TestUse_BuildErrorNotCached(t *testing.T) {
	gilded.Reset()
	t.Cleanup(gilded.Reset)

	boom := errors.New("bad config")
	if _, err := gilded.Use("broken", func() (*gilded.Schema, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("Use() error = %v, want %v", err, boom)
	}

	// A later build under the same name still runs.
	schema, err := gilded.Use("broken", func() (*gilded.Schema, error) {
		return gilded.NewSchema(formulaDesc)
	})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	if schema == nil {
		t.Error("Use() should build after a prior failure")
	}
}

func TestReset(t *testing.T) {
	gilded.Reset()
	t.Cleanup(gilded.Reset)

	first, err := gilded.Use("formula", func() (*gilded.Schema, error) {
		return gilded.NewSchema(formulaDesc)
	})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	gilded.Reset()

	second, err := gilded.Use("formula", func() (*gilded.Schema, error) {
		return gilded.NewSchema(formulaDesc)
	})
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if first == second {
		t.Error("Reset() should drop cached schemas")
	}
}
