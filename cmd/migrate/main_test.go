package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAreas_OK(t *testing.T) {
	areas, err := loadAreas(filepath.Join("testdata", "catalog.json"))
	if err != nil {
		t.Fatalf("loadAreas: %v", err)
	}
	if len(areas) != 1 || areas[0].ID != "floor-3" {
		t.Fatalf("unexpected areas: %+v", areas)
	}
	if got := len(areas[0].Items); got != 2 {
		t.Fatalf("want 2 items, got %d", got)
	}
	if got := len(areas[0].Items[0].Foods); got != 3 {
		t.Fatalf("want 3 foods in lunch, got %d", got)
	}
}

func TestLoadAreas_Invalid(t *testing.T) {
	tests := map[string]string{
		"not_json":     `{`,
		"no_area_id":   `[{"name":"x"}]`,
		"no_item_id":   `[{"id":"a","items":[{"name":"y"}]}]`,
		"not_an_array": `{"id":"a"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.json")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := loadAreas(path); err == nil {
				t.Fatal("want error")
			}
		})
	}
}

func TestLoadAreas_MissingFile(t *testing.T) {
	if _, err := loadAreas(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("want error for missing file")
	}
}
