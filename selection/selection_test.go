package selection

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RogersPyke/robocoin-visualizer/dataset"
)

func TestToggleSelect(t *testing.T) {
	s := New()

	if !s.ToggleSelect("a") {
		t.Fatal("first toggle should select")
	}
	if !s.IsSelected("a") || s.SelectedCount() != 1 {
		t.Fatal("a should be selected")
	}
	if s.ToggleSelect("a") {
		t.Fatal("second toggle should deselect")
	}
	if s.IsSelected("a") {
		t.Fatal("a should be deselected")
	}
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	s := New()
	s.ToggleCart("c")
	s.ToggleCart("a")
	s.ToggleCart("b")
	s.ToggleCart("a") // remove from the middle

	got := s.CartIDs()
	if len(got) != 2 || got[0] != "c" || got[1] != "b" {
		t.Fatalf("unexpected cart order %v", got)
	}
	if s.InCart("a") {
		t.Fatal("a should have been removed")
	}
}

func TestAddSelectionToCart(t *testing.T) {
	s := New()
	s.ToggleCart("a")
	s.ToggleSelect("a")
	s.ToggleSelect("b")

	if added := s.AddSelectionToCart(); added != 1 {
		t.Fatalf("expected 1 added, got %d", added)
	}
	if s.CartCount() != 2 {
		t.Fatalf("expected cart of 2, got %d", s.CartCount())
	}
}

func catalogFixture(t *testing.T, dir string) string {
	t.Helper()
	const meta = `{
  "pick_cup_a_1001": {"dataset_uuid": "uuid-a", "dataset_name": "pick_cup_a_1001"},
  "stack_box_b_1002": {"dataset_uuid": "uuid-b", "dataset_name": "stack_box_b_1002"}
}`
	root := filepath.Join(dir, "data")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "metadata.json"), []byte(meta), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	root := catalogFixture(t, dir)

	cat, err := dataset.Load(root)
	if err != nil {
		t.Fatal(err)
	}

	s := New()
	s.ToggleCart(cat.Records[1].UUID)
	s.ToggleCart(cat.Records[0].UUID)
	s.ToggleCart("no-such-record")

	m := BuildManifest(s, cat, time.Unix(1735689600, 0))
	if m.Count != 2 {
		t.Fatalf("expected 2 items, got %d", m.Count)
	}
	if m.Items[0].UUID != cat.Records[1].UUID {
		t.Fatal("manifest should preserve cart order")
	}

	path := filepath.Join(dir, "cart.json")
	if err := WriteManifest(path, m); err != nil {
		t.Fatal(err)
	}
	back, err := ReadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Count != 2 || len(back.Items) != 2 || back.Items[1].Name != m.Items[1].Name {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestDownloadScript(t *testing.T) {
	m := Manifest{Items: []ManifestItem{
		{UUID: "u2", Name: "b", ClipPath: "videos/b.mp4"},
		{UUID: "u1", Name: "a", ClipPath: "videos/a.mp4"},
		{UUID: "u3", Name: "c"}, // no clip, skipped
	}}

	script := DownloadScript(m, "https://example.com/data/")
	lines := strings.Split(strings.TrimSpace(script), "\n")
	if len(lines) != 4 {
		t.Fatalf("unexpected script:\n%s", script)
	}
	if !strings.Contains(lines[2], `"https://example.com/data/videos/a.mp4"`) {
		t.Fatalf("expected a.mp4 first, got %q", lines[2])
	}
	if strings.Contains(script, "u3") || strings.Contains(script, `""`) {
		t.Fatalf("clipless item should be skipped:\n%s", script)
	}
}
