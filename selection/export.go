package selection

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/RogersPyke/robocoin-visualizer/dataset"
)

// Manifest is the cart export format: enough to re-fetch every clip
// without the browser.
type Manifest struct {
	ExportedAt time.Time      `json:"exported_at"`
	Count      int            `json:"count"`
	Items      []ManifestItem `json:"items"`
}

type ManifestItem struct {
	UUID     string `json:"dataset_uuid"`
	Name     string `json:"dataset_name"`
	ClipPath string `json:"clip_path,omitempty"`
}

// BuildManifest resolves cart identities against the catalog. Identities
// with no backing record are skipped; the cart may outlive a reload.
func BuildManifest(s *Set, cat *dataset.Catalog, now time.Time) Manifest {
	m := Manifest{ExportedAt: now.UTC()}
	for _, id := range s.CartIDs() {
		rec, ok := cat.Get(id)
		if !ok {
			continue
		}
		m.Items = append(m.Items, ManifestItem{
			UUID:     rec.UUID,
			Name:     rec.Name,
			ClipPath: rec.ClipPath,
		})
	}
	m.Count = len(m.Items)
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a previously exported manifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// DownloadScript renders a shell script fetching every clip in the
// manifest from baseURL, one curl invocation per item.
func DownloadScript(m Manifest, baseURL string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\nset -e\n")
	items := append([]ManifestItem(nil), m.Items...)
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	for _, it := range items {
		if it.ClipPath == "" {
			continue
		}
		fmt.Fprintf(&b, "curl -fLo %q %q\n",
			it.ClipPath,
			strings.TrimRight(baseURL, "/")+"/"+it.ClipPath)
	}
	return b.String()
}
