package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	consolidatedFile = "metadata.json"
	metadataDir      = "metadata"
	clipsDir         = "videos"
	postersDir       = "posters"
)

// Catalog holds the loaded record set in stable load order.
type Catalog struct {
	Root    string
	Records []*Record

	byUUID map[string]*Record
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.Records)
}

// Get returns the record with the given identity.
func (c *Catalog) Get(uuid string) (*Record, bool) {
	r, ok := c.byUUID[uuid]
	return r, ok
}

// Load reads the dataset under root. The consolidated metadata.json is the
// fast path; when it is missing or unreadable the loader falls back to
// scanning per-record YAML sidecars. Records with duplicate identities are
// dropped (first wins) so the rendered sequence never repeats a key.
func Load(root string) (*Catalog, error) {
	cat := &Catalog{Root: root, byUUID: make(map[string]*Record)}

	records, err := loadConsolidated(filepath.Join(root, consolidatedFile))
	if err != nil {
		records, err = loadSidecars(filepath.Join(root, metadataDir))
		if err != nil {
			return nil, fmt.Errorf("load dataset %s: %w", root, err)
		}
	}

	for _, r := range records {
		if r.UUID == "" {
			continue
		}
		if _, dup := cat.byUUID[r.UUID]; dup {
			continue
		}
		resolveMedia(root, r)
		cat.byUUID[r.UUID] = r
		cat.Records = append(cat.Records, r)
	}

	return cat, nil
}

// loadConsolidated parses the single-file metadata index: an object mapping
// record name stems to their metadata.
func loadConsolidated(path string) ([]*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]*Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	stems := make([]string, 0, len(raw))
	for stem := range raw {
		stems = append(stems, stem)
	}
	sort.Strings(stems)

	records := make([]*Record, 0, len(raw))
	for _, stem := range stems {
		r := raw[stem]
		if r == nil {
			continue
		}
		if r.Name == "" {
			r.Name = stem
		}
		records = append(records, r)
	}
	return records, nil
}

// loadSidecars scans a directory of per-record YAML files. Unparseable
// files are skipped rather than failing the whole load.
func loadSidecars(dir string) ([]*Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var records []*Record
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var r Record
		if err := yaml.Unmarshal(data, &r); err != nil {
			continue
		}
		if r.Name == "" {
			r.Name = strings.TrimSuffix(name, ext)
		}
		records = append(records, &r)
	}
	return records, nil
}

// resolveMedia fills default clip and poster paths for records whose
// metadata does not carry explicit ones, mirroring the on-disk layout the
// generator produces. Paths stay dataset-relative.
func resolveMedia(root string, r *Record) {
	if r.ClipPath == "" {
		r.ClipPath = filepath.Join(clipsDir, r.Name+".mp4")
	}
	if r.PosterPath == "" {
		p := filepath.Join(postersDir, r.Name+".png")
		if _, err := os.Stat(filepath.Join(root, p)); err == nil {
			r.PosterPath = p
		}
	}
}
