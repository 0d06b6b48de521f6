// Package dataset loads and filters robotics manipulation episode metadata.
// Records are read-only once loaded; views receive ordered slices of them
// and must never mutate the underlying entries.
package dataset

// ObjectRef is one manipulated object with its category hierarchy.
// Levels are filled from the top down; empty strings mark unused depths.
type ObjectRef struct {
	Name   string    `json:"object_name" yaml:"object_name"`
	Levels [5]string `json:"-" yaml:"-"`
}

// Record is one dataset episode.
type Record struct {
	UUID           string      `json:"dataset_uuid" yaml:"dataset_uuid"`
	Name           string      `json:"dataset_name" yaml:"dataset_name"`
	Tasks          []string    `json:"task_descriptions" yaml:"task_descriptions"`
	Scenes         []string    `json:"scene_type" yaml:"scene_type"`
	Actions        []string    `json:"atomic_actions" yaml:"atomic_actions"`
	Objects        []ObjectRef `json:"objects" yaml:"objects"`
	Devices        []string    `json:"device_model" yaml:"device_model"`
	Effector       string      `json:"end_effector_type" yaml:"end_effector_type"`
	PlatformHeight float64     `json:"operation_platform_height" yaml:"operation_platform_height"`

	// Media asset references, resolved relative to the dataset root.
	ClipPath   string `json:"clip_path" yaml:"clip_path"`
	PosterPath string `json:"poster_path" yaml:"poster_path"`
}

// Identity returns the stable unique key used for tile and cache keying.
func (r *Record) Identity() string {
	return r.UUID
}

// Title returns the best human-readable label for the record.
func (r *Record) Title() string {
	if r.Name != "" {
		return r.Name
	}
	return r.UUID
}

// Categories returns the distinct top-level object categories of the record.
func (r *Record) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range r.Objects {
		c := o.Levels[0]
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// HasCategory reports whether any object of the record carries the given
// category at any hierarchy depth.
func (r *Record) HasCategory(cat string) bool {
	for _, o := range r.Objects {
		for _, l := range o.Levels {
			if l == cat {
				return true
			}
		}
	}
	return false
}
