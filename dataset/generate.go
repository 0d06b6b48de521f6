package dataset

import (
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// Demo dataset vocabulary, matching the shape of real capture metadata.
var (
	demoRobots = []string{
		"unitree_g1", "boston_spot", "agility_digit", "pal_tiago",
		"fetch_freight", "clearpath_husky",
	}
	demoEffectors = []string{
		"two_finger_gripper", "three_jaw_gripper", "five_finger_gripper", "suction_cup",
	}
	demoScenes = []string{
		"home", "restaurant", "office", "warehouse", "laboratory", "kitchen",
	}
	demoActions = []string{
		"grasp", "place", "pick", "push", "pull", "rotate", "lift", "lower",
		"slide", "insert", "remove", "flip",
	}
	demoCategories = map[string][]string{
		"fruit":     {"fruit_a", "fruit_b", "fruit_c"},
		"container": {"container_a", "container_b", "container_c", "container_d"},
		"furniture": {"furniture_a", "furniture_b", "furniture_c"},
		"food":      {"food_a", "food_b", "food_c", "food_d"},
		"toy":       {"toy_a", "toy_b", "toy_c"},
		"utensil":   {"utensil_a", "utensil_b", "utensil_c"},
		"tool":      {"tool_a", "tool_b", "tool_c", "tool_d"},
		"textile":   {"textile_a", "textile_b", "textile_c"},
	}
	demoVerbs = []string{"pick", "place", "stack", "move", "arrange"}
)

// Generate writes an n-record demo dataset under root for load testing: a
// consolidated metadata.json plus the directory layout Load expects. Every
// third record gets a placeholder poster so both the decode path and the
// synthesized-placeholder path get exercised; clips are never written.
func Generate(root string, n int) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(root, postersDir), 0o755); err != nil {
		return err
	}

	categories := make([]string, 0, len(demoCategories))
	for cat := range demoCategories {
		categories = append(categories, cat)
	}

	out := make(map[string]*Record, n)
	for i := 0; i < n; i++ {
		cat1 := categories[rand.IntN(len(categories))]
		obj1 := pickOne(demoCategories[cat1])
		cat2 := categories[rand.IntN(len(categories))]
		obj2 := pickOne(demoCategories[cat2])

		verb := pickOne(demoVerbs)
		// Index suffix keeps names unique; they key the consolidated file.
		name := fmt.Sprintf("%s_%s_to_%s_%04d", verb, obj1, obj2, 1000+i)

		r := &Record{
			UUID:           newUUID(),
			Name:           name,
			Tasks:          []string{fmt.Sprintf("%s_the_%s_and_place_in_the_%s", verb, obj1, obj2)},
			Scenes:         pickSome(demoScenes, 1, 3),
			Actions:        pickSome(demoActions, 2, 4),
			Devices:        []string{pickOne(demoRobots)},
			Effector:       pickOne(demoEffectors),
			PlatformHeight: 70 + rand.Float64()*20,
			Objects: []ObjectRef{
				{Name: obj1, Levels: [5]string{cat1, obj1}},
				{Name: obj2, Levels: [5]string{cat2, obj2}},
			},
		}
		out[name] = r

		if i%3 == 0 {
			if err := writePoster(filepath.Join(root, postersDir, name+".png"), i); err != nil {
				return err
			}
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, consolidatedFile), data, 0o644)
}

func pickOne(list []string) string {
	return list[rand.IntN(len(list))]
}

func pickSome(list []string, lo, hi int) []string {
	n := lo + rand.IntN(hi-lo+1)
	if n > len(list) {
		n = len(list)
	}
	perm := rand.Perm(len(list))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, list[idx])
	}
	return out
}

// writePoster renders a small two-tone gradient PNG, enough to stand in
// for a real clip frame.
func writePoster(path string, seed int) error {
	const w, h = 64, 36
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	base := uint8(40 + (seed*37)%160)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: base,
				G: uint8(int(base) + x*2),
				B: uint8(255 - y*4),
				A: 255,
			})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func newUUID() string {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(err)
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
