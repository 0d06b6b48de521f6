package dataset

import (
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	records := []*Record{
		{
			UUID: "a", Name: "pick_fruit_a_to_container_b",
			Tasks:   []string{"pick_the_fruit_a_and_place_in_the_container_b"},
			Scenes:  []string{"kitchen", "home"},
			Devices: []string{"unitree_g1"}, Effector: "two_finger_gripper",
			Objects: []ObjectRef{
				{Name: "fruit_a", Levels: [5]string{"fruit", "fruit_a"}},
				{Name: "container_b", Levels: [5]string{"container"}},
			},
		},
		{
			UUID: "b", Name: "move_toy_a_to_shelf",
			Scenes:  []string{"office"},
			Devices: []string{"boston_spot"}, Effector: "suction_cup",
			Objects: []ObjectRef{{Name: "toy_a", Levels: [5]string{"toy", "toy_a"}}},
		},
		{
			UUID: "c", Name: "stack_food_a",
			Scenes:  []string{"kitchen"},
			Devices: []string{"unitree_g1"}, Effector: "suction_cup",
			Objects: []ObjectRef{{Name: "food_a", Levels: [5]string{"food"}}},
		},
	}
	cat := &Catalog{byUUID: make(map[string]*Record)}
	for _, r := range records {
		cat.byUUID[r.UUID] = r
		cat.Records = append(cat.Records, r)
	}
	return cat
}

func ids(records []*Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.UUID)
	}
	return out
}

func TestFilter(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name string
		cr   Criteria
		want []string
	}{
		{"zero criteria keeps order", Criteria{}, []string{"a", "b", "c"}},
		{"scene", Criteria{Scenes: []string{"kitchen"}}, []string{"a", "c"}},
		{"scene or scene", Criteria{Scenes: []string{"office", "home"}}, []string{"a", "b"}},
		{"device and effector", Criteria{Devices: []string{"unitree_g1"}, Effectors: []string{"suction_cup"}}, []string{"c"}},
		{"category top level", Criteria{Categories: []string{"toy"}}, []string{"b"}},
		{"category deep level", Criteria{Categories: []string{"fruit_a"}}, []string{"a"}},
		{"query name", Criteria{Query: "TOY"}, []string{"b"}},
		{"query task", Criteria{Query: "place_in_the_container"}, []string{"a"}},
		{"no match", Criteria{Scenes: []string{"warehouse"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(cat.Filter(tt.cr))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterDoesNotAliasCatalog(t *testing.T) {
	cat := testCatalog()
	seq := cat.Filter(Criteria{})
	seq[0] = nil
	if cat.Records[0] == nil {
		t.Error("Filter result aliases the catalog slice")
	}
}

func TestFacets(t *testing.T) {
	f := testCatalog().Facets()

	if want := []string{"home", "kitchen", "office"}; !reflect.DeepEqual(f.Scenes, want) {
		t.Errorf("Scenes = %v, want %v", f.Scenes, want)
	}
	if want := []string{"boston_spot", "unitree_g1"}; !reflect.DeepEqual(f.Devices, want) {
		t.Errorf("Devices = %v, want %v", f.Devices, want)
	}
	if want := []string{"suction_cup", "two_finger_gripper"}; !reflect.DeepEqual(f.Effectors, want) {
		t.Errorf("Effectors = %v, want %v", f.Effectors, want)
	}
	if want := []string{"container", "food", "fruit", "toy"}; !reflect.DeepEqual(f.Categories, want) {
		t.Errorf("Categories = %v, want %v", f.Categories, want)
	}
}

func TestCategoryTree(t *testing.T) {
	tree := testCatalog().CategoryTree()

	if len(tree) != 4 {
		t.Fatalf("top-level nodes = %d, want 4", len(tree))
	}
	// Sorted: container, food, fruit, toy.
	if tree[0].Name != "container" || tree[2].Name != "fruit" {
		t.Fatalf("unexpected order: %s, %s", tree[0].Name, tree[2].Name)
	}
	fruit := tree[2]
	if fruit.Count != 1 {
		t.Errorf("fruit count = %d, want 1", fruit.Count)
	}
	if len(fruit.Children) != 1 || fruit.Children[0].Name != "fruit_a" {
		t.Errorf("fruit children = %+v", fruit.Children)
	}
	if len(tree[0].Children) != 0 {
		t.Errorf("container should be a leaf, got %+v", tree[0].Children)
	}
}
