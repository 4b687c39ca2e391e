package catalogs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreComplete(t *testing.T) {
	c := Defaults()
	for _, name := range []string{"Ironclad", "Voltaic", "Shadebow"} {
		ch, ok := c.Champions.ByName[name]
		if !ok {
			t.Fatalf("champion %s missing", name)
		}
		for _, slot := range []string{"Q", "W", "E", "R"} {
			if _, ok := ch.Abilities[slot]; !ok {
				t.Fatalf("%s missing ability %s", name, slot)
			}
		}
		if ch.Abilities["R"].LevelRequired != 6 {
			t.Fatalf("%s ultimate gate = %d", name, ch.Abilities["R"].LevelRequired)
		}
	}
	if len(c.Items.ByID) == 0 {
		t.Fatalf("item catalog empty")
	}
	if it := c.Items.ByID["long_sword"]; it.AttackDamage != 10 || it.Cost != 350 {
		t.Fatalf("long_sword = %+v", it)
	}
}

func TestDigestsAreStable(t *testing.T) {
	a, b := Defaults(), Defaults()
	if a.Items.Digest == "" || a.Champions.Digest == "" {
		t.Fatalf("empty digest")
	}
	if a.Items.Digest != b.Items.Digest || a.Champions.Digest != b.Champions.Digest {
		t.Fatalf("digests differ across identical builds")
	}
}

func TestGrowthCurve(t *testing.T) {
	g := Growth{Base: 100, PerLevel: 10}
	if g.At(1) != 100 {
		t.Fatalf("At(1) = %v", g.At(1))
	}
	if g.At(6) != 150 {
		t.Fatalf("At(6) = %v", g.At(6))
	}
	if g.At(0) != 100 {
		t.Fatalf("At(0) should clamp to level 1, got %v", g.At(0))
	}
}

func TestBuildValidation(t *testing.T) {
	ok := Defaults().Champions.ByName["Ironclad"]

	if _, err := build([]Item{{ID: "a", Cost: 1}, {ID: "a", Cost: 2}}, []Champion{ok}); err == nil {
		t.Fatalf("duplicate item id accepted")
	}
	if _, err := build([]Item{{Cost: 1}}, []Champion{ok}); err == nil {
		t.Fatalf("empty item id accepted")
	}

	bad := ok
	bad.Abilities = map[string]Ability{"Q": {}, "W": {}, "E": {}}
	if _, err := build(nil, []Champion{bad}); err == nil {
		t.Fatalf("champion with 3 abilities accepted")
	}
	bad.Abilities = map[string]Ability{"Q": {}, "W": {}, "E": {}, "X": {}}
	if _, err := build(nil, []Champion{bad}); err == nil {
		t.Fatalf("champion missing R accepted")
	}

	// A damaging area with a duration but no interval would pulse forever.
	bad.Abilities = map[string]Ability{
		"Q": {}, "W": {}, "E": {},
		"R": {Duration: 3, Radius: 300, Damage: 70},
	}
	if _, err := build(nil, []Champion{bad}); err == nil {
		t.Fatalf("pulsing ability without tick_interval accepted")
	}
	bad.Abilities = map[string]Ability{
		"Q": {}, "W": {}, "E": {},
		"R": {Duration: 8}, // buff-style duration, no pulses: fine
	}
	if _, err := build(nil, []Champion{bad}); err != nil {
		t.Fatalf("duration-only ability rejected: %v", err)
	}
}

func TestLoadShippedConfigs(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "..", "configs"))
	if err != nil {
		t.Fatal(err)
	}
	d := Defaults()
	if len(c.Champions.ByName) != len(d.Champions.ByName) {
		t.Fatalf("shipped champions = %d, defaults = %d",
			len(c.Champions.ByName), len(d.Champions.ByName))
	}
	for name := range d.Champions.ByName {
		if _, ok := c.Champions.ByName[name]; !ok {
			t.Fatalf("shipped configs missing champion %s", name)
		}
	}
	if len(c.Items.ByID) != len(d.Items.ByID) {
		t.Fatalf("shipped items = %d, defaults = %d", len(c.Items.ByID), len(d.Items.ByID))
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "no-such-config-dir")); err == nil {
		t.Fatalf("missing config dir accepted")
	}
}
