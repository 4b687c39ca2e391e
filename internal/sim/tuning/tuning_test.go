package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsArePlayable(t *testing.T) {
	d := Defaults()
	if d.TickRateHz != 20 || d.ObsEveryTicks != 2 || d.MaxActionsPerTick != 4 {
		t.Fatalf("loop defaults: %+v", d)
	}
	if d.TimeLimitSeconds != 600 || d.TieBreakWinner != "blue" {
		t.Fatalf("limit defaults: %v %q", d.TimeLimitSeconds, d.TieBreakWinner)
	}
	if d.Arena.Width != 4000 || d.Arena.Height != 2000 {
		t.Fatalf("arena defaults: %+v", d.Arena)
	}
	if d.Economy.StartingGold != 500 || d.Economy.InventoryCapacity != 6 {
		t.Fatalf("economy defaults: %+v", d.Economy)
	}
	if d.Minions.MeleePerWave != 3 || d.Minions.RangedPerWave != 2 {
		t.Fatalf("minion defaults: %+v", d.Minions)
	}
	if d.Towers.PerTeam != 2 || d.Nexus.Health != 5000 {
		t.Fatalf("structure defaults: %+v %+v", d.Towers, d.Nexus)
	}
}

func TestLoadOverlaysPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	partial := []byte("tick_rate_hz: 30\narena:\n  width: 6000\neconomy:\n  starting_gold: 1000\n")
	if err := os.WriteFile(path, partial, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.TickRateHz != 30 {
		t.Fatalf("tick_rate_hz = %d", got.TickRateHz)
	}
	if got.Arena.Width != 6000 {
		t.Fatalf("arena.width = %v", got.Arena.Width)
	}
	if got.Economy.StartingGold != 1000 {
		t.Fatalf("starting_gold = %d", got.Economy.StartingGold)
	}

	// Everything the file is silent on falls back to the defaults.
	d := Defaults()
	if got.Arena.Height != d.Arena.Height {
		t.Fatalf("arena.height = %v, want default %v", got.Arena.Height, d.Arena.Height)
	}
	if got.Economy.PassiveGold != d.Economy.PassiveGold {
		t.Fatalf("passive_gold = %d, want default %d", got.Economy.PassiveGold, d.Economy.PassiveGold)
	}
	if got.Minions.WaveEverySec != d.Minions.WaveEverySec {
		t.Fatalf("wave_every_sec = %v", got.Minions.WaveEverySec)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("tick_rate_hz: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed yaml accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}
