package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	TickRateHz        int `yaml:"tick_rate_hz"`
	ObsEveryTicks     int `yaml:"obs_every_ticks"`
	MaxActionsPerTick int `yaml:"max_actions_per_tick"`

	TimeLimitSeconds  float64 `yaml:"time_limit_seconds"`
	TieBreakWinner    string  `yaml:"tie_break_winner"`
	LoadingGraceTicks uint64  `yaml:"loading_grace_ticks"`

	Arena    Arena    `yaml:"arena"`
	Economy  Economy  `yaml:"economy"`
	Minions  Minions  `yaml:"minions"`
	Towers   Towers   `yaml:"towers"`
	Nexus    Nexus    `yaml:"nexus"`
	Respawn  Respawn  `yaml:"respawn"`
	Leveling Leveling `yaml:"leveling"`
	Regen    Regen    `yaml:"regen"`
}

// Regen is the flat champion health/mana regeneration per second.
type Regen struct {
	HealthPerSec float64 `yaml:"health_per_sec"`
	ManaPerSec   float64 `yaml:"mana_per_sec"`
}

type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Collision radii per unit kind.
	ChampionRadius float64 `yaml:"champion_radius"`
	MinionRadius   float64 `yaml:"minion_radius"`
	TowerRadius    float64 `yaml:"tower_radius"`
	NexusRadius    float64 `yaml:"nexus_radius"`
}

type Economy struct {
	StartingGold       int     `yaml:"starting_gold"`
	PassiveGold        int     `yaml:"passive_gold"`
	PassiveGoldEverySec float64 `yaml:"passive_gold_every_sec"`

	MinionKillGold   int `yaml:"minion_kill_gold"`
	MinionKillXP     int `yaml:"minion_kill_xp"`
	ChampionKillGold int `yaml:"champion_kill_gold"`
	ChampionKillXP   int `yaml:"champion_kill_xp"`
	AssistGold       int `yaml:"assist_gold"`

	// Damage dealt within this window before a kill counts as an assist.
	AssistWindowSec float64 `yaml:"assist_window_sec"`

	SellRefundFraction float64 `yaml:"sell_refund_fraction"`
	InventoryCapacity  int     `yaml:"inventory_capacity"`
}

type Minions struct {
	WaveEverySec  float64 `yaml:"wave_every_sec"`
	FirstWaveSec  float64 `yaml:"first_wave_sec"`
	MeleePerWave  int     `yaml:"melee_per_wave"`
	RangedPerWave int     `yaml:"ranged_per_wave"`
	AggroRadius   float64 `yaml:"aggro_radius"`

	MeleeHealth  float64 `yaml:"melee_health"`
	MeleeDamage  float64 `yaml:"melee_damage"`
	MeleeRange   float64 `yaml:"melee_range"`
	RangedHealth float64 `yaml:"ranged_health"`
	RangedDamage float64 `yaml:"ranged_damage"`
	RangedRange  float64 `yaml:"ranged_range"`
	MoveSpeed    float64 `yaml:"move_speed"`
	AttackSpeed  float64 `yaml:"attack_speed"`
}

type Towers struct {
	PerTeam        int     `yaml:"per_team"`
	Health         float64 `yaml:"health"`
	Damage         float64 `yaml:"damage"`
	Range          float64 `yaml:"range"`
	AttackSpeed    float64 `yaml:"attack_speed"`
	GoldOnDestroy  int     `yaml:"gold_on_destroy"`
}

type Nexus struct {
	Health float64 `yaml:"health"`
}

type Respawn struct {
	BaseSec     float64 `yaml:"base_sec"`
	PerLevelSec float64 `yaml:"per_level_sec"`
}

type Leveling struct {
	LevelCap int `yaml:"level_cap"`
	// XP to advance from level L is xp_base + xp_per_level*(L-1).
	XPBase     int `yaml:"xp_base"`
	XPPerLevel int `yaml:"xp_per_level"`
	// Ultimate (R) unlocks at this level.
	UltimateLevel int `yaml:"ultimate_level"`
}

func Load(path string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	t.fillZero()
	return t, nil
}

func Defaults() Tuning {
	var t Tuning
	t.fillZero()
	return t
}

// fillZero backfills unset fields so a partial tuning file still yields a
// playable match.
func (t *Tuning) fillZero() {
	if t.TickRateHz <= 0 {
		t.TickRateHz = 20
	}
	if t.ObsEveryTicks <= 0 {
		t.ObsEveryTicks = 2
	}
	if t.MaxActionsPerTick <= 0 {
		t.MaxActionsPerTick = 4
	}
	if t.TimeLimitSeconds <= 0 {
		t.TimeLimitSeconds = 600
	}
	if t.TieBreakWinner == "" {
		t.TieBreakWinner = "blue"
	}
	if t.LoadingGraceTicks == 0 {
		t.LoadingGraceTicks = 600
	}
	if t.Arena.Width <= 0 {
		t.Arena.Width = 4000
	}
	if t.Arena.Height <= 0 {
		t.Arena.Height = 2000
	}
	if t.Arena.ChampionRadius <= 0 {
		t.Arena.ChampionRadius = 35
	}
	if t.Arena.MinionRadius <= 0 {
		t.Arena.MinionRadius = 25
	}
	if t.Arena.TowerRadius <= 0 {
		t.Arena.TowerRadius = 60
	}
	if t.Arena.NexusRadius <= 0 {
		t.Arena.NexusRadius = 90
	}
	if t.Economy.StartingGold == 0 {
		t.Economy.StartingGold = 500
	}
	if t.Economy.PassiveGold == 0 {
		t.Economy.PassiveGold = 2
	}
	if t.Economy.PassiveGoldEverySec <= 0 {
		t.Economy.PassiveGoldEverySec = 1
	}
	if t.Economy.MinionKillGold == 0 {
		t.Economy.MinionKillGold = 20
	}
	if t.Economy.MinionKillXP == 0 {
		t.Economy.MinionKillXP = 30
	}
	if t.Economy.ChampionKillGold == 0 {
		t.Economy.ChampionKillGold = 300
	}
	if t.Economy.ChampionKillXP == 0 {
		t.Economy.ChampionKillXP = 150
	}
	if t.Economy.AssistGold == 0 {
		t.Economy.AssistGold = 150
	}
	if t.Economy.AssistWindowSec <= 0 {
		t.Economy.AssistWindowSec = 10
	}
	if t.Economy.SellRefundFraction <= 0 {
		t.Economy.SellRefundFraction = 0.7
	}
	if t.Economy.InventoryCapacity <= 0 {
		t.Economy.InventoryCapacity = 6
	}
	if t.Minions.WaveEverySec <= 0 {
		t.Minions.WaveEverySec = 30
	}
	if t.Minions.FirstWaveSec <= 0 {
		t.Minions.FirstWaveSec = 15
	}
	if t.Minions.MeleePerWave <= 0 {
		t.Minions.MeleePerWave = 3
	}
	if t.Minions.RangedPerWave <= 0 {
		t.Minions.RangedPerWave = 2
	}
	if t.Minions.AggroRadius <= 0 {
		t.Minions.AggroRadius = 350
	}
	if t.Minions.MeleeHealth <= 0 {
		t.Minions.MeleeHealth = 450
	}
	if t.Minions.MeleeDamage <= 0 {
		t.Minions.MeleeDamage = 12
	}
	if t.Minions.MeleeRange <= 0 {
		t.Minions.MeleeRange = 110
	}
	if t.Minions.RangedHealth <= 0 {
		t.Minions.RangedHealth = 300
	}
	if t.Minions.RangedDamage <= 0 {
		t.Minions.RangedDamage = 23
	}
	if t.Minions.RangedRange <= 0 {
		t.Minions.RangedRange = 300
	}
	if t.Minions.MoveSpeed <= 0 {
		t.Minions.MoveSpeed = 280
	}
	if t.Minions.AttackSpeed <= 0 {
		t.Minions.AttackSpeed = 0.8
	}
	if t.Towers.PerTeam <= 0 {
		t.Towers.PerTeam = 2
	}
	if t.Towers.Health <= 0 {
		t.Towers.Health = 2500
	}
	if t.Towers.Damage <= 0 {
		t.Towers.Damage = 90
	}
	if t.Towers.Range <= 0 {
		t.Towers.Range = 460
	}
	if t.Towers.AttackSpeed <= 0 {
		t.Towers.AttackSpeed = 1
	}
	if t.Towers.GoldOnDestroy == 0 {
		t.Towers.GoldOnDestroy = 100
	}
	if t.Nexus.Health <= 0 {
		t.Nexus.Health = 5000
	}
	if t.Respawn.BaseSec <= 0 {
		t.Respawn.BaseSec = 5
	}
	if t.Respawn.PerLevelSec <= 0 {
		t.Respawn.PerLevelSec = 1
	}
	if t.Leveling.LevelCap <= 0 {
		t.Leveling.LevelCap = 18
	}
	if t.Leveling.XPBase <= 0 {
		t.Leveling.XPBase = 100
	}
	if t.Leveling.XPPerLevel <= 0 {
		t.Leveling.XPPerLevel = 80
	}
	if t.Leveling.UltimateLevel <= 0 {
		t.Leveling.UltimateLevel = 6
	}
	if t.Regen.HealthPerSec <= 0 {
		t.Regen.HealthPerSec = 2
	}
	if t.Regen.ManaPerSec <= 0 {
		t.Regen.ManaPerSec = 6
	}
}
