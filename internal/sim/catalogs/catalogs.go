// Package catalogs loads the static item and champion definitions a match is
// built against. Catalogs are immutable once loaded; the match references
// them read-only.
package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

type Catalogs struct {
	Items     ItemCatalog
	Champions ChampionCatalog
}

type ItemCatalog struct {
	ByID   map[string]Item
	Digest string
}

type Item struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Cost int    `yaml:"cost" json:"cost"`

	Health       float64 `yaml:"health,omitempty" json:"health,omitempty"`
	Mana         float64 `yaml:"mana,omitempty" json:"mana,omitempty"`
	AttackDamage float64 `yaml:"attack_damage,omitempty" json:"attack_damage,omitempty"`
	AbilityPower float64 `yaml:"ability_power,omitempty" json:"ability_power,omitempty"`
	Armor        float64 `yaml:"armor,omitempty" json:"armor,omitempty"`
	MagicResist  float64 `yaml:"magic_resist,omitempty" json:"magic_resist,omitempty"`
	MoveSpeed    float64 `yaml:"move_speed,omitempty" json:"move_speed,omitempty"`
}

type ChampionCatalog struct {
	ByName map[string]Champion
	Digest string
}

// Champion holds base stats at level 1 plus linear per-level growth, and the
// four ability definitions keyed Q/W/E/R.
type Champion struct {
	Name string `yaml:"name" json:"name"`

	Health       Growth `yaml:"health" json:"health"`
	Mana         Growth `yaml:"mana" json:"mana"`
	AttackDamage Growth `yaml:"attack_damage" json:"attack_damage"`
	AbilityPower Growth `yaml:"ability_power" json:"ability_power"`
	Armor        Growth `yaml:"armor" json:"armor"`
	MagicResist  Growth `yaml:"magic_resist" json:"magic_resist"`
	MoveSpeed    Growth `yaml:"move_speed" json:"move_speed"`
	AttackRange  Growth `yaml:"attack_range" json:"attack_range"`
	AttackSpeed  Growth `yaml:"attack_speed" json:"attack_speed"`

	// Ranged champions auto-attack with a homing projectile.
	Ranged bool `yaml:"ranged" json:"ranged"`

	Abilities map[string]Ability `yaml:"abilities" json:"abilities"`
}

type Growth struct {
	Base     float64 `yaml:"base" json:"base"`
	PerLevel float64 `yaml:"per_level" json:"per_level"`
}

// At computes the linear level curve value.
func (g Growth) At(level int) float64 {
	if level < 1 {
		level = 1
	}
	return g.Base + g.PerLevel*float64(level-1)
}

// Ability is a flat static definition; each champion handler reads the
// fields relevant to its effect shape and ignores the rest.
type Ability struct {
	Name          string  `yaml:"name" json:"name"`
	Cooldown      float64 `yaml:"cooldown" json:"cooldown"`
	ManaCost      float64 `yaml:"mana_cost" json:"mana_cost"`
	LevelRequired int     `yaml:"level_required,omitempty" json:"level_required,omitempty"`
	Range         float64 `yaml:"range,omitempty" json:"range,omitempty"`

	Damage     float64 `yaml:"damage,omitempty" json:"damage,omitempty"`
	ADRatio    float64 `yaml:"ad_ratio,omitempty" json:"ad_ratio,omitempty"`
	APRatio    float64 `yaml:"ap_ratio,omitempty" json:"ap_ratio,omitempty"`
	DamageType string  `yaml:"damage_type,omitempty" json:"damage_type,omitempty"`

	Radius       float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
	Duration     float64 `yaml:"duration,omitempty" json:"duration,omitempty"`
	TickInterval float64 `yaml:"tick_interval,omitempty" json:"tick_interval,omitempty"`

	Speed        float64 `yaml:"speed,omitempty" json:"speed,omitempty"`
	ChainCount   int     `yaml:"chain_count,omitempty" json:"chain_count,omitempty"`
	ChainRadius  float64 `yaml:"chain_radius,omitempty" json:"chain_radius,omitempty"`
	ChainFalloff float64 `yaml:"chain_falloff,omitempty" json:"chain_falloff,omitempty"`

	SlowPct float64 `yaml:"slow_pct,omitempty" json:"slow_pct,omitempty"`
	SlowSec float64 `yaml:"slow_sec,omitempty" json:"slow_sec,omitempty"`
	StunSec float64 `yaml:"stun_sec,omitempty" json:"stun_sec,omitempty"`

	ShieldBase     float64 `yaml:"shield_base,omitempty" json:"shield_base,omitempty"`
	ShieldPerLevel float64 `yaml:"shield_per_level,omitempty" json:"shield_per_level,omitempty"`
	BuffArmor      float64 `yaml:"buff_armor,omitempty" json:"buff_armor,omitempty"`
	BuffMagicResist float64 `yaml:"buff_magic_resist,omitempty" json:"buff_magic_resist,omitempty"`
	BuffMoveSpeedPct float64 `yaml:"buff_move_speed_pct,omitempty" json:"buff_move_speed_pct,omitempty"`

	AmplifyPct     float64 `yaml:"amplify_pct,omitempty" json:"amplify_pct,omitempty"`
	RefundFraction float64 `yaml:"refund_fraction,omitempty" json:"refund_fraction,omitempty"`

	DashSpeed    float64 `yaml:"dash_speed,omitempty" json:"dash_speed,omitempty"`
	EmpowerSec   float64 `yaml:"empower_sec,omitempty" json:"empower_sec,omitempty"`
	EmpowerBonus float64 `yaml:"empower_bonus,omitempty" json:"empower_bonus,omitempty"`
}

type itemsFile struct {
	Items []Item `yaml:"items"`
}

type championsFile struct {
	Champions []Champion `yaml:"champions"`
}

// Load reads items.yaml and champions.yaml from configDir.
func Load(configDir string) (Catalogs, error) {
	var c Catalogs

	raw, err := os.ReadFile(filepath.Join(configDir, "items.yaml"))
	if err != nil {
		return c, fmt.Errorf("items catalog: %w", err)
	}
	var items itemsFile
	if err := yaml.Unmarshal(raw, &items); err != nil {
		return c, fmt.Errorf("items.yaml: %w", err)
	}

	raw, err = os.ReadFile(filepath.Join(configDir, "champions.yaml"))
	if err != nil {
		return c, fmt.Errorf("champions catalog: %w", err)
	}
	var champs championsFile
	if err := yaml.Unmarshal(raw, &champs); err != nil {
		return c, fmt.Errorf("champions.yaml: %w", err)
	}

	return build(items.Items, champs.Champions)
}

func build(items []Item, champs []Champion) (Catalogs, error) {
	var c Catalogs
	c.Items.ByID = make(map[string]Item, len(items))
	for _, it := range items {
		if it.ID == "" {
			return c, fmt.Errorf("item with empty id")
		}
		if _, dup := c.Items.ByID[it.ID]; dup {
			return c, fmt.Errorf("duplicate item id %q", it.ID)
		}
		c.Items.ByID[it.ID] = it
	}
	c.Items.Digest = digestItems(c.Items.ByID)

	c.Champions.ByName = make(map[string]Champion, len(champs))
	for _, ch := range champs {
		if ch.Name == "" {
			return c, fmt.Errorf("champion with empty name")
		}
		if len(ch.Abilities) != 4 {
			return c, fmt.Errorf("champion %s: want 4 abilities, got %d", ch.Name, len(ch.Abilities))
		}
		for _, key := range []string{"Q", "W", "E", "R"} {
			ab, ok := ch.Abilities[key]
			if !ok {
				return c, fmt.Errorf("champion %s: missing ability %s", ch.Name, key)
			}
			// A damaging area with a duration pulses; it needs an interval or
			// the pulse loop never terminates.
			if ab.Duration > 0 && ab.Damage > 0 && ab.Radius > 0 && ab.TickInterval <= 0 {
				return c, fmt.Errorf("champion %s ability %s: pulsing ability requires a positive tick_interval", ch.Name, key)
			}
		}
		c.Champions.ByName[ch.Name] = ch
	}
	c.Champions.Digest = digestChampions(c.Champions.ByName)
	return c, nil
}

func digestItems(m map[string]Item) string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	h := sha256.New()
	for _, id := range ids {
		b, _ := json.Marshal(m[id])
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func digestChampions(m map[string]Champion) string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	h := sha256.New()
	for _, n := range names {
		b, _ := json.Marshal(m[n])
		h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil))
}
