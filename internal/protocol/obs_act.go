package protocol

// Position is a 2D arena coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// OBSERVATION (server -> agent). Built fresh each observation tick; enemy
// entries carry reduced detail and stealthed enemies are omitted entirely.
type ObservationMsg struct {
	Type      string        `json:"type"`
	Tick      uint64        `json:"tick"`
	MatchTime float64       `json:"match_time"`
	Self      SelfObs       `json:"self"`
	Allies    []AllyObs     `json:"allies"`
	Enemies   []EnemyObs    `json:"enemies"`
	Minions   MinionsObs    `json:"minions"`
	Structures StructuresObs `json:"structures"`
}

type SelfObs struct {
	ID        string                `json:"id"`
	Champion  string                `json:"champion"`
	Position  Position              `json:"position"`
	Health    float64               `json:"health"`
	MaxHealth float64               `json:"max_health"`
	Mana      float64               `json:"mana"`
	MaxMana   float64               `json:"max_mana"`
	Level     int                   `json:"level"`
	XP        int                   `json:"xp"`
	Gold      int                   `json:"gold"`
	IsAlive   bool                  `json:"is_alive"`
	Abilities map[string]AbilityObs `json:"abilities"`
	Items     []ItemObs             `json:"items"`
	Stats     StatsObs              `json:"stats"`
}

type AbilityObs struct {
	Name              string  `json:"name"`
	Ready             bool    `json:"ready"`
	CooldownRemaining float64 `json:"cooldown_remaining"`
	ManaCost          float64 `json:"mana_cost"`
	LevelRequired     int     `json:"level_required,omitempty"`
	Unlocked          bool    `json:"unlocked"`
}

// ItemObs flattens stat bonuses beside id/name/cost; the SDK picks known
// stat keys off the item object directly.
type ItemObs struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Cost         int     `json:"cost"`
	Health       float64 `json:"health,omitempty"`
	Mana         float64 `json:"mana,omitempty"`
	AttackDamage float64 `json:"attack_damage,omitempty"`
	AbilityPower float64 `json:"ability_power,omitempty"`
	Armor        float64 `json:"armor,omitempty"`
	MagicResist  float64 `json:"magic_resist,omitempty"`
	MoveSpeed    float64 `json:"move_speed,omitempty"`
}

type StatsObs struct {
	AttackDamage float64 `json:"attack_damage"`
	AbilityPower float64 `json:"ability_power"`
	Armor        float64 `json:"armor"`
	MagicResist  float64 `json:"magic_resist"`
	MoveSpeed    float64 `json:"move_speed"`
	AttackRange  float64 `json:"attack_range"`
	AttackSpeed  float64 `json:"attack_speed"`
}

type AllyObs struct {
	ID        string   `json:"id"`
	Champion  string   `json:"champion"`
	Position  Position `json:"position"`
	Health    float64  `json:"health"`
	MaxHealth float64  `json:"max_health"`
	Mana      float64  `json:"mana"`
	MaxMana   float64  `json:"max_mana"`
	Level     int      `json:"level"`
	IsAlive   bool     `json:"is_alive"`
}

// EnemyObs deliberately omits mana, cooldowns, gold, and items.
type EnemyObs struct {
	ID        string   `json:"id"`
	Champion  string   `json:"champion"`
	Position  Position `json:"position"`
	Health    float64  `json:"health"`
	MaxHealth float64  `json:"max_health"`
	Level     int      `json:"level"`
	IsAlive   bool     `json:"is_alive"`
}

type MinionObs struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Health    float64  `json:"health"`
	MaxHealth float64  `json:"max_health"`
	IsMelee   bool     `json:"is_melee"`
}

type MinionsObs struct {
	Allied []MinionObs `json:"allied"`
	Enemy  []MinionObs `json:"enemy"`
}

type StructuresObs struct {
	Nexus  map[string]NexusObs `json:"nexus"`
	Towers map[string][]TowerObs `json:"towers"`
}

type NexusObs struct {
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
}

type TowerObs struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Health    float64  `json:"health"`
	MaxHealth float64  `json:"max_health"`
}

// ACTION (agent -> server): a bounded batch applied at the next tick boundary.
type ActionMsg struct {
	Type    string   `json:"type"`
	Actions []Action `json:"actions"`
}

// Action is the tagged union for agent intents. Exactly one action_type; the
// remaining fields are interpreted per type and ignored otherwise.
type Action struct {
	ActionType string    `json:"action_type"`
	Target     *Position `json:"target,omitempty"`
	TargetID   string    `json:"target_id,omitempty"`
	Ability    string    `json:"ability,omitempty"`
	ItemID     string    `json:"item_id,omitempty"`
}

// Action types.
const (
	ActionMove    = "move"
	ActionStop    = "stop"
	ActionAttack  = "attack"
	ActionAbility = "ability"
	ActionBuy     = "buy"
	ActionSell    = "sell"
)
