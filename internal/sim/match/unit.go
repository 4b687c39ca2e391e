package match

import (
	"fmt"

	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
)

// Kind discriminates the entity variants sharing the Unit base record.
type Kind uint8

const (
	KindChampion Kind = iota
	KindMinion
	KindTower
	KindNexus
)

func (k Kind) String() string {
	switch k {
	case KindChampion:
		return "champion"
	case KindMinion:
		return "minion"
	case KindTower:
		return "tower"
	case KindNexus:
		return "nexus"
	}
	return "unknown"
}

// Damage types.
const (
	DamagePhysical = "physical"
	DamageMagic    = "magic"
	DamageTrue     = "true"
)

// Stats is the derived stat vector. It is recomputed from
// level + items + active effects whenever any of those change; it is never
// mutated directly and never stale.
type Stats struct {
	AttackDamage float64
	AbilityPower float64
	Armor        float64
	MagicResist  float64
	MoveSpeed    float64
	AttackRange  float64
	AttackSpeed  float64
}

// Shield absorbs damage before health. Consumed FIFO when several are up.
type Shield struct {
	Amount    float64
	Remaining float64 // seconds until expiry
}

// DashState is the exclusive dash sub-state: the unit interpolates toward a
// fixed endpoint and ignores ordinary movement/attack orders until it lands.
type DashState struct {
	Target protocol.Position
	Speed  float64
	Def    catalogs.Ability
	// Slam ends the dash with an area effect (Ironclad Charge).
	Slam bool
	// EmpowerNextAttack arms an empowered auto on landing (Shadebow Tumble).
	EmpowerNextAttack bool
	// Hit tracks enemies already struck along the path.
	Hit map[string]bool
	// DamageOnPath applies the dash collision damage to enemies passed through.
	DamageOnPath float64
	// SlamDamage is fixed at cast time; empower amplification applies then.
	SlamDamage float64
}

// ChannelState is the exclusive channel sub-state: the unit is immobile and a
// sub-timer fires discrete pulses until the duration elapses. Taking damage
// interrupts it.
type ChannelState struct {
	Remaining   float64
	NextPulseIn float64
	Def         catalogs.Ability
	// PulseDamage is fixed at cast time.
	PulseDamage float64
}

// Unit is the shared base record for champions, minions, towers and nexuses.
// Champion-only fields are zero for the other kinds.
type Unit struct {
	ID   string
	Kind Kind
	Team string

	Pos    protocol.Position
	Radius float64

	Health    float64
	MaxHealth float64
	Alive     bool

	// Orders.
	MoveTarget     *protocol.Position
	AttackTargetID string
	AttackCooldown float64

	// Static combat parameters for minions and towers.
	BaseDamage      float64
	BaseRange       float64
	BaseMoveSpeed   float64
	BaseAttackSpeed float64
	IsMelee         bool

	// Champion-only fields.
	Champion  string
	AgentID   string
	Mana      float64
	MaxMana   float64
	Level     int
	XP        int
	Gold      int
	Items     []string
	Cooldowns map[string]float64
	Effects   []*Effect
	Shields   []*Shield
	Dash      *DashState
	Channel   *ChannelState
	RespawnIn float64
	SpawnPos  protocol.Position

	Stats Stats

	// Assist bookkeeping: enemy champion id -> match time of last damage.
	recentDamage map[string]float64
	KillStreak   int
}

func (u *Unit) IsChampion() bool  { return u.Kind == KindChampion }
func (u *Unit) IsStructure() bool { return u.Kind == KindTower || u.Kind == KindNexus }

// Busy reports whether the unit is mid-cast of an exclusive action.
func (u *Unit) Busy() bool { return u.Dash != nil || u.Channel != nil }

func (m *Match) newUnitID(prefix string) string {
	m.unitSeq++
	return fmt.Sprintf("%s%d", prefix, m.unitSeq)
}

func (m *Match) addUnit(u *Unit) {
	m.units = append(m.units, u)
	m.byID[u.ID] = u
}

// removeUnit drops a despawned unit. Weak references (projectile homing,
// attack targets) null out on lookup.
func (m *Match) removeUnit(id string) {
	delete(m.byID, id)
	for i, u := range m.units {
		if u.ID == id {
			m.units = append(m.units[:i], m.units[i+1:]...)
			return
		}
	}
}

// unit resolves a weak reference; returns nil for dead or despawned ids.
func (m *Match) unit(id string) *Unit {
	if id == "" {
		return nil
	}
	u := m.byID[id]
	if u == nil || !u.Alive {
		return nil
	}
	return u
}

func (m *Match) spawnChampion(agentID, team, champion string) (*Unit, error) {
	def, ok := m.cats.Champions.ByName[champion]
	if !ok {
		return nil, fmt.Errorf("unknown champion %q", champion)
	}
	u := &Unit{
		ID:        m.newUnitID("C"),
		Kind:      KindChampion,
		Team:      team,
		Champion:  champion,
		AgentID:   agentID,
		Radius:    m.cfg.Arena.ChampionRadius,
		Level:     1,
		Gold:      m.cfg.Economy.StartingGold,
		Alive:     true,
		IsMelee:   !def.Ranged,
		Cooldowns: map[string]float64{protocol.SlotQ: 0, protocol.SlotW: 0, protocol.SlotE: 0, protocol.SlotR: 0},

		recentDamage: map[string]float64{},
	}
	u.SpawnPos = m.championSpawnPos(team, len(m.teamChampions(team)))
	u.Pos = u.SpawnPos
	m.recomputeStats(u)
	u.Health = u.MaxHealth
	u.Mana = u.MaxMana
	m.addUnit(u)
	return u, nil
}

func (m *Match) spawnMinion(team string, melee bool) *Unit {
	mc := m.cfg.Minions
	u := &Unit{
		ID:      m.newUnitID("M"),
		Kind:    KindMinion,
		Team:    team,
		Radius:  m.cfg.Arena.MinionRadius,
		Alive:   true,
		IsMelee: melee,

		BaseMoveSpeed:   mc.MoveSpeed,
		BaseAttackSpeed: mc.AttackSpeed,
	}
	if melee {
		u.MaxHealth = mc.MeleeHealth
		u.BaseDamage = mc.MeleeDamage
		u.BaseRange = mc.MeleeRange
	} else {
		u.MaxHealth = mc.RangedHealth
		u.BaseDamage = mc.RangedDamage
		u.BaseRange = mc.RangedRange
	}
	u.Health = u.MaxHealth
	u.Pos = m.minionSpawnPos(team)
	u.Stats = Stats{
		AttackDamage: u.BaseDamage,
		MoveSpeed:    u.BaseMoveSpeed,
		AttackRange:  u.BaseRange,
		AttackSpeed:  u.BaseAttackSpeed,
	}
	m.addUnit(u)
	return u
}

func (m *Match) spawnStructures() {
	for _, team := range []string{protocol.TeamBlue, protocol.TeamRed} {
		n := &Unit{
			ID:        "N_" + team,
			Kind:      KindNexus,
			Team:      team,
			Radius:    m.cfg.Arena.NexusRadius,
			MaxHealth: m.cfg.Nexus.Health,
			Health:    m.cfg.Nexus.Health,
			Alive:     true,
			Pos:       m.nexusPos(team),
		}
		m.addUnit(n)
		m.nexusByTeam[team] = n

		for i := 1; i <= m.cfg.Towers.PerTeam; i++ {
			t := &Unit{
				ID:        fmt.Sprintf("T_%s_%d", team, i),
				Kind:      KindTower,
				Team:      team,
				Radius:    m.cfg.Arena.TowerRadius,
				MaxHealth: m.cfg.Towers.Health,
				Health:    m.cfg.Towers.Health,
				Alive:     true,
				Pos:       m.towerPos(team, i),

				BaseDamage:      m.cfg.Towers.Damage,
				BaseRange:       m.cfg.Towers.Range,
				BaseAttackSpeed: m.cfg.Towers.AttackSpeed,
			}
			t.Stats = Stats{
				AttackDamage: t.BaseDamage,
				AttackRange:  t.BaseRange,
				AttackSpeed:  t.BaseAttackSpeed,
			}
			m.addUnit(t)
			m.towersLeft[team]++
		}
	}
}

func (m *Match) teamChampions(team string) []*Unit {
	var out []*Unit
	for _, u := range m.units {
		if u.Kind == KindChampion && u.Team == team {
			out = append(out, u)
		}
	}
	return out
}
