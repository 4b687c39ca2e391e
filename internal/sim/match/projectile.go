package match

import (
	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
)

// ProjectileEffect tags the follow-up effect a projectile carries. Effects
// are enumerated, not closures, so the combat resolver dispatches them and
// match state stays serializable.
type ProjectileEffect uint8

const (
	ProjectileEffectNone ProjectileEffect = iota
	ProjectileEffectChain
)

// Projectile travels in a straight line (or homes onto a unit) until it hits
// or its range is exhausted. Owner and homing references are weak: they null
// out gracefully when the referent dies or despawns.
type Projectile struct {
	ID      string
	OwnerID string
	Team    string

	Pos       protocol.Position
	Dir       protocol.Position
	Speed     float64
	RangeLeft float64

	Damage     float64
	DamageType string
	Piercing   bool
	Hit        map[string]bool

	HomingID string

	Effect       ProjectileEffect
	ChainCount   int
	ChainRadius  float64
	ChainFalloff float64
}

const homingAttackSpeed = 1500

func (m *Match) spawnHomingProjectile(owner, target *Unit, damage float64, dtype string) {
	p := &Projectile{
		ID:         m.newUnitID("P"),
		OwnerID:    owner.ID,
		Team:       owner.Team,
		Pos:        owner.Pos,
		Dir:        dirTo(owner.Pos, target.Pos),
		Speed:      homingAttackSpeed,
		RangeLeft:  owner.Stats.AttackRange * 3,
		Damage:     damage,
		DamageType: dtype,
		Hit:        map[string]bool{},
		HomingID:   target.ID,
	}
	m.projectiles = append(m.projectiles, p)
}

func (m *Match) spawnSkillshot(owner *Unit, dir protocol.Position, def catalogs.Ability, damage float64, piercing bool, effect ProjectileEffect) {
	p := &Projectile{
		ID:         m.newUnitID("P"),
		OwnerID:    owner.ID,
		Team:       owner.Team,
		Pos:        owner.Pos,
		Dir:        dir,
		Speed:      def.Speed,
		RangeLeft:  def.Range,
		Damage:     damage,
		DamageType: def.DamageType,
		Piercing:   piercing,
		Hit:        map[string]bool{},

		Effect:       effect,
		ChainCount:   def.ChainCount,
		ChainRadius:  def.ChainRadius,
		ChainFalloff: def.ChainFalloff,
	}
	m.projectiles = append(m.projectiles, p)
}

// tickProjectiles advances every projectile, re-aiming homing shots at their
// target's current position, and resolves collisions. Collision is tested
// against the full segment swept this tick, so a fast projectile cannot skip
// over a unit sitting between two sample points; homing shots additionally
// never step past their target. Non-piercing projectiles die on the first
// qualifying hit even when several eligible targets overlap the hit radius.
func (m *Match) tickProjectiles(dt float64) {
	kept := m.projectiles[:0]
	for _, p := range m.projectiles {
		step := p.Speed * dt
		if home := m.unit(p.HomingID); home != nil {
			p.Dir = dirTo(p.Pos, home.Pos)
			if d := dist(p.Pos, home.Pos); step > d {
				step = d
			}
		}
		if step > p.RangeLeft {
			step = p.RangeLeft
		}
		start := p.Pos
		p.Pos.X += p.Dir.X * step
		p.Pos.Y += p.Dir.Y * step
		p.RangeLeft -= step

		if m.collideProjectile(p, start) && !p.Piercing {
			continue // destroyed on first hit
		}
		if p.RangeLeft <= 0 {
			continue // range exhausted
		}
		kept = append(kept, p)
	}
	m.projectiles = kept
}

// collideProjectile checks the segment the projectile swept this tick against
// eligible enemies and reports whether it hit at least one.
func (m *Match) collideProjectile(p *Projectile, start protocol.Position) bool {
	owner := m.byID[p.OwnerID] // may be nil after owner death; damage still lands
	for _, u := range m.unitsSnapshot() {
		if !u.Alive || u.Team == p.Team || p.Hit[u.ID] {
			continue
		}
		// Homing shots only ever strike their target.
		if p.HomingID != "" && u.ID != p.HomingID {
			continue
		}
		if u.IsStructure() && p.HomingID == "" {
			continue // skillshots fly over structures
		}
		if segDist(start, p.Pos, u.Pos) > u.Radius {
			continue
		}
		p.Hit[u.ID] = true
		m.ApplyDamage(owner, u, p.Damage, p.DamageType)
		if p.Effect == ProjectileEffectChain {
			m.chainDamage(owner, u, p)
		}
		if !p.Piercing {
			return true
		}
	}
	return false
}

// chainDamage jumps from the struck unit to the nearest not-yet-hit enemy
// within the chain radius, applying a falloff copy each jump. The visited
// set guarantees termination in at most ChainCount jumps and that no unit is
// struck twice.
func (m *Match) chainDamage(owner *Unit, first *Unit, p *Projectile) {
	visited := map[string]bool{first.ID: true}
	from := first
	damage := p.Damage
	for jump := 0; jump < p.ChainCount; jump++ {
		var next *Unit
		best := p.ChainRadius
		for _, u := range m.unitsSnapshot() {
			if !u.Alive || u.Team == p.Team || u.IsStructure() || visited[u.ID] {
				continue
			}
			if d := dist(from.Pos, u.Pos); d <= best {
				best = d
				next = u
			}
		}
		if next == nil {
			return
		}
		visited[next.ID] = true
		damage *= p.ChainFalloff
		m.ApplyDamage(owner, next, damage, p.DamageType)
		from = next
	}
}
