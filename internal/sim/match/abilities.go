package match

import (
	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
)

// abilityHandler executes a champion-specific ability effect after the
// shared gates have passed and costs have been paid.
type abilityHandler func(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, target *Unit)

// abilityDispatch maps champion name and slot to its effect handler. This is
// the only registry; there is no per-call special casing.
var abilityDispatch = map[string]map[string]abilityHandler{
	"Ironclad": {
		protocol.SlotQ: ironcladShieldBash,
		protocol.SlotW: ironcladIronSkin,
		protocol.SlotE: ironcladCharge,
		protocol.SlotR: ironcladEarthquake,
	},
	"Voltaic": {
		protocol.SlotQ: voltaicArcBolt,
		protocol.SlotW: voltaicStaticField,
		protocol.SlotE: voltaicBlink,
		protocol.SlotR: voltaicOvercharge,
	},
	"Shadebow": {
		protocol.SlotQ: shadebowPiercingArrow,
		protocol.SlotW: shadebowShadowVeil,
		protocol.SlotE: shadebowTumble,
		protocol.SlotR: shadebowArrowStorm,
	},
}

// CastAbility is the single path for applying an ability, used by the
// network boundary, internal AI, and tests alike. A failed precondition
// leaves cooldown, mana, and position unchanged.
func (m *Match) CastAbility(u *Unit, slot string, targetPos *protocol.Position, target *Unit) bool {
	if u == nil || !u.Alive || u.Kind != KindChampion {
		return false
	}
	if u.HardCrowdControlled() || u.Busy() {
		return false
	}
	def, ok := m.cats.Champions.ByName[u.Champion].Abilities[slot]
	if !ok {
		return false
	}
	if def.LevelRequired > 0 && u.Level < def.LevelRequired {
		return false
	}
	if u.Cooldowns[slot] > 0 {
		return false
	}
	if u.Mana < def.ManaCost {
		return false
	}
	handler := abilityDispatch[u.Champion][slot]
	if handler == nil {
		return false
	}

	u.Mana = clamp(u.Mana-def.ManaCost, 0, u.MaxMana)
	u.Cooldowns[slot] = def.Cooldown
	m.breakStealth(u)
	handler(m, u, def, targetPos, target)
	return true
}

// tickCooldowns decreases every slot's remaining cooldown toward zero.
// Cooldowns are passive timers: they run through stuns, dashes and channels.
func (m *Match) tickCooldowns(u *Unit, dt float64) {
	for slot, cd := range u.Cooldowns {
		if cd > 0 {
			cd -= dt
			if cd < 0 {
				cd = 0
			}
			u.Cooldowns[slot] = cd
		}
	}
}

// abilityDamage computes a definition's damage with AD/AP scaling, consuming
// an empower-next buff if one is armed. The buff amplifies the cast and
// refunds part of the mana just paid; it never stacks and is spent whole.
func (m *Match) abilityDamage(u *Unit, def catalogs.Ability) float64 {
	damage := def.Damage + def.ADRatio*u.Stats.AttackDamage + def.APRatio*u.Stats.AbilityPower
	if damage <= 0 {
		return 0
	}
	if e := u.effect(EffectEmpowerNext); e != nil {
		damage *= 1 + e.AmplifyPct
		u.Mana = clamp(u.Mana+e.RefundFraction*def.ManaCost, 0, u.MaxMana)
		m.removeEffect(u, EffectEmpowerNext)
	}
	return damage
}

// tickDash advances an active dash toward its fixed endpoint, applying
// collision hits at most once per enemy along the path.
func (m *Match) tickDash(u *Unit, dt float64) {
	d := u.Dash
	if d == nil {
		return
	}
	pos, arrived := stepToward(u.Pos, d.Target, d.Speed, dt)
	u.Pos = m.clampToArena(pos)

	if d.DamageOnPath > 0 {
		for _, e := range m.unitsSnapshot() {
			if !e.Alive || e.Team == u.Team || e.IsStructure() || d.Hit[e.ID] {
				continue
			}
			if dist(u.Pos, e.Pos) <= e.Radius+u.Radius {
				d.Hit[e.ID] = true
				m.ApplyDamage(u, e, d.DamageOnPath, d.Def.DamageType)
			}
		}
	}
	if !arrived {
		return
	}

	// End of dash.
	if d.Slam {
		m.ApplyAreaDamage(u.Pos, d.Def.Radius, u, d.SlamDamage, d.Def.DamageType, false)
	}
	if d.EmpowerNextAttack {
		m.addEffect(u, &Effect{
			Type:       EffectEmpoweredStrike,
			SourceID:   u.ID,
			Remaining:  d.Def.EmpowerSec,
			BonusRatio: d.Def.EmpowerBonus,
		})
	}
	u.Dash = nil
}

// tickChannel fires the channel's periodic pulses. The unit is immobile for
// the duration; ApplyDamage cancels the channel when the unit takes damage.
func (m *Match) tickChannel(u *Unit, dt float64) {
	c := u.Channel
	if c == nil {
		return
	}
	c.Remaining -= dt
	c.NextPulseIn -= dt
	for c.NextPulseIn <= 0 && c.Remaining > -dt {
		c.NextPulseIn += c.Def.TickInterval
		m.ApplyAreaDamage(u.Pos, c.Def.Radius, u, c.PulseDamage, c.Def.DamageType, false)
		// A pulse kill can end the match; the channel state may have been
		// cleared by incoming damage in the meantime.
		if u.Channel != c {
			return
		}
	}
	if c.Remaining <= 0 {
		u.Channel = nil
	}
}
