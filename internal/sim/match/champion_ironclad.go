package match

import (
	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
)

// Ironclad: melee bruiser. Q point-blank strike with a stun, W armor
// buff plus shield, E dash with an end-of-dash slam, R channeled quakes.

func ironcladShieldBash(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, target *Unit) {
	if target == nil || target.Team == u.Team || !target.Alive {
		return
	}
	if dist(u.Pos, target.Pos)-target.Radius > def.Range {
		return
	}
	damage := m.abilityDamage(u, def)
	m.ApplyDamage(u, target, damage, def.DamageType)
	if target.Alive && target.Kind == KindChampion && def.StunSec > 0 {
		m.addEffect(target, &Effect{Type: EffectStun, SourceID: u.ID, Remaining: def.StunSec})
	}
}

func ironcladIronSkin(m *Match, u *Unit, def catalogs.Ability, _ *protocol.Position, _ *Unit) {
	m.addEffect(u, &Effect{
		Type:      EffectStatBuff,
		SourceID:  u.ID,
		Remaining: def.Duration,
		Mods:      Stats{Armor: def.BuffArmor, MagicResist: def.BuffMagicResist},
	})
	u.Shields = append(u.Shields, &Shield{
		Amount:    def.ShieldBase + def.ShieldPerLevel*float64(u.Level),
		Remaining: def.Duration,
	})
}

func ironcladCharge(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, _ *Unit) {
	if targetPos == nil {
		return
	}
	end := *targetPos
	if d := dist(u.Pos, end); d > def.Range {
		dir := dirTo(u.Pos, end)
		end = protocol.Position{X: u.Pos.X + dir.X*def.Range, Y: u.Pos.Y + dir.Y*def.Range}
	}
	u.Dash = &DashState{
		Target:       m.clampToArena(end),
		Speed:        def.DashSpeed,
		Def:          def,
		Slam:         true,
		Hit:          map[string]bool{},
		DamageOnPath: def.Damage + def.ADRatio*u.Stats.AttackDamage,
		SlamDamage:   m.abilityDamage(u, def),
	}
	u.MoveTarget = nil
	u.AttackTargetID = ""
}

func ironcladEarthquake(m *Match, u *Unit, def catalogs.Ability, _ *protocol.Position, _ *Unit) {
	u.Channel = &ChannelState{
		Remaining:   def.Duration,
		NextPulseIn: def.TickInterval,
		Def:         def,
		PulseDamage: m.abilityDamage(u, def),
	}
	u.MoveTarget = nil
	u.AttackTargetID = ""
}
