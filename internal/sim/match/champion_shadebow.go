package match

import (
	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
)

// Shadebow: ranged marksman. Q piercing skillshot, W stealth, E mobility
// dash that arms an empowered auto, R area barrage.

func shadebowPiercingArrow(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, target *Unit) {
	aim := targetPos
	if aim == nil && target != nil {
		aim = &target.Pos
	}
	if aim == nil || (aim.X == u.Pos.X && aim.Y == u.Pos.Y) {
		return
	}
	damage := m.abilityDamage(u, def)
	m.spawnSkillshot(u, dirTo(u.Pos, *aim), def, damage, true, ProjectileEffectNone)
}

func shadebowShadowVeil(m *Match, u *Unit, def catalogs.Ability, _ *protocol.Position, _ *Unit) {
	// Enemy attack orders lose the target once it fades.
	for _, e := range m.units {
		if e.AttackTargetID == u.ID && e.Team != u.Team {
			e.AttackTargetID = ""
		}
	}
	m.addEffect(u, &Effect{
		Type:         EffectStealth,
		SourceID:     u.ID,
		Remaining:    def.Duration,
		MoveSpeedPct: def.BuffMoveSpeedPct,
	})
}

func shadebowTumble(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, _ *Unit) {
	if targetPos == nil {
		return
	}
	end := *targetPos
	if d := dist(u.Pos, end); d > def.Range {
		dir := dirTo(u.Pos, end)
		end = protocol.Position{X: u.Pos.X + dir.X*def.Range, Y: u.Pos.Y + dir.Y*def.Range}
	}
	u.Dash = &DashState{
		Target:            m.clampToArena(end),
		Speed:             def.DashSpeed,
		Def:               def,
		EmpowerNextAttack: true,
		Hit:               map[string]bool{},
	}
	u.MoveTarget = nil
}

func shadebowArrowStorm(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, _ *Unit) {
	if targetPos == nil {
		return
	}
	pos := *targetPos
	if d := dist(u.Pos, pos); d > def.Range {
		dir := dirTo(u.Pos, pos)
		pos = protocol.Position{X: u.Pos.X + dir.X*def.Range, Y: u.Pos.Y + dir.Y*def.Range}
	}
	m.spawnZone(u, m.clampToArena(pos), def, m.abilityDamage(u, def))
}
