package match

import (
	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
)

// Voltaic: ranged mage. Q chaining bolt, W damage/slow zone, E blink,
// R empower-next-ability.

func voltaicArcBolt(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, target *Unit) {
	aim := targetPos
	if aim == nil && target != nil {
		aim = &target.Pos
	}
	if aim == nil || (aim.X == u.Pos.X && aim.Y == u.Pos.Y) {
		return
	}
	damage := m.abilityDamage(u, def)
	m.spawnSkillshot(u, dirTo(u.Pos, *aim), def, damage, false, ProjectileEffectChain)
}

func voltaicStaticField(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, _ *Unit) {
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

func voltaicBlink(m *Match, u *Unit, def catalogs.Ability, targetPos *protocol.Position, _ *Unit) {
	if targetPos == nil {
		return
	}
	dest := *targetPos
	if d := dist(u.Pos, dest); d > def.Range {
		dir := dirTo(u.Pos, dest)
		dest = protocol.Position{X: u.Pos.X + dir.X*def.Range, Y: u.Pos.Y + dir.Y*def.Range}
	}
	u.Pos = m.clampToArena(dest)
	u.MoveTarget = nil
}

func voltaicOvercharge(m *Match, u *Unit, def catalogs.Ability, _ *protocol.Position, _ *Unit) {
	// Replaces any active empower; never stacks.
	m.addEffect(u, &Effect{
		Type:           EffectEmpowerNext,
		SourceID:       u.ID,
		Remaining:      def.Duration,
		AmplifyPct:     def.AmplifyPct,
		RefundFraction: def.RefundFraction,
	})
}
