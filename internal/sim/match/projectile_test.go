package match

import (
	"testing"

	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
)

func testMinionAt(m *Match, team string, pos protocol.Position) *Unit {
	mn := m.spawnMinion(team, true)
	mn.Pos = pos
	mn.MaxHealth = 100000
	mn.Health = 100000
	return mn
}

func runProjectiles(m *Match, ticks int) {
	for i := 0; i < ticks && len(m.projectiles) > 0; i++ {
		m.tickProjectiles(0.05)
	}
}

func TestNonPiercingHitsExactlyOne(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_2")
	owner.Pos = protocol.Position{X: 1000, Y: 1000}

	// Two enemies stacked on the flight path, both within the hit radius.
	a := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1300, Y: 1000})
	b := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1310, Y: 1000})

	def := catalogs.Ability{Range: 700, Speed: 1100, Damage: 100, DamageType: DamageMagic}
	m.spawnSkillshot(owner, protocol.Position{X: 1, Y: 0}, def, 100, false, ProjectileEffectNone)
	runProjectiles(m, 100)

	hit := 0
	if a.Health < 100000 {
		hit++
	}
	if b.Health < 100000 {
		hit++
	}
	if hit != 1 {
		t.Fatalf("non-piercing projectile hit %d units, want exactly 1", hit)
	}
	if len(m.projectiles) != 0 {
		t.Fatalf("projectile should be destroyed on hit")
	}
}

func TestPiercingHitsEveryoneOnPath(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_3")
	owner.Pos = protocol.Position{X: 1000, Y: 1000}

	a := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1300, Y: 1000})
	b := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1600, Y: 1000})

	def := catalogs.Ability{Range: 900, Speed: 1300, Damage: 100, DamageType: DamagePhysical}
	m.spawnSkillshot(owner, protocol.Position{X: 1, Y: 0}, def, 100, true, ProjectileEffectNone)
	runProjectiles(m, 100)

	if a.Health >= 100000 || b.Health >= 100000 {
		t.Fatalf("piercing projectile must strike every unit on the path")
	}
}

func TestProjectileExpiresAtRange(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_3")
	owner.Pos = protocol.Position{X: 1000, Y: 1000}

	far := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 2500, Y: 1000})

	def := catalogs.Ability{Range: 900, Speed: 1300, Damage: 100, DamageType: DamagePhysical}
	m.spawnSkillshot(owner, protocol.Position{X: 1, Y: 0}, def, 100, true, ProjectileEffectNone)
	runProjectiles(m, 200)

	if far.Health < 100000 {
		t.Fatalf("projectile struck past its max range")
	}
	if len(m.projectiles) != 0 {
		t.Fatalf("expired projectile still live")
	}
}

func TestChainBoundedAndFallsOff(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_2")
	owner.Pos = protocol.Position{X: 1000, Y: 1000}

	// Five clustered enemies; chain_count 3 allows at most 4 total touches.
	var cluster []*Unit
	for i := 0; i < 5; i++ {
		cluster = append(cluster, testMinionAt(m, protocol.TeamRed,
			protocol.Position{X: 1400 + float64(i)*60, Y: 1000}))
	}

	def := m.cats.Champions.ByName["Voltaic"].Abilities[protocol.SlotQ]
	m.spawnSkillshot(owner, protocol.Position{X: 1, Y: 0}, def, 100, false, ProjectileEffectChain)
	runProjectiles(m, 100)

	touched := 0
	for _, u := range cluster {
		if u.Health < 100000 {
			touched++
		}
	}
	if touched != def.ChainCount+1 {
		t.Fatalf("chain touched %d units, want %d", touched, def.ChainCount+1)
	}

	// The first victim takes full damage; each jump decays by the falloff.
	first := 100000 - cluster[0].Health
	second := 100000 - cluster[1].Health
	if !almostEqual(second, first*def.ChainFalloff) {
		t.Fatalf("falloff: first=%v second=%v, want ratio %v", first, second, def.ChainFalloff)
	}
}

func TestHomingProjectileTracksTarget(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_3") // ranged
	owner.Pos = protocol.Position{X: 1000, Y: 1000}
	target := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1400, Y: 1000})

	m.spawnHomingProjectile(owner, target, 100, DamagePhysical)
	// The target strafes; the projectile re-aims every tick.
	for i := 0; i < 40 && len(m.projectiles) > 0; i++ {
		target.Pos.Y += 20
		m.tickProjectiles(0.05)
	}
	if target.Health >= 100000 {
		t.Fatalf("homing projectile lost its target")
	}
}

func TestHomingNeverOvershootsStationaryTarget(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_3")
	owner.Pos = protocol.Position{X: 1000, Y: 1000}

	// 410 is not a multiple of the per-tick step (75), so an endpoint-only
	// collision check would sample at 35 units past the center, outside the
	// minion radius, and circle forever.
	target := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1410, Y: 1000})

	m.spawnHomingProjectile(owner, target, 100, DamagePhysical)
	runProjectiles(m, 100)

	if target.Health >= 100000 {
		t.Fatalf("homing projectile never landed on a stationary target")
	}
	if len(m.projectiles) != 0 {
		t.Fatalf("homing projectile still live after its target was struck")
	}
}

func TestSkillshotSweepsBetweenSamplePoints(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_3")
	owner.Pos = protocol.Position{X: 1000, Y: 1000}

	// Centered on the flight line, exactly between two per-tick sample
	// points (1065 and 1130 at speed 1300): only a swept segment catches it.
	between := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1097.5, Y: 1000})

	def := m.cats.Champions.ByName["Shadebow"].Abilities[protocol.SlotQ]
	m.spawnSkillshot(owner, protocol.Position{X: 1, Y: 0}, def, 100, true, ProjectileEffectNone)
	runProjectiles(m, 100)

	if between.Health >= 100000 {
		t.Fatalf("skillshot flew through a minion centered on its flight path")
	}
}

func TestHomingOnlyStrikesItsTarget(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_3")
	owner.Pos = protocol.Position{X: 1000, Y: 1000}
	bystander := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1200, Y: 1000})
	target := testMinionAt(m, protocol.TeamRed, protocol.Position{X: 1400, Y: 1000})

	m.spawnHomingProjectile(owner, target, 100, DamagePhysical)
	runProjectiles(m, 100)

	if bystander.Health < 100000 {
		t.Fatalf("homing projectile struck a bystander")
	}
	if target.Health >= 100000 {
		t.Fatalf("homing projectile missed its target")
	}
}

func TestZonePulsesAndSlows(t *testing.T) {
	m := newPlayingMatch(t)
	owner := champ(t, m, "blue_2")
	victim := champ(t, m, "red_1")
	center := protocol.Position{X: 2000, Y: 1000}
	victim.Pos = center

	def := m.cats.Champions.ByName["Voltaic"].Abilities[protocol.SlotW]
	m.spawnZone(owner, center, def, 50)

	baseSpeed := victim.Stats.MoveSpeed
	hp := victim.Health
	// First pulse fires one interval in.
	m.tickZones(def.TickInterval)
	if victim.Health >= hp {
		t.Fatalf("zone pulse dealt no damage")
	}
	if victim.effect(EffectSlow) == nil {
		t.Fatalf("zone pulse should slow champion occupants")
	}
	if victim.Stats.MoveSpeed >= baseSpeed {
		t.Fatalf("slow did not reduce move speed: %v -> %v", baseSpeed, victim.Stats.MoveSpeed)
	}

	// Expiry: remaining duration runs out and the zone is culled.
	m.tickZones(def.Duration)
	if len(m.zones) != 0 {
		t.Fatalf("zone outlived its duration")
	}
}
