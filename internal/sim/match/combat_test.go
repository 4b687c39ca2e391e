package match

import (
	"math"
	"testing"

	"leagueofmolts.ai/internal/protocol"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func eventTypes(m *Match) []string {
	var out []string
	for _, e := range m.events {
		out = append(out, e["type"].(string))
	}
	return out
}

func countEvents(m *Match, typ string) int {
	n := 0
	for _, e := range m.events {
		if e["type"] == typ {
			n++
		}
	}
	return n
}

func TestMitigationCurve(t *testing.T) {
	m := newPlayingMatch(t)
	cases := []struct {
		armor float64
		dtype string
		raw   float64
		want  float64
	}{
		{0, DamagePhysical, 100, 100},
		{100, DamagePhysical, 100, 50},
		{300, DamagePhysical, 100, 25},
		{100, DamageTrue, 100, 100},
	}
	for _, tc := range cases {
		mn := m.spawnMinion(protocol.TeamRed, true)
		mn.MaxHealth = 10000
		mn.Health = 10000
		mn.Stats.Armor = tc.armor
		dealt := m.ApplyDamage(nil, mn, tc.raw, tc.dtype)
		if !almostEqual(dealt, tc.want) {
			t.Errorf("armor=%v dtype=%s raw=%v: dealt %v, want %v", tc.armor, tc.dtype, tc.raw, dealt, tc.want)
		}
	}
}

func TestMagicResistMitigation(t *testing.T) {
	m := newPlayingMatch(t)
	mn := m.spawnMinion(protocol.TeamRed, true)
	mn.MaxHealth = 10000
	mn.Health = 10000
	mn.Stats.MagicResist = 100
	mn.Stats.Armor = 300
	if dealt := m.ApplyDamage(nil, mn, 100, DamageMagic); !almostEqual(dealt, 50) {
		t.Fatalf("magic damage through 100 MR dealt %v, want 50", dealt)
	}
}

func TestShieldsAbsorbFIFO(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	u.Shields = []*Shield{
		{Amount: 30, Remaining: 5},
		{Amount: 50, Remaining: 5},
	}
	before := u.Health

	m.ApplyDamage(nil, u, 60, DamageTrue)
	if u.Health != before {
		t.Fatalf("health dipped while shields remained: %v -> %v", before, u.Health)
	}
	if len(u.Shields) != 1 || !almostEqual(u.Shields[0].Amount, 20) {
		t.Fatalf("shields after 60 damage = %+v, want one shield of 20", u.Shields)
	}

	m.ApplyDamage(nil, u, 25, DamageTrue)
	if len(u.Shields) != 0 {
		t.Fatalf("shield should be exhausted, got %+v", u.Shields)
	}
	if !almostEqual(u.Health, before-5) {
		t.Fatalf("health = %v, want %v", u.Health, before-5)
	}
}

func TestDamageInterruptsChannel(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	u.Channel = &ChannelState{Remaining: 3, NextPulseIn: 0.5}
	m.ApplyDamage(nil, u, 1, DamageTrue)
	if u.Channel != nil {
		t.Fatalf("channel survived incoming damage")
	}
}

func TestChampionKillRewardsAndAssist(t *testing.T) {
	m := newPlayingMatch(t)
	victim := champ(t, m, "blue_1")
	killer := champ(t, m, "red_1")
	assister := champ(t, m, "red_2")

	m.matchTime = 100
	m.ApplyDamage(assister, victim, 10, DamageTrue)
	m.matchTime = 105 // inside the 10s assist window

	killerGold, assisterGold := killer.Gold, assister.Gold
	m.ApplyDamage(killer, victim, victim.Health+victim.MaxHealth, DamageTrue)

	if victim.Alive {
		t.Fatalf("victim should be dead")
	}
	if killer.Gold != killerGold+m.cfg.Economy.ChampionKillGold {
		t.Fatalf("killer gold = %d, want +%d", killer.Gold, m.cfg.Economy.ChampionKillGold)
	}
	if assister.Gold != assisterGold+m.cfg.Economy.AssistGold {
		t.Fatalf("assister gold = %d, want +%d", assister.Gold, m.cfg.Economy.AssistGold)
	}
	wantRespawn := m.cfg.Respawn.BaseSec + m.cfg.Respawn.PerLevelSec*float64(victim.Level)
	if !almostEqual(victim.RespawnIn, wantRespawn) {
		t.Fatalf("respawn timer = %v, want %v", victim.RespawnIn, wantRespawn)
	}
	if killer.KillStreak != 1 {
		t.Fatalf("killer streak = %d, want 1", killer.KillStreak)
	}
}

func TestAssistWindowExpires(t *testing.T) {
	m := newPlayingMatch(t)
	victim := champ(t, m, "blue_1")
	killer := champ(t, m, "red_1")
	stale := champ(t, m, "red_2")

	m.matchTime = 100
	m.ApplyDamage(stale, victim, 10, DamageTrue)
	m.matchTime = 120 // outside the window

	staleGold := stale.Gold
	m.ApplyDamage(killer, victim, victim.Health+victim.MaxHealth, DamageTrue)
	if stale.Gold != staleGold {
		t.Fatalf("stale damage earned an assist")
	}
}

func TestFirstBloodEmittedOnce(t *testing.T) {
	m := newPlayingMatch(t)
	killer := champ(t, m, "red_1")

	v1 := champ(t, m, "blue_1")
	m.ApplyDamage(killer, v1, v1.Health+v1.MaxHealth, DamageTrue)
	if countEvents(m, protocol.EventFirstBlood) != 1 {
		t.Fatalf("events after first kill: %v", eventTypes(m))
	}

	v2 := champ(t, m, "blue_2")
	m.ApplyDamage(killer, v2, v2.Health+v2.MaxHealth, DamageTrue)
	if countEvents(m, protocol.EventFirstBlood) != 1 {
		t.Fatalf("first blood emitted more than once: %v", eventTypes(m))
	}
}

func TestDeathClearsEffectsAndShields(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	m.addEffect(u, &Effect{Type: EffectStatBuff, Remaining: 10, Mods: Stats{Armor: 40}})
	u.Shields = append(u.Shields, &Shield{Amount: 50, Remaining: 10})

	// Shields absorb first, so overshoot past shield plus health.
	m.ApplyDamage(nil, u, u.Health+u.MaxHealth+1000, DamageTrue)
	if u.Alive {
		t.Fatalf("unit should be dead")
	}
	if len(u.Effects) != 0 || len(u.Shields) != 0 {
		t.Fatalf("death must clear effects and shields: %d effects, %d shields", len(u.Effects), len(u.Shields))
	}
}

func TestRespawnRestoresFullState(t *testing.T) {
	m := newPlayingMatch(t)
	u := champ(t, m, "blue_1")
	u.Pos = protocol.Position{X: 3000, Y: 1000}
	m.ApplyDamage(nil, u, u.Health+u.MaxHealth, DamageTrue)

	for u.RespawnIn > 0 {
		m.tickRespawns(0.5)
	}
	if !u.Alive {
		t.Fatalf("champion did not respawn")
	}
	if u.Pos != u.SpawnPos {
		t.Fatalf("respawned at %+v, want spawn %+v", u.Pos, u.SpawnPos)
	}
	if u.Health != u.MaxHealth || u.Mana != u.MaxMana {
		t.Fatalf("respawn must restore full health and mana")
	}
}

func TestTowerDestructionRewardsAndCount(t *testing.T) {
	m := newPlayingMatch(t)
	killer := champ(t, m, "blue_1")
	tower := m.byID["T_red_1"]
	if tower == nil {
		t.Fatalf("missing red tower")
	}
	gold := killer.Gold
	m.ApplyDamage(killer, tower, tower.Health+1, DamageTrue)
	if m.towersLeft[protocol.TeamRed] != m.cfg.Towers.PerTeam-1 {
		t.Fatalf("red towers left = %d", m.towersLeft[protocol.TeamRed])
	}
	if killer.Gold != gold+m.cfg.Towers.GoldOnDestroy {
		t.Fatalf("killer gold = %d, want +%d", killer.Gold, m.cfg.Towers.GoldOnDestroy)
	}
	if m.byID["T_red_1"] != nil {
		t.Fatalf("destroyed tower still present")
	}
}

func TestMinionKillGrantsGoldAndXP(t *testing.T) {
	m := newPlayingMatch(t)
	killer := champ(t, m, "blue_1")
	mn := m.spawnMinion(protocol.TeamRed, true)
	gold, xp := killer.Gold, killer.XP
	m.ApplyDamage(killer, mn, mn.Health+1, DamageTrue)
	if killer.Gold != gold+m.cfg.Economy.MinionKillGold {
		t.Fatalf("gold = %d, want +%d", killer.Gold, m.cfg.Economy.MinionKillGold)
	}
	if killer.XP != xp+m.cfg.Economy.MinionKillXP {
		t.Fatalf("xp = %d, want +%d", killer.XP, m.cfg.Economy.MinionKillXP)
	}
}

func TestAreaDamageSkipsStructuresAndAllies(t *testing.T) {
	m := newPlayingMatch(t)
	src := champ(t, m, "blue_1")
	ally := champ(t, m, "blue_2")
	enemy := champ(t, m, "red_1")
	center := protocol.Position{X: 2000, Y: 1000}
	src.Pos = center
	ally.Pos = center
	enemy.Pos = center
	tower := m.byID["T_red_1"]
	tower.Pos = center

	hit := m.ApplyAreaDamage(center, 100, src, 50, DamageMagic, false)
	if len(hit) != 1 || hit[0] != enemy {
		t.Fatalf("area hit set = %v, want only the enemy champion", hit)
	}
	if tower.Health != tower.MaxHealth {
		t.Fatalf("area damage struck a structure")
	}
}
