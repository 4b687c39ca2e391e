package match

import (
	"leagueofmolts.ai/internal/protocol"
)

// ApplyDamage resolves one instance of damage from source onto target and
// returns the amount actually dealt after mitigation and shield absorption.
// Shields are consumed FIFO before health is touched. A target reduced to
// zero health dies in the same call: death event, kill rewards, respawn or
// despawn.
func (m *Match) ApplyDamage(source, target *Unit, raw float64, dtype string) float64 {
	if target == nil || !target.Alive || raw <= 0 || m.state == StateEnded {
		return 0
	}

	amount := mitigate(raw, dtype, target)

	// Taking damage interrupts a channel, canceling the remaining pulses.
	if target.Channel != nil {
		target.Channel = nil
	}

	// Shields first.
	dealt := 0.0
	for len(target.Shields) > 0 && amount > 0 {
		sh := target.Shields[0]
		if sh.Amount > amount {
			sh.Amount -= amount
			dealt += amount
			amount = 0
			break
		}
		amount -= sh.Amount
		dealt += sh.Amount
		target.Shields = target.Shields[1:]
	}

	if amount > 0 {
		before := target.Health
		target.Health = clamp(target.Health-amount, 0, target.MaxHealth)
		dealt += before - target.Health
	}

	// Assist bookkeeping: only champion attackers are recorded.
	if source != nil && source.Kind == KindChampion && target.Kind == KindChampion {
		target.recentDamage[source.ID] = m.matchTime
	}

	if target.Health <= 0 {
		m.kill(source, target)
	}
	return dealt
}

// ApplyAreaDamage applies damage to every eligible unit within radius of
// center and returns the hit set. Allies of source are skipped unless
// includeAllies is set. Structures are never hit by area damage.
func (m *Match) ApplyAreaDamage(center protocol.Position, radius float64, source *Unit, amount float64, dtype string, includeAllies bool) []*Unit {
	var hit []*Unit
	for _, u := range m.unitsSnapshot() {
		if !u.Alive || u.IsStructure() || u == source {
			continue
		}
		if !includeAllies && source != nil && u.Team == source.Team {
			continue
		}
		if dist(center, u.Pos) > radius {
			continue
		}
		m.ApplyDamage(source, u, amount, dtype)
		hit = append(hit, u)
	}
	return hit
}

// unitsSnapshot copies the unit list so death-triggered removal during
// iteration cannot skip entries.
func (m *Match) unitsSnapshot() []*Unit {
	out := make([]*Unit, len(m.units))
	copy(out, m.units)
	return out
}

func (m *Match) kill(killer, victim *Unit) {
	victim.Alive = false
	victim.Health = 0
	victim.MoveTarget = nil
	victim.AttackTargetID = ""
	victim.Dash = nil
	victim.Channel = nil

	killerID := ""
	if killer != nil {
		killerID = killer.ID
	}

	switch victim.Kind {
	case KindMinion:
		if killer != nil && killer.Kind == KindChampion {
			killer.Gold += m.cfg.Economy.MinionKillGold
			m.awardXP(killer, m.cfg.Economy.MinionKillXP)
		}
		m.emit(protocol.Event{
			"type": protocol.EventMinionKill, "killer_id": killerID, "victim_id": victim.ID,
		})
		m.removeUnit(victim.ID)

	case KindChampion:
		assists := m.assistIDs(killer, victim)
		if killer != nil && killer.Kind == KindChampion {
			killer.Gold += m.cfg.Economy.ChampionKillGold
			m.awardXP(killer, m.cfg.Economy.ChampionKillXP)
			killer.KillStreak++
		}
		for _, id := range assists {
			if a := m.unit(id); a != nil {
				a.Gold += m.cfg.Economy.AssistGold
			}
		}
		victim.KillStreak = 0
		victim.Effects = nil
		victim.Shields = nil
		m.recomputeStats(victim)
		victim.RespawnIn = m.cfg.Respawn.BaseSec + m.cfg.Respawn.PerLevelSec*float64(victim.Level)

		ev := protocol.Event{
			"type": protocol.EventChampionKill, "killer_id": killerID, "victim_id": victim.ID,
			"victim_champion": victim.Champion, "assist_ids": assists,
		}
		if killer != nil {
			ev["killer_champion"] = killer.Champion
			ev["kill_streak"] = killer.KillStreak
		}
		m.emit(ev)
		if !m.firstBlood && killer != nil && killer.Kind == KindChampion {
			m.firstBlood = true
			m.emit(protocol.Event{"type": protocol.EventFirstBlood, "killer_id": killerID, "victim_id": victim.ID})
		}

	case KindTower:
		m.towersLeft[victim.Team]--
		if killer != nil && killer.Kind == KindChampion {
			killer.Gold += m.cfg.Towers.GoldOnDestroy
		}
		m.emit(protocol.Event{
			"type": protocol.EventTowerDestroyed, "team": victim.Team, "tower_id": victim.ID,
			"killer_id": killerID, "towers_remaining": m.towersLeft[victim.Team],
		})
		m.removeUnit(victim.ID)

	case KindNexus:
		m.emit(protocol.Event{"type": protocol.EventNexusDestroyed, "team": victim.Team, "killer_id": killerID})
		// Win condition (a): the match ends on this same tick.
		m.endMatch(enemyTeam(victim.Team))
	}
}

// assistIDs returns the enemy champions, excluding the killer, that damaged
// the victim within the assist window before death.
func (m *Match) assistIDs(killer, victim *Unit) []string {
	var out []string
	cutoff := m.matchTime - m.cfg.Economy.AssistWindowSec
	for _, u := range m.units {
		if u.Kind != KindChampion || u.Team == victim.Team {
			continue
		}
		if killer != nil && u.ID == killer.ID {
			continue
		}
		if at, ok := victim.recentDamage[u.ID]; ok && at >= cutoff {
			out = append(out, u.ID)
		}
	}
	return out
}

// tickRespawns counts down dead champions and respawns them at their spawn
// point with full health and mana.
func (m *Match) tickRespawns(dt float64) {
	for _, u := range m.units {
		if u.Kind != KindChampion || u.Alive {
			continue
		}
		u.RespawnIn -= dt
		if u.RespawnIn > 0 {
			continue
		}
		u.Alive = true
		u.RespawnIn = 0
		u.Pos = u.SpawnPos
		m.recomputeStats(u)
		u.Health = u.MaxHealth
		u.Mana = u.MaxMana
		m.emit(protocol.Event{"type": protocol.EventRespawn, "unit_id": u.ID})
	}
}

// tickAttacks runs auto-attack acquisition and execution for every unit kind.
func (m *Match) tickAttacks(dt float64) {
	for _, u := range m.unitsSnapshot() {
		if !u.Alive {
			continue
		}
		if u.AttackCooldown > 0 {
			u.AttackCooldown -= dt
		}
		switch u.Kind {
		case KindChampion:
			m.championAttack(u, dt)
		case KindMinion:
			m.minionAct(u)
		case KindTower:
			m.towerAct(u)
		}
	}
}

func (m *Match) championAttack(u *Unit, dt float64) {
	if u.Busy() || u.HardCrowdControlled() {
		return
	}
	target := m.unit(u.AttackTargetID)
	if target == nil || target.Team == u.Team || (target.Kind == KindChampion && target.Stealthed()) {
		u.AttackTargetID = ""
		return
	}
	// Attack-move: walk into range first.
	if dist(u.Pos, target.Pos)-target.Radius > u.Stats.AttackRange {
		pos, _ := stepToward(u.Pos, target.Pos, u.Stats.MoveSpeed, dt)
		u.Pos = m.clampToArena(pos)
		return
	}
	if u.AttackCooldown > 0 {
		return
	}
	m.performAttack(u, target)
}

// performAttack launches one auto-attack. Ranged attackers fire a homing
// projectile; melee attacks land immediately. Attacking breaks stealth and
// consumes an empowered strike if one is armed.
func (m *Match) performAttack(u *Unit, target *Unit) {
	damage := u.Stats.AttackDamage
	if e := u.effect(EffectEmpoweredStrike); e != nil {
		damage += u.Stats.AttackDamage * e.BonusRatio
		m.removeEffect(u, EffectEmpoweredStrike)
	}
	m.breakStealth(u)
	if u.Stats.AttackSpeed > 0 {
		u.AttackCooldown = 1 / u.Stats.AttackSpeed
	}
	if u.IsMelee && u.Kind != KindTower {
		m.ApplyDamage(u, target, damage, DamagePhysical)
		return
	}
	m.spawnHomingProjectile(u, target, damage, DamagePhysical)
}
