package match

import "leagueofmolts.ai/internal/protocol"

// tickWaves spawns a minion wave for both teams on the configured cadence.
func (m *Match) tickWaves(dt float64) {
	m.nextWaveIn -= dt
	if m.nextWaveIn > 0 {
		return
	}
	m.nextWaveIn += m.cfg.Minions.WaveEverySec
	m.waveNumber++
	for _, team := range []string{protocol.TeamBlue, protocol.TeamRed} {
		for i := 0; i < m.cfg.Minions.MeleePerWave; i++ {
			m.spawnMinion(team, true)
		}
		for i := 0; i < m.cfg.Minions.RangedPerWave; i++ {
			m.spawnMinion(team, false)
		}
	}
	m.emit(protocol.Event{"type": protocol.EventMinionWave, "wave": m.waveNumber})
}

// minionAct runs one minion's per-tick behavior: fight what is close,
// otherwise march toward the enemy nexus.
func (m *Match) minionAct(u *Unit) {
	target := m.unit(u.AttackTargetID)
	if target == nil || target.Team == u.Team || (target.Kind == KindChampion && target.Stealthed()) {
		u.AttackTargetID = ""
		target = m.acquireTarget(u, m.cfg.Minions.AggroRadius)
		if target != nil {
			u.AttackTargetID = target.ID
		}
	}
	if target == nil {
		u.MoveTarget = &protocol.Position{X: m.nexusPos(enemyTeam(u.Team)).X, Y: m.laneY()}
		return
	}
	u.MoveTarget = nil
	if dist(u.Pos, target.Pos)-target.Radius > u.Stats.AttackRange {
		// Walk into range; movement happens in tickMovement via MoveTarget.
		// Copy the position: the order must not track the target's later
		// teleports through a shared pointer.
		pos := target.Pos
		u.MoveTarget = &pos
		return
	}
	if u.AttackCooldown > 0 {
		return
	}
	m.performAttack(u, target)
}

// acquireTarget returns the nearest living enemy within radius: minions and
// champions first, then structures. Stealthed champions are not targetable.
func (m *Match) acquireTarget(u *Unit, radius float64) *Unit {
	for pass := 0; pass < 2; pass++ {
		var best *Unit
		bestD := radius
		for _, e := range m.units {
			if !e.Alive || e.Team == u.Team || e.Team == "" {
				continue
			}
			if e.Kind == KindChampion && e.Stealthed() {
				continue
			}
			if e.IsStructure() != (pass == 1) {
				continue
			}
			if d := dist(u.Pos, e.Pos) - e.Radius; d <= bestD {
				bestD = d
				best = e
			}
		}
		if best != nil {
			return best
		}
	}
	return nil
}
