package match

import "leagueofmolts.ai/internal/protocol"

// step advances the match by one tick. Ordering within a tick is fixed:
// connection churn, lifecycle timers, action application, then the
// simulation phases, then win checks and observation fan-out.
func (m *Match) step(joins []JoinRequest, leaves []string, actions []ActionEnvelope) {
	for _, req := range joins {
		m.applyJoin(req)
	}
	for _, id := range leaves {
		m.applyLeave(id)
	}

	switch m.state {
	case StateLoading:
		m.tickLoading()
		if m.state != StatePlaying {
			return
		}
	case StatePlaying:
	default:
		// Actions sent outside PLAYING are rejected softly; the
		// connection and future observations are unaffected.
		for _, env := range actions {
			m.sendWarning(env.AgentID, protocol.ErrLifecycle, "match is not in playing state")
		}
		return
	}

	dt := 1.0 / float64(m.cfg.TickRateHz)
	m.tick++
	m.matchTime += dt

	for _, u := range m.units {
		if !u.IsChampion() {
			continue
		}
		m.tickCooldowns(u, dt)
		m.tickEffects(u, dt)
	}
	m.tickRespawns(dt)

	for _, env := range actions {
		m.applyActions(env)
	}

	m.tickMovement(dt)
	m.tickAttacks(dt)
	m.tickProjectiles(dt)
	m.tickZones(dt)
	m.tickWaves(dt)
	m.tickEconomy(dt)

	if m.state == StatePlaying {
		m.checkTimeLimit()
	}

	if m.state == StatePlaying && m.cfg.ObsEveryTicks > 0 && m.tick%uint64(m.cfg.ObsEveryTicks) == 0 {
		m.sendObservations()
	}

	m.drainEvents()
}

// StepOnce advances exactly one tick outside the ticker loop. Test-only
// driver for deterministic replay.
func (m *Match) StepOnce(actions []ActionEnvelope) {
	m.step(nil, nil, actions)
}

// CurrentTick reports the last simulated tick. Only meaningful from the
// goroutine driving the match.
func (m *Match) CurrentTick() uint64 { return m.tick }

// CurrentState reports the lifecycle state.
func (m *Match) CurrentState() State { return m.state }

// Winner reports the winning team once the match has ended.
func (m *Match) Winner() string { return m.winner }
