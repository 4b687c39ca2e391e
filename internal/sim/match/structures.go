package match

// towerAct runs one tower's per-tick behavior: hold target while it stays in
// range, preferring minions over champions when reacquiring. Nexuses do not
// attack.
func (m *Match) towerAct(u *Unit) {
	target := m.unit(u.AttackTargetID)
	if target != nil {
		if target.Team == u.Team ||
			(target.Kind == KindChampion && target.Stealthed()) ||
			dist(u.Pos, target.Pos)-target.Radius > u.Stats.AttackRange {
			target = nil
		}
	}
	if target == nil {
		u.AttackTargetID = ""
		target = m.towerAcquire(u)
		if target == nil {
			return
		}
		u.AttackTargetID = target.ID
	}
	if u.AttackCooldown > 0 {
		return
	}
	m.performAttack(u, target)
}

// towerAcquire prefers the nearest enemy minion in range, then the nearest
// enemy champion. Structures never target structures.
func (m *Match) towerAcquire(u *Unit) *Unit {
	for _, kind := range []Kind{KindMinion, KindChampion} {
		var best *Unit
		bestD := u.Stats.AttackRange
		for _, e := range m.units {
			if !e.Alive || e.Team == u.Team || e.Kind != kind {
				continue
			}
			if kind == KindChampion && e.Stealthed() {
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
