package match

// tickMovement advances ordered movement for champions and minions. Hard CC,
// dashes and channels suppress ordered movement; dash interpolation runs in
// tickDash instead.
func (m *Match) tickMovement(dt float64) {
	for _, u := range m.units {
		if !u.Alive || u.IsStructure() {
			continue
		}
		if u.Kind == KindChampion {
			m.tickDash(u, dt)
			m.tickChannel(u, dt)
			if !u.Alive || u.Busy() || u.HardCrowdControlled() {
				continue
			}
		}
		if u.MoveTarget == nil {
			continue
		}
		pos, arrived := stepToward(u.Pos, *u.MoveTarget, u.Stats.MoveSpeed, dt)
		u.Pos = m.clampToArena(pos)
		if arrived {
			u.MoveTarget = nil
		}
	}
}
