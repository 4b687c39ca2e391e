package match

import (
	"math"

	"leagueofmolts.ai/internal/protocol"
)

func dist(a, b protocol.Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// dirTo returns the unit vector from a toward b, or zero when coincident.
func dirTo(a, b protocol.Position) protocol.Position {
	d := dist(a, b)
	if d == 0 {
		return protocol.Position{}
	}
	return protocol.Position{X: (b.X - a.X) / d, Y: (b.Y - a.Y) / d}
}

// segDist returns the distance from point p to the segment ab.
func segDist(a, b, p protocol.Position) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 == 0 {
		return dist(a, p)
	}
	t := clamp(((p.X-a.X)*abx+(p.Y-a.Y)*aby)/l2, 0, 1)
	return dist(protocol.Position{X: a.X + t*abx, Y: a.Y + t*aby}, p)
}

func (m *Match) clampToArena(p protocol.Position) protocol.Position {
	p.X = clamp(p.X, 0, m.cfg.Arena.Width)
	p.Y = clamp(p.Y, 0, m.cfg.Arena.Height)
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// stepToward advances from at speed*dt toward to, without overshooting.
// Returns the new position and whether the target was reached.
func stepToward(from, to protocol.Position, speed, dt float64) (protocol.Position, bool) {
	d := dist(from, to)
	step := speed * dt
	if step >= d {
		return to, true
	}
	dir := dirTo(from, to)
	return protocol.Position{X: from.X + dir.X*step, Y: from.Y + dir.Y*step}, false
}

// Lane geometry. Blue marches +X, red marches -X along the mid line.

func (m *Match) laneY() float64 { return m.cfg.Arena.Height / 2 }

func (m *Match) nexusPos(team string) protocol.Position {
	if team == protocol.TeamBlue {
		return protocol.Position{X: 200, Y: m.laneY()}
	}
	return protocol.Position{X: m.cfg.Arena.Width - 200, Y: m.laneY()}
}

func (m *Match) towerPos(team string, i int) protocol.Position {
	// Tower 1 is the outermost.
	offset := 600 * float64(m.cfg.Towers.PerTeam-i+1)
	if team == protocol.TeamBlue {
		return protocol.Position{X: 200 + offset, Y: m.laneY()}
	}
	return protocol.Position{X: m.cfg.Arena.Width - 200 - offset, Y: m.laneY()}
}

func (m *Match) championSpawnPos(team string, slot int) protocol.Position {
	n := m.nexusPos(team)
	dy := float64(slot-1) * 120
	if team == protocol.TeamBlue {
		return m.clampToArena(protocol.Position{X: n.X + 150, Y: n.Y + dy})
	}
	return m.clampToArena(protocol.Position{X: n.X - 150, Y: n.Y + dy})
}

func (m *Match) minionSpawnPos(team string) protocol.Position {
	n := m.nexusPos(team)
	if team == protocol.TeamBlue {
		return protocol.Position{X: n.X + 120, Y: n.Y}
	}
	return protocol.Position{X: n.X - 120, Y: n.Y}
}

func enemyTeam(team string) string {
	if team == protocol.TeamBlue {
		return protocol.TeamRed
	}
	return protocol.TeamBlue
}
