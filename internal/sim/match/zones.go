package match

import (
	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
)

// Zone is a stationary area that pulses damage (and optionally a slow) onto
// enemy occupants at its own tick rate, independent of the global tick.
type Zone struct {
	ID      string
	OwnerID string
	Team    string

	Pos    protocol.Position
	Radius float64

	Damage     float64
	DamageType string
	SlowPct    float64
	SlowSec    float64

	Remaining   float64
	TickEvery   float64
	NextPulseIn float64
}

func (m *Match) spawnZone(owner *Unit, pos protocol.Position, def catalogs.Ability, damage float64) {
	m.zones = append(m.zones, &Zone{
		ID:      m.newUnitID("Z"),
		OwnerID: owner.ID,
		Team:    owner.Team,
		Pos:     pos,
		Radius:  def.Radius,

		Damage:     damage,
		DamageType: def.DamageType,
		SlowPct:    def.SlowPct,
		SlowSec:    def.SlowSec,

		Remaining: def.Duration,
		TickEvery: def.TickInterval,
		// First pulse fires one interval after placement.
		NextPulseIn: def.TickInterval,
	})
}

func (m *Match) tickZones(dt float64) {
	kept := m.zones[:0]
	for _, z := range m.zones {
		z.Remaining -= dt
		z.NextPulseIn -= dt
		for z.NextPulseIn <= 0 {
			z.NextPulseIn += z.TickEvery
			m.pulseZone(z)
		}
		if z.Remaining > 0 {
			kept = append(kept, z)
		}
	}
	m.zones = kept
}

func (m *Match) pulseZone(z *Zone) {
	owner := m.byID[z.OwnerID] // weak: nil after owner despawn, damage still lands
	hit := m.ApplyAreaDamage(z.Pos, z.Radius, ownerOrTeamStub(owner, z.Team), z.Damage, z.DamageType, false)
	if z.SlowPct <= 0 {
		return
	}
	for _, u := range hit {
		if u.Alive && u.Kind == KindChampion {
			m.addEffect(u, &Effect{
				Type:         EffectSlow,
				SourceID:     z.OwnerID,
				Remaining:    z.SlowSec,
				MoveSpeedPct: -z.SlowPct,
			})
		}
	}
}

// ownerOrTeamStub keeps team filtering intact when the zone's owner is gone.
func ownerOrTeamStub(owner *Unit, team string) *Unit {
	if owner != nil {
		return owner
	}
	return &Unit{Team: team, Kind: KindMinion}
}
