package match

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"leagueofmolts.ai/internal/protocol"
)

// Snapshot is a read-only diagnostic dump of the match, served over the
// control API and hashed by the determinism tests. Slices are ordered so the
// encoding is stable across runs.
type Snapshot struct {
	MatchID   string  `json:"match_id"`
	State     State   `json:"state"`
	Tick      uint64  `json:"tick"`
	MatchTime float64 `json:"match_time"`
	Winner    string  `json:"winner,omitempty"`

	WaveNumber int `json:"wave_number"`

	Champions   []ChampionSnapshot  `json:"champions"`
	Minions     []UnitSnapshot      `json:"minions"`
	Structures  []UnitSnapshot      `json:"structures"`
	Projectiles int                 `json:"projectiles"`
	Zones       int                 `json:"zones"`
	TowersLeft  map[string]int      `json:"towers_left"`
}

type UnitSnapshot struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Team      string            `json:"team"`
	Position  protocol.Position `json:"position"`
	Health    float64           `json:"health"`
	MaxHealth float64           `json:"max_health"`
}

type ChampionSnapshot struct {
	UnitSnapshot
	AgentID   string   `json:"agent_id"`
	Champion  string   `json:"champion"`
	Level     int      `json:"level"`
	XP        int      `json:"xp"`
	Gold      int      `json:"gold"`
	Mana      float64  `json:"mana"`
	MaxMana   float64  `json:"max_mana"`
	Alive     bool     `json:"alive"`
	RespawnIn float64  `json:"respawn_in,omitempty"`
	Items     []string `json:"items"`
	Kills     int      `json:"kill_streak,omitempty"`
}

func (m *Match) buildSnapshot() *Snapshot {
	s := &Snapshot{
		MatchID:     m.id,
		State:       m.state,
		Tick:        m.tick,
		MatchTime:   m.matchTime,
		Winner:      m.winner,
		WaveNumber:  m.waveNumber,
		Champions:   []ChampionSnapshot{},
		Minions:     []UnitSnapshot{},
		Structures:  []UnitSnapshot{},
		Projectiles: len(m.projectiles),
		Zones:       len(m.zones),
		TowersLeft:  map[string]int{},
	}
	for team, n := range m.towersLeft {
		s.TowersLeft[team] = n
	}
	for _, u := range m.units {
		base := UnitSnapshot{
			ID:        u.ID,
			Kind:      u.Kind.String(),
			Team:      u.Team,
			Position:  u.Pos,
			Health:    u.Health,
			MaxHealth: u.MaxHealth,
		}
		switch u.Kind {
		case KindChampion:
			items := append([]string{}, u.Items...)
			s.Champions = append(s.Champions, ChampionSnapshot{
				UnitSnapshot: base,
				AgentID:      u.AgentID,
				Champion:     u.Champion,
				Level:        u.Level,
				XP:           u.XP,
				Gold:         u.Gold,
				Mana:         u.Mana,
				MaxMana:      u.MaxMana,
				Alive:        u.Alive,
				RespawnIn:    u.RespawnIn,
				Items:        items,
				Kills:        u.KillStreak,
			})
		case KindMinion:
			s.Minions = append(s.Minions, base)
		default:
			s.Structures = append(s.Structures, base)
		}
	}
	sort.Slice(s.Champions, func(i, j int) bool { return s.Champions[i].ID < s.Champions[j].ID })
	sort.Slice(s.Minions, func(i, j int) bool { return s.Minions[i].ID < s.Minions[j].ID })
	sort.Slice(s.Structures, func(i, j int) bool { return s.Structures[i].ID < s.Structures[j].ID })
	return s
}

// Digest hashes the canonical snapshot encoding. Two matches fed identical
// rosters and action streams produce identical digests tick for tick.
func (s *Snapshot) Digest() string {
	c := *s
	c.MatchID = ""
	b, err := json.Marshal(&c)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
