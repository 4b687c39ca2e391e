package match

import (
	"encoding/json"
	"sort"

	"leagueofmolts.ai/internal/protocol"
)

// sendObservations builds and delivers one observation per connected agent.
// Each observation is built fresh from the current state; nothing is shared
// between agents, so the per-viewer stealth filtering cannot leak.
func (m *Match) sendObservations() {
	for agentID, c := range m.clients {
		entry, ok := m.roster[agentID]
		if !ok {
			continue
		}
		u := m.byID[entry.UnitID]
		if u == nil {
			continue
		}
		obs := m.buildObservation(u)
		b, err := json.Marshal(obs)
		if err != nil {
			continue
		}
		sendLatest(c.Out, b)
	}
}

func (m *Match) buildObservation(viewer *Unit) protocol.ObservationMsg {
	obs := protocol.ObservationMsg{
		Type:      protocol.TypeObservation,
		Tick:      m.tick,
		MatchTime: m.matchTime,
		Self:      m.selfObs(viewer),
		Allies:    []protocol.AllyObs{},
		Enemies:   []protocol.EnemyObs{},
		Minions: protocol.MinionsObs{
			Allied: []protocol.MinionObs{},
			Enemy:  []protocol.MinionObs{},
		},
		Structures: protocol.StructuresObs{
			Nexus:  map[string]protocol.NexusObs{},
			Towers: map[string][]protocol.TowerObs{},
		},
	}

	for _, u := range m.units {
		switch u.Kind {
		case KindChampion:
			if u == viewer {
				continue
			}
			if u.Team == viewer.Team {
				obs.Allies = append(obs.Allies, protocol.AllyObs{
					ID:        u.ID,
					Champion:  u.Champion,
					Position:  u.Pos,
					Health:    u.Health,
					MaxHealth: u.MaxHealth,
					Mana:      u.Mana,
					MaxMana:   u.MaxMana,
					Level:     u.Level,
					IsAlive:   u.Alive,
				})
				continue
			}
			// Stealthed enemies are absent, not flagged.
			if u.Stealthed() {
				continue
			}
			obs.Enemies = append(obs.Enemies, protocol.EnemyObs{
				ID:        u.ID,
				Champion:  u.Champion,
				Position:  u.Pos,
				Health:    u.Health,
				MaxHealth: u.MaxHealth,
				Level:     u.Level,
				IsAlive:   u.Alive,
			})
		case KindMinion:
			mo := protocol.MinionObs{
				ID:        u.ID,
				Position:  u.Pos,
				Health:    u.Health,
				MaxHealth: u.MaxHealth,
				IsMelee:   u.IsMelee,
			}
			if u.Team == viewer.Team {
				obs.Minions.Allied = append(obs.Minions.Allied, mo)
			} else {
				obs.Minions.Enemy = append(obs.Minions.Enemy, mo)
			}
		case KindTower:
			obs.Structures.Towers[u.Team] = append(obs.Structures.Towers[u.Team], protocol.TowerObs{
				ID:        u.ID,
				Position:  u.Pos,
				Health:    u.Health,
				MaxHealth: u.MaxHealth,
			})
		case KindNexus:
			obs.Structures.Nexus[u.Team] = protocol.NexusObs{
				Health:    u.Health,
				MaxHealth: u.MaxHealth,
			}
		}
	}

	// Destroyed nexuses still report, at zero, so the consumer's map lookups
	// never miss.
	for _, team := range []string{protocol.TeamBlue, protocol.TeamRed} {
		if _, ok := obs.Structures.Nexus[team]; !ok {
			n := m.nexusByTeam[team]
			max := m.cfg.Nexus.Health
			if n != nil {
				max = n.MaxHealth
			}
			obs.Structures.Nexus[team] = protocol.NexusObs{Health: 0, MaxHealth: max}
		}
	}
	return obs
}

func (m *Match) selfObs(u *Unit) protocol.SelfObs {
	self := protocol.SelfObs{
		ID:        u.ID,
		Champion:  u.Champion,
		Position:  u.Pos,
		Health:    u.Health,
		MaxHealth: u.MaxHealth,
		Mana:      u.Mana,
		MaxMana:   u.MaxMana,
		Level:     u.Level,
		XP:        u.XP,
		Gold:      u.Gold,
		IsAlive:   u.Alive,
		Abilities: map[string]protocol.AbilityObs{},
		Items:     []protocol.ItemObs{},
		Stats: protocol.StatsObs{
			AttackDamage: u.Stats.AttackDamage,
			AbilityPower: u.Stats.AbilityPower,
			Armor:        u.Stats.Armor,
			MagicResist:  u.Stats.MagicResist,
			MoveSpeed:    u.Stats.MoveSpeed,
			AttackRange:  u.Stats.AttackRange,
			AttackSpeed:  u.Stats.AttackSpeed,
		},
	}

	def := m.cats.Champions.ByName[u.Champion]
	slots := make([]string, 0, len(def.Abilities))
	for slot := range def.Abilities {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	for _, slot := range slots {
		ab := def.Abilities[slot]
		cd := u.Cooldowns[slot]
		unlocked := u.Level >= ab.LevelRequired
		self.Abilities[slot] = protocol.AbilityObs{
			Name:              ab.Name,
			Ready:             unlocked && cd <= 0 && u.Mana >= ab.ManaCost,
			CooldownRemaining: cd,
			ManaCost:          ab.ManaCost,
			LevelRequired:     ab.LevelRequired,
			Unlocked:          unlocked,
		}
	}

	for _, itemID := range u.Items {
		it, ok := m.cats.Items.ByID[itemID]
		if !ok {
			continue
		}
		self.Items = append(self.Items, protocol.ItemObs{
			ID:           it.ID,
			Name:         it.Name,
			Cost:         it.Cost,
			Health:       it.Health,
			Mana:         it.Mana,
			AttackDamage: it.AttackDamage,
			AbilityPower: it.AbilityPower,
			Armor:        it.Armor,
			MagicResist:  it.MagicResist,
			MoveSpeed:    it.MoveSpeed,
		})
	}
	return self
}
