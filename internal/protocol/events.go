package protocol

// Event is a loosely-typed match event record. The vocabulary below is what
// the external commentary/analytics collaborators key on.
type Event map[string]interface{}

// Event types.
const (
	EventMatchStart     = "match_start"
	EventMatchEnd       = "match_end"
	EventChampionKill   = "champion_kill"
	EventFirstBlood     = "first_blood"
	EventMinionKill     = "minion_kill"
	EventTowerDestroyed = "tower_destroyed"
	EventNexusDestroyed = "nexus_destroyed"
	EventLevelUp        = "level_up"
	EventMinionWave     = "minion_wave"
	EventRespawn        = "respawn"
)
