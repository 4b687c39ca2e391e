package match

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"leagueofmolts.ai/internal/protocol"
)

// ControlKind selects an out-of-band lifecycle operation.
type ControlKind string

const (
	ControlStart    ControlKind = "start"
	ControlPause    ControlKind = "pause"
	ControlResume   ControlKind = "resume"
	ControlEnd      ControlKind = "end"
	ControlSnapshot ControlKind = "snapshot"
)

type ControlRequest struct {
	Kind   ControlKind
	Roster []RosterSeat
	Resp   chan ControlResponse
}

type ControlResponse struct {
	Err      error
	Snapshot *Snapshot
}

func (m *Match) handleControl(req ControlRequest) {
	var resp ControlResponse
	switch req.Kind {
	case ControlStart:
		resp.Err = m.startMatch(req.Roster)
	case ControlPause:
		if m.state != StatePlaying {
			resp.Err = fmt.Errorf("cannot pause in state %q", m.state)
		} else {
			m.state = StatePaused
		}
	case ControlResume:
		if m.state != StatePaused {
			resp.Err = fmt.Errorf("cannot resume in state %q", m.state)
		} else {
			m.state = StatePlaying
		}
	case ControlEnd:
		if m.state == StateEnded {
			resp.Err = fmt.Errorf("match already ended")
		} else {
			m.endMatch("none")
		}
	case ControlSnapshot:
		resp.Snapshot = m.buildSnapshot()
	default:
		resp.Err = fmt.Errorf("unknown control kind %q", req.Kind)
	}
	if req.Resp != nil {
		req.Resp <- resp
	}
}

// startMatch validates the roster, spawns structures and champions, and
// moves the match through champion select into the loading grace period.
func (m *Match) startMatch(roster []RosterSeat) error {
	if m.state != StateWaiting {
		return fmt.Errorf("cannot start in state %q", m.state)
	}
	if len(roster) == 0 {
		return fmt.Errorf("empty roster")
	}
	perTeam := map[string]int{}
	for _, seat := range roster {
		if seat.AgentID == "" {
			return fmt.Errorf("roster seat missing agent_id")
		}
		if seat.Team != protocol.TeamBlue && seat.Team != protocol.TeamRed {
			return fmt.Errorf("agent %s: unknown team %q", seat.AgentID, seat.Team)
		}
		if _, ok := m.cats.Champions.ByName[seat.Champion]; !ok {
			return fmt.Errorf("agent %s: unknown champion %q", seat.AgentID, seat.Champion)
		}
		if _, dup := m.roster[seat.AgentID]; dup {
			return fmt.Errorf("agent %s: duplicate roster seat", seat.AgentID)
		}
		perTeam[seat.Team]++
		if perTeam[seat.Team] > 3 {
			return fmt.Errorf("team %s has more than 3 seats", seat.Team)
		}
		m.roster[seat.AgentID] = &rosterEntry{RosterSeat: seat}
	}

	m.state = StateChampionSelect
	m.spawnStructures()
	for _, seat := range roster {
		entry := m.roster[seat.AgentID]
		u, err := m.spawnChampion(seat.AgentID, seat.Team, seat.Champion)
		if err != nil {
			return err
		}
		entry.UnitID = u.ID
	}
	m.nextWaveIn = m.cfg.Minions.FirstWaveSec
	m.passiveGoldIn = 1

	// Selections arrive with the roster, so champion select resolves
	// immediately and the match waits for agents to connect.
	m.state = StateLoading
	m.loadingTicksLeft = m.cfg.LoadingGraceTicks
	return nil
}

// beginPlay flips LOADING into PLAYING and notifies everyone.
func (m *Match) beginPlay() {
	m.state = StatePlaying
	m.emit(protocol.Event{"type": protocol.EventMatchStart, "match_id": m.id})
	b, _ := json.Marshal(protocol.MatchStartMsg{Type: protocol.TypeMatchStart, Tick: m.tick})
	m.broadcast(b)
}

// tickLoading counts the connection grace period down. The match starts
// early once every rostered agent is connected; with a zero grace period it
// waits in LOADING until they all arrive.
func (m *Match) tickLoading() {
	connected := 0
	for id := range m.roster {
		if _, ok := m.clients[id]; ok {
			connected++
		}
	}
	if connected == len(m.roster) {
		m.beginPlay()
		return
	}
	if m.loadingTicksLeft > 0 {
		m.loadingTicksLeft--
		if m.loadingTicksLeft == 0 {
			m.beginPlay()
		}
	}
}

// endMatch marks the match ENDED in the same tick as its deciding event.
func (m *Match) endMatch(winner string) {
	if m.state == StateEnded {
		return
	}
	m.state = StateEnded
	m.winner = winner
	m.emit(protocol.Event{
		"type":     protocol.EventMatchEnd,
		"match_id": m.id,
		"winner":   winner,
		"duration": m.matchTime,
	})
	b, _ := json.Marshal(protocol.MatchEndMsg{
		Type:     protocol.TypeMatchEnd,
		Winner:   winner,
		Duration: m.matchTime,
	})
	m.broadcast(b)
}

// checkTimeLimit decides the match at the time limit by nexus health, the
// configured team winning exact ties.
func (m *Match) checkTimeLimit() {
	if m.matchTime < float64(m.cfg.TimeLimitSeconds) {
		return
	}
	blue := m.nexusByTeam[protocol.TeamBlue]
	red := m.nexusByTeam[protocol.TeamRed]
	var blueHP, redHP float64
	if blue != nil {
		blueHP = blue.Health
	}
	if red != nil {
		redHP = red.Health
	}
	switch {
	case blueHP > redHP:
		m.endMatch(protocol.TeamBlue)
	case redHP > blueHP:
		m.endMatch(protocol.TeamRed)
	default:
		m.endMatch(m.cfg.TieBreakWinner)
	}
}

func (m *Match) applyJoin(req JoinRequest) {
	resp := JoinResponse{MatchID: m.id}
	entry, ok := m.roster[req.AgentID]
	switch {
	case m.state == StateWaiting:
		resp.Message = "match has not started"
	case m.state == StateEnded:
		resp.Message = "match has ended"
	case !ok:
		resp.Message = "agent not on the roster"
	case entry.Token != "" && subtle.ConstantTimeCompare([]byte(entry.Token), []byte(req.Token)) != 1:
		resp.Message = "invalid token"
	default:
		resp.OK = true
		resp.Team = entry.Team
		resp.Champion = entry.Champion
		resp.UnitID = entry.UnitID
		m.clients[req.AgentID] = &clientState{Out: req.Out}
	}
	req.Resp <- resp
}

func (m *Match) applyLeave(agentID string) {
	delete(m.clients, agentID)
}

func (m *Match) broadcast(b []byte) {
	for _, c := range m.clients {
		sendLatest(c.Out, b)
	}
}

func (m *Match) sendWarning(agentID, code, msg string) {
	c, ok := m.clients[agentID]
	if !ok {
		return
	}
	b, _ := json.Marshal(protocol.WarningMsg{Type: protocol.TypeWarning, Code: code, Message: msg})
	sendLatest(c.Out, b)
}
