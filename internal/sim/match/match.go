// Package match implements the authoritative per-tick simulation for one
// 3v3 lane-combat match. A single goroutine owns all match state: joins,
// leaves, inbound action batches and control requests buffer in channels and
// are applied atomically at tick boundaries.
package match

import (
	"context"
	"time"

	"github.com/google/uuid"

	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/catalogs"
	"leagueofmolts.ai/internal/sim/tuning"
)

// State is the match lifecycle state.
type State string

const (
	StateWaiting        State = "waiting"
	StateChampionSelect State = "champion_select"
	StateLoading        State = "loading"
	StatePlaying        State = "playing"
	StatePaused         State = "paused"
	StateEnded          State = "ended"
)

// RosterSeat assigns one agent to a team with a champion selection.
type RosterSeat struct {
	AgentID  string `json:"agent_id" yaml:"agent_id"`
	Team     string `json:"team" yaml:"team"`
	Champion string `json:"champion" yaml:"champion"`
	Token    string `json:"token,omitempty" yaml:"token,omitempty"`
}

type rosterEntry struct {
	RosterSeat
	UnitID string
}

type clientState struct {
	Out chan []byte
}

// ActionEnvelope carries one agent's action batch from the transport.
// Batches received during tick N apply at the start of tick N+1.
type ActionEnvelope struct {
	AgentID string
	Msg     protocol.ActionMsg
}

// JoinRequest authenticates an agent connection against the roster.
type JoinRequest struct {
	AgentID string
	Token   string
	Out     chan []byte
	Resp    chan JoinResponse
}

type JoinResponse struct {
	OK       bool
	Message  string
	Team     string
	Champion string
	UnitID   string
	MatchID  string
}

// EventSink receives every match event as it is emitted; it must not block.
type EventSink func(protocol.Event)

type Match struct {
	cfg  tuning.Tuning
	cats catalogs.Catalogs
	id   string

	state  State
	winner string

	tick      uint64
	matchTime float64

	unitSeq int
	units   []*Unit
	byID    map[string]*Unit

	nexusByTeam map[string]*Unit
	towersLeft  map[string]int

	projectiles []*Projectile
	zones       []*Zone

	roster  map[string]*rosterEntry
	clients map[string]*clientState

	nextWaveIn    float64
	passiveGoldIn float64
	waveNumber    int
	firstBlood    bool

	loadingTicksLeft uint64

	events    []protocol.Event
	eventSink EventSink

	inbox   chan ActionEnvelope
	join    chan JoinRequest
	leave   chan string
	control chan ControlRequest
	stop    chan struct{}
}

func New(cfg tuning.Tuning, cats catalogs.Catalogs) *Match {
	return &Match{
		cfg:  cfg,
		cats: cats,
		id:   uuid.NewString(),

		state: StateWaiting,

		byID:        map[string]*Unit{},
		nexusByTeam: map[string]*Unit{},
		towersLeft:  map[string]int{},
		roster:      map[string]*rosterEntry{},
		clients:     map[string]*clientState{},

		inbox:   make(chan ActionEnvelope, 256),
		join:    make(chan JoinRequest, 16),
		leave:   make(chan string, 16),
		control: make(chan ControlRequest, 16),
		stop:    make(chan struct{}),
	}
}

func (m *Match) ID() string             { return m.id }
func (m *Match) SetEventSink(s EventSink) { m.eventSink = s }

func (m *Match) Inbox() chan<- ActionEnvelope   { return m.inbox }
func (m *Match) Join() chan<- JoinRequest       { return m.join }
func (m *Match) Leave() chan<- string           { return m.leave }
func (m *Match) Control() chan<- ControlRequest { return m.control }

// Run drives the fixed-tick loop until the context is canceled or the match
// is stopped. All state mutation happens on this goroutine.
func (m *Match) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(m.cfg.TickRateHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var pendingActions []ActionEnvelope
	var pendingJoins []JoinRequest
	var pendingLeaves []string

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.stop:
			return nil
		case req := <-m.join:
			pendingJoins = append(pendingJoins, req)
		case id := <-m.leave:
			pendingLeaves = append(pendingLeaves, id)
		case env := <-m.inbox:
			pendingActions = append(pendingActions, env)
		case req := <-m.control:
			m.handleControl(req)
		case <-ticker.C:
			m.step(pendingJoins, pendingLeaves, pendingActions)
			pendingJoins = pendingJoins[:0]
			pendingLeaves = pendingLeaves[:0]
			pendingActions = pendingActions[:0]
		}
	}
}

func (m *Match) Stop() { close(m.stop) }

// emit buffers a match event, stamping the common fields.
func (m *Match) emit(e protocol.Event) {
	e["event_id"] = uuid.NewString()
	e["tick"] = m.tick
	e["match_time"] = m.matchTime
	m.events = append(m.events, e)
}

// drainEvents hands the tick's events to the sink.
func (m *Match) drainEvents() {
	if m.eventSink == nil {
		m.events = m.events[:0]
		return
	}
	for _, e := range m.events {
		m.eventSink(e)
	}
	m.events = m.events[:0]
}

// sendLatest delivers without ever blocking the simulation loop: when the
// consumer's queue is full the oldest message is dropped in favor of the new
// one.
func sendLatest(ch chan []byte, b []byte) {
	select {
	case ch <- b:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- b:
	default:
	}
}
