// Command bot is a reference agent: it connects over WebSocket, pushes the
// lane and fights whatever is closest. Useful for smoke-testing a server and
// as a baseline opponent.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"leagueofmolts.ai/internal/protocol"
)

func main() {
	var (
		url     = flag.String("url", "ws://127.0.0.1:8080/v1/ws", "server websocket url")
		agentID = flag.String("agent", "bot_1", "agent id (must be on the roster)")
		token   = flag.String("token", "", "roster token")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[bot] ", log.LstdFlags|log.Lmicroseconds)

	conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		logger.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	send(conn, protocol.AuthMsg{Type: protocol.TypeAuth, AgentID: *agentID, Token: *token})

	enemyNexus := protocol.Position{}
	for {
		_ = conn.SetReadDeadline(time.Now().Add(120 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.Fatalf("read: %v", err)
		}
		base, err := protocol.DecodeBase(msg)
		if err != nil {
			continue
		}
		switch base.Type {
		case protocol.TypeAuthSuccess:
			var m protocol.AuthSuccessMsg
			if err := json.Unmarshal(msg, &m); err == nil {
				logger.Printf("joined match %s as %s (%s)", m.MatchID, m.Champion, m.Team)
			}
		case protocol.TypeAuthError:
			var m protocol.AuthErrorMsg
			_ = json.Unmarshal(msg, &m)
			logger.Fatalf("auth rejected: %s", m.Message)
		case protocol.TypeMatchEnd:
			var m protocol.MatchEndMsg
			_ = json.Unmarshal(msg, &m)
			logger.Printf("match over: winner=%s duration=%.1fs", m.Winner, m.Duration)
			return
		case protocol.TypeObservation:
			var obs protocol.ObservationMsg
			if err := json.Unmarshal(msg, &obs); err != nil {
				continue
			}
			if enemyNexus == (protocol.Position{}) {
				enemyNexus = guessEnemyNexus(obs)
			}
			acts := decide(obs, enemyNexus)
			if len(acts) > 0 {
				send(conn, protocol.ActionMsg{Type: protocol.TypeAction, Actions: acts})
			}
		}
	}
}

// decide implements the baseline policy: buy when affordable, cast Q at the
// nearest enemy champion, attack the nearest target in range, otherwise walk
// at the enemy nexus.
func decide(obs protocol.ObservationMsg, enemyNexus protocol.Position) []protocol.Action {
	if !obs.Self.IsAlive {
		return nil
	}
	var acts []protocol.Action

	if obs.Self.Gold >= 350 && len(obs.Self.Items) < 6 {
		acts = append(acts, protocol.Action{ActionType: protocol.ActionBuy, ItemID: "long_sword"})
	}

	targetID, targetPos, targetDist := nearestEnemy(obs)
	if q, ok := obs.Self.Abilities[protocol.SlotQ]; ok && q.Ready && targetID != "" && targetDist <= 700 {
		acts = append(acts, protocol.Action{
			ActionType: protocol.ActionAbility,
			Ability:    protocol.SlotQ,
			TargetID:   targetID,
			Target:     &targetPos,
		})
	}

	if targetID != "" && targetDist <= obs.Self.Stats.AttackRange+150 {
		acts = append(acts, protocol.Action{ActionType: protocol.ActionAttack, TargetID: targetID})
		return acts
	}
	acts = append(acts, protocol.Action{ActionType: protocol.ActionMove, Target: &enemyNexus})
	return acts
}

func nearestEnemy(obs protocol.ObservationMsg) (id string, pos protocol.Position, best float64) {
	best = math.MaxFloat64
	consider := func(cid string, p protocol.Position, alive bool) {
		if !alive {
			return
		}
		d := math.Hypot(p.X-obs.Self.Position.X, p.Y-obs.Self.Position.Y)
		if d < best {
			best = d
			id = cid
			pos = p
		}
	}
	for _, e := range obs.Enemies {
		consider(e.ID, e.Position, e.IsAlive)
	}
	for _, mn := range obs.Minions.Enemy {
		consider(mn.ID, mn.Position, mn.Health > 0)
	}
	return id, pos, best
}

func guessEnemyNexus(obs protocol.ObservationMsg) protocol.Position {
	// The far nexus: whichever side we did not spawn next to.
	var far protocol.Position
	best := -1.0
	for _, n := range obs.Structures.Towers {
		for _, t := range n {
			d := math.Hypot(t.Position.X-obs.Self.Position.X, t.Position.Y-obs.Self.Position.Y)
			if d > best {
				best = d
				far = t.Position
			}
		}
	}
	return far
}

func send(conn *websocket.Conn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	_ = conn.WriteMessage(websocket.TextMessage, b)
}
