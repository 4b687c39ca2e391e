// Package ws is the agent-facing WebSocket transport. Each connection
// authenticates against the match roster, then exchanges JSON messages:
// observations and warnings out, action batches and pings in.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/websocket"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"leagueofmolts.ai/internal/protocol"
	"leagueofmolts.ai/internal/sim/match"
)

type Server struct {
	match *match.Match
	log   *log.Logger

	upgrader     websocket.Upgrader
	actionSchema *jsonschema.Schema
}

// NewServer wires the transport to a match. schemaDir holds the published
// JSON Schemas; inbound action messages are validated against
// action.schema.json before they reach the simulation.
func NewServer(m *match.Match, logger *log.Logger, schemaDir string) (*Server, error) {
	path := filepath.Join(schemaDir, "action.schema.json")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("action schema: %w", err)
	}
	schema, err := jsonschema.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile action schema: %w", err)
	}
	return &Server{
		match: m,
		log:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		actionSchema: schema,
	}, nil
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		agentID, out := s.handshake(conn)
		if agentID == "" {
			return
		}
		s.log.Printf("agent %s connected from %s", agentID, r.RemoteAddr)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Writer goroutine. All post-handshake writes flow through out.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b, ok := <-out:
					if !ok {
						return
					}
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				cancel()
				break
			}
			base, err := protocol.DecodeBase(msg)
			if err != nil {
				s.sendWarning(out, protocol.ErrBadRequest, "malformed JSON")
				continue
			}
			switch base.Type {
			case protocol.TypePing:
				b, _ := json.Marshal(protocol.PongMsg{Type: protocol.TypePong})
				select {
				case out <- b:
				default:
				}
			case protocol.TypeAction:
				if err := s.validateAction(msg); err != nil {
					s.sendWarning(out, protocol.ErrBadRequest, err.Error())
					continue
				}
				var act protocol.ActionMsg
				if err := json.Unmarshal(msg, &act); err != nil {
					s.sendWarning(out, protocol.ErrBadRequest, "malformed action message")
					continue
				}
				s.match.Inbox() <- match.ActionEnvelope{AgentID: agentID, Msg: act}
			default:
				s.sendWarning(out, protocol.ErrBadRequest, "unexpected message type "+base.Type)
			}
		}

		// Cleanup.
		s.match.Leave() <- agentID
		s.log.Printf("agent %s disconnected", agentID)
	}
}

// handshake reads the auth message and resolves it against the roster. A
// failed auth gets an auth_error and a closed connection; nothing about the
// failure reaches the simulation.
func (s *Server) handshake(conn *websocket.Conn) (agentID string, out chan []byte) {
	_ = conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return "", nil
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeAuth {
		writeAuthError(conn, "expected auth message")
		return "", nil
	}
	var auth protocol.AuthMsg
	if err := json.Unmarshal(msg, &auth); err != nil || auth.AgentID == "" {
		writeAuthError(conn, "auth requires agent_id")
		return "", nil
	}

	out = make(chan []byte, 16)
	respCh := make(chan match.JoinResponse, 1)
	s.match.Join() <- match.JoinRequest{
		AgentID: auth.AgentID,
		Token:   auth.Token,
		Out:     out,
		Resp:    respCh,
	}
	resp := <-respCh
	if !resp.OK {
		writeAuthError(conn, resp.Message)
		return "", nil
	}

	if err := writeJSON(conn, protocol.AuthSuccessMsg{
		Type:     protocol.TypeAuthSuccess,
		AgentID:  auth.AgentID,
		Team:     resp.Team,
		Champion: resp.Champion,
		MatchID:  resp.MatchID,
	}); err != nil {
		return "", nil
	}
	return auth.AgentID, out
}

func (s *Server) validateAction(msg []byte) error {
	var v interface{}
	if err := json.Unmarshal(msg, &v); err != nil {
		return fmt.Errorf("malformed JSON")
	}
	if err := s.actionSchema.Validate(v); err != nil {
		return fmt.Errorf("action message failed validation")
	}
	return nil
}

func (s *Server) sendWarning(out chan []byte, code, message string) {
	b, _ := json.Marshal(protocol.WarningMsg{Type: protocol.TypeWarning, Code: code, Message: message})
	select {
	case out <- b:
	default:
	}
}

func writeAuthError(conn *websocket.Conn, message string) {
	b, _ := json.Marshal(protocol.AuthErrorMsg{Type: protocol.TypeAuthError, Message: message})
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b)
}
