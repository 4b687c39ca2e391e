package protocol

import "encoding/json"

// Message types. Lowercase on the wire; the agent SDK matches on these.
const (
	TypeAuth        = "auth"
	TypeAuthSuccess = "auth_success"
	TypeAuthError   = "auth_error"
	TypeObservation = "observation"
	TypeAction      = "action"
	TypeMatchStart  = "match_start"
	TypeMatchEnd    = "match_end"
	TypePing        = "ping"
	TypePong        = "pong"
	TypeWarning     = "warning"
)

// Teams.
const (
	TeamBlue = "blue"
	TeamRed  = "red"
)

// Ability slot keys.
const (
	SlotQ = "Q"
	SlotW = "W"
	SlotE = "E"
	SlotR = "R"
)

// BaseMessage lets us route unknown JSON messages by type.
type BaseMessage struct {
	Type string `json:"type"`
}

func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	err := json.Unmarshal(b, &m)
	return m, err
}
