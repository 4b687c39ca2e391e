package protocol

// AUTH (agent -> server)
type AuthMsg struct {
	Type    string `json:"type"`
	AgentID string `json:"agent_id"`
	Token   string `json:"token,omitempty"`
}

// AUTH_SUCCESS (server -> agent)
type AuthSuccessMsg struct {
	Type     string `json:"type"`
	AgentID  string `json:"agent_id"`
	Team     string `json:"team"`
	Champion string `json:"champion"`
	MatchID  string `json:"match_id"`
}

// AUTH_ERROR (server -> agent)
type AuthErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MATCH_START (server -> agent)
type MatchStartMsg struct {
	Type string `json:"type"`
	Tick uint64 `json:"tick"`
}

// MATCH_END (server -> agent)
type MatchEndMsg struct {
	Type     string  `json:"type"`
	Winner   string  `json:"winner"`
	Duration float64 `json:"duration"`
}

// WARNING (server -> agent): lifecycle misuse and other soft rejections.
// The agent keeps its connection and observations; nothing fatal.
type WarningMsg struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// PONG (server -> agent)
type PongMsg struct {
	Type string `json:"type"`
}
