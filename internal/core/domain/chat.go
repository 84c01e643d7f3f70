package domain

import "time"

type ChatRole string

const (
	RoleUser ChatRole = "user"
	// RoleAssistant keeps the backend's wire value for assistant turns.
	RoleAssistant ChatRole = "model"
)

// ChatMessage is one entry of the append-only analyzer transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsError   bool      `json:"is_error,omitempty"`
}

// ChatTurn is the history element sent to the backend.
type ChatTurn struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatRequest carries one chat exchange to the backend. History excludes the
// message being sent. AnalysisContext is the serialized current analysis,
// empty when none exists.
type ChatRequest struct {
	DocumentID      string
	Message         string
	History         []ChatTurn
	AnalysisContext string
}
