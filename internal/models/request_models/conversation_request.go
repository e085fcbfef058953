package request_models

import "encoding/json"

type CreateConversationRequest struct {
	SessionID         string          `json:"sessionId"`
	Messages          json.RawMessage `json:"messages"`
	Symptoms          []string        `json:"symptoms"`
	Recommendations   json.RawMessage `json:"recommendations"`
	EscalatedToDoctor bool            `json:"escalatedToDoctor"`
}

type UpdateConversationRequest struct {
	Messages          json.RawMessage `json:"messages"`
	Symptoms          []string        `json:"symptoms"`
	Recommendations   json.RawMessage `json:"recommendations"`
	EscalatedToDoctor *bool           `json:"escalatedToDoctor"`
}
