package models

// Chat roles. The upstream generative API calls the assistant side
// "model"; we keep "assistant" on the wire and translate at the edge.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of an assistant conversation. Transcripts live
// in memory for the session only and are never written to the store.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}
