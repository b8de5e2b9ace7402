package types

// ChatRole identifies the author of a chat message.
type ChatRole string

// Chat message roles.
const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one message of the assistant conversation. Timestamp is
// epoch milliseconds and is assigned by the state store at append time, not
// by the caller, so ordering is consistent with insertion order.
type ChatMessage struct {
	Role      ChatRole `json:"role"`
	Content   string   `json:"content"`
	Timestamp int64    `json:"timestamp"`
}

// Attachment is an uploaded file handle. Attachments are transient and are
// never written to durable storage.
type Attachment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MimeType  string `json:"mimeType"`
	SizeBytes int64  `json:"sizeBytes"`
	URL       string `json:"url,omitempty"`
}
