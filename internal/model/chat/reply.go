package chat

// Action is a suggested follow-up the client renders as a button.
type Action struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Reply modes.
const (
	ModeTemplate = "template"
	ModeAI       = "ai"
)

// Reasons attached to template-mode replies.
const (
	ReasonCrisisDetected = "crisis_detected"
	ReasonAIDisabled     = "ai_disabled"
	ReasonAIFailed       = "ai_failed"
)

// Reply is the outcome of processing one user message.
type Reply struct {
	Response  string   `json:"response"`
	Actions   []Action `json:"actions"`
	Mode      string   `json:"mode"`
	Reason    string   `json:"reason,omitempty"`
	SessionID string   `json:"sessionId"`
}
