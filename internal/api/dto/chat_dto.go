package dto

// ChatRequest is one chatbot turn. SessionID groups turns into a
// conversation; the client chooses it.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatResponse carries the model reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatResetRequest payload.
type ChatResetRequest struct {
	SessionID string `json:"sessionId"`
}
