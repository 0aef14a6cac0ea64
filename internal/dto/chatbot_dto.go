package dto

// ChatContextMessage is one prior exchange the widget sends along for
// conversational context.
type ChatContextMessage struct {
	Text  string `json:"text"`
	IsBot bool   `json:"isBot"`
}

type ChatRequest struct {
	Message string               `json:"message" binding:"required"`
	Context []ChatContextMessage `json:"context"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
