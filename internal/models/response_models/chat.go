package response_models

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Answer   string        `json:"answer"`
	Messages []ChatMessage `json:"messages"`
}
