package request_models

type ParseItineraryRequest struct {
	Text string `json:"text" binding:"required"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
