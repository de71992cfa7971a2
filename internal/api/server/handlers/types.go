package handlers

// ChatRequest is the request body of POST /chat and POST /chat/html.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the response body of POST /chat.
type ChatResponse struct {
	Response  string `json:"response"`
	AgentUsed string `json:"agent_used"`
}

// HealthResponse is the response body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// AgentInfo is one entry of the GET /agents listing.
type AgentInfo struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
