package request

// ExecuteCommandRequest is the body for POST /sessions/{id}/commands
type ExecuteCommandRequest struct {
	// Command is one line of interpreter DSL
	Command string `json:"command"`
}
