package response_models

// WizardResponse is a snapshot of one diagnostic wizard session: the current
// question, the answer collected for it so far, and where the user is in the
// sequence.
type WizardResponse struct {
	SessionID   string   `json:"session_id"`
	Topic       string   `json:"topic"`
	CurrentStep int      `json:"current_step"`
	TotalSteps  int      `json:"total_steps"`
	Question    Question `json:"question"`
	Answer      string   `json:"answer"`
	IsLastStep  bool     `json:"is_last_step"`
}
