package request_models

type WizardStartRequest struct {
	Topic string `json:"topic"`
}

type WizardAnswerRequest struct {
	Answer string `json:"answer"`
}
