package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse mirrors the auth collaborator's session-read shape:
// {user} when signed in, the endpoint 401s otherwise.
type SessionResponse struct {
	User AccountResponse `json:"user"`
}
