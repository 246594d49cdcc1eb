package dtos

// AuthorizeResponse carries the authorization URL the client must send
// the user to, plus the state tying the eventual callback to this request
type AuthorizeResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// CallbackInput is the authorization-code capture posted back after the
// user consents on GitHub
type CallbackInput struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
	State  string `json:"state"`
}
