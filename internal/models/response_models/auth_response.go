package response_models

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
