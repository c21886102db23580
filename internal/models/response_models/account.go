package response_models

type RegisteredAccount struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type LoginResult struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
}
