package requestresponse

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// TokensResponse : ответ на логин и переиздание токенов
type TokensResponse struct {
	Message string `json:"message"`
	Payload struct {
		AccessToken  string `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
		RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	} `json:"payload"`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	Message string `json:"message"`
	Payload struct {
		Revoked bool `json:"revoked" example:"true"`
	} `json:"payload"`
}
