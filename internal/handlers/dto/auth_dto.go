package dto

// TokenResponse devolve o JWT emitido após o login OAuth
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse é uma resposta simples com mensagem traduzida
type MessageResponse struct {
	Message string `json:"message"`
}
