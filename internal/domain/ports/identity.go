package ports

import "context"

// OAuthProfile é o perfil retornado pelo provedor de identidade
type OAuthProfile struct {
	Email     string
	FirstName string
	LastName  string
	AvatarURL string
}

// TokenIssuer define a interface para emissão do token de acesso de um
// usuário autenticado
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// IdentityProvider define a interface com o provedor OAuth
type IdentityProvider interface {
	// AuthURL retorna a URL de consentimento para iniciar o fluxo OAuth
	AuthURL(state string) string

	// FetchProfile troca o authorization code por um token e busca o perfil
	FetchProfile(ctx context.Context, code string) (*OAuthProfile, error)
}
