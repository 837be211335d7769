package ports

// TokenClaims contém as claims relevantes de um token de acesso
// verificado. Subject é o identificador do usuário no provedor de
// autenticação (supabaseId).
type TokenClaims struct {
	Subject string
	Email   string
}

// TokenVerifier define a interface para verificação de tokens de
// acesso emitidos pelo provedor externo
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}
