package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/contactpro-backend/internal/domain/ports"
)

// supabaseClaims são as claims dos tokens de acesso emitidos pelo
// Supabase Auth (HS256, assinados com o JWT secret do projeto)
type supabaseClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier implementa ports.TokenVerifier verificando tokens
// localmente com o secret compartilhado. Não há round-trip ao
// provedor: expiração e assinatura bastam.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier cria um novo JWTVerifier
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify verifica a assinatura e as claims do token e retorna o
// subject e o email. Qualquer falha é um único erro opaco: o handler
// responde 401 sem distinguir causas.
func (v *JWTVerifier) Verify(tokenStr string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &supabaseClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*supabaseClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &ports.TokenClaims{
		Subject: claims.Subject,
		Email:   claims.Email,
	}, nil
}
