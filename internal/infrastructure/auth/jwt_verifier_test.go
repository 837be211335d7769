package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "super-secret"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("erro ao assinar token: %v", err)
	}
	return token
}

func TestVerify(t *testing.T) {
	verifier := NewJWTVerifier(testSecret)

	t.Run("deve aceitar token válido", func(t *testing.T) {
		token := signToken(t, testSecret, supabaseClaims{
			Email: "maria@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "supabase-abc",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := verifier.Verify(token)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if claims.Subject != "supabase-abc" {
			t.Errorf("esperava subject 'supabase-abc', obteve '%s'", claims.Subject)
		}
		if claims.Email != "maria@example.com" {
			t.Errorf("esperava email 'maria@example.com', obteve '%s'", claims.Email)
		}
	})

	t.Run("deve rejeitar token expirado", func(t *testing.T) {
		token := signToken(t, testSecret, supabaseClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "supabase-abc",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		if _, err := verifier.Verify(token); err == nil {
			t.Error("esperava erro para token expirado")
		}
	})

	t.Run("deve rejeitar token assinado com outro secret", func(t *testing.T) {
		token := signToken(t, "outro-secret", supabaseClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "supabase-abc",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		if _, err := verifier.Verify(token); err == nil {
			t.Error("esperava erro para assinatura inválida")
		}
	})

	t.Run("deve rejeitar token sem subject", func(t *testing.T) {
		token := signToken(t, testSecret, supabaseClaims{
			Email: "maria@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		if _, err := verifier.Verify(token); err == nil {
			t.Error("esperava erro para token sem subject")
		}
	})

	t.Run("deve rejeitar token malformado", func(t *testing.T) {
		if _, err := verifier.Verify("nao.e.um.token"); err == nil {
			t.Error("esperava erro para token malformado")
		}
	})

	t.Run("deve rejeitar alg none", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, supabaseClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "supabase-abc"},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("erro ao montar token: %v", err)
		}

		if _, err := verifier.Verify(token); err == nil {
			t.Error("esperava erro para alg none")
		}
	})
}
