package valueobjects

import "testing"

func TestNewEmail(t *testing.T) {
	t.Run("deve aceitar e normalizar email válido", func(t *testing.T) {
		email, err := NewEmail("  Maria.Silva@Example.COM ")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if email.String() != "maria.silva@example.com" {
			t.Errorf("esperava 'maria.silva@example.com', obteve '%s'", email.String())
		}
	})

	t.Run("deve rejeitar formatos inválidos", func(t *testing.T) {
		invalid := []string{
			"",
			"sem-arroba",
			"@example.com",
			"maria@",
			"maria@example",
			"maria silva@example.com",
		}

		for _, value := range invalid {
			if _, err := NewEmail(value); err == nil {
				t.Errorf("esperava erro para '%s', obteve sucesso", value)
			}
		}
	})

	t.Run("deve aceitar variações comuns", func(t *testing.T) {
		valid := []string{
			"maria@example.com",
			"maria+tag@example.com",
			"maria.silva@sub.example.com.br",
			"m_s-1%x@example.io",
		}

		for _, value := range valid {
			if _, err := NewEmail(value); err != nil {
				t.Errorf("esperava sucesso para '%s', obteve erro: %v", value, err)
			}
		}
	})
}
