package ai

import (
	"strings"
	"testing"

	"github.com/rafabene/contactpro-backend/internal/domain/ports"
)

func TestParseDraft(t *testing.T) {
	t.Run("deve decodificar resposta JSON", func(t *testing.T) {
		draft, err := parseDraft(`{"subject": "Proposta comercial", "body": "Olá Maria,\n\nSegue a proposta."}`)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if draft.Subject != "Proposta comercial" {
			t.Errorf("esperava subject 'Proposta comercial', obteve '%s'", draft.Subject)
		}
		if !strings.Contains(draft.Body, "Segue a proposta") {
			t.Errorf("corpo inesperado: '%s'", draft.Body)
		}
	})

	t.Run("deve usar a primeira linha como assunto quando não é JSON", func(t *testing.T) {
		draft, err := parseDraft("Proposta comercial\nOlá Maria,\nSegue a proposta.")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if draft.Subject != "Proposta comercial" {
			t.Errorf("esperava subject 'Proposta comercial', obteve '%s'", draft.Subject)
		}
		if draft.Body != "Olá Maria,\nSegue a proposta." {
			t.Errorf("corpo inesperado: '%s'", draft.Body)
		}
	})

	t.Run("deve falhar com resposta de uma linha só sem JSON", func(t *testing.T) {
		if _, err := parseDraft("apenas uma linha"); err == nil {
			t.Error("esperava erro para rascunho sem corpo")
		}
	})

	t.Run("JSON sem subject cai no fallback de linhas", func(t *testing.T) {
		draft, err := parseDraft("{\"body\": \"sem assunto\"}\nresto")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if draft.Subject == "" {
			t.Error("esperava subject do fallback")
		}
	})
}

func TestBuildGeneratePrompt(t *testing.T) {
	t.Run("deve incluir propósito e tom", func(t *testing.T) {
		prompt := buildGeneratePrompt(ports.DraftRequest{
			Purpose: "agendar reunião",
			Tone:    "formal",
		})

		if !strings.Contains(prompt, "Purpose: agendar reunião") {
			t.Error("prompt deveria incluir o propósito")
		}
		if !strings.Contains(prompt, "Tone: formal") {
			t.Error("prompt deveria incluir o tom")
		}
		if strings.Contains(prompt, "Recipient:") {
			t.Error("prompt sem contato não deveria incluir destinatário")
		}
	})

	t.Run("deve incluir os dados do contato quando presentes", func(t *testing.T) {
		prompt := buildGeneratePrompt(ports.DraftRequest{
			Purpose:        "follow-up",
			Tone:           "friendly",
			ContactName:    "Maria Silva",
			ContactTitle:   "CTO",
			ContactCompany: "Acme",
		})

		if !strings.Contains(prompt, "Recipient: Maria Silva, CTO at Acme") {
			t.Errorf("destinatário inesperado no prompt:\n%s", prompt)
		}
	})
}

func TestBuildPolishPrompt(t *testing.T) {
	prompt := buildPolishPrompt(ports.Draft{Subject: "Oi", Body: "corpo original"}, "concise")

	if !strings.Contains(prompt, "Desired tone: concise") {
		t.Error("prompt deveria incluir o tom desejado")
	}
	if !strings.Contains(prompt, "Subject: Oi") {
		t.Error("prompt deveria incluir o assunto original")
	}
	if !strings.Contains(prompt, "corpo original") {
		t.Error("prompt deveria incluir o corpo original")
	}
}
