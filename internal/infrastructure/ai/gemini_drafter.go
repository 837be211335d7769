package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/infrastructure/config"
)

// GeminiDrafter implementa ports.Drafter usando a API Gemini
type GeminiDrafter struct {
	client *genai.Client
	model  string
	log    ports.Logger
}

// NewGeminiDrafter cria um novo drafter
func NewGeminiDrafter(ctx context.Context, cfg *config.AIConfig, log ports.Logger) (*GeminiDrafter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiDrafter{
		client: client,
		model:  cfg.Model,
		log:    log,
	}, nil
}

// draftPayload é o formato JSON pedido ao modelo
type draftPayload struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GenerateTemplate pede ao modelo um rascunho de email profissional
func (d *GeminiDrafter) GenerateTemplate(ctx context.Context, req ports.DraftRequest) (*ports.Draft, error) {
	return d.complete(ctx, buildGeneratePrompt(req))
}

// Polish pede ao modelo uma versão polida de um rascunho existente
func (d *GeminiDrafter) Polish(ctx context.Context, draft ports.Draft, tone string) (*ports.Draft, error) {
	return d.complete(ctx, buildPolishPrompt(draft, tone))
}

func (d *GeminiDrafter) complete(ctx context.Context, prompt string) (*ports.Draft, error) {
	result, err := d.client.Models.GenerateContent(ctx,
		d.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("completion returned no content")
	}

	return parseDraft(text)
}

// parseDraft decodifica a resposta JSON do modelo. Se o modelo fugir
// do formato, a primeira linha vira o assunto e o resto o corpo.
func parseDraft(text string) (*ports.Draft, error) {
	var payload draftPayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil && payload.Subject != "" {
		return &ports.Draft{Subject: payload.Subject, Body: payload.Body}, nil
	}

	lines := strings.SplitN(strings.TrimSpace(text), "\n", 2)
	if len(lines) < 2 {
		return nil, fmt.Errorf("completion returned an unparseable draft")
	}
	return &ports.Draft{
		Subject: strings.TrimSpace(lines[0]),
		Body:    strings.TrimSpace(lines[1]),
	}, nil
}

func buildGeneratePrompt(req ports.DraftRequest) string {
	var sb strings.Builder
	sb.WriteString("Write a professional email draft.\n")
	fmt.Fprintf(&sb, "Purpose: %s\n", req.Purpose)
	fmt.Fprintf(&sb, "Tone: %s\n", req.Tone)
	if req.ContactName != "" {
		fmt.Fprintf(&sb, "Recipient: %s", req.ContactName)
		if req.ContactTitle != "" {
			fmt.Fprintf(&sb, ", %s", req.ContactTitle)
		}
		if req.ContactCompany != "" {
			fmt.Fprintf(&sb, " at %s", req.ContactCompany)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(`Respond with a JSON object: {"subject": "...", "body": "..."}`)
	return sb.String()
}

func buildPolishPrompt(draft ports.Draft, tone string) string {
	var sb strings.Builder
	sb.WriteString("Polish the following email draft. Fix grammar, improve clarity, keep the meaning.\n")
	fmt.Fprintf(&sb, "Desired tone: %s\n", tone)
	fmt.Fprintf(&sb, "Subject: %s\n", draft.Subject)
	fmt.Fprintf(&sb, "Body:\n%s\n", draft.Body)
	sb.WriteString(`Respond with a JSON object: {"subject": "...", "body": "..."}`)
	return sb.String()
}
