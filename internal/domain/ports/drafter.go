package ports

import "context"

// DraftRequest descreve o pedido de geração de um rascunho de email
type DraftRequest struct {
	ContactName    string
	ContactCompany string
	ContactTitle   string
	Purpose        string
	Tone           string
}

// Draft é um rascunho de email produzido pelo serviço de completion
type Draft struct {
	Subject string
	Body    string
}

// Drafter define a interface para o serviço externo de completion
// usado na geração e no polimento de rascunhos
type Drafter interface {
	GenerateTemplate(ctx context.Context, req DraftRequest) (*Draft, error)
	Polish(ctx context.Context, draft Draft, tone string) (*Draft, error)
}
