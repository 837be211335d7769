package ports

import (
	"context"
	"time"
)

// ObjectStorage define a interface para o object storage de anexos.
// Uploads nunca passam pelo servidor: o cliente recebe uma URL
// pré-assinada e faz o PUT diretamente.
type ObjectStorage interface {
	PresignedPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
}
