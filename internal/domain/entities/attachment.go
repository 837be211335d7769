package entities

import (
	"errors"
	"strings"
	"time"
)

// MaxAttachmentSize é o tamanho máximo aceito para um anexo (25MB)
const MaxAttachmentSize = 25 << 20

// AllowedContentTypes é a allow-list de tipos aceitos para upload.
// Mantida em sincronia com o validador do frontend.
var AllowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
	"text/csv":   true,
}

var (
	ErrAttachmentTooLarge    = errors.New("attachment exceeds the maximum size")
	ErrContentTypeNotAllowed = errors.New("content type is not allowed")
	ErrInvalidAttachmentName = errors.New("invalid attachment filename")
	ErrInvalidAttachmentSize = errors.New("invalid attachment size")
)

// Attachment representa um objeto enviado diretamente pelo cliente
// para o object storage via URL pré-assinada. Key sempre carrega o
// prefixo do dono (<userID>/...), que é a base da checagem de posse.
type Attachment struct {
	ID          string
	UserID      string
	Key         string
	Filename    string
	ContentType string
	Size        int64
	CreatedAt   time.Time
}

// OwnedBy verifica se a key do anexo pertence ao usuário informado
func (a *Attachment) OwnedBy(userID string) bool {
	return strings.HasPrefix(a.Key, userID+"/")
}

// ValidateUpload valida os metadados de um upload antes de emitir a
// URL pré-assinada
func ValidateUpload(filename, contentType string, size int64) error {
	if filename == "" || strings.ContainsAny(filename, "/\\") {
		return ErrInvalidAttachmentName
	}

	if !AllowedContentTypes[contentType] {
		return ErrContentTypeNotAllowed
	}

	if size <= 0 {
		return ErrInvalidAttachmentSize
	}

	if size > MaxAttachmentSize {
		return ErrAttachmentTooLarge
	}

	return nil
}
