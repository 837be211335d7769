package services

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
)

// PresignExpiry é a validade das URLs pré-assinadas de upload
const PresignExpiry = 15 * time.Minute

// AttachmentService contém a lógica de negócio para anexos enviados
// diretamente pelo cliente via URLs pré-assinadas
type AttachmentService struct {
	attachmentRepo repositories.AttachmentRepository
	storage        ports.ObjectStorage
	logger         ports.Logger
}

// NewAttachmentService cria um novo AttachmentService
func NewAttachmentService(
	attachmentRepo repositories.AttachmentRepository,
	storage ports.ObjectStorage,
	logger ports.Logger,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

// PresignedUpload é o resultado da emissão de uma URL de upload
type PresignedUpload struct {
	Key       string
	URL       string
	ExpiresIn time.Duration
}

// CreatePresignedUpload valida os metadados do arquivo, registra o
// anexo e emite a URL pré-assinada de PUT. A key sempre carrega o
// prefixo do dono: <userID>/<uuid><ext>.
func (s *AttachmentService) CreatePresignedUpload(ctx context.Context, userID, filename, contentType string, size int64) (*PresignedUpload, error) {
	if err := entities.ValidateUpload(filename, contentType, size); err != nil {
		return nil, err
	}

	key := userID + "/" + uuid.NewString() + filepath.Ext(filename)

	url, err := s.storage.PresignedPut(ctx, key, contentType, PresignExpiry)
	if err != nil {
		s.logger.Error("failed to presign upload", "user_id", userID, "key", key, "error", err)
		return nil, err
	}

	attachment := &entities.Attachment{
		UserID:      userID,
		Key:         key,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, err
	}

	s.logger.Info("presigned upload issued", "user_id", userID, "key", key, "size", size)

	return &PresignedUpload{
		Key:       key,
		URL:       url,
		ExpiresIn: PresignExpiry,
	}, nil
}

// DeleteAttachment remove o objeto do storage e o registro do anexo.
// A posse é verificada duas vezes: pelo registro (escopo do repo) e
// pelo prefixo da key.
func (s *AttachmentService) DeleteAttachment(ctx context.Context, userID, key string) error {
	attachment, err := s.attachmentRepo.FindByKey(ctx, userID, key)
	if err != nil {
		return err
	}
	if attachment == nil || !attachment.OwnedBy(userID) {
		return errors.ErrAttachmentNotFound
	}

	if err := s.storage.Remove(ctx, key); err != nil {
		s.logger.Error("failed to remove object", "user_id", userID, "key", key, "error", err)
		return err
	}

	if err := s.attachmentRepo.DeleteByKey(ctx, userID, key); err != nil {
		return err
	}

	s.logger.Info("attachment deleted", "user_id", userID, "key", key)
	return nil
}
