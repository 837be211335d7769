package dto

import "github.com/rafabene/contactpro-backend/internal/services"

// PresignedURLRequest representa o pedido de URL pré-assinada de upload
type PresignedURLRequest struct {
	Filename    string `json:"filename" binding:"required,max=500"`
	ContentType string `json:"content_type" binding:"required,max=100"`
	Size        int64  `json:"size" binding:"required,gt=0"`
}

// PresignedURLResponse representa a URL emitida
type PresignedURLResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"` // segundos
}

// ToPresignedURLResponse converte o resultado do serviço
func ToPresignedURLResponse(upload *services.PresignedUpload) PresignedURLResponse {
	return PresignedURLResponse{
		Key:       upload.Key,
		URL:       upload.URL,
		ExpiresIn: int64(upload.ExpiresIn.Seconds()),
	}
}
