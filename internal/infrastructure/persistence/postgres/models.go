package postgres

import "time"

// Models GORM. IDs são gerados pela aplicação (uuid) para manter o
// comportamento idêntico entre o driver postgres e o sqlite dos testes.

// UserModel é o model GORM para usuários
type UserModel struct {
	ID         string  `gorm:"type:uuid;primary_key"`
	SupabaseID string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email      string  `gorm:"type:varchar(255);not null"`
	Name       string  `gorm:"type:varchar(200)"`
	Title      *string `gorm:"type:varchar(200)"`
	Company    *string `gorm:"type:varchar(200)"`
	AvatarURL  *string `gorm:"type:varchar(500)"`
	CreatedAt  int64   `gorm:"autoCreateTime"`
	UpdatedAt  int64   `gorm:"autoUpdateTime"`
	DeletedAt  *int64  `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// ContactModel é o model GORM para contatos
type ContactModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	UserID    string  `gorm:"type:uuid;not null;index"`
	FirstName string  `gorm:"type:varchar(100);not null"`
	LastName  string  `gorm:"type:varchar(100)"`
	Email     string  `gorm:"type:varchar(255);not null;index"`
	Phone     *string `gorm:"type:varchar(50)"`
	Company   *string `gorm:"type:varchar(200)"`
	JobTitle  *string `gorm:"type:varchar(200)"`
	Notes     *string `gorm:"type:text"`
	Tags      string  `gorm:"type:text"` // JSON-encoded
	CreatedAt int64   `gorm:"autoCreateTime;index"`
	UpdatedAt int64   `gorm:"autoUpdateTime"`
	DeletedAt *int64  `gorm:"index"` // Soft delete
}

func (ContactModel) TableName() string {
	return "contacts"
}

// EmailTemplateModel é o model GORM para templates de email
type EmailTemplateModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	UserID    string  `gorm:"type:uuid;not null;index"`
	ContactID *string `gorm:"type:uuid;index"`
	Purpose   string  `gorm:"type:varchar(500)"`
	Tone      string  `gorm:"type:varchar(50);not null"`
	Subject   string  `gorm:"type:varchar(500);not null"`
	Body      string  `gorm:"type:text;not null"`
	CreatedAt int64   `gorm:"autoCreateTime;index"`
	UpdatedAt int64   `gorm:"autoUpdateTime"`
	DeletedAt *int64  `gorm:"index"` // Soft delete
}

func (EmailTemplateModel) TableName() string {
	return "email_templates"
}

// ConversationModel é o model GORM para o histórico de correspondência
type ConversationModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null;index"`
	ContactID string `gorm:"type:uuid;not null;index"`
	Subject   string `gorm:"type:varchar(500);not null"`
	Body      string `gorm:"type:text"`
	SentAt    int64  `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	DeletedAt *int64 `gorm:"index"` // Soft delete
}

func (ConversationModel) TableName() string {
	return "conversations"
}

// AttachmentModel é o model GORM para anexos
type AttachmentModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	UserID      string `gorm:"type:uuid;not null;index"`
	Key         string `gorm:"type:varchar(500);uniqueIndex;not null"`
	Filename    string `gorm:"type:varchar(500);not null"`
	ContentType string `gorm:"type:varchar(100);not null"`
	Size        int64  `gorm:"not null"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}

// unixOrZero converte o time da entidade para unix seconds preservando
// o zero value, para que autoCreateTime/autoUpdateTime preencham as
// colunas na inserção.
func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
