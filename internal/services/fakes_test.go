package services_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
)

// Fakes em memória para os testes de serviço.

type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }

type nopUnitOfWork struct{}

func (nopUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (nopUnitOfWork) Commit(context.Context) error                       { return nil }
func (nopUnitOfWork) Rollback(context.Context) error                     { return nil }
func (nopUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type memUserRepo struct {
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entities.User)}
}

func (r *memUserRepo) Upsert(_ context.Context, user *entities.User) error {
	for _, existing := range r.users {
		if existing.SupabaseID == user.SupabaseID {
			existing.Email = user.Email
			existing.UpdatedAt = time.Now()
			*user = *existing
			return nil
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok || user.IsDeleted() {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) FindBySupabaseID(_ context.Context, supabaseID string) (*entities.User, error) {
	for _, user := range r.users {
		if user.SupabaseID == supabaseID && !user.IsDeleted() {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entities.User) error {
	clone := *user
	clone.UpdatedAt = time.Now()
	r.users[user.ID] = &clone
	return nil
}

type memContactRepo struct {
	contacts map[string]*entities.Contact
}

func newMemContactRepo() *memContactRepo {
	return &memContactRepo{contacts: make(map[string]*entities.Contact)}
}

func (r *memContactRepo) Create(_ context.Context, contact *entities.Contact) error {
	contact.ID = uuid.NewString()
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	clone := *contact
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *memContactRepo) FindByID(_ context.Context, userID, id string) (*entities.Contact, error) {
	contact, ok := r.contacts[id]
	if !ok || contact.UserID != userID || contact.IsDeleted() {
		return nil, nil
	}
	clone := *contact
	return &clone, nil
}

func (r *memContactRepo) FindByEmail(_ context.Context, userID, email string) (*entities.Contact, error) {
	for _, contact := range r.contacts {
		if contact.UserID == userID && contact.Email.String() == email && !contact.IsDeleted() {
			clone := *contact
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memContactRepo) Update(_ context.Context, contact *entities.Contact) error {
	clone := *contact
	clone.UpdatedAt = time.Now()
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *memContactRepo) Delete(_ context.Context, userID, id string) error {
	contact, ok := r.contacts[id]
	if !ok || contact.UserID != userID {
		return nil
	}
	contact.SoftDelete()
	return nil
}

func (r *memContactRepo) List(_ context.Context, userID string, filters repositories.ContactFilters) ([]*entities.Contact, int64, error) {
	var matched []*entities.Contact
	for _, contact := range r.contacts {
		if contact.UserID != userID || contact.IsDeleted() {
			continue
		}
		if filters.Search != "" && !contactMatches(contact, filters.Search) {
			continue
		}
		clone := *contact
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func contactMatches(contact *entities.Contact, search string) bool {
	search = strings.ToLower(search)
	fields := []string{contact.FirstName, contact.LastName, contact.Email.String()}
	if contact.Company != nil {
		fields = append(fields, *contact.Company)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

type memConversationRepo struct {
	conversations []*entities.Conversation
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{}
}

func (r *memConversationRepo) Create(_ context.Context, conversation *entities.Conversation) error {
	conversation.ID = uuid.NewString()
	conversation.CreatedAt = time.Now()
	clone := *conversation
	r.conversations = append(r.conversations, &clone)
	return nil
}

func (r *memConversationRepo) ListByContact(_ context.Context, userID, contactID string, page, pageSize int) ([]*entities.Conversation, error) {
	var matched []*entities.Conversation
	for _, conversation := range r.conversations {
		if conversation.UserID == userID && conversation.ContactID == contactID && conversation.DeletedAt == nil {
			clone := *conversation
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SentAt.After(matched[j].SentAt)
	})
	return matched, nil
}

func (r *memConversationRepo) DeleteByContact(_ context.Context, userID, contactID string) error {
	now := time.Now()
	for _, conversation := range r.conversations {
		if conversation.UserID == userID && conversation.ContactID == contactID {
			conversation.DeletedAt = &now
		}
	}
	return nil
}

// live retorna quantas conversas vivas existem para um contato
func (r *memConversationRepo) live(contactID string) int {
	count := 0
	for _, conversation := range r.conversations {
		if conversation.ContactID == contactID && conversation.DeletedAt == nil {
			count++
		}
	}
	return count
}

type memTemplateRepo struct {
	templates map[string]*entities.EmailTemplate
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{templates: make(map[string]*entities.EmailTemplate)}
}

func (r *memTemplateRepo) Create(_ context.Context, template *entities.EmailTemplate) error {
	template.ID = uuid.NewString()
	template.CreatedAt = time.Now()
	clone := *template
	r.templates[template.ID] = &clone
	return nil
}

func (r *memTemplateRepo) FindByID(_ context.Context, userID, id string) (*entities.EmailTemplate, error) {
	template, ok := r.templates[id]
	if !ok || template.UserID != userID || template.DeletedAt != nil {
		return nil, nil
	}
	clone := *template
	return &clone, nil
}

func (r *memTemplateRepo) List(_ context.Context, userID string, page, pageSize int) ([]*entities.EmailTemplate, error) {
	var matched []*entities.EmailTemplate
	for _, template := range r.templates {
		if template.UserID == userID && template.DeletedAt == nil {
			clone := *template
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *memTemplateRepo) Delete(_ context.Context, userID, id string) error {
	template, ok := r.templates[id]
	if !ok || template.UserID != userID {
		return nil
	}
	now := time.Now()
	template.DeletedAt = &now
	return nil
}

type memAttachmentRepo struct {
	attachments map[string]*entities.Attachment
}

func newMemAttachmentRepo() *memAttachmentRepo {
	return &memAttachmentRepo{attachments: make(map[string]*entities.Attachment)}
}

func (r *memAttachmentRepo) Create(_ context.Context, attachment *entities.Attachment) error {
	attachment.ID = uuid.NewString()
	attachment.CreatedAt = time.Now()
	clone := *attachment
	r.attachments[attachment.Key] = &clone
	return nil
}

func (r *memAttachmentRepo) FindByKey(_ context.Context, userID, key string) (*entities.Attachment, error) {
	attachment, ok := r.attachments[key]
	if !ok || attachment.UserID != userID {
		return nil, nil
	}
	clone := *attachment
	return &clone, nil
}

func (r *memAttachmentRepo) DeleteByKey(_ context.Context, userID, key string) error {
	attachment, ok := r.attachments[key]
	if !ok || attachment.UserID != userID {
		return nil
	}
	delete(r.attachments, key)
	return nil
}

type fakeStorage struct {
	removed   []string
	presigned []string
	failPut   bool
}

func (s *fakeStorage) PresignedPut(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	if s.failPut {
		return "", context.DeadlineExceeded
	}
	s.presigned = append(s.presigned, key)
	return "https://storage.local/" + key + "?signed=1", nil
}

func (s *fakeStorage) Remove(_ context.Context, key string) error {
	s.removed = append(s.removed, key)
	return nil
}

type fakeDrafter struct {
	draft   *ports.Draft
	err     error
	lastReq ports.DraftRequest
}

func (d *fakeDrafter) GenerateTemplate(_ context.Context, req ports.DraftRequest) (*ports.Draft, error) {
	d.lastReq = req
	if d.err != nil {
		return nil, d.err
	}
	return d.draft, nil
}

func (d *fakeDrafter) Polish(_ context.Context, draft ports.Draft, tone string) (*ports.Draft, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.draft != nil {
		return d.draft, nil
	}
	polished := draft
	polished.Subject = strings.TrimSpace(polished.Subject)
	return &polished, nil
}
