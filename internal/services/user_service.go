package services

import (
	"context"

	"github.com/rafabene/contactpro-backend/internal/domain/entities"
	"github.com/rafabene/contactpro-backend/internal/domain/errors"
	"github.com/rafabene/contactpro-backend/internal/domain/ports"
	"github.com/rafabene/contactpro-backend/internal/domain/repositories"
	"github.com/rafabene/contactpro-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// EnsureUser garante que existe um usuário local para as claims do
// token verificado. Upsert chaveado por SupabaseID: na primeira
// requisição autenticada o registro é criado; nas demais, o email é
// mantido em sincronia com o provedor.
func (s *UserService) EnsureUser(ctx context.Context, claims *ports.TokenClaims) (*entities.User, error) {
	email, err := valueobjects.NewEmail(claims.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	user := &entities.User{
		SupabaseID: claims.Subject,
		Email:      email,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		s.logger.Error("failed to upsert user", "supabase_id", claims.Subject, "error", err)
		return nil, err
	}

	return user, nil
}

// GetProfile busca o perfil de um usuário por ID
func (s *UserService) GetProfile(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfileInput representa os dados para atualizar um perfil.
// Campos nil são mantidos como estão.
type UpdateProfileInput struct {
	Name      *string
	Title     *string
	Company   *string
	AvatarURL *string
}

// UpdateProfile atualiza os campos opcionais do perfil do usuário
func (s *UserService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Title != nil {
		user.Title = input.Title
	}
	if input.Company != nil {
		user.Company = input.Company
	}
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", user.ID)
	return user, nil
}
