package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	userRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/user"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/users/models"
)

// Service сервис регистрации и аутентификации пользователей
type Service struct {
	userRepo   UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenIssuer, bcryptCost int, logger Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register регистрирует нового пользователя и открывает сессию.
// Правило логина: минимум 6 символов, только латинские буквы и цифры.
// Остальные поля формы (ФИО, email, телефон) сохраняются как есть.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: registering username=%s", req.Username)

	if !domain.ValidUsername(req.Username) {
		s.logger.Warn("Register: invalid username=%s", req.Username)
		return nil, ErrInvalidUsername
	}

	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if req.Password != req.PasswordConfirm {
		s.logger.Warn("Register: password mismatch for username=%s", req.Username)
		return nil, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Username:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			s.logger.Warn("Register: username=%s already taken", req.Username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Register: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Issue(created.ID, created.IsAdmin)
	if err != nil {
		s.logger.Error("Register: failed to issue token for user=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user=%d username=%s", created.ID, created.Username)
	return &models.AuthResponse{
		User:  models.FromDomainUser(created),
		Token: token,
	}, nil
}

// Login проверяет учетные данные и открывает сессию
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: authenticating username=%s", req.Username)

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: username=%s not found", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successfully authenticated user=%d", user.ID)
	return &models.AuthResponse{
		User:  models.FromDomainUser(user),
		Token: token,
	}, nil
}

// GetByID получает пользователя по ID (для middleware аутентификации)
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return user, nil
}
