package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	userRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/user"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/users/models"
)

type mockUserRepository struct {
	createFunc        func(ctx context.Context, user *domain.User) (*domain.User, error)
	getByIDFunc       func(ctx context.Context, id int64) (*domain.User, error)
	getByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.createFunc(ctx, user)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.getByUsernameFunc(ctx, username)
}

type mockTokenIssuer struct {
	issueFunc func(userID int64, isAdmin bool) (string, error)
}

func (m *mockTokenIssuer) Issue(userID int64, isAdmin bool) (string, error) {
	return m.issueFunc(userID, isAdmin)
}

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

func staticToken(token string) *mockTokenIssuer {
	return &mockTokenIssuer{
		issueFunc: func(userID int64, isAdmin bool) (string, error) {
			return token, nil
		},
	}
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username:        "ivanov1",
		FullName:        "Иванов Иван",
		Email:           "ivanov@example.com",
		Phone:           "+79990001122",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers user and issues token", func(t *testing.T) {
		var saved *domain.User

		repo := &mockUserRepository{
			createFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
				saved = user
				created := *user
				created.ID = 42
				return &created, nil
			},
		}

		service := NewService(repo, staticToken("session-token"), bcrypt.MinCost, &mockLogger{})

		resp, err := service.Register(ctx, registerRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.User.ID)
		assert.Equal(t, "ivanov1", resp.User.Username)
		assert.Equal(t, "session-token", resp.Token)

		// В БД уходит bcrypt хэш, а не пароль
		assert.NotEqual(t, "secret123", saved.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("secret123")))
	})

	t.Run("rejects invalid usernames", func(t *testing.T) {
		service := NewService(&mockUserRepository{}, staticToken(""), bcrypt.MinCost, &mockLogger{})

		for _, username := range []string{"short", "Алексей26", "user name", "a@b.ru", ""} {
			req := registerRequest()
			req.Username = username

			_, err := service.Register(ctx, req)

			assert.ErrorIs(t, err, ErrInvalidUsername, "username=%q", username)
		}
	})

	t.Run("rejects password mismatch", func(t *testing.T) {
		service := NewService(&mockUserRepository{}, staticToken(""), bcrypt.MinCost, &mockLogger{})

		req := registerRequest()
		req.PasswordConfirm = "secret124"

		_, err := service.Register(ctx, req)

		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		service := NewService(&mockUserRepository{}, staticToken(""), bcrypt.MinCost, &mockLogger{})

		req := registerRequest()
		req.Password = ""
		req.PasswordConfirm = ""

		_, err := service.Register(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("maps taken username", func(t *testing.T) {
		repo := &mockUserRepository{
			createFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
				return nil, userRepo.ErrUsernameTaken
			},
		}
		service := NewService(repo, staticToken(""), bcrypt.MinCost, &mockLogger{})

		_, err := service.Register(ctx, registerRequest())

		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &domain.User{
		ID:           42,
		Username:     "ivanov1",
		PasswordHash: string(hash),
	}

	t.Run("authenticates with correct password", func(t *testing.T) {
		repo := &mockUserRepository{
			getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				return stored, nil
			},
		}
		service := NewService(repo, staticToken("session-token"), bcrypt.MinCost, &mockLogger{})

		resp, err := service.Login(ctx, &models.LoginRequest{Username: "ivanov1", Password: "secret123"})

		assert.NoError(t, err)
		assert.Equal(t, int64(42), resp.User.ID)
		assert.Equal(t, "session-token", resp.Token)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		repo := &mockUserRepository{
			getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				return stored, nil
			},
		}
		service := NewService(repo, staticToken(""), bcrypt.MinCost, &mockLogger{})

		_, err := service.Login(ctx, &models.LoginRequest{Username: "ivanov1", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username is indistinguishable from wrong password", func(t *testing.T) {
		repo := &mockUserRepository{
			getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				return nil, userRepo.ErrUserNotFound
			},
		}
		service := NewService(repo, staticToken(""), bcrypt.MinCost, &mockLogger{})

		_, err := service.Login(ctx, &models.LoginRequest{Username: "nobody1", Password: "secret123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
