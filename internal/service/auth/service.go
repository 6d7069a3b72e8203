package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	sessionRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/session"
	userRepo "github.com/dipeshpuri/CleanrCrew-Patched/internal/infra/storage/user"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/service/auth/models"
)

// Время жизни сессии
const sessionTTL = 7 * 24 * time.Hour

// Service сервис регистрации и аутентификации
type Service struct {
	userRepo     UserRepository
	sessionRepo  SessionRepository
	timeProvider TimeProvider
	validate     *validator.Validate
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, sessionRepo SessionRepository, logger Logger) *Service {
	return &Service{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		timeProvider: &RealTimeProvider{},
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       logger,
	}
}

// Register регистрирует нового пользователя и сразу открывает сессию
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	// Регистрация сразу открывает сессию
	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: registered user id=%s, email=%s", user.ID, user.Email)
	return &models.AuthResponse{Token: token, User: models.FromDomainUser(user)}, nil
}

// Login открывает сессию по паре email/пароль
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Login: validation failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: opened session for user id=%s", user.ID)
	return &models.AuthResponse{Token: token, User: models.FromDomainUser(user)}, nil
}

// CurrentUser возвращает пользователя по токену сессии
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("CurrentUser: session repository error: %v", err)
		return nil, fmt.Errorf("%w: CurrentUser - repository error: %v", ErrInternal, err)
	}

	if session.Expired(s.timeProvider.Now()) {
		s.logger.Warn("CurrentUser: expired session for user=%s", session.UserID)
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("CurrentUser: user repository error for user=%s: %v", session.UserID, err)
		return nil, fmt.Errorf("%w: CurrentUser - repository error: %v", ErrInternal, err)
	}

	return user, nil
}

// Logout закрывает сессию. Закрытие неизвестной сессии не считается ошибкой.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil
		}
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}
	return nil
}

// openSession создает новую сессию и возвращает токен
func (s *Service) openSession(ctx context.Context, userID string) (string, error) {
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.timeProvider.Now().Add(sessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("openSession: repository error for user=%s: %v", userID, err)
		return "", fmt.Errorf("%w: openSession - repository error: %v", ErrInternal, err)
	}

	return session.Token, nil
}
