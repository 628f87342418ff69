package services

import (
	"errors"
	"fmt"
	"log/slog"

	"trickhub/apperror"
	"trickhub/models"
	"trickhub/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const RegisterMessage = "User Created Successfully.  Now perform Login to get your token"

type AuthService interface {
	Register(req models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	EnsureAdmin(username, password string) error
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req models.RegisterRequest) (*models.RegisterResponse, error) {
	taken, err := s.usernameTaken(req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.ValidationFailed("username", "A user with that username already exists.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		// a concurrent registration may have won the unique index
		if taken, lookupErr := s.usernameTaken(req.Username); lookupErr == nil && taken {
			return nil, apperror.ValidationFailed("username", "A user with that username already exists.")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user registered", slog.Uint64("user_id", uint64(user.ID)), slog.String("username", user.Username))

	return &models.RegisterResponse{
		User:    *user,
		Message: RegisterMessage,
	}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("loading user %d: %w", id, err)
	}
	return user, nil
}

// EnsureAdmin creates the configured admin account, or promotes an existing
// user of that name. The password of an existing account is left alone.
func (s *authService) EnsureAdmin(username, password string) error {
	if username == "" {
		return nil
	}

	user, err := s.userRepo.GetByUsername(username)
	if err == nil {
		if user.IsAdmin() {
			return nil
		}
		user.Role = models.RoleAdmin
		if err := s.userRepo.Update(user); err != nil {
			return fmt.Errorf("promoting %s: %w", username, err)
		}
		slog.Info("user promoted to admin", slog.String("username", username))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("loading %s: %w", username, err)
	}

	if password == "" {
		return errors.New("admin password is required to create the admin account")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	if err := s.userRepo.Create(&models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("creating admin %s: %w", username, err)
	}

	slog.Info("admin account created", slog.String("username", username))
	return nil
}

func (s *authService) usernameTaken(username string) (bool, error) {
	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("checking username: %w", err)
}
