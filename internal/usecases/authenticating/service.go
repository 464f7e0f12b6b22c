package authenticating

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	userIDPrefix             = "u_"
	minPasswordLength        = 8
	defaultExpirationSeconds = 3600
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.]{3,30}$`)

type Authenticator interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
	GetUser(ctx context.Context, actor domain.Actor, id string) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, id string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if err := validateRegister(&req); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "username já cadastrado")
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "erro ao gerar hash da senha")
	}

	id, err := utils.GenerateID(userIDPrefix)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "erro ao gerar id do usuário")
	}

	user := &domain.User{
		ID:           id,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
	}
	if req.Role == domain.RoleBranch {
		user.Branch = req.Branch
	}

	user, err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "usuário já cadastrado")
		}
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("Usuário registrado")

	return user, nil
}

func validateRegister(req *domain.RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = handleEmail(req.Email)

	if req.Username == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username, email, senha e role são obrigatórios")
	}
	if !usernamePattern.MatchString(req.Username) {
		return NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "username deve ter de 3 a 30 caracteres [A-Za-z0-9_.]")
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "email inválido")
	}
	if len(req.Password) < minPasswordLength {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, fmt.Sprintf("a senha deve conter pelo menos %d caracteres", minPasswordLength))
	}
	if !req.Role.IsValid() {
		return NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "role deve ser CENTRAL ou BRANCH")
	}
	if req.Role == domain.RoleBranch {
		if req.Branch == nil || strings.TrimSpace(*req.Branch) == "" {
			return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "branch é obrigatório para o role BRANCH")
		}
		branch := strings.TrimSpace(*req.Branch)
		req.Branch = &branch
	}

	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return email
}

func (s *Service) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "erro ao consultar usuário no banco de dados")
	}

	// usuário inexistente e senha incorreta respondem igual
	if user == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	expiresIn := s.expirationSeconds()
	token, err := generateJWT(user, s.cfg.SecretKey, s.now(), expiresIn)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "erro ao gerar token de autenticação")
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      user.Role,
		Branch:    user.Branch,
	}, nil
}

func (s *Service) expirationSeconds() int64 {
	if s.cfg.Auth.ExpirationSeconds > 0 {
		return s.cfg.Auth.ExpirationSeconds
	}
	return defaultExpirationSeconds
}

func generateJWT(user *domain.User, secretKey string, now time.Time, expiresIn int64) (string, error) {
	claims := domain.Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiresIn) * time.Second)),
		},
	}
	if user.Branch != nil {
		claims.Branch = *user.Branch
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Subject == "" || !claims.Role.IsValid() {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	if !actor.IsCentral() {
		return nil, NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "")
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return users, nil
}

func (s *Service) GetUser(ctx context.Context, actor domain.Actor, id string) (*domain.User, error) {
	if !actor.IsCentral() {
		return nil, NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "")
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsCentral() {
		return NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "")
	}

	deleted, err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		return NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if !deleted {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    id,
		"deleted_by": actor.Username,
	}).Info("Usuário removido")

	return nil
}
