package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/domain"
	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// maxPasswordBytes límite de entrada de bcrypt.
const maxPasswordBytes = 72

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dummyHash se compara cuando el email no existe, para que el tiempo de respuesta no revele si la cuenta existe.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("raash-dummy-password"), bcrypt.DefaultCost)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, now: time.Now}
}

// RegisterUser crea un cliente: valida campos y formato de email, hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password supera %d bytes", domain.ErrInvalidInput, maxPasswordBytes)
	}
	if !emailRegex.MatchString(in.Email) {
		return nil, domain.ErrInvalidEmail
	}

	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		UserType:     entity.UserTypeCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Dos registros simultáneos pueden pasar el chequeo previo; el índice único devuelve ErrEmailAlreadyExists.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email/password y devuelve los datos a guardar en la sesión.
// Email inexistente y password incorrecto devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.SessionUser, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &entity.SessionUser{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		UserType: user.UserType,
	}, nil
}
