package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/repository"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/subscription"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SignupTxRunner ejecuta el alta de empresa + administrador en una sola transacción.
type SignupTxRunner interface {
	RunSignup(ctx context.Context, fn func(companies repository.CompanyRepository, users repository.UserRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	subRepo  repository.SubscriptionRepository
	tx       SignupTxRunner
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, subRepo repository.SubscriptionRepository, tx SignupTxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, subRepo: subRepo, tx: tx, jwtCfg: jwtCfg, now: time.Now}
}

// Register crea la empresa y su usuario administrador. Devuelve ErrEmailAlreadyExists si el email ya está en uso.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.GetByEmail(ctx, email)
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
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.CompanyName),
		Email:     email,
		Phone:     in.Phone,
		Status:    entity.CompanyActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunSignup(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Company: *toCompanyResponse(company),
		User:    *toUserResponse(user),
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario + estado de la suscripción.
// Redirect indica la ruta inicial según la compuerta de suscripción.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	sub, err := uc.subRepo.GetCurrentByCompany(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	st := subscription.ComputeAccessState(sub, uc.now())

	return &dto.LoginResponse{
		Token:    token,
		User:     *toUserResponse(user),
		Access:   dto.AccessResponse{HasSubscription: st.HasSubscription, IsExpired: st.IsExpired},
		Redirect: subscription.LandingPath(st),
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Website:   c.Website,
		LogoURL:   c.LogoURL,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
