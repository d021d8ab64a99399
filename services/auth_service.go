package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/innovatehub-portal/apperrors"
	"github.com/innovatehub-portal/config"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/repositories"
	"github.com/innovatehub-portal/utils"
	"gorm.io/gorm"
)

// AuthService handles registration, login and token verification
type AuthService struct {
	cfg      *config.Config
	userRepo *repositories.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: repositories.NewUserRepository(db),
	}
}

// Register creates a new author or evaluator account. Admin accounts are
// only ever seeded, never self-registered.
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
	role := models.Role(req.Role)
	if role != models.RoleAuthor && role != models.RoleEvaluator {
		return nil, apperrors.NewValidation("role must be author or evaluator")
	}
	if role == models.RoleEvaluator && req.Specialty == "" {
		return nil, apperrors.NewValidation("specialty is required for evaluators")
	}

	if taken, err := s.userRepo.ExistsByEmail(req.Email, ""); err != nil {
		return nil, apperrors.NewInternal("checking email", err)
	} else if taken {
		return nil, apperrors.New(apperrors.KindConflict, "email already registered")
	}
	if taken, err := s.userRepo.ExistsByCPF(req.CPF, ""); err != nil {
		return nil, apperrors.NewInternal("checking cpf", err)
	} else if taken {
		return nil, apperrors.New(apperrors.KindConflict, "cpf already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternal("hashing password", err)
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		CPF:       req.CPF,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		Country:   req.Country,
		City:      req.City,
		State:     req.State,
		Street:    req.Street,
		Avenue:    req.Avenue,
		Lot:       req.Lot,
		Number:    req.Number,
		Password:  hashed,
		Role:      role,
		Specialty: req.Specialty,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return nil, apperrors.NewInternal("creating user", err)
	}
	return &created, nil
}

// Login authenticates a user and returns a token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindUnauthenticated, "invalid email or password")
		}
		return nil, apperrors.NewInternal("loading user", err)
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "invalid email or password")
	}

	token, expiresAt, err := s.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.NewInternal("generating token", err)
	}

	// Clear password from response
	user.Password = ""

	return &dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.NewInternal("loading user", err)
	}
	return &user, nil
}

// GenerateToken generates a new JWT token for a user
func (s *AuthService) GenerateToken(userID, email, role string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.TokenValidity)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid. Expired
// and forged tokens fail the same way; callers cannot tell them apart.
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthenticated()
	}

	if !token.Valid {
		return nil, apperrors.NewUnauthenticated()
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, apperrors.NewUnauthenticated()
	}

	return claims, nil
}
