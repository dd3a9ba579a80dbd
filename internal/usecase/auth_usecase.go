package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fadilmartias/intervue-backend/internal/apperror"
	"github.com/fadilmartias/intervue-backend/internal/config"
	"github.com/fadilmartias/intervue-backend/internal/dto"
	"github.com/fadilmartias/intervue-backend/internal/logger"
	"github.com/fadilmartias/intervue-backend/internal/model"
	"github.com/fadilmartias/intervue-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type AuthUsecase struct {
	users     *repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	log       *logger.Logger
}

func NewAuthUsecase(users *repository.UserRepository, log *logger.Logger) *AuthUsecase {
	authConfig := config.LoadAuthConfig()
	return &AuthUsecase{
		users:     users,
		jwtSecret: []byte(authConfig.JWTSecret),
		tokenTTL:  authConfig.TokenTTL,
		log:       log.With("usecase", "AuthUsecase"),
	}
}

func (uc *AuthUsecase) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:             uuid.New(),
		Username:       strings.TrimSpace(req.Username),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Github:         strings.TrimSpace(req.Github),
		Password:       string(hashed),
		InterviewStyle: model.StyleNeutral,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (string, *model.User, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	user, err := uc.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, apperror.ErrNotFound) {
		// Same error for unknown email and bad password.
		return "", nil, apperror.ErrUnauthorized
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, apperror.ErrUnauthorized
	}

	token, err := uc.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (uc *AuthUsecase) Me(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return uc.users.FindByID(ctx, id)
}

func (uc *AuthUsecase) CompleteOnboarding(ctx context.Context, id uuid.UUID, req dto.OnboardingRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	style := req.InterviewStyle
	if style == "" {
		style = model.StyleNeutral
	}
	updates := map[string]interface{}{
		"role":                 req.Role,
		"experience":           req.Experience,
		"tech_stack":           datatypes.NewJSONSlice(req.TechStack),
		"goal":                 req.Goal,
		"interview_style":      style,
		"onboarding_completed": true,
	}
	if err := uc.users.UpdateProfile(ctx, id, updates); err != nil {
		return nil, err
	}
	return uc.users.FindByID(ctx, id)
}

func (uc *AuthUsecase) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(uc.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

// ParseToken verifies the signature and expiry and returns the principal ID.
func (uc *AuthUsecase) ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.ErrUnauthorized
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, apperror.ErrUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, apperror.ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}
	return id, nil
}

func (uc *AuthUsecase) TokenTTL() time.Duration {
	return uc.tokenTTL
}
