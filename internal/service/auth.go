package service

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/raphael0002/graphics-garage-api/internal/model"
	"github.com/raphael0002/graphics-garage-api/internal/repository"
	"github.com/raphael0002/graphics-garage-api/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = time.Hour * 24

type authService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newAuthService(logger *zap.Logger, repo *repository.Repository) Auth {
	return &authService{
		logger: logger,
		repo:   repo,
	}
}

func (s *authService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.Postgres.User.FindByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrInvalidCredentials
		}
		s.logger.Sugar().Errorf("failed to find user(%s): %s", email, err.Error())
		return "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(jwt.MapClaims{
		"id":   user.ID.String(),
		"role": user.Role,
	}, []byte(os.Getenv("ACCESS_SECRET")), accessTokenTTL)
	if err != nil {
		s.logger.Sugar().Errorf("failed to sign access token for user(%s): %s", user.ID.String(), err.Error())
		return "", ErrInternal
	}

	return token, nil
}

// SeedAdmin creates the initial admin account from ADMIN_* environment
// variables when no user with that email exists yet.
func (s *authService) SeedAdmin(ctx context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.repo.Postgres.User.FindByEmail(ctx, email); err == nil {
		return nil
	} else if err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to check admin user(%s): %s", email, err.Error())
		return ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Sugar().Errorf("failed to hash admin password: %s", err.Error())
		return ErrInternal
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	if _, err := s.repo.Postgres.User.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	}); err != nil {
		s.logger.Sugar().Errorf("failed to create admin user(%s): %s", email, err.Error())
		return ErrInternal
	}

	s.logger.Sugar().Infof("Seeded admin user %s", email)

	return nil
}
