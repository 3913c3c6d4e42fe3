package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/raphael0002/graphics-garage-api/internal/model"
	"github.com/raphael0002/graphics-garage-api/internal/repository"
	"github.com/raphael0002/graphics-garage-api/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const authorCacheTTL = time.Hour

type authorCacheService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newAuthorCacheService(logger *zap.Logger, repo *repository.Repository) AuthorCache {
	return &authorCacheService{
		logger: logger,
		repo:   repo,
	}
}

func (s *authorCacheService) FindByID(ctx context.Context, id uuid.UUID) (*model.CachedAuthor, error) {
	cachedAuthor, err := redisrepo.Get[model.CachedAuthor](s.repo.Redis.Default, ctx, redisrepo.AuthorCacheKey(id.String()))
	// A stored null decodes to a nil author; treat it as a miss.
	if err == nil && cachedAuthor != nil {
		return cachedAuthor, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get cached author(%s) from redis: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	user, err := s.repo.Postgres.User.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAuthorNotFound
		}
		s.logger.Sugar().Errorf("failed to get author(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	author := &model.CachedAuthor{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.AuthorCacheKey(id.String()), author, authorCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set author(%s) in redis: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return author, nil
}
