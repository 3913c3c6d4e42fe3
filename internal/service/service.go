package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/mailer"
	"github.com/raphael0002/graphics-garage-api/internal/model"
	"github.com/raphael0002/graphics-garage-api/internal/rabbitmq"
	"github.com/raphael0002/graphics-garage-api/internal/repository"
	"github.com/raphael0002/graphics-garage-api/internal/viewcounter"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.FullPost, error)
	Find(ctx context.Context, filter dto.PostFilter) (*dto.PostsPage, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FullPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.FullPost, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdatePostRequest) (*model.FullPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
}

type AuthorCache interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedAuthor, error)
}

type Auth interface {
	Login(ctx context.Context, email string, password string) (string, error)
	SeedAdmin(ctx context.Context) error
}

type Contact interface {
	Send(ctx context.Context, input dto.ContactRequest) error
}

type Service struct {
	Post
	AuthorCache
	Auth
	Contact
}

func New(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn, mail *mailer.Mailer, tally *viewcounter.Tally) *Service {
	authorCache := newAuthorCacheService(logger, repo)

	return &Service{
		Post:        newPostService(logger, repo, mq, tally, authorCache),
		AuthorCache: authorCache,
		Auth:        newAuthService(logger, repo),
		Contact:     newContactService(logger, mail),
	}
}
