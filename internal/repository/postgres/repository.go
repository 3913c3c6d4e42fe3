package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/model"
)

var (
	// ErrSlugTaken is returned when an insert or update violates the
	// unique slug index.
	ErrSlugTaken = errors.New("slug already taken")
	// ErrAuthorMissing is returned when a post references a user id that
	// does not exist.
	ErrAuthorMissing = errors.New("author does not exist")
)

const MAX_LIMIT = 100

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	Find(ctx context.Context, filter dto.PostFilter) ([]*model.FullPost, error)
	Count(ctx context.Context, filter dto.PostFilter) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FullPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.FullPost, error)
	Update(ctx context.Context, id uuid.UUID, updates dto.UpdatePostRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
}

type User interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type PostgresRepository struct {
	Post
	User
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post: newPostRepo(db),
		User: newUserRepo(db),
	}
}
