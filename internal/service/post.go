package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/metrics"
	"github.com/raphael0002/graphics-garage-api/internal/model"
	"github.com/raphael0002/graphics-garage-api/internal/rabbitmq"
	"github.com/raphael0002/graphics-garage-api/internal/repository"
	"github.com/raphael0002/graphics-garage-api/internal/repository/postgres"
	"github.com/raphael0002/graphics-garage-api/internal/viewcounter"
	"github.com/raphael0002/graphics-garage-api/pkg/slug"
	"go.uber.org/zap"
)

const (
	DEFAULT_PAGE_LIMIT = 10
	DEFAULT_READ_TIME  = 5
)

type postService struct {
	logger      *zap.Logger
	repo        *repository.Repository
	rabbitmq    *rabbitmq.MQConn
	tally       *viewcounter.Tally
	authorCache AuthorCache
}

func newPostService(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn, tally *viewcounter.Tally, authorCache AuthorCache) Post {
	return &postService{
		logger:      logger,
		repo:        repo,
		rabbitmq:    mq,
		tally:       tally,
		authorCache: authorCache,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostRequest) (*model.FullPost, error) {
	if !model.ValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	if input.Author != "" {
		parsed, err := uuid.Parse(input.Author)
		if err != nil {
			return nil, ErrAuthorNotFound
		}
		authorID = parsed
	}

	post := model.Post{
		Slug:          input.Slug,
		Title:         input.Title,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		Category:      input.Category,
		Tags:          input.Tags,
		Featured:      input.Featured,
		Published:     input.Published,
		ReadTime:      input.ReadTime,
		SEO:           input.SEO,
		AuthorID:      authorID,
	}
	// The editor pre-computes the slug; derive it here only when it is
	// still empty at save time, with the same rule.
	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	}
	if post.ReadTime <= 0 {
		post.ReadTime = DEFAULT_READ_TIME
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		switch err {
		case postgres.ErrSlugTaken:
			return nil, ErrSlugTaken
		case postgres.ErrAuthorMissing:
			return nil, ErrAuthorNotFound
		}
		s.logger.Sugar().Errorf("failed to create post(%s): %s", post.Slug, err.Error())
		return nil, ErrInternal
	}

	fullPost, err := s.FindByID(ctx, createdPost.ID)
	if err != nil {
		return nil, err
	}

	s.publishPostEvent(ctx, dto.MQPostCreated, &fullPost.Post)

	return fullPost, nil
}

func (s *postService) Find(ctx context.Context, filter dto.PostFilter) (*dto.PostsPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DEFAULT_PAGE_LIMIT
	}

	posts, err := s.repo.Postgres.Post.Find(ctx, filter)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts: %s", err.Error())
		return nil, ErrInternal
	}

	total, err := s.repo.Postgres.Post.Count(ctx, filter)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count posts: %s", err.Error())
		return nil, ErrInternal
	}

	return &dto.PostsPage{
		Posts: posts,
		Pagination: dto.Pagination{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}, nil
}

func (s *postService) FindByID(ctx context.Context, id uuid.UUID) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) FindBySlug(ctx context.Context, slug string) (*model.FullPost, error) {
	post, err := s.repo.Postgres.Post.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post by slug(%s): %s", slug, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) Update(ctx context.Context, id uuid.UUID, input dto.UpdatePostRequest) (*model.FullPost, error) {
	if input.Category != nil && !model.ValidCategory(*input.Category) {
		return nil, ErrInvalidCategory
	}

	if err := s.repo.Postgres.Post.Update(ctx, id, input); err != nil {
		switch err {
		case pgx.ErrNoRows:
			return nil, ErrPostNotFound
		case postgres.ErrSlugTaken:
			return nil, ErrSlugTaken
		}
		s.logger.Sugar().Errorf("failed to update post(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	fullPost, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publishPostEvent(ctx, dto.MQPostUpdated, &fullPost.Post)

	return fullPost, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Postgres.Post.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.publishPostEvent(ctx, dto.MQPostDeleted, &post.Post)

	return nil
}

func (s *postService) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	views, err := s.repo.Postgres.Post.IncrementViews(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to increment views for post(%s): %s", id.String(), err.Error())
		return 0, ErrInternal
	}

	// Process-lifetime tally, kept apart from the durable counter.
	s.tally.Incr(id)
	metrics.PostViews.Inc()

	return views, nil
}

func (s *postService) publishPostEvent(ctx context.Context, eventType string, post *model.Post) {
	if s.rabbitmq == nil {
		return
	}

	msg := dto.MQPostEventMsg{
		Type:      eventType,
		PostID:    post.ID,
		Slug:      post.Slug,
		Title:     post.Title,
		Published: post.Published,
		Timestamp: time.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal %s event for post(%s): %s", eventType, post.ID.String(), err.Error())
		return
	}

	if err := s.rabbitmq.Publish(ctx, eventType, body); err != nil {
		s.logger.Sugar().Errorf("failed to publish %s event for post(%s): %s", eventType, post.ID.String(), err.Error())
	}
}
