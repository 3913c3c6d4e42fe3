package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/model"
	"github.com/raphael0002/graphics-garage-api/internal/repository"
	"github.com/raphael0002/graphics-garage-api/internal/repository/postgres"
	"github.com/raphael0002/graphics-garage-api/internal/viewcounter"
	"go.uber.org/zap"
)

type fakePostRepo struct {
	created   *model.Post
	createErr error
	full      *model.FullPost
	findErr   error
	list      []*model.FullPost
	total     int64
	updated   *dto.UpdatePostRequest
	updateErr error
	deleteErr error
	views     int64
	viewsErr  error
	gotFilter dto.PostFilter
}

func (f *fakePostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	post.ID = uuid.New()
	f.created = &post
	return &post, nil
}

func (f *fakePostRepo) Find(ctx context.Context, filter dto.PostFilter) ([]*model.FullPost, error) {
	f.gotFilter = filter
	return f.list, nil
}

func (f *fakePostRepo) Count(ctx context.Context, filter dto.PostFilter) (int64, error) {
	return f.total, nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FullPost, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.full, nil
}

func (f *fakePostRepo) FindBySlug(ctx context.Context, slug string) (*model.FullPost, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.full, nil
}

func (f *fakePostRepo) Update(ctx context.Context, id uuid.UUID, updates dto.UpdatePostRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = &updates
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteErr
}

func (f *fakePostRepo) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	if f.viewsErr != nil {
		return 0, f.viewsErr
	}
	f.views++
	return f.views, nil
}

func newTestPostService(fake *fakePostRepo, tally *viewcounter.Tally) Post {
	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{Post: fake},
	}
	return newPostService(zap.NewNop(), repo, nil, tally, nil)
}

func TestPostCreate_DerivesSlug(t *testing.T) {
	fake := &fakePostRepo{full: &model.FullPost{}}
	svc := newTestPostService(fake, viewcounter.New())

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreatePostRequest{
		Title:    "Hello, World! 2024",
		Excerpt:  "e",
		Content:  "c",
		Category: "Development",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if fake.created.Slug != "hello-world-2024" {
		t.Errorf("slug = %q, want hello-world-2024", fake.created.Slug)
	}
	if fake.created.ReadTime != DEFAULT_READ_TIME {
		t.Errorf("read time = %d, want default %d", fake.created.ReadTime, DEFAULT_READ_TIME)
	}
}

func TestPostCreate_KeepsProvidedSlug(t *testing.T) {
	fake := &fakePostRepo{full: &model.FullPost{}}
	svc := newTestPostService(fake, viewcounter.New())

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreatePostRequest{
		Title:    "Hello World",
		Slug:     "custom-slug",
		Excerpt:  "e",
		Content:  "c",
		Category: "Development",
		ReadTime: 8,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if fake.created.Slug != "custom-slug" {
		t.Errorf("slug = %q, want custom-slug", fake.created.Slug)
	}
	if fake.created.ReadTime != 8 {
		t.Errorf("read time = %d, want 8", fake.created.ReadTime)
	}
}

func TestPostCreate_InvalidCategory(t *testing.T) {
	fake := &fakePostRepo{}
	svc := newTestPostService(fake, viewcounter.New())

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreatePostRequest{
		Title:    "Hello",
		Excerpt:  "e",
		Content:  "c",
		Category: "Nonsense",
	})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
	if fake.created != nil {
		t.Error("invalid category must not reach the repository")
	}
}

func TestPostCreate_SlugConflict(t *testing.T) {
	fake := &fakePostRepo{createErr: postgres.ErrSlugTaken}
	svc := newTestPostService(fake, viewcounter.New())

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreatePostRequest{
		Title:    "Duplicate",
		Excerpt:  "e",
		Content:  "c",
		Category: "Development",
	})
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("err = %v, want ErrSlugTaken", err)
	}
}

func TestPostFind_Pagination(t *testing.T) {
	fake := &fakePostRepo{list: []*model.FullPost{}, total: 25}
	svc := newTestPostService(fake, viewcounter.New())

	page, err := svc.Find(context.Background(), dto.PostFilter{Published: true})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if fake.gotFilter.Page != 1 || fake.gotFilter.Limit != DEFAULT_PAGE_LIMIT {
		t.Errorf("filter = %+v, want normalized page/limit", fake.gotFilter)
	}
	if page.Pagination.Total != 25 || page.Pagination.Pages != 3 {
		t.Errorf("pagination = %+v, want total 25 pages 3", page.Pagination)
	}
}

func TestPostFindByID_NotFound(t *testing.T) {
	fake := &fakePostRepo{findErr: pgx.ErrNoRows}
	svc := newTestPostService(fake, viewcounter.New())

	_, err := svc.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestPostUpdate_NotFound(t *testing.T) {
	fake := &fakePostRepo{updateErr: pgx.ErrNoRows}
	svc := newTestPostService(fake, viewcounter.New())

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdatePostRequest{})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestPostUpdate_InvalidCategory(t *testing.T) {
	fake := &fakePostRepo{}
	svc := newTestPostService(fake, viewcounter.New())

	bad := "Nonsense"
	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdatePostRequest{Category: &bad})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
	if fake.updated != nil {
		t.Error("invalid category must not reach the repository")
	}
}

func TestPostDelete_NotFound(t *testing.T) {
	fake := &fakePostRepo{findErr: pgx.ErrNoRows}
	svc := newTestPostService(fake, viewcounter.New())

	err := svc.Delete(context.Background(), uuid.New())
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestPostIncrementViews(t *testing.T) {
	id := uuid.New()
	fake := &fakePostRepo{views: 41}
	tally := viewcounter.New()
	svc := newTestPostService(fake, tally)

	views, err := svc.IncrementViews(context.Background(), id)
	if err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}

	if views != 42 {
		t.Errorf("views = %d, want 42", views)
	}
	if tally.Get(id) != 1 {
		t.Errorf("tally = %d, want 1", tally.Get(id))
	}
}

func TestPostIncrementViews_NotFound(t *testing.T) {
	fake := &fakePostRepo{viewsErr: pgx.ErrNoRows}
	tally := viewcounter.New()
	svc := newTestPostService(fake, tally)

	id := uuid.New()
	_, err := svc.IncrementViews(context.Background(), id)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
	if tally.Get(id) != 0 {
		t.Error("failed increment must not touch the tally")
	}
}
