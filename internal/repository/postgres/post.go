package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raphael0002/graphics-garage-api/internal/dto"
	"github.com/raphael0002/graphics-garage-api/internal/model"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

// fullPostColumns are the columns scanned by scanFullPost, author expanded
// via the users join.
const fullPostColumns = `
p.id, p.slug, p.title, p.excerpt, p.content, p.featured_image, p.category,
p.tags, p.featured, p.published, p.views, p.read_time, p.seo, p.author_id,
p.created_at, p.updated_at, u.name, u.email, u.avatar`

func scanFullPost(row pgx.Row) (*model.FullPost, error) {
	var post model.FullPost
	if err := row.Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.FeaturedImage,
		&post.Category,
		&post.Tags,
		&post.Featured,
		&post.Published,
		&post.Views,
		&post.ReadTime,
		&post.SEO,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.Author.Name,
		&post.Author.Email,
		&post.Author.Avatar,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		return ErrSlugTaken
	case "23503":
		return ErrAuthorMissing
	}

	return err
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Views = 0
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO posts(slug, title, excerpt, content, featured_image, category, tags, featured, published, views, read_time, seo, author_id, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		post.Slug,
		post.Title,
		post.Excerpt,
		post.Content,
		post.FeaturedImage,
		post.Category,
		post.Tags,
		post.Featured,
		post.Published,
		post.Views,
		post.ReadTime,
		post.SEO,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID); err != nil {
		return nil, mapConstraintError(err)
	}

	return &post, nil
}

// buildFilter renders the WHERE clause for Find/Count. The published
// filter is always applied; the other filters are ANDed in when present.
func buildFilter(filter dto.PostFilter) (string, []any) {
	conditions := []string{"p.published = $1"}
	args := []any{filter.Published}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", len(args)))
	}

	if filter.FeaturedOnly {
		conditions = append(conditions, "p.featured = TRUE")
	}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(p.title ILIKE $%d OR p.excerpt ILIKE $%d OR p.content ILIKE $%d)", n, n, n))
	}

	return strings.Join(conditions, " AND "), args
}

// escapeLike neutralizes LIKE wildcards so the search term matches as a
// plain substring.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *postRepo) Find(ctx context.Context, filter dto.PostFilter) ([]*model.FullPost, error) {
	maxLimit(&filter.Limit)

	where, args := buildFilter(filter)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(
		`SELECT %s FROM posts p JOIN users u ON p.author_id = u.id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d`,
		fullPostColumns,
		where,
		len(args)-1,
		len(args),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*model.FullPost{}
	for rows.Next() {
		post, err := scanFullPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) Count(ctx context.Context, filter dto.PostFilter) (int64, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf("SELECT COUNT(*) FROM posts p WHERE %s", where)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FullPost, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM posts p JOIN users u ON p.author_id = u.id WHERE p.id = $1",
		fullPostColumns,
	)

	return scanFullPost(r.db.QueryRow(ctx, query, id))
}

func (r *postRepo) FindBySlug(ctx context.Context, slug string) (*model.FullPost, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM posts p JOIN users u ON p.author_id = u.id WHERE p.slug = $1 AND p.published = TRUE",
		fullPostColumns,
	)

	return scanFullPost(r.db.QueryRow(ctx, query, slug))
}

func (r *postRepo) Update(ctx context.Context, id uuid.UUID, updates dto.UpdatePostRequest) error {
	set := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if updates.Title != nil {
		add("title", *updates.Title)
	}
	if updates.Slug != nil {
		add("slug", *updates.Slug)
	}
	if updates.Excerpt != nil {
		add("excerpt", *updates.Excerpt)
	}
	if updates.Content != nil {
		add("content", *updates.Content)
	}
	if updates.FeaturedImage != nil {
		add("featured_image", *updates.FeaturedImage)
	}
	if updates.Category != nil {
		add("category", *updates.Category)
	}
	if updates.Tags != nil {
		add("tags", *updates.Tags)
	}
	if updates.Featured != nil {
		add("featured", *updates.Featured)
	}
	if updates.Published != nil {
		add("published", *updates.Published)
	}
	if updates.ReadTime != nil {
		add("read_time", *updates.ReadTime)
	}
	if updates.SEO != nil {
		add("seo", *updates.SEO)
	}

	add("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE posts SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapConstraintError(err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// IncrementViews is a single atomic store-level increment so concurrent
// calls never lose an update.
func (r *postRepo) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	var views int64
	if err := r.db.QueryRow(
		ctx,
		"UPDATE posts SET views = views + 1 WHERE id = $1 RETURNING views",
		id,
	).Scan(&views); err != nil {
		return 0, err
	}

	return views, nil
}
