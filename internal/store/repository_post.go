// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with the generated PostID.
//
// A second post with the same title by the same author surfaces as a unique
// violation; an unknown author as a foreign key violation.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	const op = "CreatePost"
	log := logger.FromContext(ctx)

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.db.createPostQuery(post)
	if err != nil {
		return models.Post{}, buildError(op, err)
	}

	if err = r.db.queryRow(ctx, op, query, args, &post.PostID); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Int64("author_id", post.AuthorID).Msg("error creating post")
		return models.Post{}, err
	}

	return post, nil
}

// FindPostByID returns the post with the given id. A missing post is
// returned as [*Error] wrapping [sql.ErrNoRows].
func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	const op = "FindPostByID"
	log := logger.FromContext(ctx)

	query, args, err := r.db.findPostQuery(postID)
	if err != nil {
		return models.Post{}, buildError(op, err)
	}

	var post models.Post
	err = r.db.queryRow(ctx, op, query, args, postFields(&post)...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.FindPostByID").Int64("post_id", postID).Msg("error finding post")
		return models.Post{}, err
	}

	return post, nil
}

// ListPosts returns page of posts ordered newest first.
func (r *postRepository) ListPosts(ctx context.Context, page models.Page) ([]models.Post, error) {
	const op = "ListPosts"
	log := logger.FromContext(ctx)

	query, args, err := r.db.listPostsQuery(page)
	if err != nil {
		return nil, buildError(op, err)
	}

	posts := make([]models.Post, 0, page.Limit)
	err = r.db.query(ctx, op, query, args, func(rows *sql.Rows) error {
		var post models.Post
		if err := rows.Scan(postFields(&post)...); err != nil {
			return err
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error listing posts")
		return nil, err
	}

	return posts, nil
}

// DeletePost removes the post. Deleting a missing post returns [*Error]
// wrapping [ErrNotFound].
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	const op = "DeletePost"
	log := logger.FromContext(ctx)

	query, args, err := r.db.deletePostQuery(postID)
	if err != nil {
		return buildError(op, err)
	}

	affected, err := r.db.exec(ctx, op, query, args)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", postID).Msg("error deleting post")
		return err
	}
	if affected == 0 {
		return wrapError(op, ErrNotFound)
	}

	return nil
}

func postFields(p *models.Post) []any {
	return []any{&p.PostID, &p.AuthorID, &p.Author, &p.Title, &p.Body, &p.CreatedAt}
}
