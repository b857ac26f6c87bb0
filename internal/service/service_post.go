// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo-f/go-blog/internal/apperr"
	"github.com/neo-f/go-blog/internal/hashid"
	"github.com/neo-f/go-blog/internal/logger"
	"github.com/neo-f/go-blog/internal/store"
	"github.com/neo-f/go-blog/internal/workers"
	"github.com/neo-f/go-blog/models"
)

// postService is the concrete implementation of PostService.
type postService struct {
	postRepository store.PostRepository
	executor       *workers.Executor
	encoder        *hashid.Encoder
	logger         *logger.Logger
}

// NewPostService constructs a PostService. encoder turns post ids into
// slugs and back.
func NewPostService(postRepository store.PostRepository, executor *workers.Executor, encoder *hashid.Encoder, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		executor:       executor,
		encoder:        encoder,
		logger:         logger,
	}
}

// CreatePost stores post for post.AuthorID and returns it with its slug.
func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.AuthorID <= 0 {
		log.Error().Int64("author_id", post.AuthorID).Msg("post without author")
		return models.Post{}, apperr.Unauthorized()
	}

	created, err := workers.Ask(ctx, p.executor, func(ctx context.Context) (models.Post, error) {
		return p.postRepository.CreatePost(ctx, post)
	})
	if err != nil {
		log.Err(err).Int64("author_id", post.AuthorID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	if err = p.withSlug(&created); err != nil {
		return models.Post{}, err
	}
	return created, nil
}

// GetPost returns the post addressed by slug.
func (p *postService) GetPost(ctx context.Context, slug string) (models.Post, error) {
	postID, err := p.decode(ctx, slug)
	if err != nil {
		return models.Post{}, err
	}

	post, err := workers.Ask(ctx, p.executor, func(ctx context.Context) (models.Post, error) {
		return p.postRepository.FindPostByID(ctx, postID)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("slug", slug).Msg("post lookup failed")
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	post.Slug = slug
	return post, nil
}

// ListPosts returns one page of posts, newest first. A zero page selects
// [models.DefaultPage].
func (p *postService) ListPosts(ctx context.Context, page models.Page) (models.PostList, error) {
	if page.Limit == 0 {
		page.Limit = models.DefaultPage.Limit
	}

	posts, err := workers.Ask(ctx, p.executor, func(ctx context.Context) ([]models.Post, error) {
		return p.postRepository.ListPosts(ctx, page)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Uint64("limit", page.Limit).Uint64("offset", page.Offset).Msg("post listing failed")
		return models.PostList{}, fmt.Errorf("post listing failed: %w", err)
	}

	for i := range posts {
		if err = p.withSlug(&posts[i]); err != nil {
			return models.PostList{}, err
		}
	}

	return models.PostList{Posts: posts, Limit: page.Limit, Offset: page.Offset}, nil
}

// DeletePost removes the post addressed by slug. Only its author may delete
// it; anyone else gets Unauthorized.
func (p *postService) DeletePost(ctx context.Context, userID int64, slug string) error {
	log := logger.FromContext(ctx)

	postID, err := p.decode(ctx, slug)
	if err != nil {
		return err
	}

	err = workers.Do(ctx, p.executor, func(ctx context.Context) error {
		post, err := p.postRepository.FindPostByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.AuthorID != userID {
			log.Warn().Int64("user_id", userID).Int64("author_id", post.AuthorID).Str("slug", slug).Msg("delete by non-owner")
			return apperr.Unauthorized()
		}
		return p.postRepository.DeletePost(ctx, postID)
	})
	if err != nil {
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

// decode turns slug into a post id. Slugs that are not well-formed hashids
// cannot name a post and are reported as NotFound; a broken encoder
// configuration is returned as is.
func (p *postService) decode(ctx context.Context, slug string) (int64, error) {
	postID, err := p.encoder.Decode(slug)
	if err == nil {
		return postID, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Str("slug", slug).Msg("malformed slug")

	var hashErr *hashid.Error
	if errors.As(err, &hashErr) {
		switch hashErr.Kind {
		case hashid.IllegalCharacter, hashid.Separator:
			return 0, apperr.NotFound(msgPostNotFound)
		case hashid.AlphabetLength:
		}
	}
	return 0, err
}

func (p *postService) withSlug(post *models.Post) error {
	slug, err := p.encoder.Encode(post.PostID)
	if err != nil {
		return fmt.Errorf("error encoding post slug: %w", err)
	}
	post.Slug = slug
	return nil
}
