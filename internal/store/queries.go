// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/neo-f/go-blog/models"
)

var (
	userColumns = []string{"user_id", "login", "password_hash", "name", "created_at"}
	postColumns = []string{"p.post_id", "p.author_id", "u.login", "p.title", "p.body", "p.created_at"}
)

func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	return db.builder().
		Insert(models.User{}.TableName()).
		Columns("login", "password_hash", "name", "created_at").
		Values(user.Login, user.PasswordHash, user.Name, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func (db *DB) findUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func (db *DB) createPostQuery(post models.Post) (string, []any, error) {
	return db.builder().
		Insert(models.Post{}.TableName()).
		Columns("author_id", "title", "body", "created_at").
		Values(post.AuthorID, post.Title, post.Body, post.CreatedAt).
		Suffix("RETURNING post_id").
		ToSql()
}

func (db *DB) selectPosts() sq.SelectBuilder {
	return db.builder().
		Select(postColumns...).
		From(models.Post{}.TableName() + " p").
		Join(models.User{}.TableName() + " u ON u.user_id = p.author_id")
}

func (db *DB) findPostQuery(postID int64) (string, []any, error) {
	return db.selectPosts().
		Where(sq.Eq{"p.post_id": postID}).
		ToSql()
}

func (db *DB) listPostsQuery(page models.Page) (string, []any, error) {
	return db.selectPosts().
		OrderBy("p.created_at DESC", "p.post_id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
}

func (db *DB) deletePostQuery(postID int64) (string, []any, error) {
	return db.builder().
		Delete(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}
