package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devlink-app/devlink/internal/model"
	"github.com/devlink-app/devlink/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// migrations is an ordered list of SQL migrations. Each migration runs
// exactly once, tracked by the schema_version table.
var migrations = []string{
	// Migration 1: Initial schema
	`
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	avatar TEXT,
	password TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	text TEXT NOT NULL,
	name TEXT,
	avatar TEXT,
	created_at INTEGER NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_posts_user_id ON posts(user_id);

CREATE TABLE IF NOT EXISTS likes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	post_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	FOREIGN KEY(post_id) REFERENCES posts(id)
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_likes_unique ON likes(post_id, user_id);

CREATE TABLE IF NOT EXISTS comments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	post_id INTEGER NOT NULL,
	user_id INTEGER NOT NULL,
	text TEXT NOT NULL,
	name TEXT,
	avatar TEXT,
	created_at INTEGER NOT NULL,
	FOREIGN KEY(post_id) REFERENCES posts(id)
);
CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);

CREATE TABLE IF NOT EXISTS profiles (
	user_id INTEGER PRIMARY KEY,
	company TEXT,
	website TEXT,
	location TEXT,
	status TEXT NOT NULL,
	skills TEXT,
	bio TEXT,
	github_username TEXT,
	social TEXT,
	updated_at INTEGER NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS experience (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id TEXT NOT NULL UNIQUE,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT,
	from_date TEXT NOT NULL,
	to_date TEXT,
	current INTEGER NOT NULL DEFAULT 0,
	description TEXT,
	FOREIGN KEY(user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_experience_user_id ON experience(user_id);

CREATE TABLE IF NOT EXISTS education (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id TEXT NOT NULL UNIQUE,
	user_id INTEGER NOT NULL,
	school TEXT NOT NULL,
	degree TEXT NOT NULL,
	fieldofstudy TEXT NOT NULL,
	from_date TEXT NOT NULL,
	to_date TEXT,
	current INTEGER NOT NULL DEFAULT 0,
	description TEXT,
	FOREIGN KEY(user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_education_user_id ON education(user_id);
`,
	// Future migrations go here:
	// Migration 2: `ALTER TABLE ...`,
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return err
	}

	var currentVersion int
	row := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`)
	if err := row.Scan(&currentVersion); err != nil {
		return err
	}

	for i := currentVersion; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", i+1, err)
		}
	}

	return nil
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO users (name, email, avatar, password, created_at)
VALUES (?, ?, ?, ?, ?)
`, user.Name, user.Email, nullIfEmpty(user.Avatar), user.Password, user.CreatedAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrDuplicateEmail
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetUser(ctx context.Context, id int64) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, email, avatar, password, created_at
FROM users
WHERE id = ?
`, id)
	return scanUser(row)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, name, email, avatar, password, created_at
FROM users
WHERE email = ?
`, email)
	return scanUser(row)
}

// DeleteAccount cascades posts -> profile -> user inside one transaction so a
// mid-flight failure cannot strand a partially deleted account.
func (s *Store) DeleteAccount(ctx context.Context, userID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	steps := []struct {
		query string
		args  []any
	}{
		{`DELETE FROM likes WHERE user_id = ? OR post_id IN (SELECT id FROM posts WHERE user_id = ?)`, []any{userID, userID}},
		{`DELETE FROM comments WHERE user_id = ? OR post_id IN (SELECT id FROM posts WHERE user_id = ?)`, []any{userID, userID}},
		{`DELETE FROM posts WHERE user_id = ?`, []any{userID}},
		{`DELETE FROM experience WHERE user_id = ?`, []any{userID}},
		{`DELETE FROM education WHERE user_id = ?`, []any{userID}},
		{`DELETE FROM profiles WHERE user_id = ?`, []any{userID}},
	}
	for _, step := range steps {
		if _, err = tx.ExecContext(ctx, step.query, step.args...); err != nil {
			return err
		}
	}
	var res sql.Result
	res, err = tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		err = store.ErrNotFound
		return err
	}
	return tx.Commit()
}

func (s *Store) CreatePost(ctx context.Context, post *model.Post) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO posts (user_id, text, name, avatar, created_at)
VALUES (?, ?, ?, ?, ?)
`, post.UserID, post.Text, nullIfEmpty(post.Name), nullIfEmpty(post.Avatar), post.CreatedAt.Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetPost(ctx context.Context, id int64) (model.Post, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, user_id, text, name, avatar, created_at
FROM posts
WHERE id = ?
`, id)
	post, err := scanPost(row)
	if err != nil {
		return model.Post{}, err
	}
	if err := s.loadPostRelations(ctx, &post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

func (s *Store) ListPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_id, text, name, avatar, created_at
FROM posts
ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range posts {
		if err := s.loadPostRelations(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (s *Store) DeletePost(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM likes WHERE post_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = ?`, id); err != nil {
		return err
	}
	var res sql.Result
	res, err = tx.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		err = store.ErrNotFound
		return err
	}
	return tx.Commit()
}

// AddLike relies on the unique (post_id, user_id) index instead of a prior
// read, so two concurrent likes cannot both pass the guard.
func (s *Store) AddLike(ctx context.Context, postID, userID int64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO likes (post_id, user_id, created_at)
VALUES (?, ?, ?)
`, postID, userID, time.Now().Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (s *Store) RemoveLike(ctx context.Context, postID, userID int64) error {
	res, err := s.db.ExecContext(ctx, `
DELETE FROM likes WHERE post_id = ? AND user_id = ?
`, postID, userID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return store.ErrNotLiked
	}
	return nil
}

func (s *Store) ListLikes(ctx context.Context, postID int64) ([]model.Like, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT user_id, created_at
FROM likes
WHERE post_id = ?
ORDER BY id DESC
`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := []model.Like{}
	for rows.Next() {
		var l model.Like
		var created int64
		if err := rows.Scan(&l.UserID, &created); err != nil {
			return nil, err
		}
		l.CreatedAt = time.Unix(created, 0)
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

func (s *Store) AddComment(ctx context.Context, comment *model.Comment) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO comments (post_id, user_id, text, name, avatar, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, comment.PostID, comment.UserID, comment.Text, nullIfEmpty(comment.Name), nullIfEmpty(comment.Avatar), comment.CreatedAt.Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetComment(ctx context.Context, postID, commentID int64) (model.Comment, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, post_id, user_id, text, name, avatar, created_at
FROM comments
WHERE id = ? AND post_id = ?
`, commentID, postID)
	return scanComment(row)
}

// RemoveComment deletes by comment id, not by matching author, so a user with
// several comments on one post always loses exactly the targeted one.
func (s *Store) RemoveComment(ctx context.Context, postID, commentID int64) error {
	res, err := s.db.ExecContext(ctx, `
DELETE FROM comments WHERE id = ? AND post_id = ?
`, commentID, postID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, post_id, user_id, text, name, avatar, created_at
FROM comments
WHERE post_id = ?
ORDER BY id DESC
`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *Store) loadPostRelations(ctx context.Context, post *model.Post) error {
	likes, err := s.ListLikes(ctx, post.ID)
	if err != nil {
		return err
	}
	comments, err := s.ListComments(ctx, post.ID)
	if err != nil {
		return err
	}
	post.Likes = likes
	post.Comments = comments
	return nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var avatar sql.NullString
	var created int64
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &avatar, &u.Password, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, store.ErrNotFound
		}
		return model.User{}, err
	}
	if avatar.Valid {
		u.Avatar = avatar.String
	}
	u.CreatedAt = time.Unix(created, 0)
	return u, nil
}

func scanPost(scanner interface{ Scan(dest ...any) error }) (model.Post, error) {
	var p model.Post
	var name sql.NullString
	var avatar sql.NullString
	var created int64
	if err := scanner.Scan(&p.ID, &p.UserID, &p.Text, &name, &avatar, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Post{}, store.ErrNotFound
		}
		return model.Post{}, err
	}
	if name.Valid {
		p.Name = name.String
	}
	if avatar.Valid {
		p.Avatar = avatar.String
	}
	p.CreatedAt = time.Unix(created, 0)
	p.Likes = []model.Like{}
	p.Comments = []model.Comment{}
	return p, nil
}

func scanComment(scanner interface{ Scan(dest ...any) error }) (model.Comment, error) {
	var c model.Comment
	var name sql.NullString
	var avatar sql.NullString
	var created int64
	if err := scanner.Scan(&c.ID, &c.PostID, &c.UserID, &c.Text, &name, &avatar, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Comment{}, store.ErrNotFound
		}
		return model.Comment{}, err
	}
	if name.Valid {
		c.Name = name.String
	}
	if avatar.Valid {
		c.Avatar = avatar.String
	}
	c.CreatedAt = time.Unix(created, 0)
	return c, nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY")
}
