package store

import (
	"context"
	"errors"

	"github.com/devlink-app/devlink/internal/model"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrAlreadyLiked   = errors.New("already liked")
	ErrNotLiked       = errors.New("not liked")
)

type Store interface {
	UserStore
	PostStore
	ProfileStore
	Close() error
}

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) (int64, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	// DeleteAccount removes the user's posts, profile, and identity record
	// in a single transaction.
	DeleteAccount(ctx context.Context, userID int64) error
}

type PostStore interface {
	CreatePost(ctx context.Context, post *model.Post) (int64, error)
	GetPost(ctx context.Context, id int64) (model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	DeletePost(ctx context.Context, id int64) error
	// AddLike is conditional on no existing like by the same user; the
	// uniqueness check happens inside the store write, not on a prior read.
	AddLike(ctx context.Context, postID, userID int64) error
	RemoveLike(ctx context.Context, postID, userID int64) error
	ListLikes(ctx context.Context, postID int64) ([]model.Like, error)
	AddComment(ctx context.Context, comment *model.Comment) (int64, error)
	GetComment(ctx context.Context, postID, commentID int64) (model.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID int64) error
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID int64) (model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
	UpsertProfile(ctx context.Context, profile *model.Profile) error
	AddExperience(ctx context.Context, userID int64, exp *model.Experience) error
	RemoveExperience(ctx context.Context, userID int64, expID string) error
	AddEducation(ctx context.Context, userID int64, edu *model.Education) error
	RemoveEducation(ctx context.Context, userID int64, eduID string) error
}
