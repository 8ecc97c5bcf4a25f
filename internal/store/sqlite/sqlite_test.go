package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devlink-app/devlink/internal/model"
	"github.com/devlink-app/devlink/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func createTestUser(t *testing.T, st *Store, name, email string) int64 {
	t.Helper()
	id, err := st.CreateUser(context.Background(), &model.User{
		Name:      name,
		Email:     email,
		Avatar:    "https://www.gravatar.com/avatar/0",
		Password:  "hash",
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return id
}

func TestUserLifecycle(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	id := createTestUser(t, st, "Alice", "alice@example.com")

	got, err := st.GetUser(context.Background(), id)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.Name != "Alice" {
		t.Fatalf("unexpected name: %s", got.Name)
	}

	byEmail, err := st.GetUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != id {
		t.Fatalf("expected id %d, got %d", id, byEmail.ID)
	}

	if _, err := st.GetUser(context.Background(), id+999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	createTestUser(t, st, "Alice", "alice@example.com")
	_, err := st.CreateUser(context.Background(), &model.User{
		Name:      "Imposter",
		Email:     "alice@example.com",
		Password:  "hash",
		CreatedAt: time.Now(),
	})
	if !errors.Is(err, store.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestPostLifecycle(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	userID := createTestUser(t, st, "Alice", "alice@example.com")

	first, err := st.CreatePost(context.Background(), &model.Post{
		UserID:    userID,
		Text:      "first",
		Name:      "Alice",
		CreatedAt: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	second, err := st.CreatePost(context.Background(), &model.Post{
		UserID:    userID,
		Text:      "second",
		Name:      "Alice",
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	posts, err := st.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != second || posts[1].ID != first {
		t.Fatalf("expected newest first order, got %d then %d", posts[0].ID, posts[1].ID)
	}
	if posts[0].Likes == nil || posts[0].Comments == nil {
		t.Fatalf("expected non-nil likes and comments slices")
	}

	got, err := st.GetPost(context.Background(), first)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got.Text != "first" {
		t.Fatalf("unexpected text: %s", got.Text)
	}

	if err := st.DeletePost(context.Background(), first); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if _, err := st.GetPost(context.Background(), first); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestLikeGuards(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	userID := createTestUser(t, st, "Alice", "alice@example.com")
	postID, err := st.CreatePost(context.Background(), &model.Post{
		UserID: userID, Text: "hello", Name: "Alice", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := st.AddLike(context.Background(), postID, userID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if err := st.AddLike(context.Background(), postID, userID); !errors.Is(err, store.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked, got %v", err)
	}

	likes, err := st.ListLikes(context.Background(), postID)
	if err != nil {
		t.Fatalf("list likes: %v", err)
	}
	if len(likes) != 1 || likes[0].UserID != userID {
		t.Fatalf("unexpected likes: %+v", likes)
	}

	if err := st.RemoveLike(context.Background(), postID, userID); err != nil {
		t.Fatalf("remove like: %v", err)
	}
	if err := st.RemoveLike(context.Background(), postID, userID); !errors.Is(err, store.ErrNotLiked) {
		t.Fatalf("expected ErrNotLiked, got %v", err)
	}
}

func TestComments(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	userID := createTestUser(t, st, "Alice", "alice@example.com")
	postID, err := st.CreatePost(context.Background(), &model.Post{
		UserID: userID, Text: "hello", Name: "Alice", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	older, err := st.AddComment(context.Background(), &model.Comment{
		PostID: postID, UserID: userID, Text: "older", Name: "Alice", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	newer, err := st.AddComment(context.Background(), &model.Comment{
		PostID: postID, UserID: userID, Text: "newer", Name: "Alice", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	comments, err := st.ListComments(context.Background(), postID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].ID != newer {
		t.Fatalf("expected newest comment first, got %d", comments[0].ID)
	}

	got, err := st.GetComment(context.Background(), postID, older)
	if err != nil {
		t.Fatalf("get comment: %v", err)
	}
	if got.Text != "older" {
		t.Fatalf("unexpected text: %s", got.Text)
	}

	if err := st.RemoveComment(context.Background(), postID, older); err != nil {
		t.Fatalf("remove comment: %v", err)
	}
	if _, err := st.GetComment(context.Background(), postID, older); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	post, err := st.GetPost(context.Background(), postID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if len(post.Comments) != 1 || post.Comments[0].ID != newer {
		t.Fatalf("expected post to carry remaining comment, got %+v", post.Comments)
	}
}

func TestDeleteAccountCascade(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	aliceID := createTestUser(t, st, "Alice", "alice@example.com")
	bobID := createTestUser(t, st, "Bob", "bob@example.com")

	alicePost, err := st.CreatePost(context.Background(), &model.Post{
		UserID: aliceID, Text: "mine", Name: "Alice", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	bobPost, err := st.CreatePost(context.Background(), &model.Post{
		UserID: bobID, Text: "bob's", Name: "Bob", CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := st.AddLike(context.Background(), bobPost, aliceID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if _, err := st.AddComment(context.Background(), &model.Comment{
		PostID: bobPost, UserID: aliceID, Text: "nice", Name: "Alice", CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if err := st.UpsertProfile(context.Background(), &model.Profile{
		UserID: aliceID, Status: "Developer", Skills: []string{"go"}, UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("upsert profile: %v", err)
	}

	if err := st.DeleteAccount(context.Background(), aliceID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	if _, err := st.GetUser(context.Background(), aliceID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if _, err := st.GetPost(context.Background(), alicePost); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected post gone, got %v", err)
	}
	if _, err := st.GetProfile(context.Background(), aliceID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected profile gone, got %v", err)
	}

	// Bob's post survives, stripped of Alice's like and comment.
	bobGot, err := st.GetPost(context.Background(), bobPost)
	if err != nil {
		t.Fatalf("get bob post: %v", err)
	}
	if len(bobGot.Likes) != 0 || len(bobGot.Comments) != 0 {
		t.Fatalf("expected alice's activity removed, got %d likes %d comments", len(bobGot.Likes), len(bobGot.Comments))
	}

	if err := st.DeleteAccount(context.Background(), aliceID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
