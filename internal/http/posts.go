package httpapp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/devlink-app/devlink/internal/model"
	"github.com/devlink-app/devlink/internal/store"
)

// handleCreatePost godoc
//
//	@Summary		Create a post
//	@Description	Create a post; the author's name and avatar are snapshotted at creation time
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			x-auth-token	header		string					true	"Bearer token"
//	@Param			post			body		object{text=string}	true	"Post text"
//	@Success		200				{object}	model.Post
//	@Failure		400				{object}	map[string]any		"Validation errors"
//	@Failure		401				{object}	map[string]string	"Missing or invalid token"
//	@Router			/api/posts [post]
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if !s.allowRateLimit(w, r, "post", s.cfg.RateLimits.PostPerMinute) {
		return
	}
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeFieldErrors(w, []fieldError{{Param: "text", Msg: "text is required"}})
		return
	}

	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	post := model.Post{
		UserID:    userID,
		Text:      req.Text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Likes:     []model.Like{},
		Comments:  []model.Comment{},
		CreatedAt: time.Now(),
	}
	id, err := s.store.CreatePost(r.Context(), &post)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	post.ID = id
	writeJSON(w, http.StatusOK, post)
}

// handleListPosts godoc
//
//	@Summary		List posts
//	@Description	All posts, most recent first, each with its likes and comments
//	@Tags			Posts
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Success		200				{array}		model.Post
//	@Failure		401				{object}	map[string]string	"Missing or invalid token"
//	@Router			/api/posts [get]
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	posts, err := s.store.ListPosts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// handleGetPost godoc
//
//	@Summary		Get a post
//	@Tags			Posts
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Param			id				path		int		true	"Post ID"
//	@Success		200				{object}	model.Post
//	@Failure		404				{object}	map[string]string	"Post not found"
//	@Router			/api/posts/{id} [get]
func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request, idStr string) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}
	post, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// handleDeletePost godoc
//
//	@Summary		Delete a post
//	@Description	Only the owning user may delete a post
//	@Tags			Posts
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Param			id				path		int		true	"Post ID"
//	@Success		200				{object}	model.Post
//	@Failure		403				{object}	map[string]string	"Not the owner"
//	@Failure		404				{object}	map[string]string	"Post not found"
//	@Router			/api/posts/{id} [delete]
func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request, idStr string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}
	post, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	if post.UserID != userID {
		writeError(w, http.StatusForbidden, errors.New("not an authorized user"))
		return
	}
	if err := s.store.DeletePost(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// handleLikePost godoc
//
//	@Summary		Like a post
//	@Description	A second like by the same user is rejected, not silently absorbed
//	@Tags			Posts
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Param			id				path		int		true	"Post ID"
//	@Success		200				{array}		model.Like
//	@Failure		401				{object}	map[string]string	"Already liked"
//	@Failure		404				{object}	map[string]string	"Post not found"
//	@Router			/api/posts/like/{id} [put]
func (s *Server) handleLikePost(w http.ResponseWriter, r *http.Request, idStr string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}
	if _, err := s.store.GetPost(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	if err := s.store.AddLike(r.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrAlreadyLiked) {
			writeError(w, http.StatusUnauthorized, errors.New("Post Already Liked"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	likes, err := s.store.ListLikes(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}

// handleUnlikePost godoc
//
//	@Summary		Unlike a post
//	@Description	Rejected when the user has no like on the post
//	@Tags			Posts
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Param			id				path		int		true	"Post ID"
//	@Success		200				{array}		model.Like
//	@Failure		401				{object}	map[string]string	"Not liked yet"
//	@Failure		404				{object}	map[string]string	"Post not found"
//	@Router			/api/posts/unlike/{id} [put]
func (s *Server) handleUnlikePost(w http.ResponseWriter, r *http.Request, idStr string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}
	if _, err := s.store.GetPost(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	if err := s.store.RemoveLike(r.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotLiked) {
			writeError(w, http.StatusUnauthorized, errors.New("Post has not been liked yet"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	likes, err := s.store.ListLikes(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}

// handleAddComment godoc
//
//	@Summary		Comment on a post
//	@Description	Prepends a comment carrying a snapshot of the commenter's name and avatar
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			x-auth-token	header		string					true	"Bearer token"
//	@Param			id				path		int						true	"Post ID"
//	@Param			comment			body		object{text=string}	true	"Comment text"
//	@Success		200				{object}	model.Post
//	@Failure		400				{object}	map[string]any		"Validation errors"
//	@Failure		404				{object}	map[string]string	"Post not found"
//	@Router			/api/posts/comment/{id} [post]
func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request, idStr string) {
	if !s.allowRateLimit(w, r, "comment", s.cfg.RateLimits.CommentPerMinute) {
		return
	}
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeFieldErrors(w, []fieldError{{Param: "text", Msg: "text is required"}})
		return
	}

	if _, err := s.store.GetPost(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	comment := model.Comment{
		PostID:    id,
		UserID:    userID,
		Text:      req.Text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now(),
	}
	if _, err := s.store.AddComment(r.Context(), &comment); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	post, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// handleDeleteComment godoc
//
//	@Summary		Delete a comment
//	@Description	Only the comment's author may delete it; removal is keyed by comment id
//	@Tags			Posts
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Param			id				path		int		true	"Post ID"
//	@Param			commentid		path		int		true	"Comment ID"
//	@Success		200				{array}		model.Comment
//	@Failure		403				{object}	map[string]string	"Not the author"
//	@Failure		404				{object}	map[string]string	"Post or comment not found"
//	@Router			/api/posts/comment/{id}/{commentid} [delete]
func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request, idStr, commentIDStr string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid post id"))
		return
	}
	commentID, err := strconv.ParseInt(commentIDStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid comment id"))
		return
	}
	if _, err := s.store.GetPost(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	comment, err := s.store.GetComment(r.Context(), id, commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("comment does not exist"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if comment.UserID != userID {
		writeError(w, http.StatusForbidden, errors.New("user is not authorized"))
		return
	}
	if err := s.store.RemoveComment(r.Context(), id, commentID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	comments, err := s.store.ListComments(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}
