package httpapp

import (
	"crypto/md5"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/devlink-app/devlink/internal/auth"
	"github.com/devlink-app/devlink/internal/model"
	"github.com/devlink-app/devlink/internal/store"
)

// handleRegister godoc
//
//	@Summary		Register a user
//	@Description	Create a user account and receive a signed bearer token
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		object{name=string,email=string,password=string}	true	"Registration data"
//	@Success		200		{object}	map[string]string	"Bearer token"
//	@Failure		400		{object}	map[string]any		"Validation errors or existing email"
//	@Router			/api/users [post]
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !s.allowRateLimit(w, r, "register", s.cfg.RateLimits.RegisterPerMinute) {
		return
	}
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var errs []fieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, fieldError{Param: "name", Msg: "please provide a name"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, fieldError{Param: "email", Msg: "please include a valid email"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, fieldError{Param: "password", Msg: "please enter a password of length 6 or greater"})
	}
	if len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	user := model.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Avatar:    gravatarURL(req.Email),
		Password:  hash,
		CreatedAt: time.Now(),
	}
	id, err := s.store.CreateUser(r.Context(), &user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeFieldErrors(w, []fieldError{{Param: "email", Msg: "User Already Exists"}})
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	token, err := s.auth.IssueToken(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// handleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchange email and password for a signed bearer token
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		object{email=string,password=string}	true	"Login data"
//	@Success		200			{object}	map[string]string	"Bearer token"
//	@Failure		400			{object}	map[string]string	"Invalid credentials"
//	@Router			/api/auth [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, errors.New("invalid credentials"))
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, errors.New("invalid credentials"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !auth.VerifyPassword(req.Password, user.Password) {
		writeError(w, http.StatusBadRequest, errors.New("invalid credentials"))
		return
	}

	token, err := s.auth.IssueToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// handleCurrentUser godoc
//
//	@Summary		Current user
//	@Description	Return the user record for the presented token, password hash omitted
//	@Tags			Users
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Success		200				{object}	model.User
//	@Failure		401				{object}	map[string]string	"Missing or invalid token"
//	@Router			/api/auth [get]
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	user, err := s.store.GetUser(r.Context(), userID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// gravatarURL derives the avatar from the email the way the classic
// gravatar scheme does: md5 of the trimmed, lowercased address.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
