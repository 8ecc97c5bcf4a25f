package httpapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/devlink-app/devlink/internal/auth"
	"github.com/devlink-app/devlink/internal/config"
	"github.com/devlink-app/devlink/internal/github"
	"github.com/devlink-app/devlink/internal/rate"
	"github.com/devlink-app/devlink/internal/store"

	_ "github.com/devlink-app/devlink/docs" // swagger docs

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

type Server struct {
	store   store.Store
	auth    *auth.Service
	limiter rate.Limiter
	github  *github.Client
	cfg     config.Config
}

func NewServer(store store.Store, authSvc *auth.Service, limiter rate.Limiter, githubClient *github.Client, cfg config.Config) *Server {
	return &Server{store: store, auth: authSvc, limiter: limiter, github: githubClient, cfg: cfg}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		s.handleAPI(w, r)
		return
	}
	if strings.HasPrefix(r.URL.Path, "/swagger/") {
		httpSwagger.WrapHandler.ServeHTTP(w, r)
		return
	}
	if r.URL.Path == "/" {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"msg": "API running"})
		return
	}
	notFound(w)
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	segments := splitPath(path)

	switch {
	case len(segments) == 1 && segments[0] == "users":
		if r.Method == http.MethodPost {
			s.handleRegister(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "auth":
		if r.Method == http.MethodPost {
			s.handleLogin(w, r)
			return
		}
		if r.Method == http.MethodGet {
			s.handleCurrentUser(w, r)
			return
		}
	case len(segments) == 1 && segments[0] == "posts":
		if r.Method == http.MethodGet {
			s.handleListPosts(w, r)
			return
		}
		if r.Method == http.MethodPost {
			s.handleCreatePost(w, r)
			return
		}
	case len(segments) == 2 && segments[0] == "posts":
		if r.Method == http.MethodGet {
			s.handleGetPost(w, r, segments[1])
			return
		}
		if r.Method == http.MethodDelete {
			s.handleDeletePost(w, r, segments[1])
			return
		}
	case len(segments) == 3 && segments[0] == "posts" && segments[1] == "like":
		if r.Method == http.MethodPut {
			s.handleLikePost(w, r, segments[2])
			return
		}
	case len(segments) == 3 && segments[0] == "posts" && segments[1] == "unlike":
		if r.Method == http.MethodPut {
			s.handleUnlikePost(w, r, segments[2])
			return
		}
	case len(segments) == 3 && segments[0] == "posts" && segments[1] == "comment":
		if r.Method == http.MethodPost {
			s.handleAddComment(w, r, segments[2])
			return
		}
	case len(segments) == 4 && segments[0] == "posts" && segments[1] == "comment":
		if r.Method == http.MethodDelete {
			s.handleDeleteComment(w, r, segments[2], segments[3])
			return
		}
	case len(segments) == 1 && segments[0] == "profile":
		if r.Method == http.MethodGet {
			s.handleListProfiles(w, r)
			return
		}
		if r.Method == http.MethodPost {
			s.handleUpsertProfile(w, r)
			return
		}
		if r.Method == http.MethodDelete {
			s.handleDeleteAccount(w, r)
			return
		}
	case len(segments) == 2 && segments[0] == "profile" && segments[1] == "me":
		if r.Method == http.MethodGet {
			s.handleOwnProfile(w, r)
			return
		}
	case len(segments) == 3 && segments[0] == "profile" && segments[1] == "user":
		if r.Method == http.MethodGet {
			s.handleProfileByUser(w, r, segments[2])
			return
		}
	case len(segments) == 2 && segments[0] == "profile" && segments[1] == "experience":
		if r.Method == http.MethodPut {
			s.handleAddExperience(w, r)
			return
		}
	case len(segments) == 3 && segments[0] == "profile" && segments[1] == "experience":
		if r.Method == http.MethodDelete {
			s.handleRemoveExperience(w, r, segments[2])
			return
		}
	case len(segments) == 2 && segments[0] == "profile" && segments[1] == "education":
		if r.Method == http.MethodPut {
			s.handleAddEducation(w, r)
			return
		}
	case len(segments) == 3 && segments[0] == "profile" && segments[1] == "education":
		if r.Method == http.MethodDelete {
			s.handleRemoveEducation(w, r, segments[2])
			return
		}
	case len(segments) == 3 && segments[0] == "profile" && segments[1] == "github":
		if r.Method == http.MethodGet {
			s.handleGithubRepos(w, r, segments[2])
			return
		}
	// Last profile case on purpose: "me", "experience" and "education" are
	// claimed by the cases above, so a bare second segment is a user id.
	case len(segments) == 2 && segments[0] == "profile":
		if r.Method == http.MethodGet {
			s.handleProfileByUser(w, r, segments[1])
			return
		}
	case len(segments) == 1 && segments[0] == "openapi.json":
		if r.Method == http.MethodGet {
			s.serveOpenAPIJSON(w, r)
			return
		}
	}

	notFound(w)
}

func (s *Server) serveOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write([]byte(doc))
}

// requireAuth is the auth gate for private routes: the bearer token travels
// in the x-auth-token header, not the Authorization scheme.
func (s *Server) requireAuth(w http.ResponseWriter, r *http.Request) (int64, bool) {
	token := strings.TrimSpace(r.Header.Get("x-auth-token"))
	if token == "" {
		writeError(w, http.StatusUnauthorized, errors.New("no auth token"))
		return 0, false
	}
	userID, err := s.auth.VerifyToken(token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, errors.New("invalid token"))
		return 0, false
	}
	return userID, true
}

func (s *Server) allowRateLimit(w http.ResponseWriter, r *http.Request, action string, limit int) bool {
	if limit <= 0 {
		return true
	}
	key := fmt.Sprintf("%s:ip:%s", action, s.clientIP(r))
	if ok, retry := s.limiter.Allow(key, limit, time.Minute); !ok {
		writeRateLimit(w, retry)
		return false
	}
	return true
}

func (s *Server) clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// fieldError mirrors the per-field validation shape clients already consume.
type fieldError struct {
	Param string `json:"param,omitempty"`
	Msg   string `json:"msg"`
}

func writeFieldErrors(w http.ResponseWriter, errs []fieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}

func readJSON(body io.ReadCloser, dest any) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	return dec.Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func writeRateLimit(w http.ResponseWriter, retry time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())))
	writeJSON(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate limit exceeded",
		"retry_after": int(retry.Seconds()),
	})
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, errors.New("not found"))
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
