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

// handleOwnProfile godoc
//
//	@Summary		Current user's profile
//	@Tags			Profile
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Success		200				{object}	model.Profile
//	@Failure		404				{object}	map[string]string	"No profile yet"
//	@Router			/api/profile/me [get]
func (s *Server) handleOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("There is no profile available for this user"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleUpsertProfile godoc
//
//	@Summary		Create or update the current user's profile
//	@Description	Fields present in the request overwrite stored values; omitted fields keep theirs
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			x-auth-token	header		string			true	"Bearer token"
//	@Param			profile			body		object			true	"Profile fields; status and skills are required"
//	@Success		200				{object}	model.Profile
//	@Failure		400				{object}	map[string]any	"Validation errors"
//	@Router			/api/profile [post]
func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	var req struct {
		Company        *string `json:"company"`
		Website        *string `json:"website"`
		Location       *string `json:"location"`
		Status         *string `json:"status"`
		Skills         *string `json:"skills"`
		Bio            *string `json:"bio"`
		GithubUsername *string `json:"githubusername"`
		Youtube        *string `json:"youtube"`
		Twitter        *string `json:"twitter"`
		Facebook       *string `json:"facebook"`
		Linkedin       *string `json:"linkedin"`
		Instagram      *string `json:"instagram"`
	}
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var fieldErrs []fieldError
	if req.Status == nil || strings.TrimSpace(*req.Status) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "status", Msg: "status is required"})
	}
	if req.Skills == nil || strings.TrimSpace(*req.Skills) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "skills", Msg: "skills is required"})
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		profile = model.Profile{UserID: userID}
	}

	profile.Status = *req.Status
	profile.Skills = splitSkills(*req.Skills)
	if req.Company != nil {
		profile.Company = *req.Company
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.GithubUsername != nil {
		profile.GithubUsername = *req.GithubUsername
	}
	if req.Youtube != nil {
		profile.Social.Youtube = *req.Youtube
	}
	if req.Twitter != nil {
		profile.Social.Twitter = *req.Twitter
	}
	if req.Facebook != nil {
		profile.Social.Facebook = *req.Facebook
	}
	if req.Linkedin != nil {
		profile.Social.Linkedin = *req.Linkedin
	}
	if req.Instagram != nil {
		profile.Social.Instagram = *req.Instagram
	}
	profile.UpdatedAt = time.Now()

	if err := s.store.UpsertProfile(r.Context(), &profile); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	saved, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// splitSkills turns a comma separated list into trimmed entries, dropping
// blanks.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// handleListProfiles godoc
//
//	@Summary	List all profiles
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{array}	model.Profile
//	@Router		/api/profile [get]
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.store.ListProfiles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// handleProfileByUser godoc
//
//	@Summary		Profile of a given user
//	@Description	Also reachable at /api/profile/user/{userid}
//	@Tags			Profile
//	@Produce		json
//	@Param			userid	path		int	true	"User ID"
//	@Success		200		{object}	model.Profile
//	@Failure		404		{object}	map[string]string	"Profile not found"
//	@Router			/api/profile/{userid} [get]
func (s *Server) handleProfileByUser(w http.ResponseWriter, r *http.Request, userIDStr string) {
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, errors.New("Profile not found"))
		return
	}
	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("Profile not found"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleDeleteAccount godoc
//
//	@Summary		Delete the current user and everything they own
//	@Description	Removes the user's profile, posts, comments and likes in one step
//	@Tags			Profile
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Success		200				{object}	map[string]string
//	@Router			/api/profile [delete]
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteAccount(r.Context(), userID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "user deleted"})
}

// handleAddExperience godoc
//
//	@Summary	Add an experience entry to the current user's profile
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Param		x-auth-token	header		string				true	"Bearer token"
//	@Param		experience		body		model.Experience	true	"Experience entry"
//	@Success	200				{object}	model.Profile
//	@Failure	400				{object}	map[string]any		"Validation errors"
//	@Failure	404				{object}	map[string]string	"No profile yet"
//	@Router		/api/profile/experience [put]
func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	var exp model.Experience
	if err := readJSON(r.Body, &exp); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var fieldErrs []fieldError
	if strings.TrimSpace(exp.Title) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "title", Msg: "title is required"})
	}
	if strings.TrimSpace(exp.Company) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "company", Msg: "company is required"})
	}
	if strings.TrimSpace(exp.From) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "from", Msg: "from date is required"})
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	if _, err := s.store.GetProfile(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("There is no profile available for this user"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	exp.ID = ""
	if err := s.store.AddExperience(r.Context(), userID, &exp); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeProfile(w, r, userID)
}

// handleRemoveExperience godoc
//
//	@Summary		Remove an experience entry
//	@Description	Removing an id that is already gone is not an error
//	@Tags			Profile
//	@Produce		json
//	@Param			x-auth-token	header		string	true	"Bearer token"
//	@Param			expid			path		string	true	"Experience entry ID"
//	@Success		200				{object}	model.Profile
//	@Router			/api/profile/experience/{expid} [delete]
func (s *Server) handleRemoveExperience(w http.ResponseWriter, r *http.Request, expID string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if err := s.store.RemoveExperience(r.Context(), userID, expID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeProfile(w, r, userID)
}

// handleAddEducation godoc
//
//	@Summary	Add an education entry to the current user's profile
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Param		x-auth-token	header		string				true	"Bearer token"
//	@Param		education		body		model.Education		true	"Education entry"
//	@Success	200				{object}	model.Profile
//	@Failure	400				{object}	map[string]any		"Validation errors"
//	@Failure	404				{object}	map[string]string	"No profile yet"
//	@Router		/api/profile/education [put]
func (s *Server) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	var edu model.Education
	if err := readJSON(r.Body, &edu); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var fieldErrs []fieldError
	if strings.TrimSpace(edu.School) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "school", Msg: "school is required"})
	}
	if strings.TrimSpace(edu.Degree) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "degree", Msg: "degree is required"})
	}
	if strings.TrimSpace(edu.FieldOfStudy) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "fieldofstudy", Msg: "field of study is required"})
	}
	if strings.TrimSpace(edu.From) == "" {
		fieldErrs = append(fieldErrs, fieldError{Param: "from", Msg: "from date is required"})
	}
	if len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	if _, err := s.store.GetProfile(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, errors.New("There is no profile available for this user"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	edu.ID = ""
	if err := s.store.AddEducation(r.Context(), userID, &edu); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeProfile(w, r, userID)
}

// handleRemoveEducation godoc
//
//	@Summary	Remove an education entry
//	@Tags		Profile
//	@Produce	json
//	@Param		x-auth-token	header		string	true	"Bearer token"
//	@Param		eduid			path		string	true	"Education entry ID"
//	@Success	200				{object}	model.Profile
//	@Router		/api/profile/education/{eduid} [delete]
func (s *Server) handleRemoveEducation(w http.ResponseWriter, r *http.Request, eduID string) {
	userID, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if err := s.store.RemoveEducation(r.Context(), userID, eduID); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeProfile(w, r, userID)
}

func (s *Server) writeProfile(w http.ResponseWriter, r *http.Request, userID int64) {
	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// handleGithubRepos godoc
//
//	@Summary		Latest public repositories of a GitHub user
//	@Description	Proxies the GitHub API; any non-success upstream answer maps to a single not-found reply
//	@Tags			Profile
//	@Produce		json
//	@Param			username	path		string	true	"GitHub username"
//	@Success		200			{array}		any
//	@Failure		404			{object}	map[string]string	"No Github profile found"
//	@Router			/api/profile/github/{username} [get]
func (s *Server) handleGithubRepos(w http.ResponseWriter, r *http.Request, username string) {
	status, body, err := s.github.ListRepos(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if status != http.StatusOK {
		writeError(w, http.StatusNotFound, errors.New("No Github profile found"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
