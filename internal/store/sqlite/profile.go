package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/devlink-app/devlink/internal/model"
	"github.com/devlink-app/devlink/internal/store"

	"github.com/google/uuid"
)

func (s *Store) GetProfile(ctx context.Context, userID int64) (model.Profile, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT p.user_id, p.company, p.website, p.location, p.status, p.skills, p.bio, p.github_username, p.social, p.updated_at, u.name, u.avatar
FROM profiles p
LEFT JOIN users u ON u.id = p.user_id
WHERE p.user_id = ?
`, userID)
	profile, err := scanProfile(row)
	if err != nil {
		return model.Profile{}, err
	}
	if err := s.loadProfileRelations(ctx, &profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT p.user_id, p.company, p.website, p.location, p.status, p.skills, p.bio, p.github_username, p.social, p.updated_at, u.name, u.avatar
FROM profiles p
LEFT JOIN users u ON u.id = p.user_id
ORDER BY p.updated_at DESC, p.user_id DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []model.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range profiles {
		if err := s.loadProfileRelations(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

// UpsertProfile writes the whole scalar document. Merging provided fields
// into the prior state is the caller's job; the last write wins here.
func (s *Store) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return err
	}
	social, err := json.Marshal(profile.Social)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO profiles (user_id, company, website, location, status, skills, bio, github_username, social, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
	company = excluded.company,
	website = excluded.website,
	location = excluded.location,
	status = excluded.status,
	skills = excluded.skills,
	bio = excluded.bio,
	github_username = excluded.github_username,
	social = excluded.social,
	updated_at = excluded.updated_at
`, profile.UserID, nullIfEmpty(profile.Company), nullIfEmpty(profile.Website), nullIfEmpty(profile.Location),
		profile.Status, string(skills), nullIfEmpty(profile.Bio), nullIfEmpty(profile.GithubUsername),
		string(social), profile.UpdatedAt.Unix())
	return err
}

func (s *Store) AddExperience(ctx context.Context, userID int64, exp *model.Experience) error {
	if exp.ID == "" {
		exp.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO experience (entry_id, user_id, title, company, location, from_date, to_date, current, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, exp.ID, userID, exp.Title, exp.Company, nullIfEmpty(exp.Location), exp.From, nullIfEmpty(exp.To),
		boolToInt(exp.Current), nullIfEmpty(exp.Description))
	return err
}

// RemoveExperience is a no-op when the id does not belong to the user; the
// removal endpoint is idempotent.
func (s *Store) RemoveExperience(ctx context.Context, userID int64, expID string) error {
	_, err := s.db.ExecContext(ctx, `
DELETE FROM experience WHERE entry_id = ? AND user_id = ?
`, expID, userID)
	return err
}

func (s *Store) AddEducation(ctx context.Context, userID int64, edu *model.Education) error {
	if edu.ID == "" {
		edu.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO education (entry_id, user_id, school, degree, fieldofstudy, from_date, to_date, current, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, edu.ID, userID, edu.School, edu.Degree, edu.FieldOfStudy, edu.From, nullIfEmpty(edu.To),
		boolToInt(edu.Current), nullIfEmpty(edu.Description))
	return err
}

func (s *Store) RemoveEducation(ctx context.Context, userID int64, eduID string) error {
	_, err := s.db.ExecContext(ctx, `
DELETE FROM education WHERE entry_id = ? AND user_id = ?
`, eduID, userID)
	return err
}

func (s *Store) loadProfileRelations(ctx context.Context, profile *model.Profile) error {
	exp, err := s.listExperience(ctx, profile.UserID)
	if err != nil {
		return err
	}
	edu, err := s.listEducation(ctx, profile.UserID)
	if err != nil {
		return err
	}
	profile.Experience = exp
	profile.Education = edu
	return nil
}

func (s *Store) listExperience(ctx context.Context, userID int64) ([]model.Experience, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT entry_id, title, company, location, from_date, to_date, current, description
FROM experience
WHERE user_id = ?
ORDER BY seq DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		var location, to, description sql.NullString
		var current int
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &location, &e.From, &to, &current, &description); err != nil {
			return nil, err
		}
		e.Location = location.String
		e.To = to.String
		e.Description = description.String
		e.Current = current == 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) listEducation(ctx context.Context, userID int64) ([]model.Education, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT entry_id, school, degree, fieldofstudy, from_date, to_date, current, description
FROM education
WHERE user_id = ?
ORDER BY seq DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.Education{}
	for rows.Next() {
		var e model.Education
		var to, description sql.NullString
		var current int
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From, &to, &current, &description); err != nil {
			return nil, err
		}
		e.To = to.String
		e.Description = description.String
		e.Current = current == 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanProfile(scanner interface{ Scan(dest ...any) error }) (model.Profile, error) {
	var p model.Profile
	var company, website, location, bio, github sql.NullString
	var skillsRaw, socialRaw sql.NullString
	var name, avatar sql.NullString
	var updated int64
	if err := scanner.Scan(&p.UserID, &company, &website, &location, &p.Status, &skillsRaw, &bio, &github, &socialRaw, &updated, &name, &avatar); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, store.ErrNotFound
		}
		return model.Profile{}, err
	}
	p.Company = company.String
	p.Website = website.String
	p.Location = location.String
	p.Bio = bio.String
	p.GithubUsername = github.String
	p.Name = name.String
	p.Avatar = avatar.String
	p.Skills = []string{}
	if skillsRaw.Valid && skillsRaw.String != "" {
		_ = json.Unmarshal([]byte(skillsRaw.String), &p.Skills)
	}
	if socialRaw.Valid && socialRaw.String != "" {
		_ = json.Unmarshal([]byte(socialRaw.String), &p.Social)
	}
	p.UpdatedAt = time.Unix(updated, 0)
	p.Experience = []model.Experience{}
	p.Education = []model.Education{}
	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
