package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devlink-app/devlink/internal/model"
	"github.com/devlink-app/devlink/internal/store"
)

func TestProfileUpsert(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	userID := createTestUser(t, st, "Alice", "alice@example.com")

	if _, err := st.GetProfile(context.Background(), userID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before create, got %v", err)
	}

	profile := model.Profile{
		UserID:    userID,
		Status:    "Developer",
		Skills:    []string{"js", "node", "css"},
		Company:   "Initech",
		Social:    model.Social{Twitter: "https://twitter.com/alice"},
		UpdatedAt: time.Now(),
	}
	if err := st.UpsertProfile(context.Background(), &profile); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := st.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Status != "Developer" || got.Company != "Initech" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if len(got.Skills) != 3 || got.Skills[0] != "js" || got.Skills[2] != "css" {
		t.Fatalf("unexpected skills: %v", got.Skills)
	}
	if got.Social.Twitter != "https://twitter.com/alice" {
		t.Fatalf("unexpected social: %+v", got.Social)
	}
	// Name and avatar come from the user record.
	if got.Name != "Alice" {
		t.Fatalf("expected resolved name, got %q", got.Name)
	}

	profile.Status = "Manager"
	profile.Skills = []string{"people"}
	if err := st.UpsertProfile(context.Background(), &profile); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	updated, err := st.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("get updated: %v", err)
	}
	if updated.Status != "Manager" || len(updated.Skills) != 1 {
		t.Fatalf("update not applied: %+v", updated)
	}

	profiles, err := st.ListProfiles(context.Background())
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
}

func TestExperienceEntries(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	userID := createTestUser(t, st, "Alice", "alice@example.com")
	if err := st.UpsertProfile(context.Background(), &model.Profile{
		UserID: userID, Status: "Developer", Skills: []string{"go"}, UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	older := model.Experience{Title: "Junior Dev", Company: "Globex", From: "2018-01-01"}
	if err := st.AddExperience(context.Background(), userID, &older); err != nil {
		t.Fatalf("add experience: %v", err)
	}
	if older.ID == "" {
		t.Fatalf("expected generated experience id")
	}
	newer := model.Experience{Title: "Senior Dev", Company: "Initech", From: "2021-06-01", Current: true}
	if err := st.AddExperience(context.Background(), userID, &newer); err != nil {
		t.Fatalf("add experience: %v", err)
	}

	profile, err := st.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if len(profile.Experience) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(profile.Experience))
	}
	if profile.Experience[0].ID != newer.ID {
		t.Fatalf("expected newest entry first, got %+v", profile.Experience[0])
	}
	if !profile.Experience[0].Current {
		t.Fatalf("expected current flag to survive")
	}

	if err := st.RemoveExperience(context.Background(), userID, older.ID); err != nil {
		t.Fatalf("remove experience: %v", err)
	}
	// Removing an unknown id is a no-op.
	if err := st.RemoveExperience(context.Background(), userID, "no-such-id"); err != nil {
		t.Fatalf("remove unknown id: %v", err)
	}

	profile, err = st.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if len(profile.Experience) != 1 || profile.Experience[0].ID != newer.ID {
		t.Fatalf("unexpected entries after remove: %+v", profile.Experience)
	}
}

func TestEducationEntries(t *testing.T) {
	st := newTestStore(t)
	defer st.Close()

	userID := createTestUser(t, st, "Alice", "alice@example.com")
	if err := st.UpsertProfile(context.Background(), &model.Profile{
		UserID: userID, Status: "Student or Learning", Skills: []string{"python"}, UpdatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	edu := model.Education{School: "State U", Degree: "BSc", FieldOfStudy: "CS", From: "2014-09-01", To: "2018-06-01"}
	if err := st.AddEducation(context.Background(), userID, &edu); err != nil {
		t.Fatalf("add education: %v", err)
	}
	if edu.ID == "" {
		t.Fatalf("expected generated education id")
	}

	profile, err := st.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if len(profile.Education) != 1 || profile.Education[0].FieldOfStudy != "CS" {
		t.Fatalf("unexpected education: %+v", profile.Education)
	}

	if err := st.RemoveEducation(context.Background(), userID, edu.ID); err != nil {
		t.Fatalf("remove education: %v", err)
	}
	profile, err = st.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if len(profile.Education) != 0 {
		t.Fatalf("expected no entries, got %+v", profile.Education)
	}
}
