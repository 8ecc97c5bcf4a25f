// Command seed populates a running devlink server with demo users, profiles
// and posts through the public API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
)

var users = []struct {
	name     string
	email    string
	status   string
	skills   string
	bio      string
	company  string
	location string
}{
	{"Alice Chen", "alice@example.com", "Senior Developer", "go, sql, docker", "Backend engineer who likes small binaries", "Initech", "Portland, OR"},
	{"Bob Okafor", "bob@example.com", "Full Stack Developer", "js, node, css", "Shipping web apps since 2015", "Globex", "Austin, TX"},
	{"Carmen Diaz", "carmen@example.com", "Student or Learning", "python, html", "Career changer, learning in public", "", "Madrid"},
	{"Dev Patel", "dev@example.com", "Developer", "rust, go, linux", "Systems person. Opinions about allocators.", "Hooli", "London"},
	{"Erin Walsh", "erin@example.com", "Manager", "sql, excel, people", "Engineering manager, recovering DBA", "Initech", "Dublin"},
}

var posts = []string{
	"Just deployed my first Go service to production. The binary is 12MB and I love it.",
	"Hot take: code review comments should always suggest an alternative, not just point at a problem.",
	"Anyone have a good resource for learning database indexing? The docs are dense.",
	"Finished a week of pairing with a junior dev. I learned as much as they did.",
	"Reminder to future me: the bug is always in the code you were sure was fine.",
	"What's everyone's take on monorepos for small teams?",
	"Wrote my first SQL migration today. Nothing exploded. Small victories.",
	"Shipping on Friday afternoon. Wish me luck.",
}

var comments = []string{
	"Congrats, that's a great milestone!",
	"Strongly agree with this.",
	"Use The Index, Luke is the classic resource for that.",
	"Pairing is underrated. Glad it went well.",
	"This is painfully accurate.",
	"We switched to a monorepo last year and haven't looked back.",
	"Bold move. Keep a rollback handy.",
}

type seedClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func (c *seedClient) do(method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("x-auth-token", c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, raw)
	}
	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "devlink server URL")
	flag.Parse()

	log.Printf("Seeding %s...", *baseURL)

	var clients []*seedClient
	for _, u := range users {
		c := &seedClient{baseURL: *baseURL, http: http.DefaultClient}

		var tokenResp struct {
			Token string `json:"token"`
		}
		err := c.do("POST", "/api/users", map[string]string{
			"name": u.name, "email": u.email, "password": "password6",
		}, &tokenResp)
		if err != nil {
			// Probably already seeded; log in instead.
			err = c.do("POST", "/api/auth", map[string]string{
				"email": u.email, "password": "password6",
			}, &tokenResp)
			if err != nil {
				log.Fatalf("register %s: %v", u.email, err)
			}
		}
		c.token = tokenResp.Token
		log.Printf("✓ Registered %s", u.name)

		profile := map[string]string{
			"status": u.status,
			"skills": u.skills,
			"bio":    u.bio,
		}
		if u.company != "" {
			profile["company"] = u.company
		}
		if u.location != "" {
			profile["location"] = u.location
		}
		if err := c.do("POST", "/api/profile", profile, nil); err != nil {
			log.Fatalf("profile for %s: %v", u.email, err)
		}
		clients = append(clients, c)
	}

	var postIDs []int64
	for _, text := range posts {
		c := clients[rand.Intn(len(clients))]
		var created struct {
			ID int64 `json:"id"`
		}
		if err := c.do("POST", "/api/posts", map[string]string{"text": text}, &created); err != nil {
			log.Printf("✗ post failed: %v", err)
			continue
		}
		postIDs = append(postIDs, created.ID)
		log.Printf("✓ Posted #%d", created.ID)
	}

	for _, id := range postIDs {
		for _, c := range clients {
			if rand.Intn(2) == 0 {
				continue
			}
			if err := c.do("PUT", fmt.Sprintf("/api/posts/like/%d", id), nil, nil); err != nil {
				log.Printf("✗ like failed: %v", err)
			}
		}
		if rand.Intn(3) > 0 {
			c := clients[rand.Intn(len(clients))]
			text := comments[rand.Intn(len(comments))]
			if err := c.do("POST", fmt.Sprintf("/api/posts/comment/%d", id), map[string]string{"text": text}, nil); err != nil {
				log.Printf("✗ comment failed: %v", err)
			}
		}
	}

	log.Printf("Done: %d users, %d posts", len(clients), len(postIDs))
}
