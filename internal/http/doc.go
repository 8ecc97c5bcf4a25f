// Package httpapp provides the HTTP server for devlink.
//
//	@title						devlink API
//	@version					1.0
//	@description				A developer social network: accounts, profiles, posts and discussion.
//	@description
//	@description				## Authentication Flow
//	@description
//	@description				Write operations require a token passed in the `x-auth-token` header.
//	@description
//	@description				### Step 1: Register
//	@description				```bash
//	@description				curl -X POST /api/users -d '{"name":"Alice","email":"alice@example.com","password":"secret1"}'
//	@description				# Returns: {"token": "..."}
//	@description				```
//	@description
//	@description				### Step 2: Or log in later
//	@description				```bash
//	@description				curl -X POST /api/auth -d '{"email":"alice@example.com","password":"secret1"}'
//	@description				# Returns: {"token": "..."}
//	@description				```
//	@description
//	@description				### Step 3: Use the token
//	@description				```bash
//	@description				curl -X POST /api/posts -H "x-auth-token: TOKEN" -d '{"text":"hello"}'
//	@description				```
//
//	@contact.name				devlink
//	@license.name				MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						x-auth-token
//	@description				Token from /api/users or /api/auth
//
//	@tag.name					Users
//	@tag.description			Registration and login. Accounts are keyed by email; avatars come from Gravatar.
//
//	@tag.name					Posts
//	@tag.description			Short text posts with likes and flat comment threads. One like per user per post.
//
//	@tag.name					Profile
//	@tag.description			One developer profile per user with experience and education history, plus a GitHub repository proxy.
package httpapp
