// Package github is a minimal wrapper around GitHub's REST API v3.
// It is intentionally light—just the endpoints our services require.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"

	// maxBodyBytes bounds how much of a response we are willing to read.
	// Rendered readmes can be large, but 2MB is far beyond any sane one.
	maxBodyBytes = 2 * 1024 * 1024
)

// Repo mirrors the subset of GitHub's repository record the services use.
type Repo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login string `json:"login"`
	} `json:"owner"`
	Description     string `json:"description"`
	DefaultBranch   string `json:"default_branch"`
	Fork            bool   `json:"fork"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	LanguagesURL    string `json:"languages_url"`
	UpdatedAt       string `json:"updated_at"`
}

// Client wraps the handful of GitHub calls the portfolio needs.
type Client struct {
	http    *http.Client
	token   string
	baseURL string
}

// NewClient returns a ready-to-use GitHub API client.
// token may be an empty string, but you will be subject to very low rate‑limits.
func NewClient(token string) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		token:   token,
		baseURL: defaultBaseURL,
	}
}

// NewClientWithBaseURL is like NewClient but targets a different API host.
// Used by tests to point the client at a local stub server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// ListUserRepos fetches an account's public repositories, most recently
// updated first. perPage bounds the page size (GitHub caps it at 100).
func (c *Client) ListUserRepos(ctx context.Context, user string, perPage int) ([]Repo, error) {
	u := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(user))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("sort", "updated")
	if perPage > 0 {
		q.Set("per_page", fmt.Sprint(perPage))
	}
	req.URL.RawQuery = q.Encode()

	c.addHeaders(req)

	var repos []Repo
	if err := c.do(req, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ReadmeHTML fetches the rendered (HTML) readme of a repository.
func (c *Client) ReadmeHTML(ctx context.Context, owner, repo string) (string, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	c.addHeaders(req)
	// Content negotiation: ask GitHub to render the readme to HTML for us.
	req.Header.Set("Accept", "application/vnd.github.html+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("github: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Languages fetches the language → byte-count mapping for a repository,
// preserving the key order of the API response.
func (c *Client) Languages(ctx context.Context, owner, repo string) ([]Language, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	return c.LanguagesByURL(ctx, u)
}

// LanguagesByURL is like Languages but takes the languages_url carried on a
// repository record verbatim.
func (c *Client) LanguagesByURL(ctx context.Context, rawURL string) ([]Language, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	c.addHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("github: unexpected status %s", resp.Status)
	}

	return decodeLanguages(io.LimitReader(resp.Body, maxBodyBytes))
}

// addHeaders sets authentication and Accept headers.
func (c *Client) addHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", "folio-api")
}

// do executes the HTTP request and decodes JSON into v.
func (c *Client) do(req *http.Request, v interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("github: unexpected status %s", resp.Status)
	}

	return json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(v)
}
