package models

// Project is one portfolio card: a GitHub repository plus the illustrative
// image URLs harvested from its readme. Built fresh per request and never
// cached across requests.
type Project struct {
	ID            int64    `json:"id"`
	Owner         string   `json:"owner"` // GitHub username
	Name          string   `json:"name"`  // Repository name
	FullName      string   `json:"full_name"`
	Description   string   `json:"description"`
	DefaultBranch string   `json:"default_branch"`
	Stars         int      `json:"stars"`
	Forks         int      `json:"forks"`
	LanguagesURL  string   `json:"languages_url"`
	UpdatedAt     string   `json:"updated_at"`
	ImageURLs     []string `json:"image_urls"` // always non-nil, possibly empty
}

// ReadmeDocument is a repository readme in rendered form. Raw is the markup
// as received; HTML is the published variant with every image reference
// rewritten to an absolute URL and the markup sanitized. Only HTML is
// serialized.
type ReadmeDocument struct {
	Raw  string `json:"-"`
	HTML string `json:"html"`
}
