package models

// Profile is the site owner's biographical content, loaded once at startup
// from a YAML content file and served verbatim.
type Profile struct {
	Name       string       `yaml:"name" json:"name"`
	Headline   string       `yaml:"headline" json:"headline"`
	About      string       `yaml:"about" json:"about"`
	Social     []SocialLink `yaml:"social" json:"social"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Education  []Education  `yaml:"education" json:"education"`
}

// SocialLink is one external profile link (GitHub, LinkedIn, …).
type SocialLink struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Experience is one work-history entry.
type Experience struct {
	Company string `yaml:"company" json:"company"`
	Role    string `yaml:"role" json:"role"`
	Start   string `yaml:"start" json:"start"`
	End     string `yaml:"end" json:"end"` // empty means present
	Summary string `yaml:"summary" json:"summary"`
}

// Education is one education entry.
type Education struct {
	School string `yaml:"school" json:"school"`
	Degree string `yaml:"degree" json:"degree"`
	Start  string `yaml:"start" json:"start"`
	End    string `yaml:"end" json:"end"`
}
