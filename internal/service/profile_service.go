package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yousseframy/folio/server/internal/models"
)

// ProfileService serves the site owner's biographical content. The content
// file is read once at startup; a missing or invalid file is a wiring error.
type ProfileService interface {
	Profile() models.Profile
}

type profileService struct {
	profile models.Profile
}

// NewProfileService loads the YAML content file at path.
func NewProfileService(path string) (ProfileService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	var p models.Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("profile %s: name is required", path)
	}

	return &profileService{profile: p}, nil
}

// Profile returns the loaded content verbatim.
func (s *profileService) Profile() models.Profile {
	return s.profile
}
