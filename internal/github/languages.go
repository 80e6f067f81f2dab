package github

import (
	"encoding/json"
	"fmt"
	"io"
)

// Language is one entry of a repository's language breakdown.
type Language struct {
	Name  string
	Bytes int64
}

// decodeLanguages decodes a `{"Go": 1234, ...}` body into an ordered slice.
// A plain map would lose the response's key order, which callers rely on
// (GitHub lists languages largest-first), so we walk the token stream.
func decodeLanguages(r io.Reader) ([]Language, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("github: decoding languages: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("github: languages: expected object, got %v", tok)
	}

	langs := []Language{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("github: decoding languages: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("github: languages: non-string key %v", keyTok)
		}

		var bytes int64
		if err := dec.Decode(&bytes); err != nil {
			return nil, fmt.Errorf("github: languages: value for %q: %w", name, err)
		}
		langs = append(langs, Language{Name: name, Bytes: bytes})
	}

	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, fmt.Errorf("github: decoding languages: %w", err)
	}
	return langs, nil
}
