// Package lexicon holds the read-only lookup tables the extractors share:
// the first-name→gender map, the skill synonym table and the interest
// category table. A Store is built once at startup and never mutated.
package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

// SkillEntry maps a canonical display label to its accepted synonyms.
// Synonyms are stored lowercase and matched with token boundaries.
type SkillEntry struct {
	Label    string
	Synonyms []string
}

// InterestCategory maps a broad category label to the keywords that pull an
// interest into it. Keywords match by containment, not token boundaries.
type InterestCategory struct {
	Label    string
	Keywords []string
}

// Store is the immutable lexicon passed into every component at
// construction time.
type Store struct {
	male   map[string]struct{}
	female map[string]struct{}

	skills     []SkillEntry
	categories []InterestCategory
}

// NewStore builds a store from the built-in tables only.
func NewStore() *Store {
	s := &Store{
		male:       make(map[string]struct{}, len(builtinMaleNames)),
		female:     make(map[string]struct{}, len(builtinFemaleNames)),
		skills:     builtinSkillSynonyms(),
		categories: builtinInterestCategories(),
	}
	for _, n := range builtinMaleNames {
		s.male[n] = struct{}{}
	}
	for _, n := range builtinFemaleNames {
		s.female[n] = struct{}{}
	}
	return s
}

// NewStoreFromFile builds a store from the built-ins merged with an external
// name/gender CSV (rows of "name,gender"). Malformed rows are skipped. A
// missing or unreadable file is reported but the built-in store is still
// returned, so callers can treat the error as a warning.
func NewStoreFromFile(path string) (*Store, error) {
	s := NewStore()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return s, fmt.Errorf("open name lexicon: %w", err)
	}
	defer f.Close()

	if err := s.mergeNames(f); err != nil {
		return s, fmt.Errorf("read name lexicon %q: %w", path, err)
	}
	return s, nil
}

func (s *Store) mergeNames(r io.Reader) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		gender := strings.TrimSpace(row[1])
		if name == "" || gender == "" {
			continue
		}
		switch {
		case strings.Contains(gender, string(profile.GenderMale)):
			s.male[name] = struct{}{}
		case strings.Contains(gender, string(profile.GenderFemale)):
			s.female[name] = struct{}{}
		}
	}
}

// GenderForName infers a gender from a first name, trying the exact form
// first and a case-insensitive form second (Latin spellings). Unknown names
// yield the unset gender.
func (s *Store) GenderForName(first string) profile.Gender {
	first = strings.TrimSpace(first)
	if first == "" {
		return profile.GenderUnset
	}
	if _, ok := s.male[first]; ok {
		return profile.GenderMale
	}
	if _, ok := s.female[first]; ok {
		return profile.GenderFemale
	}

	lower := strings.ToLower(first)
	for n := range s.male {
		if strings.ToLower(n) == lower {
			return profile.GenderMale
		}
	}
	for n := range s.female {
		if strings.ToLower(n) == lower {
			return profile.GenderFemale
		}
	}
	return profile.GenderUnset
}

// Skills returns the skill synonym table in its fixed order.
func (s *Store) Skills() []SkillEntry {
	return s.skills
}

// InterestCategories returns the interest category table in its fixed order.
func (s *Store) InterestCategories() []InterestCategory {
	return s.categories
}
