// Package sheet is the append-only applicant sink: one CSV row per
// submitted profile, with the fixed Persian column headers the hiring team's
// spreadsheet template expects.
package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

var headers = []string{
	"نام",
	"نام خانوادگی",
	"سن",
	"جنسیت",
	"تعداد سال سابقه کار",
	"شهر محل سکونت",
	"وضعیت سربازی",
	"مهارت های کلیدی",
	"علایق",
	"ثبت در",
}

const timestampLayout = "2006-01-02 15:04:05"

// Store appends applicant rows to a CSV file. The file is created with the
// header row on first use; nothing is ever read back.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Append writes one row for the profile. List fields are joined with "، ".
func (s *Store) Append(p profile.ApplicantProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeHeader, err := s.ensureFile()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(headers); err != nil {
			return fmt.Errorf("write sheet header: %w", err)
		}
	}

	row := []string{
		p.FirstName,
		p.LastName,
		p.Age.String(),
		string(p.Gender),
		p.ExperienceYears.String(),
		p.City,
		string(p.MilitaryStatus),
		strings.Join(p.Skills, "، "),
		strings.Join(p.Interests, "، "),
		s.now().Format(timestampLayout),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write sheet row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	return nil
}

// ensureFile reports whether the header still has to be written.
func (s *Store) ensureFile() (bool, error) {
	info, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		if dir := filepath.Dir(s.path); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return false, fmt.Errorf("create sheet dir: %w", mkErr)
			}
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat sheet: %w", err)
	}
	return info.Size() == 0, nil
}
