// Package history remembers recently played media and where playback stopped.
package history

import (
	"slices"
	"time"

	"github.com/metafates/gache"
	"github.com/mpctl/mpctl/filesystem"
	"github.com/samber/lo"
)

// resumeMargin is how close to the end a position may be and still resume.
const resumeMargin = 5.0

// Entry is one remembered media target.
type Entry struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Position float64   `json:"position"`
	Length   float64   `json:"length"`
	PlayedAt time.Time `json:"played_at"`
}

// Resumable reports whether playback stopped somewhere worth returning to.
func (e *Entry) Resumable() bool {
	if e.Position <= 0 {
		return false
	}
	return e.Length <= 0 || e.Position < e.Length-resumeMargin
}

type cacher interface {
	Get() (map[string]*Entry, bool, error)
	Set(map[string]*Entry) error
}

// Store persists entries keyed by URL. Only the limit most recent are kept.
type Store struct {
	cacher cacher
	limit  int
}

// Open returns the store backed by the file at path.
func Open(path string, limit int) *Store {
	return &Store{
		cacher: gache.New[map[string]*Entry](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		limit: limit,
	}
}

// Get returns every entry by URL.
func (s *Store) Get() (map[string]*Entry, error) {
	cached, expired, err := s.cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Recent returns the entries, most recently played first.
func (s *Store) Recent() ([]*Entry, error) {
	saved, err := s.Get()
	if err != nil {
		return nil, err
	}

	return newestFirst(saved), nil
}

// Save records e, replacing any entry for the same URL.
func (s *Store) Save(e *Entry) error {
	saved, err := s.Get()
	if err != nil {
		return err
	}

	if e.PlayedAt.IsZero() {
		e.PlayedAt = time.Now()
	}
	saved[e.URL] = e

	if s.limit > 0 && len(saved) > s.limit {
		s.trim(saved)
	}

	return s.cacher.Set(saved)
}

// trim drops the oldest entries beyond the limit.
func (s *Store) trim(saved map[string]*Entry) {
	for _, e := range newestFirst(saved)[s.limit:] {
		delete(saved, e.URL)
	}
}

// Remove forgets the entry for url.
func (s *Store) Remove(url string) error {
	saved, err := s.Get()
	if err != nil {
		return err
	}

	delete(saved, url)
	return s.cacher.Set(saved)
}

func newestFirst(saved map[string]*Entry) []*Entry {
	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		return b.PlayedAt.Compare(a.PlayedAt)
	})
	return entries
}
