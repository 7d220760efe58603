// Package version reports application and player binary versions.
//
// Probing a player binary means running it with -version, which is slow
// enough to be worth caching. Results are kept in memory and, when a cache
// path is configured, in a file that expires after a fixed lifetime.
package version

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/mpctl/mpctl/filesystem"
	"github.com/mpctl/mpctl/log"
	"github.com/mpctl/mpctl/util"
)

// ErrNoVersion is returned when the binary printed nothing usable.
var ErrNoVersion = errors.New("no version in output")

const defaultTimeout = 5 * time.Second

var versionPattern = regexp.MustCompile(`MPlayer (?P<version>[^ ]+)`)

// Options configures a Prober.
type Options struct {
	// CachePath is the file probed versions persist to. Empty keeps them in memory only.
	CachePath string
	// Lifetime bounds how long persisted versions are trusted.
	Lifetime time.Duration
	// Timeout bounds a single probe run.
	Timeout time.Duration
}

type store interface {
	Get() (map[string]string, bool, error)
	Set(map[string]string) error
}

// Prober queries and caches versions of player binaries, keyed by path.
type Prober struct {
	mu      sync.Mutex
	known   map[string]string
	store   store
	timeout time.Duration
}

// NewProber returns a Prober configured by opts.
func NewProber(opts Options) *Prober {
	p := &Prober{
		known:   make(map[string]string),
		timeout: opts.Timeout,
	}

	if p.timeout <= 0 {
		p.timeout = defaultTimeout
	}

	if opts.CachePath != "" {
		p.store = gache.New[map[string]string](&gache.Options{
			Path:       opts.CachePath,
			Lifetime:   opts.Lifetime,
			FileSystem: &filesystem.GacheFs{},
		})
	}

	return p
}

// Query returns the version of binary, probing it when no cached value exists.
func (p *Prober) Query(ctx context.Context, binary string) (string, error) {
	if v, ok := p.cached(binary); ok {
		return v, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, binary, "-version").Output()
	if err != nil {
		// MPlayer exits non-zero after printing its banner.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || len(out) == 0 {
			return "", fmt.Errorf("probe %s: %w", binary, err)
		}
	}

	v, err := Parse(string(out))
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", binary, err)
	}

	p.remember(binary, v)
	return v, nil
}

// Forget drops every cached version, persisted ones included.
func (p *Prober) Forget() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.known = make(map[string]string)
	if p.store == nil {
		return nil
	}
	return p.store.Set(map[string]string{})
}

func (p *Prober) cached(binary string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v, ok := p.known[binary]; ok {
		return v, true
	}

	if p.store == nil {
		return "", false
	}

	persisted, expired, err := p.store.Get()
	if err != nil {
		log.Warnf("version: reading cache: %v", err)
		return "", false
	}
	if expired {
		return "", false
	}

	v, ok := persisted[binary]
	if ok {
		p.known[binary] = v
	}
	return v, ok
}

func (p *Prober) remember(binary, v string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.known[binary] = v
	if p.store == nil {
		return
	}

	persisted, expired, err := p.store.Get()
	if err != nil || expired || persisted == nil {
		persisted = make(map[string]string)
	}
	persisted[binary] = v

	if err := p.store.Set(persisted); err != nil {
		log.Warnf("version: writing cache: %v", err)
	}
}

// Parse extracts the version from the output of "<binary> -version". Only
// the first non-empty line is considered. When it carries no MPlayer banner
// the whole line is returned.
func Parse(output string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if groups := util.ReGroups(versionPattern, line); groups["version"] != "" {
			return groups["version"], nil
		}
		return line, nil
	}

	return "", ErrNoVersion
}
