package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

// FileProvider persists the calendar as one JSON document on the local
// filesystem. It is the default backend and doubles as the fallback
// store behind the remote providers, so it must never depend on
// anything that can be unavailable.
type FileProvider struct {
	path string
	mu   sync.Mutex
}

// NewFileProvider opens a file-backed store at path. An empty path
// picks the XDG data directory default.
func NewFileProvider(path string) (*FileProvider, error) {
	if path == "" {
		p, err := xdg.DataFile("production-rates/calendar.json")
		if err != nil {
			return nil, fmt.Errorf("resolve data file: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &FileProvider{path: path}, nil
}

// Path returns the backing file location, used by the watcher.
func (p *FileProvider) Path() string {
	return p.path
}

func (p *FileProvider) LoadCalendarData(ctx context.Context) (*domain.RawCalendarPayload, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	content, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read calendar file: %w", err)
	}
	if len(content) == 0 {
		return nil, nil
	}

	var raw domain.RawCalendarPayload
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("decode calendar file: %w", err)
	}
	return &raw, nil
}

func (p *FileProvider) SaveCalendarData(ctx context.Context, availability *domain.Availability) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	content, err := json.MarshalIndent(availability, "", "  ")
	if err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	// Write to a sibling temp file and rename so a crash mid-write
	// cannot truncate the store.
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("write calendar file: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replace calendar file: %w", err)
	}
	return nil
}
