// Package store persists zone artifacts to one of two directories with
// automatic fallback.
//
// Every domain owns an artifact pair: the rendered zone text (db.<domain>)
// and a JSON snapshot of the record set that produced it (db.<domain>.json).
// The snapshot is authoritative for reload; the text file is a derived,
// operator-facing projection. Writes target the primary directory (typically
// an operator-owned system path) and fall back to the secondary (a local
// directory created on demand) when the primary is unwritable. The two files
// are written as two independent operations; there is no multi-file
// atomicity.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zonekit/zonekeeper/internal/zone"
)

// Location identifies which backend ended up holding an artifact.
type Location string

const (
	Primary   Location = "primary"
	Secondary Location = "secondary"
)

// filePrefix is prepended to the sanitized domain to form artifact names.
const filePrefix = "db."

// Result reports the outcome of a write.
type Result struct {
	// Path is the zone text file actually written.
	Path string

	// Location tells whether the primary or the fallback directory took
	// the write.
	Location Location

	// Warning is non-empty when the text file was written but its JSON
	// sidecar was not. The artifacts are inconsistent until the next
	// successful write; surfacing the condition beats swallowing it.
	Warning string
}

// Backend is a single artifact directory.
type Backend interface {
	Location() Location

	// WriteFile creates the directory if needed and writes name inside
	// it, returning the full path.
	WriteFile(name string, data []byte) (string, error)

	// ReadFile reads name from the directory.
	ReadFile(name string) ([]byte, error)

	// List returns the file names present, or nil when the directory
	// does not exist.
	List() []string

	// Remove deletes name, reporting the full path and whether a file
	// was actually removed.
	Remove(name string) (string, bool)
}

// Dir is the directory-backed Backend.
type Dir struct {
	path string
	loc  Location
}

// NewDir returns a Backend rooted at path.
func NewDir(path string, loc Location) *Dir {
	return &Dir{path: path, loc: loc}
}

func (d *Dir) Location() Location { return d.loc }

func (d *Dir) WriteFile(name string, data []byte) (string, error) {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return "", fmt.Errorf("create %s directory: %w", d.loc, err)
	}
	full := filepath.Join(d.path, name)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", full, err)
	}
	return full, nil
}

func (d *Dir) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.path, name))
}

func (d *Dir) List() []string {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		// A missing directory means no artifacts, not a failure.
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func (d *Dir) Remove(name string) (string, bool) {
	full := filepath.Join(d.path, name)
	return full, os.Remove(full) == nil
}

// Store composes the primary and secondary backends and owns the fallback
// policy. Methods are self-contained synchronous filesystem sequences; there
// is no in-process locking, and concurrent writes to the same domain are
// last-write-wins at the filesystem level.
type Store struct {
	primary   Backend
	secondary Backend
	logger    *slog.Logger
}

// New builds a Store over the two artifact directories.
func New(primaryDir, secondaryDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		primary:   NewDir(primaryDir, Primary),
		secondary: NewDir(secondaryDir, Secondary),
		logger:    logger,
	}
}

// Write renders rs for domain and persists the artifact pair.
//
// The primary directory is tried first by simply attempting the write; probing
// permissions up front would race the write anyway. If the text file cannot
// be placed in the primary, both files go to the secondary, and only a
// secondary failure is returned as an error. A failed sidecar write after a
// successful primary text write is reported through Result.Warning.
func (s *Store) Write(domain string, rs zone.RecordSet) (Result, error) {
	name := filePrefix + zone.SanitizeDomain(domain)
	text := []byte(zone.Render(domain, rs))

	snapshot, err := json.Marshal(rs)
	if err != nil {
		return Result{}, fmt.Errorf("encode snapshot for %s: %w", domain, err)
	}

	path, err := s.primary.WriteFile(name, text)
	if err == nil {
		res := Result{Path: path, Location: s.primary.Location()}
		if _, serr := s.primary.WriteFile(name+".json", snapshot); serr != nil {
			s.logger.Warn("sidecar write failed, zone text has no matching snapshot",
				"domain", domain, "err", serr)
			res.Warning = fmt.Sprintf("snapshot not written: %v", serr)
		}
		return res, nil
	}

	s.logger.Warn("primary write failed, falling back",
		"domain", domain, "err", err)

	path, err = s.secondary.WriteFile(name, text)
	if err != nil {
		return Result{}, fmt.Errorf("write zone %s: %w", domain, err)
	}
	if _, err := s.secondary.WriteFile(name+".json", snapshot); err != nil {
		return Result{}, fmt.Errorf("write zone snapshot %s: %w", domain, err)
	}
	return Result{Path: path, Location: s.secondary.Location()}, nil
}

// LoadAll reconstructs the domain -> record set map from the JSON snapshots
// in both directories.
//
// Precedence is explicit: the secondary directory overrides the primary for
// a domain present in both, because fallback writes land in the secondary
// and are therefore the more recent artifact. Malformed snapshots are
// skipped; a missing directory contributes nothing.
func (s *Store) LoadAll() map[string]zone.RecordSet {
	out := make(map[string]zone.RecordSet)
	for _, b := range []Backend{s.primary, s.secondary} {
		for _, name := range b.List() {
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			data, err := b.ReadFile(name)
			if err != nil {
				continue
			}
			var rs zone.RecordSet
			if err := json.Unmarshal(data, &rs); err != nil {
				s.logger.Debug("skipping malformed snapshot",
					"location", b.Location(), "file", name)
				continue
			}
			domain := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), ".json")
			out[domain] = rs
		}
	}
	return out
}

// Delete removes the artifact pair for domain from both directories,
// best-effort. It returns the paths that actually existed and were removed;
// a domain that was never written yields an empty list, not an error.
func (s *Store) Delete(domain string) []string {
	name := filePrefix + zone.SanitizeDomain(domain)
	removed := []string{}
	for _, b := range []Backend{s.primary, s.secondary} {
		for _, target := range []string{name, name + ".json"} {
			if path, ok := b.Remove(target); ok {
				removed = append(removed, path)
			}
		}
	}
	return removed
}
