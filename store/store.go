package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/chatkit/template"
)

// engine checks template syntax at load time so broken files are rejected
// before they reach a prompt build.
var engine = template.NewEngine()

// extensions lists the template file extensions tried in order.
var extensions = []string{".yaml", ".yml", ".json", ".toml"}

// TemplateFile is the on-disk instruction template format. A file carries
// either an instruction_template in the engine's syntax or the legacy
// turn-template fields, which are converted on load.
type TemplateFile struct {
	// InstructionTemplate is a chat template in the engine's syntax.
	InstructionTemplate string `yaml:"instruction_template,omitempty" json:"instruction_template,omitempty" toml:"instruction_template,omitempty"`

	// Legacy format fields.
	Context       string `yaml:"context,omitempty" json:"context,omitempty" toml:"context,omitempty"`
	SystemMessage string `yaml:"system_message,omitempty" json:"system_message,omitempty" toml:"system_message,omitempty"`
	TurnTemplate  string `yaml:"turn_template,omitempty" json:"turn_template,omitempty" toml:"turn_template,omitempty"`
	User          string `yaml:"user,omitempty" json:"user,omitempty" toml:"user,omitempty"`
	Bot           string `yaml:"bot,omitempty" json:"bot,omitempty" toml:"bot,omitempty"`
}

// Store loads instruction templates from a directory and caches them by
// name. The cache is invalidated automatically when the underlying file
// changes (via fsnotify, when available) and manually via Invalidate, so
// entries never outlive their files the way process-lifetime memoization
// would.
type Store struct {
	dir string

	mu    sync.RWMutex
	cache map[string]string

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Open creates a store over the given directory and starts watching it for
// changes. A store without a working watcher still functions; invalidation
// is then manual.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open template store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open template store: %s is not a directory", dir)
	}

	s := &Store{
		dir:   dir,
		cache: make(map[string]string),
	}

	// Watch the directory rather than individual files; editors often
	// replace files instead of writing in place.
	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
		} else {
			s.watcher = watcher
			s.done = make(chan struct{})
			go s.watch()
		}
	}

	return s, nil
}

// InstructionTemplate returns the chat template for the named instruction
// template, loading and converting the file on first use. Returns
// ErrNotFound if no file with a known extension exists.
func (s *Store) InstructionTemplate(name string) (string, error) {
	s.mu.RLock()
	cached, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	tmpl, err := s.load(name)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cache[name] = tmpl
	s.mu.Unlock()
	return tmpl, nil
}

// Invalidate drops the cached entry for a name. The next lookup reloads
// from disk.
func (s *Store) Invalidate(name string) {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
}

// Close stops the file watcher. The store remains usable without automatic
// invalidation.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

// load reads and parses the template file for a name.
func (s *Store) load(name string) (string, error) {
	var path string
	for _, ext := range extensions {
		candidate := filepath.Join(s.dir, name+ext)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}

	var file TemplateFile
	switch filepath.Ext(path) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".json":
		err = json.Unmarshal(data, &file)
	default:
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFormat, name, err)
	}

	var tmpl string
	switch {
	case file.InstructionTemplate != "":
		tmpl = file.InstructionTemplate
	case file.TurnTemplate != "":
		tmpl, err = TemplateFromLegacy(&file)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %s has neither instruction_template nor turn_template", ErrFormat, name)
	}

	if _, err := engine.Parse(tmpl); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFormat, name, err)
	}
	return tmpl, nil
}

// watch invalidates cache entries when their files change.
func (s *Store) watch() {
	for {
		select {
		case <-s.done:
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			base := filepath.Base(event.Name)
			ext := filepath.Ext(base)
			if !knownExtension(ext) {
				continue
			}
			s.Invalidate(strings.TrimSuffix(base, ext))

		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors are usually transient; keep serving from
			// the cache and manual invalidation.
		}
	}
}

func knownExtension(ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}
