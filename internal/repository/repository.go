package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/KostasZigo/gostore/internal/constants"
	"github.com/KostasZigo/gostore/internal/objects"
	"gopkg.in/yaml.v3"
)

// DefaultMessage is the seed commit message when the config names none.
const DefaultMessage = "Initial commit"

// Config describes the initial state of a store. Objects are staged and
// committed on master, then Branches are forked from that commit and Head
// is checked out.
//
//	message: Initial commit
//	objects:
//	  answer: 42
//	  greeting: hello
//	branches: [feature]
//	head: feature
type Config struct {
	Message  string         `yaml:"message"`
	Objects  map[string]any `yaml:"objects"`
	Branches []string       `yaml:"branches"`
	Head     string         `yaml:"head"`
}

// LoadConfig reads and validates a YAML setup file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes and validates YAML setup data.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the branch layout can be applied.
func (cfg Config) Validate() error {
	known := map[string]bool{constants.DefaultBranch: true}

	for _, name := range cfg.Branches {
		if name == "" {
			return errors.New("branch name must not be empty")
		}
		if known[name] {
			return fmt.Errorf("branch %s listed more than once", name)
		}
		known[name] = true
	}

	if cfg.Head != "" && !known[cfg.Head] {
		return fmt.Errorf("head %s is not a configured branch", cfg.Head)
	}

	return nil
}

// Init builds a store and applies cfg to it.
func Init(cfg Config, opts ...objects.Option) (*objects.ObjectStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := objects.NewObjectStore(opts...)

	if len(cfg.Objects) > 0 {
		message := cfg.Message
		if message == "" {
			message = DefaultMessage
		}

		for _, name := range slices.Sorted(maps.Keys(cfg.Objects)) {
			store.Add(name, cfg.Objects[name])
		}

		if r := store.Commit(message); !r.Success() {
			return nil, fmt.Errorf("failed to commit seed objects: %w", r.Err())
		}
	}

	for _, name := range cfg.Branches {
		if r := store.Branch().Create(name); !r.Success() {
			return nil, fmt.Errorf("failed to create branch %s: %w", name, r.Err())
		}
	}

	if cfg.Head != "" {
		if r := store.Branch().Checkout(cfg.Head); !r.Success() {
			return nil, fmt.Errorf("failed to check out %s: %w", cfg.Head, r.Err())
		}
	}

	slog.Debug("Initialized store",
		"objects", len(cfg.Objects),
		"branches", len(cfg.Branches),
		"head", store.HeadBranch())

	return store, nil
}
