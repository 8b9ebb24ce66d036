package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dailynotes/daily/internal/entry"
	"github.com/dailynotes/daily/pkg/resync"
	"github.com/pelletier/go-toml/v2"
)

const configFilename = "config.toml"

// Default config.toml content
const DefaultConfig = `
[core]
format = "md"
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core ConfigCore
}
type ConfigCore struct {
	// Journal overrides the path of the journal file.
	Journal string
	// Format is the surface syntax of the journal file ("md" or "rst").
	Format string
	// Editor overrides $EDITOR.
	Editor string
}

type Config struct {
	// RootDirectory is $DAILY_DIR (default ~/.daily).
	RootDirectory string

	// ConfigFile is the content of config.toml present in the root directory.
	ConfigFile ConfigFile
}

// CurrentConfig reads the configuration on first call.
func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfig()
		if err != nil {
			CurrentLogger().Fatal(err)
		}
	})
	return configSingleton
}

// ReadConfig loads the configuration from $DAILY_DIR (default ~/.daily).
// A missing config.toml means defaults, a malformed one is an error.
func ReadConfig() (*Config, error) {
	root := os.Getenv("DAILY_DIR")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("unable to locate the home directory: %w", err)
		}
		root = filepath.Join(home, ".daily")
	}
	return ReadConfigFromDirectory(root)
}

func ReadConfigFromDirectory(root string) (*Config, error) {
	config := &Config{
		RootDirectory: root,
	}
	if err := toml.Unmarshal([]byte(DefaultConfig), &config.ConfigFile); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(root, configFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, &config.ConfigFile); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", configFilename, err)
	}

	if _, err := entry.ParseFormat(config.ConfigFile.Core.Format); err != nil {
		return nil, err
	}

	return config, nil
}

// Format returns the surface syntax of the journal file.
func (c *Config) Format() entry.Format {
	f, err := entry.ParseFormat(c.ConfigFile.Core.Format)
	if err != nil {
		// Validated when reading the configuration
		return entry.FormatMarkdown
	}
	return f
}

// JournalFile returns the path of the journal file.
func (c *Config) JournalFile() string {
	if c.ConfigFile.Core.Journal != "" {
		return c.ConfigFile.Core.Journal
	}
	return filepath.Join(c.RootDirectory, "journal"+c.Format().Extension())
}

// IndexFile returns the path of the search index database.
func (c *Config) IndexFile() string {
	return filepath.Join(c.RootDirectory, "index.db")
}

// Editor returns the editor command to edit entries.
func (c *Config) Editor() string {
	if c.ConfigFile.Core.Editor != "" {
		return c.ConfigFile.Core.Editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// Reset forces the next CurrentConfig call to reload the configuration.
// Useful in tests overriding $DAILY_DIR.
func Reset() {
	configOnce.Reset()
	loggerOnce.Reset()
}
