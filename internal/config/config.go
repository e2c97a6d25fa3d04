package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config represents the application configuration. Getters and the
// save-triggered reload share one lock; viper alone is not safe to read
// while a reload rewrites it.
type Config struct {
	mu sync.RWMutex
	v  *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/datetint/")
	v.AddConfigPath("$HOME/.datetint")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("DATETINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromFile creates a configuration instance from an explicit file path
func NewFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvPrefix("DATETINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values. A loaded file only
// overrides the keys it names; everything else keeps these values.
func setDefaults(v *viper.Viper) {
	// Color defaults: pale green, pale yellow, pale red, black text
	v.SetDefault("colors.recent", "#a4e7c3")
	v.SetDefault("colors.intermediate", "#e7dba4")
	v.SetDefault("colors.old", "#e7a4a4")
	v.SetDefault("colors.text", "#000000")

	// Age threshold defaults, in whole days
	v.SetDefault("thresholds.recent_days", 14)
	v.SetDefault("thresholds.intermediate_days", 30)

	// Highlighting toggles
	v.SetDefault("highlight.content", true)
	v.SetDefault("highlight.filenames", true)

	// Workspace defaults
	v.SetDefault("workspace.root", ".")
	v.SetDefault("workspace.extensions", []string{})
	v.SetDefault("workspace.excluded_paths", []string{})

	// Stylesheet defaults
	v.SetDefault("stylesheet.target", "file")
	v.SetDefault("stylesheet.output", "datetint.css")

	// Watch defaults
	v.SetDefault("watch.debounce", "500ms")

	// Scanner defaults
	v.SetDefault("scanner.format", "ansi")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// OnSettingsSave registers fn to run after every rewrite of the loaded
// configuration file, and starts watching for those writes. The watch covers
// the file's directory, so editors that save through a rename are seen too.
// Reloads run under the write lock shared with the getters, so passes on
// other goroutines never observe a half-applied save. It is a no-op when no
// configuration file was found at load time.
func (c *Config) OnSettingsSave(fn func()) error {
	file := c.v.ConfigFileUsed()
	if file == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create settings watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch settings file: %w", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(file) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if c.reload() != nil {
					// A save that does not parse keeps the previous values.
					continue
				}
				fn()
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return nil
}

// reload re-reads the configuration file under the write lock.
func (c *Config) reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v.ReadInConfig()
}

// Set overrides a single configuration key
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v.Set(key, value)
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	c.mu.RLock()
	raw := c.v.GetString(key)
	c.mu.RUnlock()
	return time.ParseDuration(raw)
}

// GetViper returns the underlying Viper instance. It bypasses the lock and
// is meant for startup wiring, before any settings watch is registered.
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
