// Package config loads the TOML documents that tune pools, declaration managers, and logging
// for an application embedding armory.
package config

import (
	"io"
	"os"
	"strings"

	cerrors "github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/armory/device"
	"github.com/vkngwrapper/armory/hwbuffer"
	"github.com/vkngwrapper/armory/pool"
	"golang.org/x/exp/slog"
)

// InvalidConfigError is wrapped by every error caused by a document that parsed, but holds
// values this package does not understand
var InvalidConfigError = errors.New("invalid config")

type LogConfig struct {
	// Level is one of "debug", "info", "warn" or "error". Empty means "info".
	Level string `toml:"level"`
}

type PoolConfig struct {
	Synchronized bool `toml:"synchronized"`
	// DeviceMask names the devices pooled objects are created on: "primary", "gpu2" through
	// "gpu5", or "all". Empty selects every primary device.
	DeviceMask []string `toml:"device_mask"`
}

type ManagerConfig struct {
	Synchronized    bool `toml:"synchronized"`
	InitialCapacity int  `toml:"initial_capacity"`
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	Pool    PoolConfig    `toml:"pool"`
	Manager ManagerConfig `toml:"manager"`
}

// Load decodes a TOML document. Keys that do not belong to Config are rejected.
func Load(r io.Reader) (*Config, error) {
	var config Config
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&config)
	if err != nil {
		return nil, cerrors.Wrap(err, "failed to decode config")
	}

	_, err = config.Pool.deviceMask()
	if err != nil {
		return nil, err
	}
	_, err = config.Log.level()
	if err != nil {
		return nil, err
	}
	if config.Manager.InitialCapacity < 0 {
		return nil, cerrors.Wrapf(InvalidConfigError, "manager initial_capacity must not be negative, but was %d", config.Manager.InitialCapacity)
	}

	return &config, nil
}

// LoadFile decodes the TOML document at path
func LoadFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, cerrors.Wrapf(err, "failed to open config file %s", path)
	}
	defer file.Close()

	return Load(file)
}

var deviceNames = map[string]device.Flags{
	"primary": device.FlagsPrimary,
	"gpu2":    device.FlagsGPU2,
	"gpu3":    device.FlagsGPU3,
	"gpu4":    device.FlagsGPU4,
	"gpu5":    device.FlagsGPU5,
	"all":     device.FlagsAll,
}

func (c PoolConfig) deviceMask() (device.Flags, error) {
	mask := device.FlagsDefault
	for _, name := range c.DeviceMask {
		flags, ok := deviceNames[strings.ToLower(name)]
		if !ok {
			return 0, cerrors.Wrapf(InvalidConfigError, "unknown device %q in pool device_mask", name)
		}
		mask |= flags
	}

	return mask, nil
}

var levels = map[string]slog.Level{
	"":      slog.LevelInfo,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func (c LogConfig) level() (slog.Level, error) {
	level, ok := levels[strings.ToLower(c.Level)]
	if !ok {
		return 0, cerrors.Wrapf(InvalidConfigError, "unknown log level %q", c.Level)
	}
	return level, nil
}

// PoolOptions builds the options for pool.New. The returned options carry no callbacks.
func (c *Config) PoolOptions() (pool.CreateOptions, error) {
	mask, err := c.Pool.deviceMask()
	if err != nil {
		return pool.CreateOptions{}, err
	}

	var flags pool.CreateFlags
	if c.Pool.Synchronized {
		flags |= pool.CreateSynchronized
	}

	return pool.CreateOptions{
		Flags:      flags,
		DeviceMask: mask,
	}, nil
}

// ManagerOptions builds the options for hwbuffer.New
func (c *Config) ManagerOptions() hwbuffer.CreateOptions {
	var flags hwbuffer.CreateFlags
	if c.Manager.Synchronized {
		flags |= hwbuffer.CreateSynchronized
	}

	return hwbuffer.CreateOptions{
		Flags:           flags,
		InitialCapacity: c.Manager.InitialCapacity,
	}
}

// Logger builds a text logger writing to w at the configured level
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Log.level()
	if err != nil {
		level = slog.LevelInfo
	}

	return slog.New(slog.HandlerOptions{Level: level}.NewTextHandler(w))
}
