// Package config provides the structures used for configuration.
package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/tempconv/config/secrets"
	"github.com/lone-faerie/tempconv/log"
)

// Config contains the configuration for logging and conversion-event
// publishing. Config should be created with a call to [Default],
// [Read], or [Load] as string fields require expansion.
type Config struct {
	Log  LogConfig  `yaml:"log,omitempty"`
	MQTT MQTTConfig `yaml:"mqtt,omitempty"`
}

var defaultCfg = Config{
	Log:  DefaultLog,
	MQTT: DefaultMQTT,
}

// Default returns the default Config when no config file is provided.
func Default() *Config {
	cfg := defaultCfg
	cfg.Expand()

	return &cfg
}

// Read returns the Config parsed from the yaml encoded config from r.
// Fields absent from the document keep their default values.
func Read(r io.Reader) (*Config, error) {
	cfg := defaultCfg
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg.Expand()

	return &cfg, nil
}

// Load returns the Config parsed from the first of the given paths
// that exists. If none of the files exist, the default config is
// returned.
func Load(file ...string) (*Config, error) {
	for _, path := range file {
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, err
		}

		defer f.Close()
		log.Info("Loading config", "path", path)

		return Read(f)
	}

	return Default(), nil
}

// Expand replaces ${var} or $var in s according to the values of the
// current environment variables, and replaces !secret var according
// to the file at /run/secrets/<var>.
func Expand(s string) string {
	if secret, ok := secrets.CutPrefix(s); ok {
		return secrets.MustRead(secret, "")
	}

	return os.ExpandEnv(s)
}

// Expand calls [Expand] on every expandable string field of cfg.
func (cfg *Config) Expand() {
	cfg.Log.File = Expand(cfg.Log.File)
	cfg.MQTT.Broker = Expand(cfg.MQTT.Broker)
	cfg.MQTT.ClientID = Expand(cfg.MQTT.ClientID)
	cfg.MQTT.Username = Expand(cfg.MQTT.Username)
	cfg.MQTT.Password = Expand(cfg.MQTT.Password)
	cfg.MQTT.Topic = Expand(cfg.MQTT.Topic)
}

// Write writes the yaml encoding of cfg to w.
func (cfg *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)

	return enc.Encode(cfg)
}
