package main

import (
	"encoding/json"
	"fmt"
	"os"

	"runlog"
)

// defaultConfigPath is looked for when --config is not given.
const defaultConfigPath = "runlog.json"

// Config holds relay defaults so scripts do not have to repeat SMTP details
// on every send.  Flags override anything set here.
type Config struct {
	Relay runlog.Relay `json:"relay"`
}

// loadConfig reads the JSON config at path, or at defaultConfigPath when
// path is empty.  A missing default config is not an error; it simply yields
// zero defaults.  An explicitly named config must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays flag-supplied relay fields on the configured defaults.
func (c Config) merge(flags runlog.Relay) runlog.Relay {
	r := c.Relay
	if flags.Server != "" {
		r.Server = flags.Server
	}
	if flags.Port != 0 {
		r.Port = flags.Port
	}
	if flags.Username != "" {
		r.Username = flags.Username
	}
	if flags.Password != "" {
		r.Password = flags.Password
	}
	if flags.From != "" {
		r.From = flags.From
	}
	if flags.To != "" {
		r.To = flags.To
	}
	if flags.Subject != "" {
		r.Subject = flags.Subject
	}
	return r
}
