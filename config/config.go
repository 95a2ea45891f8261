package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"remotefs/remote"
)

type Config struct {
	Endpoints map[string]Endpoint `toml:"endpoints"`
	Jobs      []Job               `toml:"jobs"`
}

type Endpoint struct {
	Protocol string `toml:"protocol"` // ftp or sftp
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"` // empty means prompt at startup
	Path     string `toml:"path"`     // remote working path
}

type Job struct {
	Name          string `toml:"name"`
	Cron          string `toml:"cron"`
	Action        string `toml:"action"`   // upload or download
	Endpoint      string `toml:"endpoint"` // key into endpoints
	LocalPath     string `toml:"local_path"`
	Pattern       string `toml:"pattern"`        // regex on file names, empty matches all
	RetentionDays int    `toml:"retention_days"` // remove remote files transferred this long ago
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	for _, job := range cfg.Jobs {
		if _, ok := cfg.Endpoints[job.Endpoint]; !ok {
			return nil, fmt.Errorf("job %s references unknown endpoint %q", job.Name, job.Endpoint)
		}
	}
	return &cfg, nil
}

// Remote converts the declarative endpoint into the descriptor the client
// operates on.
func (e Endpoint) Remote() (*remote.Endpoint, error) {
	var proto remote.Protocol
	switch e.Protocol {
	case "ftp":
		proto = remote.ProtocolFTP
	case "sftp":
		proto = remote.ProtocolSFTP
	default:
		return nil, fmt.Errorf("unknown protocol: %s", e.Protocol)
	}
	return &remote.Endpoint{
		Host:        e.Host,
		Port:        e.Port,
		User:        e.User,
		Secret:      remote.NewSecret(e.Password),
		WorkingPath: e.Path,
		Protocol:    proto,
	}, nil
}
