package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Settings contains the application config
type Settings struct {
	Port           int           `env:"PORT" envDefault:"8080"`
	MonPort        int           `env:"MON_PORT" envDefault:"8888"`
	EnablePprof    bool          `env:"ENABLE_PPROF"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName    string        `env:"SERVICE_NAME" envDefault:"linear-reflect-relay"`
	WebhookSecret  string        `env:"WEBHOOK_SECRET"`
	AccessToken    string        `env:"ACCESS_TOKEN"`
	GraphID        string        `env:"GRAPH_ID"`
	ReflectAPIURL  string        `env:"REFLECT_API_URL" envDefault:"https://reflect.app"`
	ReflectTimeout time.Duration `env:"REFLECT_TIMEOUT" envDefault:"30s"`
}

// ErrMissingSetting is returned by Validate when a required variable is unset or empty.
var ErrMissingSetting = errors.New("missing required setting")

// Validate checks that every variable the relay cannot run without is present.
// It is called once at startup so a misconfigured process never starts serving.
func (s *Settings) Validate() error {
	var missing []string
	if strings.TrimSpace(s.WebhookSecret) == "" {
		missing = append(missing, "WEBHOOK_SECRET")
	}
	if strings.TrimSpace(s.AccessToken) == "" {
		missing = append(missing, "ACCESS_TOKEN")
	}
	if strings.TrimSpace(s.GraphID) == "" {
		missing = append(missing, "GRAPH_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSetting, strings.Join(missing, ", "))
	}
	return nil
}
