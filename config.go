package triumph

import (
	"errors"
	"fmt"
	"strings"
)

// Environment selects which Triumph deployment the client talks to.
type Environment string

const (
	// EnvProduction targets the production API.
	EnvProduction Environment = "production"
	// EnvSandbox targets the sandbox (debug) API.
	EnvSandbox Environment = "sandbox"
)

// Base URLs for each environment. Override with WithBaseURL.
const (
	ProductionBaseURL = "https://api.triumpharcade.com"
	SandboxBaseURL    = "https://debug-api.triumpharcade.com"
)

// ErrInvalidEnvironment is returned by ParseEnvironment for unknown names.
var ErrInvalidEnvironment = errors.New("invalid environment")

// ParseEnvironment converts a user-supplied name into an Environment.
// Matching is case-insensitive; "prod" and "debug" are accepted as aliases.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return EnvProduction, nil
	case "sandbox", "debug":
		return EnvSandbox, nil
	}
	return "", fmt.Errorf("%w: %q (want production or sandbox)", ErrInvalidEnvironment, s)
}

// ConfigurationParameters are the inputs to NewConfiguration.
type ConfigurationParameters struct {
	// Organization is sent in the triumph-organization header.
	Organization string
	// APIKey is the shared secret as 64 hex characters (32 bytes).
	APIKey string
	// Env selects the base URL. Anything other than EnvSandbox means production.
	Env Environment
}

// Configuration is the immutable client configuration. The base URL is
// resolved once, at construction.
type Configuration struct {
	organization string
	apiKey       string
	env          Environment
	baseURL      string
}

// NewConfiguration builds a Configuration. It performs no validation; a
// malformed API key is reported by New.
func NewConfiguration(p ConfigurationParameters) *Configuration {
	baseURL := ProductionBaseURL
	if p.Env == EnvSandbox {
		baseURL = SandboxBaseURL
	}
	return &Configuration{
		organization: p.Organization,
		apiKey:       p.APIKey,
		env:          p.Env,
		baseURL:      baseURL,
	}
}

// Organization returns the organization id.
func (c *Configuration) Organization() string { return c.organization }

// APIKey returns the hex-encoded shared key.
func (c *Configuration) APIKey() string { return c.apiKey }

// Env returns the environment the configuration was built with.
func (c *Configuration) Env() Environment { return c.env }

// BaseURL returns the resolved API root.
func (c *Configuration) BaseURL() string { return c.baseURL }

// IsSandbox reports whether the configuration targets the sandbox.
func (c *Configuration) IsSandbox() bool { return c.env == EnvSandbox }
