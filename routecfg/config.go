package routecfg

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/halcyonstack/relay/router"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("routecfg: invalid configuration")

// Rule declares a single before or route entry.
type Rule struct {
	// Methods is a pipe-separated verb list, or "*" for the full verb
	// set. Defaults to "GET" when empty.
	Methods string `yaml:"methods"`

	// Pattern is the route pattern, relative to the enclosing mounts.
	Pattern string `yaml:"pattern"`

	// Handler is a named "Controller::method" reference, resolved
	// through the router's resolver at dispatch time.
	Handler string `yaml:"handler"`
}

// Fallback declares a not-found entry. An empty or "/" pattern declares
// the default fallback.
type Fallback struct {
	Pattern string `yaml:"pattern"`
	Handler string `yaml:"handler"`
}

// Mount groups rules under a shared path prefix. Mounts nest.
type Mount struct {
	Prefix string  `yaml:"prefix"`
	Before []Rule  `yaml:"before"`
	Routes []Rule  `yaml:"routes"`
	Mounts []Mount `yaml:"mounts"`
}

// Config is the document shape of a declarative route table.
type Config struct {
	Before   []Rule     `yaml:"before"`
	Routes   []Rule     `yaml:"routes"`
	Mounts   []Mount    `yaml:"mounts"`
	NotFound []Fallback `yaml:"not_found"`
}

// Load parses and validates a YAML route table.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("routecfg: parse: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply registers every declared entry on r, preserving declaration
// order within each section.
func (c *Config) Apply(r *router.Router) {
	for _, rule := range c.Before {
		r.Before(rule.methods(), rule.Pattern, router.Named(rule.Handler))
	}
	for _, rule := range c.Routes {
		r.Match(rule.methods(), rule.Pattern, router.Named(rule.Handler))
	}
	for _, m := range c.Mounts {
		m.apply(r)
	}
	for _, fb := range c.NotFound {
		if fb.Pattern == "" || fb.Pattern == "/" {
			r.NotFound(router.Named(fb.Handler))
			continue
		}
		r.NotFoundPattern(fb.Pattern, router.Named(fb.Handler))
	}
}

func (m Mount) apply(r *router.Router) {
	r.Mount(m.Prefix, func() {
		for _, rule := range m.Before {
			r.Before(rule.methods(), rule.Pattern, router.Named(rule.Handler))
		}
		for _, rule := range m.Routes {
			r.Match(rule.methods(), rule.Pattern, router.Named(rule.Handler))
		}
		for _, nested := range m.Mounts {
			nested.apply(r)
		}
	})
}

func (r Rule) methods() string {
	if r.Methods == "" {
		return "GET"
	}
	return r.Methods
}

func (c *Config) validate() error {
	if err := validateRules("before", c.Before); err != nil {
		return err
	}
	if err := validateRules("routes", c.Routes); err != nil {
		return err
	}
	for _, m := range c.Mounts {
		if err := m.validate(); err != nil {
			return err
		}
	}
	for i, fb := range c.NotFound {
		if fb.Handler == "" {
			return fmt.Errorf("%w: not_found[%d]: missing handler", ErrInvalidConfig, i)
		}
	}
	return nil
}

func (m Mount) validate() error {
	if m.Prefix == "" {
		return fmt.Errorf("%w: mount without a prefix", ErrInvalidConfig)
	}
	if err := validateRules("before", m.Before); err != nil {
		return err
	}
	if err := validateRules("routes", m.Routes); err != nil {
		return err
	}
	for _, nested := range m.Mounts {
		if err := nested.validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateRules(section string, rules []Rule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return fmt.Errorf("%w: %s[%d]: missing pattern", ErrInvalidConfig, section, i)
		}
		if rule.Handler == "" {
			return fmt.Errorf("%w: %s[%d] (%s): missing handler", ErrInvalidConfig, section, i, rule.Pattern)
		}
	}
	return nil
}
