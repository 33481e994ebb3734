package floorplate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dgameiro/floorgen/pkg/cores"
	"github.com/dgameiro/floorgen/pkg/unitmix"
)

// Config is the YAML document form of an Input, used by the CLI and by
// callers who keep floorplate definitions as versioned files.
type Config struct {
	Footprint Footprint          `yaml:"footprint" json:"footprint"`
	Corridor  CorridorSpec       `yaml:"corridor" json:"corridor"`
	Cores     cores.Config       `yaml:"cores" json:"cores"`
	Egress    cores.EgressSpec   `yaml:"egress" json:"egress"`
	UnitTypes []unitmix.TypeSpec `yaml:"unitTypes" json:"unitTypes"`

	// AlignmentStrictness accepts the UI's 0-100 scale or a 0-1 fraction.
	AlignmentStrictness float64 `yaml:"alignmentStrictness" json:"alignmentStrictness"`

	// Strategies lists variant names; empty selects all three.
	Strategies []string `yaml:"strategies,omitempty" json:"strategies,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration before it is turned into an Input.
func (c *Config) Validate() error {
	if c.Footprint.Length <= 0 || c.Footprint.Depth <= 0 {
		return fmt.Errorf("footprint: dimensions must be positive, got %.2f x %.2f",
			c.Footprint.Length, c.Footprint.Depth)
	}
	if c.Corridor.Width <= 0 {
		return fmt.Errorf("corridor: width must be positive, got %.2f", c.Corridor.Width)
	}
	if err := c.Cores.Validate(); err != nil {
		return fmt.Errorf("cores: %w", err)
	}
	if err := c.Egress.Validate(); err != nil {
		return fmt.Errorf("egress: %w", err)
	}
	if _, err := unitmix.Validate(c.UnitTypes); err != nil {
		return fmt.Errorf("unitTypes: %w", err)
	}
	if c.AlignmentStrictness < 0 || c.AlignmentStrictness > 100 {
		return fmt.Errorf("alignmentStrictness: %.2f outside 0-100", c.AlignmentStrictness)
	}
	for _, s := range c.Strategies {
		if _, err := ParseStrategy(s); err != nil {
			return err
		}
	}
	return nil
}

// Input converts the config into the Generate input, mapping the 0-100
// alignment scale onto [0,1].
func (c *Config) Input() (Input, error) {
	strictness := c.AlignmentStrictness
	if strictness > 1 {
		strictness /= 100
	}

	strategies := make([]Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := ParseStrategy(name)
		if err != nil {
			return Input{}, err
		}
		strategies = append(strategies, s)
	}

	return Input{
		Footprint:           c.Footprint,
		UnitTypes:           c.UnitTypes,
		Corridor:            c.Corridor,
		Cores:               c.Cores,
		Egress:              c.Egress,
		AlignmentStrictness: strictness,
		Strategies:          strategies,
	}, nil
}
