// Package config implements the YAML-driven profile configuration feeding
// weighting.New: which vehicle and metric a preprocessing/query run targets.
// Grounded on the teacher's config.go (VehicleType/MetricType enums with
// custom UnmarshalYAML/MarshalYAML, a top-level Config holding one or more
// named Profiles), trimmed to the two metrics CH actually needs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// VehicleType selects which physical vehicle a profile routes for. The
// weighting package does not read it (weighting.New selects by MetricType
// alone); Car, Foot and Bike are carried as recognised configuration
// values, matching the teacher's enum shape.
type VehicleType byte

const (
	Car VehicleType = iota
	Foot
	Bike
)

func (self VehicleType) String() string {
	switch self {
	case Car:
		return "car"
	case Foot:
		return "foot"
	case Bike:
		return "bike"
	default:
		return "unknown"
	}
}

func (self VehicleType) MarshalYAML() (any, error) {
	return self.String(), nil
}

func (self *VehicleType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "car":
		*self = Car
	case "foot":
		*self = Foot
	case "bike":
		*self = Bike
	default:
		return fmt.Errorf("config: unknown vehicle type %q", s)
	}
	return nil
}

// MetricType selects the weighting a profile contracts and queries under.
type MetricType byte

const (
	Fastest MetricType = iota
	Shortest
)

func (self MetricType) String() string {
	switch self {
	case Fastest:
		return "fastest"
	case Shortest:
		return "shortest"
	default:
		return "unknown"
	}
}

func (self MetricType) MarshalYAML() (any, error) {
	return self.String(), nil
}

func (self *MetricType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "fastest":
		*self = Fastest
	case "shortest":
		*self = Shortest
	default:
		return fmt.Errorf("config: unknown metric type %q", s)
	}
	return nil
}

// Profile names one vehicle/metric combination to contract and query under.
type Profile struct {
	Name    string      `yaml:"name"`
	Vehicle VehicleType `yaml:"vehicle"`
	Metric  MetricType  `yaml:"metric"`
}

// Config is the top-level YAML document: a named list of profiles.
type Config struct {
	Profiles []Profile `yaml:"profiles"`
}

// ReadConfig loads and parses path. A malformed document is a startup-time
// configuration error, not a routine one — the host is expected to panic on
// it rather than limp along with a half-parsed profile set, matching the
// teacher's ReadConfig posture.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Profile looks up a profile by name, panicking if absent — the host wires
// profile names from its own flags/config, so a miss here is a startup bug.
func (self *Config) Profile(name string) Profile {
	for _, p := range self.Profiles {
		if p.Name == name {
			return p
		}
	}
	panic(fmt.Sprintf("config: no such profile %q", name))
}
