package layout

import (
	"errors"
	"testing"
)

func TestConfigValidate_Default(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate_RejectsDegenerateSpacing(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero layer spacing", func(c *Config) { c.LayerSpacing = 0 }},
		{"negative node spacing", func(c *Config) { c.NodeSpacing = -1 }},
		{"zero component spacing", func(c *Config) { c.ComponentSpacing = 0 }},
		{"negative crossing passes", func(c *Config) { c.CrossingPasses = -1 }},
		{"zero back edge offset", func(c *Config) { c.BackEdgeOffset = 0 }},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigIsZero(t *testing.T) {
	if !(Config{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if DefaultConfig().IsZero() {
		t.Error("DefaultConfig should not report IsZero")
	}
}
