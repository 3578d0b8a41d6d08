package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/physlab/internal/mech"
)

const (
	DefaultDt          = 1.0 / 120.0
	DefaultDuration    = 10.0
	DefaultGravity     = 9.81
	DefaultMassTable   = 2.0
	DefaultMassHanging = 1.0
	DefaultMu          = 0.2
	DefaultTarget      = 1.0
	DefaultFrequency   = 440.0
	DefaultDiameter    = 0.03
	DefaultTempC       = 20.0
)

type Config struct {
	Experiment string          `yaml:"experiment"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
	Atwood     AtwoodConfig    `yaml:"atwood"`
	Resonance  ResonanceConfig `yaml:"resonance"`
}

type AtwoodConfig struct {
	MassTableKg   float64 `yaml:"mass_table_kg"`
	MassHangingKg float64 `yaml:"mass_hanging_kg"`
	Mu            float64 `yaml:"mu"`
	FrictionOn    bool    `yaml:"friction_on"`
	Gravity       float64 `yaml:"gravity"`
	TargetM       float64 `yaml:"target_m"`
	InitVelocity  float64 `yaml:"init_velocity"`
}

type ResonanceConfig struct {
	FrequencyHz   float64 `yaml:"frequency_hz"`
	TubeDiameterM float64 `yaml:"tube_diameter_m"`
	TempC         float64 `yaml:"temp_c"`
	AirLengthM    float64 `yaml:"air_length_m"`
}

func DefaultConfig() *Config {
	return &Config{
		Experiment: "atwood",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Atwood: AtwoodConfig{
			MassTableKg:   DefaultMassTable,
			MassHangingKg: DefaultMassHanging,
			Mu:            DefaultMu,
			Gravity:       DefaultGravity,
			TargetM:       DefaultTarget,
		},
		Resonance: ResonanceConfig{
			FrequencyHz:   DefaultFrequency,
			TubeDiameterM: DefaultDiameter,
			TempC:         DefaultTempC,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MechParams converts the Atwood section into solver parameters.
func (c *Config) MechParams() mech.Params {
	return mech.Params{
		MassTable:   c.Atwood.MassTableKg,
		MassHanging: c.Atwood.MassHangingKg,
		Mu:          c.Atwood.Mu,
		FrictionOn:  c.Atwood.FrictionOn,
		Gravity:     c.Atwood.Gravity,
	}
}
