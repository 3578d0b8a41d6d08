package config

var Presets = map[string]map[string]*Config{
	"atwood": {
		"frictionless": {
			Experiment: "atwood", Dt: DefaultDt, Duration: 10.0,
			Atwood: AtwoodConfig{MassTableKg: 2, MassHangingKg: 1, Gravity: 9.81, TargetM: 1.0},
		},
		"sticky": {
			// drive 9.81 N below the 11.77 N static cap: the cart holds
			Experiment: "atwood", Dt: DefaultDt, Duration: 10.0,
			Atwood: AtwoodConfig{MassTableKg: 6, MassHangingKg: 1, Mu: 0.2, FrictionOn: true, Gravity: 9.81, TargetM: 1.0},
		},
		"breakaway": {
			Experiment: "atwood", Dt: DefaultDt, Duration: 10.0,
			Atwood: AtwoodConfig{MassTableKg: 2, MassHangingKg: 2, Mu: 0.25, FrictionOn: true, Gravity: 9.81, TargetM: 1.5},
		},
		"turnaround": {
			Experiment: "atwood", Dt: DefaultDt, Duration: 8.0,
			Atwood: AtwoodConfig{MassTableKg: 6, MassHangingKg: 1, Mu: 0.2, FrictionOn: true, Gravity: 9.81, TargetM: 1.0, InitVelocity: -0.8},
		},
		"moon": {
			Experiment: "atwood", Dt: DefaultDt, Duration: 20.0,
			Atwood: AtwoodConfig{MassTableKg: 2, MassHangingKg: 1, Gravity: 1.62, TargetM: 1.0},
		},
	},
	"resonance": {
		"a440": {
			Experiment: "resonance",
			Resonance:  ResonanceConfig{FrequencyHz: 440, TubeDiameterM: 0.03, TempC: 20},
		},
		"middle_c": {
			Experiment: "resonance",
			Resonance:  ResonanceConfig{FrequencyHz: 261.63, TubeDiameterM: 0.03, TempC: 20},
		},
		"cold_room": {
			Experiment: "resonance",
			Resonance:  ResonanceConfig{FrequencyHz: 440, TubeDiameterM: 0.03, TempC: 5},
		},
	},
}

func GetPreset(experiment, preset string) *Config {
	group, ok := Presets[experiment]
	if !ok {
		return nil
	}
	cfg, ok := group[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(experiment string) []string {
	group, ok := Presets[experiment]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
