package config

var Presets = map[string]map[string]*Config{
	"move": {
		"classic": {
			Policy: "move", Count: 200, Weight: 4,
		},
		"dense": {
			Policy: "move", Count: 1000, Weight: 1,
			Generation: GenerationConfig{XMin: -499, XMax: 499, YMin: -399, YMax: 399, LengthMin: 20, LengthMax: 120, RateMax: 6},
		},
		"slow": {
			Policy: "move", Count: 100, Weight: 6,
			Generation: GenerationConfig{XMin: -499, XMax: 499, YMin: -399, YMax: 399, LengthMin: 200, LengthMax: 200, RateMax: 1},
		},
	},
	"sweep": {
		"diamond": {
			Policy: "sweep", Count: 200, Weight: 4,
			Sweep: SweepConfig{Direction: "up", Threshold: 50, Step: 2},
		},
		"jitter": {
			Policy: "sweep", Count: 400, Weight: 2,
			Sweep: SweepConfig{Direction: "left", Threshold: 5, Step: 4},
		},
	},
	"extend": {
		"breathe": {
			Policy: "extend", Count: 200, Weight: 4,
			Pulse: PulseConfig{MaxStep: 50},
		},
		"flicker": {
			Policy: "extend", Count: 300, Weight: 2,
			Pulse: PulseConfig{MaxStep: 10},
		},
	},
}

// GetPreset returns the named preset merged over DefaultConfig, or nil.
func GetPreset(pol, preset string) *Config {
	return ApplyPreset(DefaultConfig(), pol, preset)
}

// ApplyPreset returns a copy of base with the named preset merged over it,
// or nil if there is no such preset. Fields the preset leaves unset keep
// their values from base.
func ApplyPreset(base *Config, pol, preset string) *Config {
	policyPresets, ok := Presets[pol]
	if !ok {
		return nil
	}
	p, ok := policyPresets[preset]
	if !ok {
		return nil
	}
	c := *base
	return merge(&c, p)
}

func ListPresets(pol string) []string {
	policyPresets, ok := Presets[pol]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(policyPresets))
	for name := range policyPresets {
		names = append(names, name)
	}
	return names
}

func merge(base, p *Config) *Config {
	base.Policy = p.Policy
	if p.Count != 0 {
		base.Count = p.Count
	}
	if p.Weight != 0 {
		base.Weight = p.Weight
	}
	if p.Generation != (GenerationConfig{}) {
		base.Generation = p.Generation
	}
	if p.Sweep != (SweepConfig{}) {
		base.Sweep = p.Sweep
	}
	if p.Pulse != (PulseConfig{}) {
		base.Pulse = p.Pulse
	}
	return base
}
