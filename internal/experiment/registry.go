package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/physlab/internal/config"
)

// Descriptor names an available experiment and its default setup.
type Descriptor struct {
	Name        string
	Description string
	Defaults    func() *config.Config
}

type Registry struct {
	experiments map[string]Descriptor
}

func NewRegistry() *Registry {
	r := &Registry{experiments: make(map[string]Descriptor)}

	r.experiments["atwood"] = Descriptor{
		Name:        "atwood",
		Description: "half-Atwood machine: cart, pulley, hanging mass, optional friction",
		Defaults: func() *config.Config {
			cfg := config.DefaultConfig()
			cfg.Experiment = "atwood"
			return cfg
		},
	}
	r.experiments["resonance"] = Descriptor{
		Name:        "resonance",
		Description: "closed resonance tube: first-harmonic length and speed of sound",
		Defaults: func() *config.Config {
			cfg := config.DefaultConfig()
			cfg.Experiment = "resonance"
			return cfg
		},
	}

	return r
}

func (r *Registry) Get(name string) (Descriptor, error) {
	d, ok := r.experiments[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown experiment: %s", name)
	}
	return d, nil
}

func (r *Registry) List() []Descriptor {
	names := make([]string, 0, len(r.experiments))
	for name := range r.experiments {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Descriptor, 0, len(names))
	for _, name := range names {
		out = append(out, r.experiments[name])
	}
	return out
}
