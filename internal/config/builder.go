package config

// Builder assembles a Config from optional command-line values. Unset
// values fall back to DefaultConfig.
type Builder struct {
	cfg *Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// From starts the builder from an existing config instead of the defaults.
func (b *Builder) From(cfg *Config) *Builder {
	c := *cfg
	b.cfg = &c
	return b
}

func (b *Builder) Policy(name string) *Builder {
	if name != "" {
		b.cfg.Policy = name
	}
	return b
}

func (b *Builder) Count(n *int) *Builder {
	if n != nil {
		b.cfg.Count = *n
	}
	return b
}

func (b *Builder) Weight(w *float32) *Builder {
	if w != nil {
		b.cfg.Weight = *w
	}
	return b
}

func (b *Builder) Color(c string) *Builder {
	if c != "" {
		b.cfg.Color = c
	}
	return b
}

func (b *Builder) Ticks(n int) *Builder {
	if n > 0 {
		b.cfg.Ticks = n
	}
	return b
}

func (b *Builder) Seed(seed int64) *Builder {
	b.cfg.Seed = seed
	return b
}

func (b *Builder) Build() (*Config, error) {
	c := *b.cfg
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
