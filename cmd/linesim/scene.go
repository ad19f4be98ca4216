package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/linesim/internal/config"
	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/policy"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// sceneFlags holds the values shared by every command that builds a scene,
// plus a few per-command extras.
type sceneFlags struct {
	policy     string
	count      int
	weight     float32
	color      string
	seed       int64
	ticks      int
	configFile string
	preset     string

	sampleEvery int
	theme       string
	metric      string
	output      string
	runs        int
}

func (f *sceneFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.policy, "policy", "p", config.DefaultPolicy, "update policy ("+joinNames()+")")
	fs.IntVarP(&f.count, "count", "n", lines.DefaultCount, "number of segments")
	fs.Float32VarP(&f.weight, "weight", "w", config.DefaultWeight, "stroke weight")
	fs.StringVar(&f.color, "color", config.DefaultColor, "stroke color (#rgb or #rrggbb)")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.IntVar(&f.ticks, "ticks", config.DefaultTicks, "ticks to simulate")
	fs.StringVar(&f.configFile, "config", "", "config file path (yaml)")
	fs.StringVar(&f.preset, "preset", "", "use preset configuration")
}

func joinNames() string {
	return strings.Join(policy.Names(), ", ")
}

// resolveConfig layers config file, preset and explicit flags, in that
// order, over the defaults.
func resolveConfig(cmd *cobra.Command, f *sceneFlags) (*config.Config, error) {
	flags := cmd.Flags()
	base := config.DefaultConfig()

	if f.configFile != "" {
		cfg, err := config.Load(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		base = cfg
	}

	if f.preset != "" {
		name := base.Policy
		if flags.Changed("policy") {
			name = f.policy
		}
		pol, err := policy.Parse(name)
		if err != nil {
			return nil, err
		}
		p := config.ApplyPreset(base, pol, f.preset)
		if p == nil {
			available := config.ListPresets(pol)
			sort.Strings(available)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, available)
		}
		base = p
	}

	b := config.NewBuilder().From(base)
	if flags.Changed("policy") {
		b.Policy(f.policy)
	}
	if flags.Changed("count") {
		b.Count(&f.count)
	}
	if flags.Changed("weight") {
		b.Weight(&f.weight)
	}
	if flags.Changed("color") {
		b.Color(f.color)
	}
	if flags.Changed("ticks") {
		b.Ticks(f.ticks)
	}
	switch {
	case flags.Changed("seed"):
		b.Seed(f.seed)
	case base.Seed == 0:
		b.Seed(time.Now().UnixNano())
	}

	return b.Build()
}
