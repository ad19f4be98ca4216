package automation

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/linesim/internal/config"
	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/metrics"
	"github.com/san-kum/linesim/internal/policy"
	"github.com/san-kum/linesim/internal/sim"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. Unset fields fall back to the preset, if
// any, then to the defaults.
type ScenarioStep struct {
	Policy      string   `yaml:"policy"`
	Preset      string   `yaml:"preset"`
	Count       *int     `yaml:"count"`
	Weight      *float32 `yaml:"weight"`
	Color       string   `yaml:"color"`
	Seed        int64    `yaml:"seed"`
	Ticks       int      `yaml:"ticks"`
	SampleEvery int      `yaml:"sample_every"`
}

// StepResult pairs a finished step with the config it ran under.
type StepResult struct {
	Config *config.Config
	Result *sim.Result
	RunID  string
}

// SaveFunc persists one finished step and returns its run id.
type SaveFunc func(cfg *config.Config, result *sim.Result) (string, error)

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// StepConfig resolves step into a validated config. Steps without a seed
// get seed index+1 so a scenario always replays identically.
func StepConfig(step ScenarioStep, index int) (*config.Config, error) {
	base := config.DefaultConfig()
	if step.Policy != "" {
		base.Policy = step.Policy
	}
	if step.Preset != "" {
		pol, err := policy.Parse(base.Policy)
		if err != nil {
			return nil, err
		}
		p := config.ApplyPreset(base, pol, step.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", step.Preset, config.ListPresets(pol))
		}
		base = p
	}

	seed := step.Seed
	if seed == 0 {
		seed = int64(index) + 1
	}

	return config.NewBuilder().
		From(base).
		Count(step.Count).
		Weight(step.Weight).
		Color(step.Color).
		Ticks(step.Ticks).
		Seed(seed).
		Build()
}

// NewSimulator generates the scene of cfg and attaches the default metrics.
// The same cfg always yields the same scene.
func NewSimulator(cfg *config.Config) (*sim.Simulator, error) {
	pol, err := policy.New(cfg.Policy, cfg.PolicyParams())
	if err != nil {
		return nil, err
	}
	store := lines.NewStore()
	if err := store.Generate(rand.New(rand.NewSource(cfg.Seed)), cfg.GenConfig()); err != nil {
		return nil, fmt.Errorf("generate scene: %w", err)
	}
	s := sim.New(store, pol)
	for _, m := range metrics.Default() {
		s.AddMetric(m)
	}
	return s, nil
}

// RunScenario executes all steps in order. save may be nil. On error the
// steps finished so far are returned with it.
func RunScenario(ctx context.Context, scenario *Scenario, save SaveFunc) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := StepConfig(step, i)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		log.Printf("scenario %s: step %d/%d: %s, %d segments", scenario.Name, i+1, len(scenario.Steps), cfg.Policy, cfg.Count)

		s, err := NewSimulator(cfg)
		if err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := s.Run(ctx, sim.Config{
			Ticks:         cfg.Ticks,
			Bounds:        cfg.Bounds(),
			SampleEvery:   step.SampleEvery,
			ValidateState: true,
		})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Config: cfg, Result: result}
		if save != nil {
			if sr.RunID, err = save(cfg, result); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}
