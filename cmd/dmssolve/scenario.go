package main

import (
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/necrashter/dmsgo/graph"
	"github.com/necrashter/dmsgo/problem"
)

// busSpec, branchSpec, teamSpec, and travelSpec are the YAML-facing
// mirrors of problem's Input sub-structures; Scenario.build converts them.
type busSpec struct {
	Pf        float64 `mapstructure:"pf" yaml:"pf"`
	Lat       float64 `mapstructure:"lat" yaml:"lat"`
	Lon       float64 `mapstructure:"lon" yaml:"lon"`
	Connected bool    `mapstructure:"connected" yaml:"connected"`
}

type branchSpec struct {
	A int `mapstructure:"a" yaml:"a"`
	B int `mapstructure:"b" yaml:"b"`
}

type resourceSpec struct {
	Kind string `mapstructure:"kind" yaml:"kind"`
}

type teamSpec struct {
	Bus *int     `mapstructure:"bus" yaml:"bus"`
	Lat *float64 `mapstructure:"lat" yaml:"lat"`
	Lon *float64 `mapstructure:"lon" yaml:"lon"`
}

type travelSpec struct {
	Kind       string  `mapstructure:"kind" yaml:"kind"` // "greatCircle" or "constant"
	Multiplier float64 `mapstructure:"multiplier" yaml:"multiplier"`
	Divider    float64 `mapstructure:"divider" yaml:"divider"`
	Value      float64 `mapstructure:"value" yaml:"value"`
}

type optimizationSpec struct {
	Indexer     string `mapstructure:"indexer" yaml:"indexer"`
	Actions     string `mapstructure:"actions" yaml:"actions"`
	Transitions string `mapstructure:"transitions" yaml:"transitions"`
	Explorer    string `mapstructure:"explorer" yaml:"explorer"`
}

// Scenario is the top-level shape of a dmssolve YAML input file.
type Scenario struct {
	Name         string           `mapstructure:"name" yaml:"name"`
	Buses        []busSpec        `mapstructure:"buses" yaml:"buses"`
	Branches     []branchSpec     `mapstructure:"branches" yaml:"branches"`
	Resources    []resourceSpec   `mapstructure:"resources" yaml:"resources"`
	Teams        []teamSpec       `mapstructure:"teams" yaml:"teams"`
	Horizon      int              `mapstructure:"horizon" yaml:"horizon"`
	PfOverride   *float64         `mapstructure:"pfOverride" yaml:"pfoverride"`
	Partitions   []int            `mapstructure:"partitions" yaml:"partitions"`
	TravelTime   travelSpec       `mapstructure:"travelTime" yaml:"traveltime"`
	Optimization optimizationSpec `mapstructure:"optimization" yaml:"optimization"`
	MemoryLimit  uint64           `mapstructure:"memoryLimit" yaml:"memorylimit"`
}

// FromYaml loads and resolves a dmssolve scenario file into a
// problem.Input, ready for problem.Solve. It follows the
// viper-then-yaml.v3 double-pass pattern: viper locates and reads the
// file (so future config sources - env vars, flags - can be layered in
// without touching this function), then the raw map is re-marshaled and
// unmarshaled through yaml.v3 into Scenario. A value of the wrong type is
// an error; a key that matches no field is ignored. viper lowercases every
// key, so Scenario's yaml tags are lowercase.
func FromYaml(path string) (problem.Input, error) {
	vp := viper.New()
	vp.SetConfigFile(filepath.Base(path))
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return problem.Input{}, err
	}

	raw, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return problem.Input{}, err
	}

	scenario := &Scenario{}
	if err := yaml.Unmarshal(raw, scenario); err != nil {
		return problem.Input{}, err
	}

	return scenario.build(), nil
}

func (s *Scenario) build() problem.Input {
	buses := make([]problem.BusInput, len(s.Buses))
	for i, b := range s.Buses {
		buses[i] = problem.BusInput{Pf: b.Pf, Lat: b.Lat, Lon: b.Lon, Connected: b.Connected}
	}
	branches := make([]graph.Branch, len(s.Branches))
	for i, b := range s.Branches {
		branches[i] = graph.Branch{A: b.A, B: b.B}
	}
	resources := make([]problem.ResourceInput, len(s.Resources))
	for i, r := range s.Resources {
		resources[i] = problem.ResourceInput{Kind: r.Kind}
	}
	teams := make([]problem.TeamInput, len(s.Teams))
	for i, t := range s.Teams {
		teams[i] = problem.TeamInput{BusIndex: t.Bus, Lat: t.Lat, Lon: t.Lon}
	}

	travel := problem.TravelTimeSpec{Multiplier: 1, Divider: 1}
	if s.TravelTime.Kind == "constant" {
		travel.Kind = problem.Constant
		travel.Value = s.TravelTime.Value
	} else {
		travel.Kind = problem.GreatCircle
		if s.TravelTime.Multiplier != 0 {
			travel.Multiplier = s.TravelTime.Multiplier
		}
		if s.TravelTime.Divider != 0 {
			travel.Divider = s.TravelTime.Divider
		}
	}

	return problem.Input{
		Buses:      buses,
		Branches:   branches,
		Resources:  resources,
		Teams:      teams,
		Horizon:    s.Horizon,
		PfOverride: s.PfOverride,
		Partitions: s.Partitions,
		TravelTime: travel,
		Optimization: problem.OptimizationNames{
			Indexer:     s.Optimization.Indexer,
			Actions:     s.Optimization.Actions,
			Transitions: s.Optimization.Transitions,
			Explorer:    s.Optimization.Explorer,
		},
		MemoryLimit: s.MemoryLimit,
	}
}
