package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/artkit/ddvfa"
	"github.com/katalvlaran/artkit/dvfa"
	"github.com/katalvlaran/artkit/fuzzyart"
	"github.com/katalvlaran/artkit/sfam"
	"github.com/katalvlaran/artkit/train"
)

// classifier is the engine surface the commands drive: the train.Model
// contract plus vigilance-gated classification. All four engines
// satisfy it.
type classifier interface {
	train.Model
	Classify(x []float64, fallback bool) (int, error)
}

// experiment mirrors the YAML schema. Scalar fields are pointers so an
// omitted key keeps the library default while an explicit zero is
// still expressible (rho: 0 is a legal vigilance).
type experiment struct {
	Engine   string           `yaml:"engine"`
	FuzzyART *fuzzyartSection `yaml:"fuzzyart"`
	SFAM     *sfamSection     `yaml:"sfam"`
	DVFA     *dvfaSection     `yaml:"dvfa"`
	DDVFA    *ddvfaSection    `yaml:"ddvfa"`
	Train    *trainSection    `yaml:"train"`
}

type fuzzyartSection struct {
	Rho                *float64 `yaml:"rho"`
	Alpha              *float64 `yaml:"alpha"`
	Beta               *float64 `yaml:"beta"`
	Gamma              *float64 `yaml:"gamma"`
	GammaRef           *float64 `yaml:"gamma_ref"`
	GammaNormalization *bool    `yaml:"gamma_normalization"`
	Activation         string   `yaml:"activation"`
}

type sfamSection struct {
	Rho     *float64 `yaml:"rho"`
	Alpha   *float64 `yaml:"alpha"`
	Beta    *float64 `yaml:"beta"`
	Epsilon *float64 `yaml:"epsilon"`
}

type dvfaSection struct {
	RhoLB *float64 `yaml:"rho_lb"`
	RhoUB *float64 `yaml:"rho_ub"`
	Alpha *float64 `yaml:"alpha"`
	Beta  *float64 `yaml:"beta"`
}

type ddvfaSection struct {
	RhoLB              *float64 `yaml:"rho_lb"`
	RhoUB              *float64 `yaml:"rho_ub"`
	Alpha              *float64 `yaml:"alpha"`
	Beta               *float64 `yaml:"beta"`
	Gamma              *float64 `yaml:"gamma"`
	GammaRef           *float64 `yaml:"gamma_ref"`
	GammaNormalization *bool    `yaml:"gamma_normalization"`
	Linkage            string   `yaml:"linkage"`
	Epsilon            *float64 `yaml:"epsilon"`
}

type trainSection struct {
	MaxEpochs *int  `yaml:"max_epochs"`
	Verbose   *bool `yaml:"verbose"`
}

// loadExperiment reads and parses an experiment file. Engine-specific
// range checks stay with the engine constructors; the loader only
// insists on well-formed YAML naming an engine.
func loadExperiment(path string) (experiment, error) {
	var cfg experiment
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Engine == "" {
		return cfg, fmt.Errorf("config %s: missing engine name", path)
	}
	return cfg, nil
}

// newModel builds the configured engine, layering the experiment's
// overrides onto the engine's DefaultOptions.
func newModel(cfg experiment) (classifier, error) {
	switch cfg.Engine {
	case "fuzzyart":
		o := fuzzyart.DefaultOptions()
		if s := cfg.FuzzyART; s != nil {
			overrideFloat(&o.Rho, s.Rho)
			overrideFloat(&o.Alpha, s.Alpha)
			overrideFloat(&o.Beta, s.Beta)
			overrideFloat(&o.Gamma, s.Gamma)
			overrideFloat(&o.GammaRef, s.GammaRef)
			overrideBool(&o.GammaNormalization, s.GammaNormalization)
			if s.Activation != "" {
				a, err := fuzzyart.ParseActivation(s.Activation)
				if err != nil {
					return nil, fmt.Errorf("activation %q: %w", s.Activation, err)
				}
				o.Activation = a
			}
		}
		return fuzzyart.New(o)
	case "sfam":
		o := sfam.DefaultOptions()
		if s := cfg.SFAM; s != nil {
			overrideFloat(&o.Rho, s.Rho)
			overrideFloat(&o.Alpha, s.Alpha)
			overrideFloat(&o.Beta, s.Beta)
			overrideFloat(&o.Epsilon, s.Epsilon)
		}
		return sfam.New(o)
	case "dvfa":
		o := dvfa.DefaultOptions()
		if s := cfg.DVFA; s != nil {
			overrideFloat(&o.RhoLB, s.RhoLB)
			overrideFloat(&o.RhoUB, s.RhoUB)
			overrideFloat(&o.Alpha, s.Alpha)
			overrideFloat(&o.Beta, s.Beta)
		}
		return dvfa.New(o)
	case "ddvfa":
		o := ddvfa.DefaultOptions()
		if s := cfg.DDVFA; s != nil {
			overrideFloat(&o.RhoLB, s.RhoLB)
			overrideFloat(&o.RhoUB, s.RhoUB)
			overrideFloat(&o.Alpha, s.Alpha)
			overrideFloat(&o.Beta, s.Beta)
			overrideFloat(&o.Gamma, s.Gamma)
			overrideFloat(&o.GammaRef, s.GammaRef)
			overrideBool(&o.GammaNormalization, s.GammaNormalization)
			overrideFloat(&o.Epsilon, s.Epsilon)
			if s.Linkage != "" {
				l, err := ddvfa.ParseLinkage(s.Linkage)
				if err != nil {
					return nil, fmt.Errorf("linkage %q: %w", s.Linkage, err)
				}
				o.Linkage = l
			}
		}
		return ddvfa.New(o)
	}
	return nil, fmt.Errorf("unknown engine %q (want fuzzyart, sfam, dvfa or ddvfa)", cfg.Engine)
}

// trainOptions layers the experiment's train section onto train defaults.
func trainOptions(cfg experiment) train.Options {
	o := train.DefaultOptions()
	if s := cfg.Train; s != nil {
		if s.MaxEpochs != nil {
			o.MaxEpochs = *s.MaxEpochs
		}
		overrideBool(&o.Verbose, s.Verbose)
	}
	return o
}

func overrideFloat(dst, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func overrideBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}
