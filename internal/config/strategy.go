package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tiltproof/holdembrain/internal/betting"
	"github.com/tiltproof/holdembrain/internal/strength"
	"github.com/tiltproof/holdembrain/poker"
)

// Strategy is the tunable strategy configuration, loadable from an HCL
// file. Unset fields keep the built-in defaults.
type Strategy struct {
	Classifier *ClassifierSettings `hcl:"classifier,block"`
	Betting    *BettingSettings    `hcl:"betting,block"`
}

// ClassifierSettings tunes the heads-up widening thresholds.
type ClassifierSettings struct {
	HeadsUpDecentMinRank      int `hcl:"heads_up_decent_min_rank,optional"`
	HeadsUpDecentSuitedGap    int `hcl:"heads_up_decent_suited_gap,optional"`
	HeadsUpDecentConnectedGap int `hcl:"heads_up_decent_connected_gap,optional"`
	HeadsUpPlayableMinRank    int `hcl:"heads_up_playable_min_rank,optional"`
	HeadsUpPlayableGap        int `hcl:"heads_up_playable_gap,optional"`
}

// BettingSettings tunes bet sizing and bluffing.
type BettingSettings struct {
	BluffFrequency  float64 `hcl:"bluff_frequency,optional"`
	MaxCallFraction float64 `hcl:"max_call_fraction,optional"`
}

// LoadStrategy loads a strategy file. A missing file yields the defaults.
func LoadStrategy(filename string) (*Strategy, error) {
	if filename == "" {
		return &Strategy{}, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &Strategy{}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse strategy file: %s", diags.Error())
	}

	var strategy Strategy
	if diags := gohcl.DecodeBody(file.Body, nil, &strategy); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode strategy file: %s", diags.Error())
	}
	return &strategy, nil
}

// ClassifierConfig resolves the classifier thresholds, falling back to the
// defaults for unset fields.
func (s *Strategy) ClassifierConfig() strength.Config {
	cfg := strength.DefaultConfig()
	if s.Classifier == nil {
		return cfg
	}
	c := s.Classifier
	if c.HeadsUpDecentMinRank != 0 {
		cfg.HeadsUpDecentMinRank = poker.Rank(c.HeadsUpDecentMinRank)
	}
	if c.HeadsUpDecentSuitedGap != 0 {
		cfg.HeadsUpDecentSuitedGap = c.HeadsUpDecentSuitedGap
	}
	if c.HeadsUpDecentConnectedGap != 0 {
		cfg.HeadsUpDecentConnectedGap = c.HeadsUpDecentConnectedGap
	}
	if c.HeadsUpPlayableMinRank != 0 {
		cfg.HeadsUpPlayableMinRank = poker.Rank(c.HeadsUpPlayableMinRank)
	}
	if c.HeadsUpPlayableGap != 0 {
		cfg.HeadsUpPlayableGap = c.HeadsUpPlayableGap
	}
	return cfg
}

// BettingConfig resolves the betting knobs, falling back to the defaults
// for unset fields.
func (s *Strategy) BettingConfig() betting.Config {
	cfg := betting.DefaultConfig()
	if s.Betting == nil {
		return cfg
	}
	if s.Betting.BluffFrequency != 0 {
		cfg.BluffFrequency = s.Betting.BluffFrequency
	}
	if s.Betting.MaxCallFraction != 0 {
		cfg.MaxCallFraction = s.Betting.MaxCallFraction
	}
	return cfg
}
