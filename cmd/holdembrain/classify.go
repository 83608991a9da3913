package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tiltproof/holdembrain/internal/config"
	"github.com/tiltproof/holdembrain/internal/ranker"
	"github.com/tiltproof/holdembrain/internal/strength"
	"github.com/tiltproof/holdembrain/poker"
)

// ClassifyCmd prints the strength tier for hole cards and an optional board.
type ClassifyCmd struct {
	Hole     string `arg:"" help:"Two hole cards, e.g. 'AsKh'"`
	Board    string `arg:"" optional:"" help:"Zero to five community cards, e.g. 'Qs7h2d'"`
	HeadsUp  bool   `help:"Classify for heads-up play"`
	Strategy string `help:"Strategy HCL file" type:"path" placeholder:"FILE"`
}

func (cmd *ClassifyCmd) Run() error {
	hole, err := poker.ParseCards(cmd.Hole)
	if err != nil {
		return err
	}
	if len(hole) != 2 {
		return fmt.Errorf("expected exactly 2 hole cards, got %d", len(hole))
	}

	var board []poker.Card
	if cmd.Board != "" {
		if board, err = poker.ParseCards(cmd.Board); err != nil {
			return err
		}
	}

	strategy, err := config.LoadStrategy(cmd.Strategy)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr)
	handRanker := ranker.New(nil, logger)
	classifier := strength.New(strategy.ClassifierConfig(), handRanker, logger)

	ctx := context.Background()
	result, _ := handRanker.Evaluate(ctx, hole, board)
	tier := classifier.Classify(ctx, hole, board, cmd.HeadsUp)

	fmt.Printf("%s: %s\n", result.Description, tier)
	return nil
}
