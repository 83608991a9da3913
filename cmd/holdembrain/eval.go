package main

import (
	"fmt"
	"strings"

	"github.com/tiltproof/holdembrain/poker"
)

// EvalCmd evaluates a hand given as compact card notation.
type EvalCmd struct {
	Cards []string `arg:"" help:"Cards in compact notation, e.g. 'As Ks Qs Js Ts' or 'AhKd'"`
}

func (cmd *EvalCmd) Run() error {
	cards, err := poker.ParseCards(strings.Join(cmd.Cards, " "))
	if err != nil {
		return err
	}
	if len(cards) < 2 || len(cards) > 7 {
		return fmt.Errorf("expected 2-7 cards, got %d", len(cards))
	}

	result := poker.Evaluate(cards)
	fmt.Println(result.Description)
	if len(result.CardsUsed) > 0 {
		used := make([]string, len(result.CardsUsed))
		for i, c := range result.CardsUsed {
			used[i] = c.String()
		}
		fmt.Printf("using %s\n", strings.Join(used, " "))
	}
	return nil
}
