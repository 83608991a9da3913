// Package oracle is the adapter for the external hand-ranking service.
//
// The service answers GET /rank with a numeric rank code plus tie-break
// values. It is treated as strictly optional: every failure mode collapses
// into ErrUnavailable and callers fall back to local evaluation.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/tiltproof/holdembrain/poker"
)

// ErrUnavailable is the single error the client ever returns. Timeouts,
// transport failures, non-2xx statuses and malformed bodies are all folded
// into it.
var ErrUnavailable = errors.New("ranking oracle unavailable")

const (
	// DefaultHardDeadline bounds a single ranking attempt. It sits inside
	// the larger request budget so a slow oracle can never eat the
	// caller's decision clock.
	DefaultHardDeadline = 3 * time.Second

	// DefaultRequestBudget is the outer HTTP client timeout.
	DefaultRequestBudget = 5 * time.Second
)

// Result is the oracle's ranking translated into local types.
type Result struct {
	Category    poker.HandCategory
	Value       int
	SecondValue int
	Kickers     []int
	CardsUsed   []poker.Card
	Cards       []poker.Card
}

// Client calls the ranking service with a bounded deadline.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	clock        quartz.Clock
	logger       *log.Logger
	hardDeadline time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHardDeadline overrides the per-attempt deadline.
func WithHardDeadline(d time.Duration) Option {
	return func(c *Client) {
		c.hardDeadline = d
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a ranking client for the service at baseURL.
func New(baseURL string, logger *log.Logger, clock quartz.Clock, opts ...Option) *Client {
	c := &Client{
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: DefaultRequestBudget},
		clock:        clock,
		logger:       logger.WithPrefix("oracle"),
		hardDeadline: DefaultHardDeadline,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// wireResponse mirrors the service's JSON schema.
type wireResponse struct {
	Rank        int          `json:"rank"`
	Value       int          `json:"value"`
	SecondValue int          `json:"second_value"`
	Kickers     []int        `json:"kickers"`
	CardsUsed   []poker.Card `json:"cards_used"`
	Cards       []poker.Card `json:"cards"`
}

// Rank asks the oracle to rank the given cards. Exactly one attempt is
// made; there are no retries. A response arriving after the hard deadline
// fires is discarded.
func (c *Client) Rank(ctx context.Context, cards []poker.Card) (*Result, error) {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		result *Result
		err    error
	}
	// Buffered so a late attempt can complete and be dropped without
	// leaking the goroutine.
	done := make(chan outcome, 1)

	go func() {
		result, err := c.rankOnce(reqCtx, cards)
		done <- outcome{result: result, err: err}
	}()

	deadlineFired := make(chan struct{})
	timer := c.clock.AfterFunc(c.hardDeadline, func() {
		close(deadlineFired)
	})
	defer timer.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			c.logger.Debug("Ranking attempt failed", "error", out.err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, out.err)
		}
		return out.result, nil
	case <-deadlineFired:
		c.logger.Debug("Ranking attempt exceeded hard deadline", "deadline", c.hardDeadline)
		return nil, fmt.Errorf("%w: deadline %s exceeded", ErrUnavailable, c.hardDeadline)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
	}
}

func (c *Client) rankOnce(ctx context.Context, cards []poker.Card) (*Result, error) {
	encoded, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("encode cards: %w", err)
	}

	u, err := url.Parse(c.baseURL + "/rank")
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("cards", string(encoded))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	category, err := categoryFromCode(wire)
	if err != nil {
		return nil, err
	}

	return &Result{
		Category:    category,
		Value:       wire.Value,
		SecondValue: wire.SecondValue,
		Kickers:     wire.Kickers,
		CardsUsed:   wire.CardsUsed,
		Cards:       wire.Cards,
	}, nil
}

// rankCodeTable maps the service's 0-8 rank codes onto hand categories.
// The scale conflates straight flush and royal flush under code 8;
// categoryFromCode recovers the royal case from the top card.
var rankCodeTable = [...]poker.HandCategory{
	poker.HighCard,
	poker.OnePair,
	poker.TwoPair,
	poker.ThreeOfAKind,
	poker.Straight,
	poker.Flush,
	poker.FullHouse,
	poker.FourOfAKind,
	poker.StraightFlush,
}

func categoryFromCode(wire wireResponse) (poker.HandCategory, error) {
	if wire.Rank < 0 || wire.Rank >= len(rankCodeTable) {
		return 0, fmt.Errorf("rank code %d out of range", wire.Rank)
	}
	category := rankCodeTable[wire.Rank]
	if category == poker.StraightFlush && aceHigh(wire) {
		return poker.RoyalFlush, nil
	}
	return category, nil
}

// aceHigh reports whether a code-8 hand tops out at the ace, i.e. is a
// royal flush on the local scale. The steel wheel also contains an ace but
// ranks five-high, so the ace alone is not enough evidence.
func aceHigh(wire wireResponse) bool {
	if wire.Value != 0 {
		return wire.Value == int(poker.Ace)
	}
	var hasAce, hasKing bool
	for _, card := range wire.CardsUsed {
		switch card.Rank {
		case poker.Ace:
			hasAce = true
		case poker.King:
			hasKing = true
		}
	}
	return hasAce && hasKing
}
