package oracle

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiltproof/holdembrain/poker"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestRankSuccess(t *testing.T) {
	var gotCards string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCards = r.URL.Query().Get("cards")
		w.Write([]byte(`{
			"rank": 6,
			"value": 13,
			"second_value": 9,
			"kickers": [],
			"cards_used": [
				{"rank":"K","suit":"spades"},
				{"rank":"K","suit":"hearts"},
				{"rank":"K","suit":"diamonds"},
				{"rank":"9","suit":"clubs"},
				{"rank":"9","suit":"spades"}
			],
			"cards": []
		}`))
	}))
	defer server.Close()

	client := New(server.URL, testLogger(), quartz.NewReal())
	result, err := client.Rank(context.Background(), poker.MustCards("KsKhKd9c9s"))
	require.NoError(t, err)

	assert.Equal(t, poker.FullHouse, result.Category)
	assert.Equal(t, 13, result.Value)
	assert.Equal(t, 9, result.SecondValue)
	assert.Len(t, result.CardsUsed, 5)
	assert.JSONEq(t, `[
		{"rank":"K","suit":"spades"},
		{"rank":"K","suit":"hearts"},
		{"rank":"K","suit":"diamonds"},
		{"rank":"9","suit":"clubs"},
		{"rank":"9","suit":"spades"}
	]`, gotCards)
}

func TestRankCodeEightAceHighIsRoyal(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected poker.HandCategory
	}{
		{
			name:     "ace high value",
			body:     `{"rank":8,"value":14,"second_value":0,"kickers":[],"cards_used":[],"cards":[]}`,
			expected: poker.RoyalFlush,
		},
		{
			name:     "nine high stays straight flush",
			body:     `{"rank":8,"value":9,"second_value":0,"kickers":[],"cards_used":[],"cards":[]}`,
			expected: poker.StraightFlush,
		},
		{
			name: "steel wheel stays straight flush despite the ace",
			body: `{"rank":8,"value":5,"second_value":0,"kickers":[],"cards_used":[
				{"rank":"A","suit":"hearts"},
				{"rank":"2","suit":"hearts"},
				{"rank":"3","suit":"hearts"},
				{"rank":"4","suit":"hearts"},
				{"rank":"5","suit":"hearts"}
			],"cards":[]}`,
			expected: poker.StraightFlush,
		},
		{
			name: "missing value falls back to cards used",
			body: `{"rank":8,"second_value":0,"kickers":[],"cards_used":[
				{"rank":"A","suit":"spades"},
				{"rank":"K","suit":"spades"},
				{"rank":"Q","suit":"spades"},
				{"rank":"J","suit":"spades"},
				{"rank":"10","suit":"spades"}
			],"cards":[]}`,
			expected: poker.RoyalFlush,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(server.URL, testLogger(), quartz.NewReal())
			result, err := client.Rank(context.Background(), poker.MustCards("AsKsQsJsTs"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Category)
		})
	}
}

func TestRankFailureModes(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"rank": "not a number"}`))
			},
		},
		{
			name: "rank code out of range",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"rank":9,"value":0,"second_value":0,"kickers":[],"cards_used":[],"cards":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := New(server.URL, testLogger(), quartz.NewReal())
			result, err := client.Rank(context.Background(), poker.MustCards("AsKh"))
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestRankConnectionRefused(t *testing.T) {
	client := New("http://127.0.0.1:1", testLogger(), quartz.NewReal())
	_, err := client.Rank(context.Background(), poker.MustCards("AsKh"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRankHardDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(server.URL, testLogger(), quartz.NewReal(),
		WithHardDeadline(20*time.Millisecond))

	start := time.Now()
	_, err := client.Rank(context.Background(), poker.MustCards("AsKh"))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second, "deadline should cut the attempt short")
}

func TestRankDeadlineWithMockClock(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	mockClock := quartz.NewMock(t)
	trap := mockClock.Trap().AfterFunc()
	defer trap.Close()

	client := New(server.URL, testLogger(), mockClock)

	type outcome struct {
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		_, err := client.Rank(context.Background(), poker.MustCards("AsKh"))
		done <- outcome{err: err}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Wait until the client arms its deadline timer, then fire it.
	call := trap.MustWait(ctx)
	call.Release(ctx)
	mockClock.Advance(DefaultHardDeadline).MustWait(ctx)

	out := <-done
	assert.ErrorIs(t, out.err, ErrUnavailable)
}

func TestRankContextCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(server.URL, testLogger(), quartz.NewReal())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Rank(ctx, poker.MustCards("AsKh"))
	assert.ErrorIs(t, err, ErrUnavailable)
}
