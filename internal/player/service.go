package player

import (
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/tiltproof/holdembrain/internal/game"
)

// Service implements the platform's player protocol: a single POST
// endpoint multiplexed on the "action" form field.
type Service struct {
	brain   *Brain
	logger  *log.Logger
	version string
	router  *mux.Router
}

// NewService creates the HTTP service around a brain.
func NewService(brain *Brain, logger *log.Logger, version string) *Service {
	s := &Service{
		brain:   brain,
		logger:  logger.WithPrefix("player"),
		version: version,
	}

	s.router = mux.NewRouter()
	s.router.HandleFunc("/", s.handleAction).Methods(http.MethodPost)
	s.router.HandleFunc("/", s.handleHealth).Methods(http.MethodGet)
	return s
}

// Handler returns the HTTP handler for the service.
func (s *Service) Handler() http.Handler {
	return s.router
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, s.version)
}

// handleAction answers the platform's action posts. A decision request
// with a payload we cannot read answers 0 (fold/check); the decision path
// never returns a server error.
func (s *Service) handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.Warn("Malformed form payload", "error", err)
		io.WriteString(w, "0")
		return
	}

	action := r.PostFormValue("action")
	switch action {
	case "bet_request":
		s.handleBetRequest(w, r)
	case "showdown":
		w.WriteHeader(http.StatusOK)
	case "version":
		io.WriteString(w, s.version)
	default:
		s.logger.Warn("Unknown action", "action", action)
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (s *Service) handleBetRequest(w http.ResponseWriter, r *http.Request) {
	state, err := game.Parse([]byte(r.PostFormValue("game_state")))
	if err != nil {
		s.logger.Warn("Unreadable game state; folding", "error", err)
		io.WriteString(w, "0")
		return
	}

	amount := s.brain.BetRequest(r.Context(), state)
	fmt.Fprintf(w, "%d", amount)
}
