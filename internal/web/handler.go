// Package web serves a board over HTTP. Every user action is a form post
// that becomes one board event; the page is re-rendered from the resulting
// state.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
	"github.com/alexisbeaulieu97/bingoboard/internal/config"
	"github.com/alexisbeaulieu97/bingoboard/internal/logger"
	"github.com/alexisbeaulieu97/bingoboard/internal/web/components"
	boarderrors "github.com/alexisbeaulieu97/bingoboard/pkg/errors"
)

// BoardHandler owns one board session. Requests are serialised so events
// apply strictly in arrival order.
type BoardHandler struct {
	mu    sync.Mutex
	state board.State
	log   *logger.Logger
}

// NewBoardHandler serves state. log may be nil.
func NewBoardHandler(state board.State, log *logger.Logger) *BoardHandler {
	return &BoardHandler{state: state, log: log.Component("web")}
}

// NewRouter mounts h behind the standard middleware stack.
func NewRouter(h *BoardHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes wires the board endpoints onto r.
func (h *BoardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.page)
	r.Get("/state.json", h.snapshot)
	r.Post("/apply", h.apply)
	r.Post("/reset", h.reset)
	r.Post("/theme", h.toggleTheme)
	r.Route("/cards/{n}", func(r chi.Router) {
		r.Post("/select", h.selectCard)
		r.Post("/drag", h.dragCard)
	})
	r.Route("/cells/{id}", func(r chi.Router) {
		r.Post("/click", h.clickCell)
		r.Post("/drop", h.dropCard)
	})
}

// State returns the current board.
func (h *BoardHandler) State() board.State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *BoardHandler) dispatch(ev board.Event, fields map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.log.Event(ev.Kind(), fields)
	h.state = h.state.Update(ev)
}

func (h *BoardHandler) page(w http.ResponseWriter, r *http.Request) {
	render(w, r, components.Page(newBoardPage(h.State())))
}

func (h *BoardHandler) snapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.State().Snapshot())
}

type gridForm struct {
	Rows int `validate:"min=1,max=99"`
	Cols int `validate:"min=1,max=26"`
}

func (h *BoardHandler) apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	var form gridForm
	for _, f := range []struct {
		name string
		dst  *int
	}{{"rows", &form.Rows}, {"cols", &form.Cols}} {
		raw := strings.TrimSpace(r.FormValue(f.name))
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.reject(w, boarderrors.NewInputError(f.name, raw, errors.New("not a number")))
			return
		}
		*f.dst = n
	}
	if err := config.Validator().Struct(form); err != nil {
		h.reject(w, config.ConvertValidationError(err))
		return
	}

	h.dispatch(board.Apply{Config: board.GridConfig{Rows: form.Rows, Cols: form.Cols}},
		map[string]any{"rows": form.Rows, "cols": form.Cols})
	redirectHome(w, r)
}

func (h *BoardHandler) reset(w http.ResponseWriter, r *http.Request) {
	h.dispatch(board.Reset{}, nil)
	redirectHome(w, r)
}

func (h *BoardHandler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	h.dispatch(board.ToggleTheme{}, nil)
	redirectHome(w, r)
}

func (h *BoardHandler) selectCard(w http.ResponseWriter, r *http.Request) {
	card, ok := h.cardParam(w, r)
	if !ok {
		return
	}
	h.dispatch(board.CardSelect{Card: card.Source}, map[string]any{"card": string(card.Source)})
	redirectHome(w, r)
}

func (h *BoardHandler) dragCard(w http.ResponseWriter, r *http.Request) {
	card, ok := h.cardParam(w, r)
	if !ok {
		return
	}
	h.dispatch(board.CardDragStart{Card: card.Source}, map[string]any{"card": string(card.Source)})
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) clickCell(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cellParam(w, r)
	if !ok {
		return
	}
	h.dispatch(board.CellClick{ID: id}, map[string]any{"cell": id})
	redirectHome(w, r)
}

// dropCard accepts the dragged payload in the "card" field: a tray index,
// or any other non-empty image reference.
func (h *BoardHandler) dropCard(w http.ResponseWriter, r *http.Request) {
	id, ok := h.cellParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	raw := strings.TrimSpace(r.FormValue("card"))
	if raw == "" {
		h.reject(w, boarderrors.NewInputError("card", raw, errors.New("drop payload is empty")))
		return
	}
	ref := board.CardRef(raw)
	if index, err := strconv.Atoi(raw); err == nil {
		card, found := h.State().Tray().Card(index)
		if !found {
			h.reject(w, boarderrors.NewInputError("card", raw, fmt.Errorf("tray holds %d cards", h.State().Tray().Len())))
			return
		}
		ref = card.Source
	}

	h.dispatch(board.CellDrop{ID: id, Card: ref}, map[string]any{"cell": id, "card": string(ref)})
	redirectHome(w, r)
}

func (h *BoardHandler) cardParam(w http.ResponseWriter, r *http.Request) (board.Card, bool) {
	raw := chi.URLParam(r, "n")
	index, err := strconv.Atoi(raw)
	if err != nil {
		h.reject(w, boarderrors.NewInputError("card", raw, errors.New("not a number")))
		return board.Card{}, false
	}
	card, ok := h.State().Tray().Card(index)
	if !ok {
		http.NotFound(w, r)
		return board.Card{}, false
	}
	return card, true
}

func (h *BoardHandler) cellParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, ok := h.State().Cell(id); !ok {
		http.NotFound(w, r)
		return "", false
	}
	return id, true
}

func (h *BoardHandler) reject(w http.ResponseWriter, err error) {
	h.log.Warn(err.Error())
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Hx-Request") == "true" || r.Header.Get("X-Requested-With") == "fetch" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
