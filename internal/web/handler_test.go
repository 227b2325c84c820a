package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bingoboard/internal/board"
)

func newTestServer(t *testing.T, rows, cols int) (*BoardHandler, *httptest.Server) {
	t.Helper()
	h := NewBoardHandler(board.New(board.GridConfig{Rows: rows, Cols: cols}, board.DefaultTray(), board.Theme{}), nil)
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return h, srv
}

// noRedirect keeps 303 responses visible to the test.
func noRedirect(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

func post(t *testing.T, srv *httptest.Server, path string, form url.Values) *http.Response {
	t.Helper()
	client := &http.Client{CheckRedirect: noRedirect}
	resp, err := client.PostForm(srv.URL+path, form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func cell(t *testing.T, h *BoardHandler, id string) board.CellState {
	t.Helper()
	st, ok := h.State().Cell(id)
	require.True(t, ok)
	return st
}

func TestPageRendersGridAndTray(t *testing.T) {
	t.Parallel()
	_, srv := newTestServer(t, 2, 3)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	html := body.String()

	assert.Contains(t, html, `grid-template-columns: repeat(4, 100px); grid-template-rows: 50px repeat(2, 100px);`)
	assert.Equal(t, 6, strings.Count(html, `class="cell interactive-cell`))
	assert.Equal(t, 1+3+2, strings.Count(html, `class="cell header-cell"`))
	assert.Contains(t, html, `action="/cells/C2/click"`)
	assert.Equal(t, 9, strings.Count(html, `draggable="true"`))
	assert.Contains(t, html, `img/image (9).jpg`)
	assert.Contains(t, html, "🌙</span> Dark")
}

func TestSelectThenClick(t *testing.T) {
	t.Parallel()
	h, srv := newTestServer(t, 3, 3)

	resp := post(t, srv, "/cards/2/select", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	post(t, srv, "/cells/B2/click", nil)

	b2 := cell(t, h, "B2")
	assert.Equal(t, board.CellOccupied, b2.Status)
	assert.Equal(t, board.CardRef("img/image (2).jpg"), b2.Card)
	assert.True(t, cell(t, h, "A1").Empty())
	_, pending := h.State().Selection()
	assert.False(t, pending)
}

func TestDropThenClick(t *testing.T) {
	t.Parallel()
	h, srv := newTestServer(t, 2, 2)

	post(t, srv, "/cells/A1/drop", url.Values{"card": {"5"}})
	assert.Equal(t, board.CardRef("img/image (5).jpg"), cell(t, h, "A1").Card)

	post(t, srv, "/cells/A1/click", nil)
	a1 := cell(t, h, "A1")
	assert.Equal(t, board.CellCrossed, a1.Status)
	assert.Empty(t, a1.Card)
}

func TestDropAcceptsRawReference(t *testing.T) {
	t.Parallel()
	h, srv := newTestServer(t, 1, 1)

	post(t, srv, "/cells/A1/drop", url.Values{"card": {"https://example.test/cat.png"}})
	assert.Equal(t, board.CardRef("https://example.test/cat.png"), cell(t, h, "A1").Card)
}

func TestDragClearsSelection(t *testing.T) {
	t.Parallel()
	h, srv := newTestServer(t, 1, 1)

	post(t, srv, "/cards/1/select", nil)
	resp := post(t, srv, "/cards/3/drag", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, pending := h.State().Selection()
	assert.False(t, pending)
}

func TestApplyResetAndTheme(t *testing.T) {
	t.Parallel()
	h, srv := newTestServer(t, 2, 2)

	post(t, srv, "/apply", url.Values{"rows": {"4"}, "cols": {"6"}})
	assert.Equal(t, board.GridConfig{Rows: 4, Cols: 6}, h.State().Config())

	post(t, srv, "/cells/F4/click", nil)
	require.True(t, cell(t, h, "F4").Crossed())

	post(t, srv, "/reset", nil)
	assert.True(t, cell(t, h, "F4").Empty())
	assert.Equal(t, board.GridConfig{Rows: 4, Cols: 6}, h.State().Config())

	post(t, srv, "/theme", nil)
	assert.True(t, h.State().Theme().Dark)
}

func TestRejectedInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		path   string
		form   url.Values
		status int
	}{
		{"non numeric rows", "/apply", url.Values{"rows": {"x"}, "cols": {"2"}}, http.StatusBadRequest},
		{"too many columns", "/apply", url.Values{"rows": {"2"}, "cols": {"27"}}, http.StatusBadRequest},
		{"unknown cell", "/cells/Z9/click", nil, http.StatusNotFound},
		{"unknown card", "/cards/10/select", nil, http.StatusNotFound},
		{"non numeric card", "/cards/abc/select", nil, http.StatusBadRequest},
		{"empty drop", "/cells/A1/drop", url.Values{"card": {""}}, http.StatusBadRequest},
		{"drop of missing tray index", "/cells/A1/drop", url.Values{"card": {"12"}}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, srv := newTestServer(t, 2, 2)
			before := h.State().Snapshot()

			resp := post(t, srv, tc.path, tc.form)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, before, h.State().Snapshot())
		})
	}
}

func TestStateJSON(t *testing.T) {
	t.Parallel()
	_, srv := newTestServer(t, 1, 2)

	post(t, srv, "/cells/B1/click", nil)

	resp, err := http.Get(srv.URL + "/state.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	var snap board.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, 1, snap.Rows)
	assert.Equal(t, 2, snap.Cols)
	assert.Equal(t, "light", snap.Theme)
	assert.Equal(t, map[string]string{"A1": "empty", "B1": "crossed"}, snap.Cells)
}

func TestFetchRequestsGetNoContent(t *testing.T) {
	t.Parallel()
	_, srv := newTestServer(t, 1, 1)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/cells/A1/click", nil)
	require.NoError(t, err)
	req.Header.Set("X-Requested-With", "fetch")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
