package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gmkornilov/crazymoves-backend/internal/session"
	"github.com/gmkornilov/crazymoves-backend/pkg/puzzle"
	"github.com/gmkornilov/crazymoves-backend/pkg/sequence"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	catalogs, err := puzzle.Builtin()
	if err != nil {
		t.Fatalf("failed to load catalogs: %v", err)
	}
	r := gin.New()
	NewSlideshowApi(session.NewMemoryStore(catalogs, session.DefaultIdleTimeout), catalogs).Register(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, out interface{}) int {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: invalid JSON %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

type createResp struct {
	SessionID string        `json:"session_id"`
	View      sequence.View `json:"view"`
}

type errorResp struct {
	Error string        `json:"error"`
	View  sequence.View `json:"view"`
}

func TestSessionLifecycle(t *testing.T) {
	r := setupRouter(t)

	var created createResp
	if code := do(t, r, http.MethodPost, "/sessions", &created); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if created.SessionID == "" || created.View.Title != "Wo...run!" {
		t.Fatalf("unexpected create response %+v", created)
	}
	base := "/sessions/" + created.SessionID

	var view sequence.View
	if code := do(t, r, http.MethodPost, base+"/reveal", &view); code != http.StatusOK {
		t.Fatalf("reveal: expected 200, got %d", code)
	}
	if view.Answer != "Kb1" {
		t.Errorf("expected answer Kb1, got %q", view.Answer)
	}

	var locked errorResp
	if code := do(t, r, http.MethodPost, base+"/unlock", &locked); code != http.StatusConflict {
		t.Fatalf("unlock: expected 409, got %d", code)
	}
	if locked.View.Stage != sequence.StageChess {
		t.Errorf("locked response should carry the chess view, got %+v", locked.View)
	}

	for i := 0; i < 6; i++ {
		do(t, r, http.MethodPost, base+"/next", &view)
	}
	if !view.Completed || !view.CanUnlock {
		t.Fatalf("expected chess completion, got %+v", view)
	}

	if code := do(t, r, http.MethodPost, base+"/unlock", &view); code != http.StatusOK {
		t.Fatalf("unlock: expected 200, got %d", code)
	}
	if view.Stage != sequence.StageFootball || view.Image != "images/football1.png" {
		t.Errorf("unexpected football view %+v", view)
	}

	if code := do(t, r, http.MethodGet, base, &view); code != http.StatusOK || view.Stage != sequence.StageFootball {
		t.Errorf("get: %d %+v", code, view)
	}
}

func TestUnknownSession(t *testing.T) {
	r := setupRouter(t)
	var resp errorResp
	if code := do(t, r, http.MethodPost, "/sessions/nope/next", &resp); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if resp.Error == "" {
		t.Error("expected error message")
	}
}

func TestCatalogListings(t *testing.T) {
	r := setupRouter(t)

	var chess []chessEntry
	if code := do(t, r, http.MethodGet, "/puzzles/chess", &chess); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(chess) != 6 || chess[1].ToMove != puzzle.Black {
		t.Errorf("unexpected chess listing %+v", chess)
	}
	if chess[0].FEN != "1k6/ppp2b1r/8/8/R7/P1q5/P7/K7 w KQkq - 0 1" {
		t.Errorf("unexpected position %s", chess[0].FEN)
	}

	var football []footballEntry
	do(t, r, http.MethodGet, "/puzzles/football", &football)
	if len(football) != 5 || football[4].Image != "images/football5.jpg" {
		t.Errorf("unexpected football listing %+v", football)
	}
}

func TestFen(t *testing.T) {
	r := setupRouter(t)

	var resp map[string]string
	if code := do(t, r, http.MethodGet, "/fen?white=Ka1&black=Kb8", &resp); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp["fen"] != "1k6/8/8/8/8/8/8/K7 w KQkq - 0 1" {
		t.Errorf("unexpected fen %s", resp["fen"])
	}

	if code := do(t, r, http.MethodGet, "/fen?white=Kz1", &resp); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestFenTokenLists(t *testing.T) {
	r := setupRouter(t)
	const want = "1k6/8/8/8/8/8/P7/K7 w KQkq - 0 1"

	for _, path := range []string{
		"/fen?white=Ka1,Pa2&black=Kb8",
		"/fen?white=Ka1&white=Pa2&black=Kb8",
		"/fen?white=Ka1,%20a2&black=Kb8",
	} {
		var resp map[string]string
		if code := do(t, r, http.MethodGet, path, &resp); code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, code)
		}
		if resp["fen"] != want {
			t.Errorf("%s: unexpected fen %s", path, resp["fen"])
		}
	}
}
