package handler

import (
	"net/http"
	"testing"
)

func createCatway(t *testing.T, e *testEnv, number int, catwayType, state string) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/catways", map[string]any{
		"catwayNumber": number,
		"catwayType":   catwayType,
		"catwayState":  state,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed to create catway %d: status %d, body %s", number, rec.Code, rec.Body.String())
	}
}

func TestCatwayLifecycle(t *testing.T) {
	e := newTestEnv(t)

	createCatway(t, e, 4, "long", "bon état")

	// Duplicate number
	rec := e.do(t, http.MethodPost, "/catways", map[string]any{
		"catwayNumber": 4,
		"catwayType":   "short",
		"catwayState":  "autre",
	})
	wantMessage(t, rec, http.StatusConflict, "Ce numéro de catway existe déjà.")

	// Read back
	rec = e.do(t, http.MethodGet, "/catways/4", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := decode(t, rec)
	if body["catwayNumber"] != float64(4) || body["catwayType"] != "long" {
		t.Errorf("unexpected catway: %v", body)
	}

	// Update the state
	rec = e.do(t, http.MethodPut, "/catways/4", map[string]string{"catwayState": "peinture à refaire"})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body %s", rec.Code, rec.Body.String())
	}
	updated := decode(t, rec)
	if updated["catwayState"] != "peinture à refaire" {
		t.Error("state not updated")
	}
	if updated["catwayType"] != "long" {
		t.Error("type changed by a state update")
	}

	// Delete, then confirm it is gone
	rec = e.do(t, http.MethodDelete, "/catways/4", nil)
	wantMessage(t, rec, http.StatusOK, "Catway supprimé avec succès.")

	rec = e.do(t, http.MethodGet, "/catways/4", nil)
	wantMessage(t, rec, http.StatusNotFound, "Catway non trouvé.")

	rec = e.do(t, http.MethodDelete, "/catways/4", nil)
	wantMessage(t, rec, http.StatusNotFound, "Catway non trouvé.")
}

func TestCatwayListSorted(t *testing.T) {
	e := newTestEnv(t)

	createCatway(t, e, 3, "long", "bon état")
	createCatway(t, e, 1, "short", "bon état")
	createCatway(t, e, 2, "long", "bon état")

	rec := e.do(t, http.MethodGet, "/catways", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	list := decodeList(t, rec)
	if len(list) != 3 {
		t.Fatalf("expected 3 catways, got %d", len(list))
	}
	for i, want := range []float64{1, 2, 3} {
		if list[i]["catwayNumber"] != want {
			t.Errorf("position %d: got %v, want %v", i, list[i]["catwayNumber"], want)
		}
	}
}

func TestCatwayCreateValidation(t *testing.T) {
	e := newTestEnv(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing number", map[string]any{"catwayType": "long", "catwayState": "bon état"}},
		{"missing type", map[string]any{"catwayNumber": 1, "catwayState": "bon état"}},
		{"unknown type", map[string]any{"catwayNumber": 1, "catwayType": "medium", "catwayState": "bon état"}},
		{"missing state", map[string]any{"catwayNumber": 1, "catwayType": "long"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := e.do(t, http.MethodPost, "/catways", tt.payload)
			wantMessage(t, rec, http.StatusBadRequest, "Données invalides pour le catway.")
		})
	}
}

func TestCatwayNonNumericID(t *testing.T) {
	e := newTestEnv(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rec := e.do(t, method, "/catways/abc", nil)
		wantMessage(t, rec, http.StatusBadRequest, "L'id doit être un nombre.")
	}

	rec := e.do(t, http.MethodPut, "/catways/abc", map[string]string{"catwayState": "x"})
	wantMessage(t, rec, http.StatusBadRequest, "L'id doit être un nombre.")
}

func TestCatwayUpdateEmptyState(t *testing.T) {
	e := newTestEnv(t)

	createCatway(t, e, 4, "long", "bon état")

	rec := e.do(t, http.MethodPut, "/catways/4", map[string]string{})
	wantMessage(t, rec, http.StatusBadRequest, "catwayState est obligatoire.")
}

func TestCatwayUpdateUnknownNumber(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, http.MethodPut, "/catways/99", map[string]string{"catwayState": "bon état"})
	wantMessage(t, rec, http.StatusNotFound, "Catway non trouvé.")
}
