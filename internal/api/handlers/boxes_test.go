package handlers

import (
	"box-shipping-service/internal/adapters/gateway"
	"box-shipping-service/internal/api/dto"
	"box-shipping-service/internal/store"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestHandler() *BoxHandler {
	return &BoxHandler{
		Store:    store.New(gateway.NewMockGateway()),
		Notifier: store.NewNotifier(time.Minute),
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestAddBoxEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Collection, "/api/boxes",
		`{"receiver_name": "Alice", "weight": 2, "box_color": "#ff0000", "country": "China"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}

	var res dto.BoxResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if res.ShippingCost != 23.06 {
		t.Errorf("shipping_cost = %v, want 23.06", res.ShippingCost)
	}
	if res.BoxColor != "(255, 0, 0)" {
		t.Errorf("box_color = %q, want (255, 0, 0)", res.BoxColor)
	}
	if res.ShippingCostDisplay != "$23.06" {
		t.Errorf("shipping_cost_display = %q", res.ShippingCostDisplay)
	}
}

func TestAddBoxEndpointValidation(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Collection, "/api/boxes",
		`{"receiver_name": "", "weight": 0, "country": ""}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var res dto.ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	for _, f := range []string{"receiverName", "weight", "country"} {
		if _, ok := res.Fields[f]; !ok {
			t.Errorf("expected field error for %s, got %v", f, res.Fields)
		}
	}

	if got := h.Store.Snapshot().Stats.TotalBoxes; got != 0 {
		t.Errorf("TotalBoxes = %d, want 0", got)
	}
}

func TestAddBoxEndpointUnknownCountry(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Collection, "/api/boxes",
		`{"receiver_name": "Bob", "weight": 1, "country": "Narnia"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddBoxEndpointRejectsUnknownFields(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Collection, "/api/boxes", `{"receiver_name": "A", "bogus": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListBoxesEndpoint(t *testing.T) {
	h := newTestHandler()
	postJSON(t, h.Collection, "/api/boxes",
		`{"receiver_name": "Alice", "weight": 2, "box_color": "#ff0000", "country": "China"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/boxes", nil)
	rec := httptest.NewRecorder()
	h.Collection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ListBoxesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(res.Boxes) != 1 {
		t.Fatalf("boxes = %d, want 1", len(res.Boxes))
	}
	if res.Stats.TotalBoxes != 1 || res.Stats.TotalWeight != 2 {
		t.Errorf("stats = %+v", res.Stats)
	}
}

func TestRemoveBoxEndpointIsIdempotent(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h.Collection, "/api/boxes",
		`{"receiver_name": "Alice", "weight": 2, "country": "China"}`)

	var box dto.BoxResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &box); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/boxes/"+box.ID, nil)
		del := httptest.NewRecorder()
		h.Item(del, req)
		if del.Code != http.StatusNoContent {
			t.Fatalf("delete #%d status = %d, want 204", i+1, del.Code)
		}
	}

	if got := h.Store.Snapshot().Stats.TotalBoxes; got != 0 {
		t.Errorf("TotalBoxes = %d, want 0", got)
	}
}

func TestUpdateBoxEndpointRecomputesCost(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h.Collection, "/api/boxes",
		`{"receiver_name": "Alice", "weight": 2, "country": "China"}`)

	var box dto.BoxResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &box); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/boxes/"+box.ID, strings.NewReader(`{"weight": 10}`))
	upd := httptest.NewRecorder()
	h.Item(upd, req)

	if upd.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", upd.Code, upd.Body.String())
	}

	var updated dto.BoxResponse
	if err := json.Unmarshal(upd.Body.Bytes(), &updated); err != nil {
		t.Fatal(err)
	}
	if updated.ShippingCost != 115.30 {
		t.Errorf("shipping_cost = %v, want 115.30", updated.ShippingCost)
	}
}

func TestUpdateBoxEndpointMissingID(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/api/boxes/ghost", strings.NewReader(`{"weight": 1}`))
	rec := httptest.NewRecorder()
	h.Item(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestValidateEndpointSingleField(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Validate, "/api/boxes/validate",
		`{"receiver_name": "John", "fields": ["receiverName"]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.ValidateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Errorf("expected valid for name-only check, got %v", res.Fields)
	}

	rec = postJSON(t, h.Validate, "/api/boxes/validate",
		`{"receiver_name": "John", "fields": ["weight"]}`)

	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Error("expected weight error on weight-only check")
	}
}

func TestCollectionMethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPut, "/api/boxes", nil)
	rec := httptest.NewRecorder()
	h.Collection(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, POST" {
		t.Errorf("Allow = %q", allow)
	}
}
