package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"spxscan/internal/service/recon"
	"spxscan/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *recon.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(filepath.Join(t.TempDir(), "spxscan.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	engine := recon.NewEngine(st, t.TempDir())

	h := NewHandler(engine, "http://localhost:18030/scanner")
	r := gin.New()
	apiGroup := r.Group("/api")
	h.RegisterRoutes(apiGroup)

	return r, engine
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrderCodeLifecycle(t *testing.T) {
	r, engine := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/order-code", map[string]any{
		"parentSku":   "ABC",
		"productName": "Whey Blend",
		"orderCode":   "OC1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save status=%d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/order-codes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}
	var codes []store.OrderCodeMapping
	if err := json.Unmarshal(w.Body.Bytes(), &codes); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(codes) != 1 || codes[0].ParentSku != "ABC" || codes[0].OrderCode != "OC1" {
		t.Fatalf("unexpected list: %+v", codes)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/order-code/%d", codes[0].ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status=%d body=%s", w.Code, w.Body.String())
	}

	if _, found, _ := engine.Store().GetOrderCode("ABC"); found {
		t.Fatalf("mapping still present after delete")
	}

	// 删除不存在的 id 返回 404 软失败
	w = doJSON(t, r, http.MethodDelete, "/api/order-code/99999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id status=%d, want 404", w.Code)
	}
}

func TestSaveOrderCode_MissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/order-code", map[string]any{
		"parentSku": "ABC",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestSearch_MissingTrackingNumber(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/search", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestSearch_EmptyDirReportsError(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/search", map[string]any{
		"trackingNumber": "PH999",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var resp struct {
		Error   string            `json:"error"`
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == "" {
		t.Fatalf("expected no-files error in body: %s", w.Body.String())
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected empty results")
	}
}

func TestCompare_NoList(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/compare", map[string]any{"list": ""})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "No list provided" {
		t.Fatalf("error=%v", resp["error"])
	}
}

func TestCompare_Partition(t *testing.T) {
	r, engine := newTestRouter(t)

	if err := engine.Store().MarkScanned("PH22222", "JNT"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/compare", map[string]any{
		"list": "PH12345678\nPH22222\n250101AB99",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp recon.CompareResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || resp.ScannedCount != 1 || resp.RemainingCount != 1 {
		t.Fatalf("unexpected partition: %+v", resp)
	}
	if len(resp.OrderIDs) != 1 || resp.OrderIDs[0] != "250101AB99" {
		t.Fatalf("OrderIDs=%v", resp.OrderIDs)
	}
}

func TestScannerQR_ReturnsPNG(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/scanner-qr", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type=%q, want image/png", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("empty png body")
	}
}
