package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-care-assistant/internal/adapters/storage/memory"
	"pet-care-assistant/internal/platform/config"
	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/router"
)

func newServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	if err := router.SeedDemo(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Logger:       logger.NewTest(t),
		KV:           store,
		StoreTimeout: 2 * time.Second,
	}))
	t.Cleanup(ts.Close)
	return ts, store
}

func TestHTTP_EndToEnd_AskAndGenerate(t *testing.T) {
	ts, store := newServer(t)

	// 1) Salud
	{
		st, body := doReq(t, ts.URL, "GET", "/health", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("expected 200 ok, got %d %q", st, body)
		}
	}

	// 2) Pregunta sin body => summary
	{
		st, body := doReq(t, ts.URL, "POST", "/ai/ask", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 ask, got %d body=%s", st, body)
		}
		var out map[string]any
		mustDecode(t, body, &out)
		if out["intent"] != "summary" {
			t.Fatalf("expected summary intent, got %v", out["intent"])
		}
		// demo: comida de perro al 18% => medium
		if out["severity"] != "medium" {
			t.Fatalf("expected medium severity, got %v", out["severity"])
		}
	}

	// 3) Perfiles
	for _, p := range []map[string]any{
		{"name": "Luna", "type": "cat", "weight": 4},
		{"name": "Rex", "type": "dog", "weight": 10},
	} {
		st, body := doReq(t, ts.URL, "POST", "/profiles", p)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create profile, got %d body=%s", st, body)
		}
	}

	// 4) Generar comidas
	{
		st, body := doReq(t, ts.URL, "POST", "/ai/meals/generate", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 generate, got %d body=%s", st, body)
		}
		var rep struct {
			OK  bool `json:"ok"`
			Cat struct {
				GramsPerDay  int `json:"grams_per_day"`
				GramsPerMeal int `json:"grams_per_meal"`
			} `json:"cat"`
			CreatedCount int `json:"created_count"`
		}
		mustDecode(t, body, &rep)
		if !rep.OK || rep.CreatedCount != 4 {
			t.Fatalf("unexpected report %s", body)
		}
		if rep.Cat.GramsPerDay != 66 || rep.Cat.GramsPerMeal != 33 {
			t.Fatalf("expected cat 66/33, got %d/%d", rep.Cat.GramsPerDay, rep.Cat.GramsPerMeal)
		}
	}

	// 5) Las comidas quedaron en el store del dispositivo
	{
		kids, err := store.Children(context.Background(), "feeding/meals")
		if err != nil || len(kids) != 4 {
			t.Fatalf("expected 4 stored meals, got %d (%v)", len(kids), err)
		}

		st, body := doReq(t, ts.URL, "GET", "/meals", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 meals, got %d", st)
		}
		var list []map[string]any
		mustDecode(t, body, &list)
		if len(list) != 4 || list[0]["animal"] != "cat" || list[3]["animal"] != "dog" {
			t.Fatalf("unexpected meal order: %s", body)
		}
	}

	// 6) Pregunta en árabe
	{
		st, body := doReq(t, ts.URL, "POST", "/ai/ask", map[string]any{"question": "كم أكل الكلب؟"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 ask, got %d", st)
		}
		var out map[string]any
		mustDecode(t, body, &out)
		if out["intent"] != "dog_food" || !strings.Contains(out["answer"].(string), "الكلب") {
			t.Fatalf("unexpected arabic answer: %s", body)
		}
	}
}

func TestHTTP_Metrics(t *testing.T) {
	ts, _ := newServer(t)

	doReq(t, ts.URL, "GET", "/ai/snapshot", nil)

	st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !bytes.Contains(body, []byte(`petcare_http_requests_total{route="/ai/snapshot",status="200"}`)) {
		t.Fatalf("missing request counter in metrics output")
	}
}

func TestHTTP_InvalidJSON(t *testing.T) {
	ts, _ := newServer(t)

	req, _ := http.NewRequest("POST", ts.URL+"/ai/ask", strings.NewReader(`{"question":`))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestOpenBackends_Memory(t *testing.T) {
	cfg := config.Config{Store: config.StoreConfig{Backend: config.BackendMemory, Timeout: time.Second}}

	b, err := router.OpenBackends(context.Background(), cfg, logger.NewTest(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	if b.DB != nil {
		t.Fatalf("expected no postgres without dsn")
	}
	d, err := b.KV.Get(context.Background(), "feeding/sensors")
	if err != nil || d == nil {
		t.Fatalf("expected demo readings, got %v (%v)", d, err)
	}
}

func TestOpenBackends_RedisUnreachable(t *testing.T) {
	cfg := config.Config{
		Store: config.StoreConfig{Backend: config.BackendRedis, Timeout: time.Second},
		Redis: config.RedisConfig{Address: "127.0.0.1:1"},
	}
	if _, err := router.OpenBackends(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for unreachable redis")
	}
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
