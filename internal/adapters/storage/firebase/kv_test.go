package firebase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"pet-care-assistant/internal/platform/httpclient"
	"pet-care-assistant/internal/ports/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ kv.Store = (*Store)(nil)

// fakeDB imita la API REST: un mapa path => JSON crudo.
type fakeDB struct {
	mu    sync.Mutex
	data  map[string]string
	calls []string
	token string
}

func (f *fakeDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	if f.token != "" && r.URL.Query().Get("auth") != f.token {
		http.Error(w, `{"error":"Permission denied"}`, http.StatusUnauthorized)
		return
	}

	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".json")
	switch r.Method {
	case http.MethodGet:
		if v, ok := f.data[path]; ok {
			_, _ = io.WriteString(w, v)
			return
		}
		// colección: arma objeto con los hijos directos
		kids := map[string]json.RawMessage{}
		for k, v := range f.data {
			if rest, ok := strings.CutPrefix(k, path+"/"); ok && !strings.Contains(rest, "/") {
				kids[rest] = json.RawMessage(v)
			}
		}
		if len(kids) == 0 {
			_, _ = io.WriteString(w, "null")
			return
		}
		_ = json.NewEncoder(w).Encode(kids)
	case http.MethodPut:
		b, _ := io.ReadAll(r.Body)
		f.data[path] = string(b)
		_, _ = w.Write(b)
	case http.MethodDelete:
		for k := range f.data {
			if k == path || strings.HasPrefix(k, path+"/") {
				delete(f.data, k)
			}
		}
		_, _ = io.WriteString(w, "null")
	}
}

func newTestStore(t *testing.T, db *fakeDB, token string) *Store {
	t.Helper()
	srv := httptest.NewServer(db)
	t.Cleanup(srv.Close)

	s, err := New(Options{DatabaseURL: srv.URL + "/", AuthToken: token})
	require.NoError(t, err)
	return s
}

func TestStore_GetDocument(t *testing.T) {
	db := &fakeDB{data: map[string]string{
		"feeding/sensors": `{"cat_food_level":15,"dog_food_level":"60"}`,
	}}
	s := newTestStore(t, db, "")
	ctx := context.Background()

	d, err := s.Get(ctx, "feeding/sensors")
	require.NoError(t, err)
	n, ok := d.Number("dog_food_level")
	assert.True(t, ok)
	assert.Equal(t, 60.0, n)

	d, err = s.Get(ctx, "water/alerts")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestStore_PutChildrenDelete(t *testing.T) {
	db := &fakeDB{data: map[string]string{}}
	s := newTestStore(t, db, "")
	ctx := context.Background()

	require.NoError(t, s.PutChild(ctx, "feeding/meals", "k1", map[string]any{"animal": "cat", "hour": 8}))
	require.NoError(t, s.PutChild(ctx, "feeding/meals/", "k2", map[string]any{"animal": "dog", "hour": 20}))

	kids, err := s.Children(ctx, "feeding/meals")
	require.NoError(t, err)
	require.Len(t, kids, 2)
	assert.Equal(t, "dog", kids["k2"].String("animal"))

	require.NoError(t, s.Delete(ctx, "feeding/meals"))
	kids, err = s.Children(ctx, "feeding/meals")
	require.NoError(t, err)
	assert.Empty(t, kids)

	assert.Contains(t, db.calls, "PUT /feeding/meals/k1.json")
	assert.Contains(t, db.calls, "DELETE /feeding/meals.json")
}

func TestStore_AuthTokenAndErrors(t *testing.T) {
	db := &fakeDB{data: map[string]string{"water/status": `{"is_draining":true}`}, token: "secret"}

	ok := newTestStore(t, db, "secret")
	d, err := ok.Get(context.Background(), "water/status")
	require.NoError(t, err)
	assert.Equal(t, true, d["is_draining"])

	denied := newTestStore(t, db, "wrong")
	_, err = denied.Get(context.Background(), "water/status")
	var httpErr *httpclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Contains(t, err.Error(), "Permission denied")
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{DatabaseURL: "not a url"})
	assert.Error(t, err)
}
