package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/rendercache"
	"github.com/yourorg/listing-studio/internal/renderer"
	"github.com/yourorg/listing-studio/internal/store"
)

func newRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	st := store.New()
	require.NoError(t, st.LoadDefaultSeed(time.Now()))
	rend := &renderer.Renderer{
		Brand:     st.Brand,
		Templates: st.Templates,
		Cache:     rendercache.New(rendercache.NewMemory(), time.Minute, nil, zerolog.Nop()),
	}
	r := chi.NewRouter()
	RegisterRender(r, RenderDeps{Renderer: rend, Listings: st.Listings})
	return r, st
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw)))
	return rec
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRender_HTMLThenCached(t *testing.T) {
	h, _ := newRouter(t)
	body := map[string]any{
		"templateId": "sold",
		"property":   map[string]any{"address": "1 Main St", "price": "$300,000", "beds": 2, "baths": 1, "sqft": 900},
	}

	rec := post(t, h, "/v1/render", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "sold", rec.Header().Get("X-Template-Id"))
	assert.Equal(t, "miss", rec.Header().Get("X-Cache"))
	assert.Contains(t, rec.Body.String(), "1 Main St")
	first := rec.Body.String()

	rec = post(t, h, "/v1/render", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hit", rec.Header().Get("X-Cache"))
	assert.Equal(t, first, rec.Body.String())
}

func TestRender_JSONTree(t *testing.T) {
	h, _ := newRouter(t)
	rec := post(t, h, "/v1/render?format=json", map[string]any{
		"templateId": "just-listed",
		"property":   map[string]any{"address": "1 Main St", "price": "$300,000"},
		"config":     map[string]any{"badgeText": "COMING SOON"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var n card.Node
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, "just-listed", n.Attr("data-template"))
	assert.Contains(t, n.TextContent(), "COMING SOON")
}

func TestRender_UnknownTemplateIsPlaceholder(t *testing.T) {
	h, _ := newRouter(t)
	rec := post(t, h, "/v1/render?format=json", map[string]any{
		"templateId": "does-not-exist",
		"property":   map[string]any{"address": "1 Main St", "price": "$1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var n card.Node
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Contains(t, n.TextContent(), "Unknown Template")
}

func TestRender_BadRequests(t *testing.T) {
	h, _ := newRouter(t)

	rec := post(t, h, "/v1/render", map[string]any{"property": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/render", bytes.NewReader([]byte("{"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h, "/v1/render?format=svg", map[string]any{"templateId": "sold"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRender_RejectsInvalidConfig(t *testing.T) {
	h, _ := newRouter(t)
	rec := post(t, h, "/v1/render", map[string]any{
		"templateId": "custom-builder",
		"property":   map[string]any{"address": "1 Main St", "price": "$1"},
		"config": map[string]any{
			"primaryColor":   "#fff; position:fixed; background:url(x)",
			"overlayOpacity": 3,
			"imageStyles":    map[string]any{"brightness": 900},
			"layout":         map[string]any{"headerStyle": "neon"},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Error)
	var fields []string
	for _, f := range body.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"config.primaryColor", "config.overlayOpacity",
		"config.imageStyles.brightness", "config.layout.headerStyle",
	}, fields)
}

func TestRender_TextAlignmentFromRequest(t *testing.T) {
	h, _ := newRouter(t)
	rec := post(t, h, "/v1/render?format=json", map[string]any{
		"templateId": "custom-builder",
		"property":   map[string]any{"address": "1 Main St", "price": "$300,000"},
		"config":     map[string]any{"layout": map[string]any{"textAlignment": "center"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var n card.Node
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	panel := n.Find(card.RoleTextPanel)
	require.NotNil(t, panel)
	assert.Equal(t, "center", panel.Style.Get("text-align"))
}

func TestTemplateRender(t *testing.T) {
	h, st := newRouter(t)

	rec := get(h, "/v1/templates/luxury-serif/render")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), card.SampleProperty().Address)

	rec = get(h, "/v1/templates/luxury-serif/render?listing=l2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "500 Ocean Dr")

	rec = get(h, "/v1/templates/luxury-serif/render?listing=nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	custom, err := st.Templates.Create(store.CustomTemplate{
		Name:           "Night",
		BaseTemplateID: card.OpenHouse,
		Config:         card.TemplateConfig{BadgeText: "TONIGHT ONLY"},
	})
	require.NoError(t, err)
	rec = get(h, "/v1/templates/"+custom.ID+"/render")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "open-house", rec.Header().Get("X-Template-Id"))
	assert.Contains(t, rec.Body.String(), "TONIGHT ONLY")
}

func TestTemplateRender_Page(t *testing.T) {
	h, _ := newRouter(t)
	rec := get(h, "/v1/templates/classic-card/render?format=page")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Classic</title>")
	assert.Contains(t, out, `data-template="classic-card"`)
}
