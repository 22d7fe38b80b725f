package renderer

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/listing-studio/internal/card"
	"github.com/yourorg/listing-studio/internal/rendercache"
	"github.com/yourorg/listing-studio/internal/store"
)

func newRenderer() (*Renderer, *store.Store) {
	st := store.New()
	return &Renderer{
		Brand:     st.Brand,
		Templates: st.Templates,
		Cache:     rendercache.New(rendercache.NewMemory(), time.Minute, nil, zerolog.Nop()),
	}, st
}

func TestRender_StandardHTML(t *testing.T) {
	r, _ := newRenderer()
	res, err := r.Render(context.Background(), Request{TemplateID: "just-listed", Property: card.SampleProperty()}, HTML)
	require.NoError(t, err)
	assert.Equal(t, card.JustListed, res.TemplateID)
	assert.False(t, res.Cached)
	assert.True(t, strings.HasPrefix(string(res.Body), `<div data-role="card"`))
	assert.Contains(t, string(res.Body), "$3,850,000")
	assert.Contains(t, string(res.Body), "John Doe")

	again, err := r.Render(context.Background(), Request{TemplateID: "just-listed", Property: card.SampleProperty()}, HTML)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, res.Body, again.Body)
}

func TestRender_JSONMatchesEngine(t *testing.T) {
	r, st := newRenderer()
	res, err := r.Render(context.Background(), Request{TemplateID: "sold", Property: card.SampleProperty()}, JSON)
	require.NoError(t, err)

	var got card.Node
	require.NoError(t, json.Unmarshal(res.Body, &got))
	brand := st.Brand.Get()
	want := card.Render(card.Sold, card.SampleProperty(), &brand, nil)
	if diff := cmp.Diff(want, &got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("json render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_CustomTemplateResolves(t *testing.T) {
	r, st := newRenderer()
	tpl, err := st.Templates.Create(store.CustomTemplate{
		Name:           "Red Sold",
		BaseTemplateID: card.Sold,
		Config:         card.TemplateConfig{PrimaryColor: "#ff0000"},
	})
	require.NoError(t, err)

	res, err := r.Render(context.Background(), Request{TemplateID: tpl.ID, Property: card.SampleProperty()}, JSON)
	require.NoError(t, err)
	assert.Equal(t, card.Sold, res.TemplateID)
	assert.Contains(t, string(res.Body), "#ff0000")
	assert.NotContains(t, string(res.Body), st.Brand.Get().PrimaryColor)
}

func TestRender_RequestConfigWins(t *testing.T) {
	r, st := newRenderer()
	tpl, err := st.Templates.Create(store.CustomTemplate{
		Name:           "Red",
		BaseTemplateID: card.JustListed,
		Config:         card.TemplateConfig{PrimaryColor: "#ff0000"},
	})
	require.NoError(t, err)

	res, err := r.Render(context.Background(), Request{
		TemplateID: tpl.ID,
		Property:   card.SampleProperty(),
		Config:     &card.TemplateConfig{PrimaryColor: "#00ff00"},
	}, JSON)
	require.NoError(t, err)
	assert.Contains(t, string(res.Body), "#00ff00")
	assert.NotContains(t, string(res.Body), "#ff0000")
}

func TestRender_UnknownIsPlaceholder(t *testing.T) {
	r, _ := newRenderer()
	res, err := r.Render(context.Background(), Request{TemplateID: "holographic", Property: card.SampleProperty()}, HTML)
	require.NoError(t, err)
	assert.Contains(t, string(res.Body), "Unknown Template")
}

func TestRender_BrandChangeMissesCache(t *testing.T) {
	r, st := newRenderer()
	req := Request{TemplateID: "modern-minimal", Property: card.SampleProperty()}
	_, err := r.Render(context.Background(), req, HTML)
	require.NoError(t, err)

	b := st.Brand.Get()
	b.AgentName = "Jane Roe"
	_, err = st.Brand.Replace(b)
	require.NoError(t, err)

	res, err := r.Render(context.Background(), req, HTML)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Contains(t, string(res.Body), "Jane Roe")
}

func TestPreviews(t *testing.T) {
	r, _ := newRenderer()
	previews, err := r.Previews(context.Background(), card.SampleProperty())
	require.NoError(t, err)
	require.Len(t, previews, len(card.Templates))
	for i, p := range previews {
		assert.Equal(t, card.Templates[i].ID, p.TemplateID)
		assert.Equal(t, card.Templates[i].Label, p.Label)
		assert.Contains(t, p.HTML, `data-template="`+string(p.TemplateID)+`"`)
	}
}

func TestRender_NoCache(t *testing.T) {
	st := store.New()
	r := &Renderer{Brand: st.Brand, Templates: st.Templates}
	res, err := r.Render(context.Background(), Request{TemplateID: "sold", Property: card.SampleProperty()}, HTML)
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.NotEmpty(t, res.Body)
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("")
	assert.True(t, ok)
	assert.Equal(t, HTML, f)
	f, ok = ParseFormat("json")
	assert.True(t, ok)
	assert.Equal(t, "application/json", f.ContentType())
	_, ok = ParseFormat("png")
	assert.False(t, ok)
}
