package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/listing-studio/internal/card"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestStore returns a store with a clock that advances one minute per
// call and sequential ids.
func newTestStore() *Store {
	var mu sync.Mutex
	tick, seq := 0, 0
	return New(
		WithClock(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			tick++
			return epoch.Add(time.Duration(tick) * time.Minute)
		}),
		WithIDs(func() string {
			mu.Lock()
			defer mu.Unlock()
			seq++
			return fmt.Sprintf("id%d", seq)
		}),
	)
}

func maple() Listing {
	return Listing{PropertyDetails: card.PropertyDetails{
		Address: "123 Maple Avenue, Beverly Hills",
		Price:   "$2,450,000",
		Beds:    4,
		Baths:   3.5,
		Sqft:    3200,
	}}
}

func fields(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	out := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, f.Field)
	}
	return out
}

func TestListings_AddDefaults(t *testing.T) {
	s := newTestStore()
	l, err := s.Listings.Add(maple())
	require.NoError(t, err)
	assert.Equal(t, "id1", l.ID)
	assert.Equal(t, StatusActive, l.Status)
	assert.Equal(t, epoch.Add(time.Minute), l.DateAdded)
}

func TestListings_AddRequiresAddressAndPrice(t *testing.T) {
	s := newTestStore()
	_, err := s.Listings.Add(Listing{PropertyDetails: card.PropertyDetails{Address: "  ", Beds: 2}})
	assert.ElementsMatch(t, []string{"address", "price"}, fields(t, err))
	assert.Equal(t, 0, s.Listings.Len())

	_, err = s.Listings.Add(Listing{PropertyDetails: card.PropertyDetails{Address: "x", Price: "$1", Beds: -1}, Status: "gone"})
	assert.ElementsMatch(t, []string{"beds", "status"}, fields(t, err))
}

func TestListings_UpdateKeepsDateAdded(t *testing.T) {
	s := newTestStore()
	l, err := s.Listings.Add(maple())
	require.NoError(t, err)

	upd := maple()
	upd.Price = "$2,300,000"
	upd.Status = StatusSold
	got, err := s.Listings.Update(l.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, l.DateAdded, got.DateAdded)
	assert.Equal(t, "$2,300,000", got.Price)
	assert.Equal(t, StatusSold, got.Status)

	_, err = s.Listings.Update("missing", upd)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListings_Delete(t *testing.T) {
	s := newTestStore()
	l, _ := s.Listings.Add(maple())
	require.NoError(t, s.Listings.Delete(l.ID))
	_, err := s.Listings.Get(l.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Listings.Delete(l.ID), ErrNotFound)
}

func TestListings_Search(t *testing.T) {
	s := newTestStore()
	first, _ := s.Listings.Add(maple())
	ocean := Listing{PropertyDetails: card.PropertyDetails{Address: "500 Ocean Dr, Miami", Price: "$1,100,000"}, Status: StatusPending}
	second, _ := s.Listings.Add(ocean)

	ids := func(ls []Listing) []string {
		out := []string{}
		for _, l := range ls {
			out = append(out, l.ID)
		}
		return out
	}

	assert.Equal(t, []string{second.ID, first.ID}, ids(s.Listings.Search("")))
	assert.Equal(t, []string{first.ID}, ids(s.Listings.Search("maple ave")))
	assert.Equal(t, []string{second.ID}, ids(s.Listings.Search("OCEAN DRIVE")))
	assert.Equal(t, []string{second.ID}, ids(s.Listings.Search("pend")))
	assert.Empty(t, s.Listings.Search("nowhere"))
}

func TestListings_ReturnsCopies(t *testing.T) {
	s := newTestStore()
	l := maple()
	l.Features = []string{"Pool"}
	added, _ := s.Listings.Add(l)
	added.Features[0] = "Changed"

	got, _ := s.Listings.Get(added.ID)
	assert.Equal(t, []string{"Pool"}, got.Features)
}

func TestPosts_SaveStatusAndOrder(t *testing.T) {
	s := newTestStore()
	at := epoch.Add(24 * time.Hour)

	a, err := s.Posts.Save(SocialPost{Platforms: []string{"instagram"}, TemplateID: "just-listed", ScheduledAt: &at})
	require.NoError(t, err)
	assert.Equal(t, PostScheduled, a.Status)

	b, err := s.Posts.Save(SocialPost{Platforms: []string{"facebook"}, TemplateID: "sold"})
	require.NoError(t, err)
	assert.Equal(t, PostPublished, b.Status)

	list := s.Posts.List()
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)

	a.Content = "edited"
	a.ScheduledAt = nil
	a, err = s.Posts.Save(a)
	require.NoError(t, err)
	assert.Equal(t, PostPublished, a.Status)
	list = s.Posts.List()
	assert.Equal(t, []string{b.ID, a.ID}, []string{list[0].ID, list[1].ID})
	assert.Equal(t, "edited", list[1].Content)

	assert.Equal(t, DashboardStats{Total: 2, Published: 2}, s.Posts.Stats())
}

func TestListings_SetDescription(t *testing.T) {
	s := newTestStore()
	l, err := s.Listings.Add(Listing{PropertyDetails: card.PropertyDetails{Address: "1 Elm", Price: "$1", Description: "old"}})
	require.NoError(t, err)

	got, err := s.Listings.SetDescription(l.ID, "old", "new")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Description)

	_, err = s.Listings.SetDescription(l.ID, "old", "newer")
	assert.ErrorIs(t, err, ErrConflict)
	cur, err := s.Listings.Get(l.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", cur.Description)

	_, err = s.Listings.SetDescription("missing", "", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPosts_Validation(t *testing.T) {
	s := newTestStore()
	_, err := s.Posts.Save(SocialPost{TemplateID: "sold"})
	assert.Equal(t, []string{"platforms"}, fields(t, err))

	_, err = s.Posts.Save(SocialPost{Platforms: []string{"myspace"}})
	assert.ElementsMatch(t, []string{"platforms[0]", "templateId"}, fields(t, err))
	assert.Empty(t, s.Posts.List())
}

func TestTemplates_CreateAndResolve(t *testing.T) {
	s := newTestStore()
	created, err := s.Templates.Create(CustomTemplate{
		Name:           "Brand Sold",
		BaseTemplateID: card.Sold,
		Config:         card.TemplateConfig{PrimaryColor: "#ff0000"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "custom-"))

	id, cfg := s.Templates.Resolve(created.ID)
	assert.Equal(t, card.Sold, id)
	require.NotNil(t, cfg)
	assert.Equal(t, "#ff0000", cfg.PrimaryColor)

	id, cfg = s.Templates.Resolve("modern-minimal")
	assert.Equal(t, card.ModernMinimal, id)
	assert.Nil(t, cfg)

	require.NoError(t, s.Templates.Delete(created.ID))
	assert.ErrorIs(t, s.Templates.Delete(created.ID), ErrNotFound)
	assert.Empty(t, s.Templates.List())
}

func TestTemplates_Validation(t *testing.T) {
	s := newTestStore()
	bad := card.PanelMinimal
	pos := card.ContentPosition("middle")
	opacity := 1.5
	_, err := s.Templates.Create(CustomTemplate{
		BaseTemplateID: "nope",
		Config: card.TemplateConfig{
			PrimaryColor:   "red",
			OverlayOpacity: &opacity,
			Layout:         &card.LayoutOverride{HeaderStyle: &bad, ContentPosition: &pos},
		},
	})
	assert.ElementsMatch(t, []string{
		"name", "baseTemplateId", "config.primaryColor", "config.overlayOpacity",
		"config.layout.headerStyle", "config.layout.contentPosition",
	}, fields(t, err))
}

func TestTemplates_ZeroOpacityIsValid(t *testing.T) {
	s := newTestStore()
	zero := 0.0
	_, err := s.Templates.Create(CustomTemplate{Name: "Clear", BaseTemplateID: card.CustomBuilder, Config: card.TemplateConfig{OverlayOpacity: &zero}})
	assert.NoError(t, err)
}

func TestTemplates_ImageStyleRanges(t *testing.T) {
	s := newTestStore()
	is := card.DefaultImageStyles()
	is.Brightness = 900
	is.Zoom = 50
	is.Blur = -3
	_, err := s.Templates.Create(CustomTemplate{
		Name:           "Blown out",
		BaseTemplateID: card.JustListed,
		Config:         card.TemplateConfig{ImageStyles: &is},
	})
	assert.ElementsMatch(t, []string{
		"config.imageStyles.brightness", "config.imageStyles.zoom", "config.imageStyles.blur",
	}, fields(t, err))
	assert.Empty(t, s.Templates.List())
}

func TestTemplates_DecodesWireNames(t *testing.T) {
	var tpl CustomTemplate
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Centered",
		"baseTemplateId": "custom-builder",
		"config": {"layout": {"textAlignment": "center"}, "imageStyles": {"zoom": 1.2}}
	}`), &tpl))

	s := newTestStore()
	created, err := s.Templates.Create(tpl)
	require.NoError(t, err)

	want := card.DefaultImageStyles()
	want.Zoom = 1.2
	require.NotNil(t, created.Config.ImageStyles)
	assert.Equal(t, want, *created.Config.ImageStyles)

	st := card.Resolve(nil, &created.Config)
	assert.Equal(t, card.AlignCenter, st.Layout.TextAlign)
}

func TestValidateConfig(t *testing.T) {
	neon := card.PanelStyle("neon")
	justify := card.TextAlign("justify")
	err := ValidateConfig(card.TemplateConfig{
		PrimaryColor: "#fff; position:fixed",
		Layout:       &card.LayoutOverride{HeaderStyle: &neon, TextAlign: &justify},
	})
	assert.ElementsMatch(t, []string{
		"config.primaryColor", "config.layout.headerStyle", "config.layout.textAlignment",
	}, fields(t, err))

	assert.NoError(t, ValidateConfig(card.TemplateConfig{PrimaryColor: "#00aa00"}))
}

func TestBrandKit(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, DefaultBrand(), s.Brand.Get())
	assert.Equal(t, "John Doe", s.Brand.Get().AgentName)

	b := DefaultBrand()
	b.PrimaryColor = "#123"
	_, err := s.Brand.Replace(b)
	require.NoError(t, err)
	assert.Equal(t, "#123", s.Brand.Get().PrimaryColor)

	b.PrimaryColor = "blue"
	b.FontFamily = "Comic Sans"
	_, err = s.Brand.Replace(b)
	assert.ElementsMatch(t, []string{"primaryColor", "fontFamily"}, fields(t, err))
	assert.Equal(t, "#123", s.Brand.Get().PrimaryColor)
}

func TestMedia_PutNormalises(t *testing.T) {
	s := newTestStore()
	src := image.NewRGBA(image.Rect(0, 0, 2000, 1000))
	for x := 0; x < 2000; x++ {
		src.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := s.Media.Put(&buf)
	require.NoError(t, err)
	assert.Equal(t, MaxImageWidth, img.Width)
	assert.Equal(t, 540, img.Height)
	assert.Equal(t, "/media/"+img.ID, img.URL)
	assert.Equal(t, []byte{0xFF, 0xD8}, img.Data[:2])

	got, err := s.Media.Get(img.ID)
	require.NoError(t, err)
	assert.Equal(t, img.Data, got.Data)
}

func TestMedia_RejectsNonImage(t *testing.T) {
	s := newTestStore()
	_, err := s.Media.Put(strings.NewReader("not an image"))
	assert.Equal(t, []string{"file"}, fields(t, err))
}

// pngWithSize encodes a 1x1 PNG and rewrites its IHDR to claim w x h, so
// only a header-reading decoder will accept it.
func pngWithSize(t *testing.T, w, h uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	b := buf.Bytes()
	// 8-byte signature, 4-byte length, "IHDR", then width and height.
	binary.BigEndian.PutUint32(b[16:20], w)
	binary.BigEndian.PutUint32(b[20:24], h)
	binary.BigEndian.PutUint32(b[29:33], crc32.ChecksumIEEE(b[12:29]))
	return b
}

func TestMedia_RejectsOversizedDimensions(t *testing.T) {
	s := newTestStore()
	_, err := s.Media.Put(bytes.NewReader(pngWithSize(t, 30000, 30000)))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{{Field: "file", Rule: "max_pixels"}}, verr.Fields)
}

func TestMedia_RejectsOversizedUpload(t *testing.T) {
	s := newTestStore()
	_, err := s.Media.Put(bytes.NewReader(make([]byte, MaxUploadBytes+1)))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "max_size", verr.Fields[0].Rule)
}

func TestLoadDefaultSeed(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.LoadDefaultSeed(epoch))

	l1, err := s.Listings.Get("l1")
	require.NoError(t, err)
	assert.Equal(t, "123 Maple Avenue, Beverly Hills", l1.Address)
	assert.Equal(t, 3.5, l1.Baths)
	assert.Equal(t, StatusActive, l1.Status)

	l2, err := s.Listings.Get("l2")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, l2.Status)

	p, err := s.Posts.Get("1")
	require.NoError(t, err)
	assert.Equal(t, PostScheduled, p.Status)
	require.NotNil(t, p.ScheduledAt)
	assert.Equal(t, epoch.Add(24*time.Hour), *p.ScheduledAt)
	assert.Equal(t, "8800 Sunset Blvd, LA", p.Property.Address)
	assert.Equal(t, DashboardStats{Total: 1, Scheduled: 1}, s.Posts.Stats())
}

func TestLoadSeed_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown field":   "listings:\n  - address: x\n    price: $1\n    garage: 2\n",
		"invalid listing": "listings:\n  - address: x\n",
		"bad schedule":    "posts:\n  - platforms: [instagram]\n    templateId: sold\n    scheduleIn: soon\n",
		"bad brand":       "brand:\n  primaryColor: teal\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestStore()
			assert.Error(t, s.LoadSeed(strings.NewReader(doc), epoch))
		})
	}
}

func TestLoadSeed_Empty(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.LoadSeed(strings.NewReader(""), epoch))
	assert.Equal(t, 0, s.Listings.Len())
}
