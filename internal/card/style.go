package card

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultPrimary        = "#0284c7"
	DefaultSecondary      = "#0c4a6e"
	DefaultOverlayOpacity = 0.9
	DefaultImageURL       = "https://picsum.photos/800/1000"

	cardWidth  = "400px"
	cardHeight = "500px"
)

// ImageTreatment is the computed presentation of the listing photo.
// Filter and Transform are empty when no image styles were configured.
type ImageTreatment struct {
	Filter    string
	Transform string
	Opacity   float64
}

func (t ImageTreatment) css() CSS {
	c := css("width", "100%", "height", "100%", "object-fit", "cover")
	if t.Filter != "" {
		c = c.set("filter", t.Filter)
	}
	if t.Transform != "" {
		c = c.set("transform", t.Transform)
		c = c.set("transition", "all 0.3s ease")
	}
	return c.set("opacity", num(t.Opacity))
}

// Opaque is the treatment with full opacity; most layouts ignore the
// overlay opacity on the photo itself.
func (t ImageTreatment) Opaque() ImageTreatment {
	t.Opacity = 1
	return t
}

// WithFilter appends a layout-intrinsic filter after the configured ones.
func (t ImageTreatment) WithFilter(extra string) ImageTreatment {
	if t.Filter == "" {
		t.Filter = extra
	} else {
		t.Filter = t.Filter + " " + extra
	}
	return t
}

// Style is the resolved presentation for one render.
type Style struct {
	Primary        string
	Secondary      string
	FontFamily     string
	OverlayOpacity float64
	Image          ImageTreatment
	Layout         LayoutConfig

	badge string
}

// BadgeText returns the configured badge override or def.
func (s Style) BadgeText(def string) string {
	if s.badge != "" {
		return s.badge
	}
	return def
}

// Resolve merges brand defaults and template overrides. Template values win
// over the brand kit, which wins over the built-in palette.
func Resolve(brand *BrandSettings, cfg *TemplateConfig) Style {
	if cfg == nil {
		cfg = &TemplateConfig{}
	}
	var b BrandSettings
	if brand != nil {
		b = *brand
	}

	s := Style{
		Primary:        firstNonEmpty(cfg.PrimaryColor, b.PrimaryColor, DefaultPrimary),
		Secondary:      firstNonEmpty(cfg.SecondaryColor, b.SecondaryColor, DefaultSecondary),
		FontFamily:     firstNonEmpty(string(b.FontFamily), string(FontInter)),
		OverlayOpacity: DefaultOverlayOpacity,
		Layout:         cfg.Layout.apply(DefaultLayout()),
		badge:          cfg.BadgeText,
	}
	if cfg.OverlayOpacity != nil {
		s.OverlayOpacity = *cfg.OverlayOpacity
	}

	s.Image = ImageTreatment{Opacity: s.OverlayOpacity}
	if is := cfg.ImageStyles; is != nil {
		s.Image.Filter = fmt.Sprintf("brightness(%s%%) contrast(%s%%) saturate(%s%%) sepia(%s%%) blur(%spx)",
			num(is.Brightness), num(is.Contrast), num(is.Saturation), num(is.Sepia), num(is.Blur))
		s.Image.Transform = fmt.Sprintf("scale(%s) rotate(%sdeg)", num(is.Zoom), num(is.Rotation))
	}
	return s
}

// alignment returns the text-align and cross-axis alignment for a column.
func (s Style) alignment() CSS {
	switch s.Layout.TextAlign {
	case AlignCenter:
		return css("text-align", "center", "align-items", "center")
	case AlignRight:
		return css("text-align", "right", "align-items", "flex-end")
	default:
		return css("text-align", "left", "align-items", "flex-start")
	}
}

// position returns the main-axis placement of a content column. below-image
// only means something to the custom builder; elsewhere it reads as bottom.
func (s Style) position() CSS {
	switch s.Layout.ContentPosition {
	case PositionTop:
		return css("justify-content", "flex-start", "padding-top", "80px")
	case PositionCenter:
		return css("justify-content", "center")
	default:
		return css("justify-content", "flex-end", "padding-bottom", "32px")
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
