// Package card renders listing data onto social-media card layouts.
//
// Render is a pure function of its inputs: the same template id, property,
// brand kit and template config always produce an identical tree.
package card

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

type TemplateID string

const (
	JustListed        TemplateID = "just-listed"
	OpenHouse         TemplateID = "open-house"
	Sold              TemplateID = "sold"
	PriceDrop         TemplateID = "price-drop"
	ModernMinimal     TemplateID = "modern-minimal"
	LuxurySerif       TemplateID = "luxury-serif"
	BoldGrid          TemplateID = "bold-grid"
	GeometricPop      TemplateID = "geometric-pop"
	FeatureSplit      TemplateID = "feature-split"
	StoryPortrait     TemplateID = "story-portrait"
	ClassicCard       TemplateID = "classic-card"
	UnderContract     TemplateID = "under-contract"
	NewPrice          TemplateID = "new-price"
	NeighborhoodFocus TemplateID = "neighborhood-focus"
	SidebarListing    TemplateID = "sidebar-listing"
	DiagonalFeature   TemplateID = "diagonal-feature"
	SoftLuxury        TemplateID = "soft-luxury"
	CustomBuilder     TemplateID = "custom-builder"
)

type TemplateInfo struct {
	ID    TemplateID `json:"id"`
	Label string     `json:"label"`
}

// Templates is the gallery in display order.
var Templates = []TemplateInfo{
	{CustomBuilder, "Blank Canvas"},
	{JustListed, "Just Listed"},
	{SidebarListing, "Sidebar Modern"},
	{DiagonalFeature, "Diagonal Accent"},
	{SoftLuxury, "Soft Luxury"},
	{ModernMinimal, "Minimalist"},
	{LuxurySerif, "Luxury"},
	{StoryPortrait, "Story Style"},
	{BoldGrid, "Bold Grid"},
	{FeatureSplit, "Split View"},
	{OpenHouse, "Open House"},
	{GeometricPop, "Geometric"},
	{ClassicCard, "Classic"},
	{UnderContract, "Contract"},
	{Sold, "Sold"},
	{PriceDrop, "Price Drop"},
	{NewPrice, "New Price"},
	{NeighborhoodFocus, "Location"},
}

func (id TemplateID) Valid() bool {
	for _, t := range Templates {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (id TemplateID) Label() string {
	for _, t := range Templates {
		if t.ID == id {
			return t.Label
		}
	}
	return ""
}

type PropertyDetails struct {
	Address     string   `json:"address" yaml:"address" validate:"required"`
	Price       string   `json:"price" yaml:"price" validate:"required"`
	Beds        int      `json:"beds" yaml:"beds" validate:"gte=0"`
	Baths       float64  `json:"baths" yaml:"baths" validate:"gte=0"`
	Sqft        int      `json:"sqft" yaml:"sqft" validate:"gte=0"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	ImageURL    string   `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

func (p PropertyDetails) BedsText() string  { return strconv.Itoa(p.Beds) }
func (p PropertyDetails) BathsText() string { return num(p.Baths) }
func (p PropertyDetails) SqftText() string  { return strconv.Itoa(p.Sqft) }

type Font string

const (
	FontInter      Font = "Inter"
	FontPlayfair   Font = "Playfair Display"
	FontMontserrat Font = "Montserrat"
	FontLato       Font = "Lato"
)

type BrandSettings struct {
	PrimaryColor   string `json:"primaryColor" yaml:"primaryColor" validate:"omitempty,hexcolor"`
	SecondaryColor string `json:"secondaryColor" yaml:"secondaryColor" validate:"omitempty,hexcolor"`
	FontFamily     Font   `json:"fontFamily" yaml:"fontFamily" validate:"omitempty,oneof=Inter 'Playfair Display' Montserrat Lato"`
	LogoURL        string `json:"logoUrl,omitempty" yaml:"logoUrl"`
	AgentName      string `json:"agentName" yaml:"agentName"`
	AgentPhotoURL  string `json:"agentPhotoUrl,omitempty" yaml:"agentPhotoUrl"`
	AgencyName     string `json:"agencyName" yaml:"agencyName"`
	Website        string `json:"website" yaml:"website"`
	Phone          string `json:"phone" yaml:"phone"`
	Email          string `json:"email" yaml:"email" validate:"omitempty,email"`
}

// ImageStyles holds photo adjustments. Brightness, Contrast, Saturation and
// Sepia are percentages, Blur is in pixels, Zoom a scale factor and Rotation
// degrees.
type ImageStyles struct {
	Brightness float64 `json:"brightness" yaml:"brightness" validate:"gte=0,lte=200"`
	Contrast   float64 `json:"contrast" yaml:"contrast" validate:"gte=0,lte=200"`
	Saturation float64 `json:"saturation" yaml:"saturation" validate:"gte=0,lte=200"`
	Sepia      float64 `json:"sepia" yaml:"sepia" validate:"gte=0,lte=100"`
	Blur       float64 `json:"blur" yaml:"blur" validate:"gte=0,lte=10"`
	Zoom       float64 `json:"zoom" yaml:"zoom" validate:"gte=1,lte=2"`
	Rotation   float64 `json:"rotation" yaml:"rotation" validate:"gte=-360,lte=360"`
}

func DefaultImageStyles() ImageStyles {
	return ImageStyles{Brightness: 100, Contrast: 100, Saturation: 100, Zoom: 1}
}

// imageStylesFields keeps the decoders from recursing into the methods
// below.
type imageStylesFields ImageStyles

// UnmarshalJSON decodes over DefaultImageStyles, so fields missing from a
// partial record keep their neutral values.
func (s *ImageStyles) UnmarshalJSON(b []byte) error {
	v := imageStylesFields(DefaultImageStyles())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = ImageStyles(v)
	return nil
}

func (s *ImageStyles) UnmarshalYAML(n *yaml.Node) error {
	v := imageStylesFields(DefaultImageStyles())
	if err := n.Decode(&v); err != nil {
		return err
	}
	*s = ImageStyles(v)
	return nil
}

type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

func (a TextAlign) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

type ContentPosition string

const (
	PositionTop        ContentPosition = "top"
	PositionCenter     ContentPosition = "center"
	PositionBottom     ContentPosition = "bottom"
	PositionBelowImage ContentPosition = "below-image"
)

func (p ContentPosition) Valid() bool {
	switch p {
	case PositionTop, PositionCenter, PositionBottom, PositionBelowImage:
		return true
	}
	return false
}

// PanelStyle is the background treatment of the custom builder's header
// and footer strips. Minimal only applies to footers.
type PanelStyle string

const (
	PanelTransparent    PanelStyle = "transparent"
	PanelSolidPrimary   PanelStyle = "solid-primary"
	PanelSolidSecondary PanelStyle = "solid-secondary"
	PanelSolidWhite     PanelStyle = "solid-white"
	PanelMinimal        PanelStyle = "minimal"
)

func (s PanelStyle) ValidHeader() bool {
	switch s {
	case PanelTransparent, PanelSolidPrimary, PanelSolidSecondary, PanelSolidWhite:
		return true
	}
	return false
}

func (s PanelStyle) ValidFooter() bool {
	return s == PanelMinimal || s.ValidHeader()
}

func (s PanelStyle) dark() bool {
	return s == PanelSolidPrimary || s == PanelSolidSecondary
}

type LayoutConfig struct {
	ShowLogo        bool            `json:"showLogo"`
	ShowAgentInfo   bool            `json:"showAgentInfo"`
	ShowBadge       bool            `json:"showBadge"`
	TextAlign       TextAlign       `json:"textAlignment"`
	ContentPosition ContentPosition `json:"contentPosition"`
	HeaderStyle     PanelStyle      `json:"headerStyle"`
	FooterStyle     PanelStyle      `json:"footerStyle"`
}

func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		ShowLogo:        true,
		ShowAgentInfo:   true,
		ShowBadge:       true,
		TextAlign:       AlignLeft,
		ContentPosition: PositionBottom,
		HeaderStyle:     PanelTransparent,
		FooterStyle:     PanelTransparent,
	}
}

// LayoutOverride is a partial LayoutConfig. Nil fields keep the default.
type LayoutOverride struct {
	ShowLogo        *bool            `json:"showLogo,omitempty" yaml:"showLogo"`
	ShowAgentInfo   *bool            `json:"showAgentInfo,omitempty" yaml:"showAgentInfo"`
	ShowBadge       *bool            `json:"showBadge,omitempty" yaml:"showBadge"`
	TextAlign       *TextAlign       `json:"textAlignment,omitempty" yaml:"textAlignment"`
	ContentPosition *ContentPosition `json:"contentPosition,omitempty" yaml:"contentPosition"`
	HeaderStyle     *PanelStyle      `json:"headerStyle,omitempty" yaml:"headerStyle"`
	FooterStyle     *PanelStyle      `json:"footerStyle,omitempty" yaml:"footerStyle"`
}

func (o *LayoutOverride) apply(l LayoutConfig) LayoutConfig {
	if o == nil {
		return l
	}
	if o.ShowLogo != nil {
		l.ShowLogo = *o.ShowLogo
	}
	if o.ShowAgentInfo != nil {
		l.ShowAgentInfo = *o.ShowAgentInfo
	}
	if o.ShowBadge != nil {
		l.ShowBadge = *o.ShowBadge
	}
	if o.TextAlign != nil {
		l.TextAlign = *o.TextAlign
	}
	if o.ContentPosition != nil {
		l.ContentPosition = *o.ContentPosition
	}
	if o.HeaderStyle != nil {
		l.HeaderStyle = *o.HeaderStyle
	}
	if o.FooterStyle != nil {
		l.FooterStyle = *o.FooterStyle
	}
	return l
}

// TemplateConfig is the per-template override record saved with a custom
// template. Every field is optional.
type TemplateConfig struct {
	BadgeText      string          `json:"badgeText,omitempty" yaml:"badgeText"`
	PrimaryColor   string          `json:"primaryColor,omitempty" yaml:"primaryColor" validate:"omitempty,hexcolor"`
	SecondaryColor string          `json:"secondaryColor,omitempty" yaml:"secondaryColor" validate:"omitempty,hexcolor"`
	OverlayOpacity *float64        `json:"overlayOpacity,omitempty" yaml:"overlayOpacity" validate:"omitempty,gte=0,lte=1"`
	ImageStyles    *ImageStyles    `json:"imageStyles,omitempty" yaml:"imageStyles"`
	Layout         *LayoutOverride `json:"layout,omitempty" yaml:"layout"`
}

// SampleProperty is the stand-in listing used when previewing a template
// without real data.
func SampleProperty() PropertyDetails {
	return PropertyDetails{
		Address:  "123 Luxury Lane, Beverly Hills",
		Price:    "$3,850,000",
		Beds:     5,
		Baths:    4.5,
		Sqft:     4200,
		Features: []string{},
		ImageURL: DefaultImageURL,
	}
}
