package card

// canvas carries everything a layout routine reads.
type canvas struct {
	id    TemplateID
	data  PropertyDetails
	brand *BrandSettings
	s     Style
	photo string
}

// Render lays out data on the template named by id. Unknown ids produce a
// placeholder card instead of an error.
func Render(id TemplateID, data PropertyDetails, brand *BrandSettings, cfg *TemplateConfig) *Node {
	c := canvas{
		id:    id,
		data:  data,
		brand: brand,
		s:     Resolve(brand, cfg),
		photo: firstNonEmpty(data.ImageURL, DefaultImageURL),
	}

	switch id {
	case CustomBuilder:
		return c.customBuilder()
	case SidebarListing:
		return c.sidebarListing()
	case DiagonalFeature:
		return c.diagonalFeature()
	case SoftLuxury:
		return c.softLuxury()
	case JustListed:
		return c.justListed()
	case Sold:
		return c.sold()
	case OpenHouse:
		return c.openHouse()
	case PriceDrop:
		return c.priceDrop()
	case ModernMinimal:
		return c.modernMinimal()
	case LuxurySerif:
		return c.luxurySerif()
	case BoldGrid:
		return c.boldGrid()
	case GeometricPop:
		return c.geometricPop()
	case FeatureSplit:
		return c.featureSplit()
	case StoryPortrait:
		return c.storyPortrait()
	case ClassicCard:
		return c.classicCard()
	case UnderContract:
		return c.underContract()
	case NewPrice:
		return c.newPrice()
	case NeighborhoodFocus:
		return c.neighborhoodFocus()
	default:
		return c.placeholder()
	}
}

// frame is the fixed 400x500 (4:5 portrait) card container.
func (c canvas) frame(style CSS, children ...*Node) *Node {
	base := css(
		"position", "relative",
		"width", cardWidth,
		"height", cardHeight,
		"overflow", "hidden",
		"box-sizing", "border-box",
		"font-family", "'"+c.s.FontFamily+"', sans-serif",
	)
	n := box(RoleCard, base.with(style), children...)
	n.Attrs = []Attr{{"data-template", string(c.id)}}
	return n
}

func (c canvas) placeholder() *Node {
	n := c.frame(css("background-color", gray200, "display", "flex",
		"align-items", "center", "justify-content", "center", "color", gray600),
		txt("span", "", nil, "Unknown Template"))
	n.Role = RolePlaceholder
	return n
}

func (c canvas) photoNode(t ImageTreatment, style CSS) *Node {
	return img(RolePhoto, c.photo, "Property", t.css().with(css("transform-origin", "center")).with(style))
}

// badge renders a layout's badge when the layout shows badges.
func (c canvas) badge(tag, def string, style CSS) *Node {
	if !c.s.Layout.ShowBadge {
		return nil
	}
	return txt(tag, RoleBadge, style, c.s.BadgeText(def))
}

func (c canvas) price(tag string, style CSS) *Node {
	return txt(tag, RolePrice, style, c.data.Price)
}

func (c canvas) address(style CSS) *Node {
	return txt("p", RoleAddress, style, c.data.Address)
}

// specLine lays out spec strings in a row, optionally separated by sep.
func specLine(style CSS, sep string, items ...string) *Node {
	n := box(RoleSpecs, css("display", "flex").with(style))
	for i, it := range items {
		if i > 0 && sep != "" {
			n.Children = append(n.Children, txt("span", RoleDecoration, nil, sep))
		}
		n.Children = append(n.Children, txt("span", RoleSpec, nil, it))
	}
	return n
}

// column is a flex column aligned by the layout's text alignment.
func (c canvas) column(role Role, style CSS, children ...*Node) *Node {
	return box(role, css("display", "flex", "flex-direction", "column").with(c.s.alignment()).with(style), children...)
}

func abs(kv ...string) CSS {
	return css("position", "absolute").with(css(kv...))
}
