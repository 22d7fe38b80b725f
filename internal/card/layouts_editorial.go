package card

import "github.com/yourorg/listing-studio/internal/canon"

func (c canvas) modernMinimal() *Node {
	d := c.data
	stat := func(value, label string) *Node {
		return el("div", RoleSpec, css("display", "flex", "flex-direction", "column"),
			txt("span", "", css("font-weight", "700", "font-size", "20px"), value),
			txt("span", "", css("font-size", "10px", "color", gray400, "text-transform", "uppercase"), label),
		)
	}

	image := box(RoleImageRegion, css("height", "65%", "width", "100%", "position", "relative", "overflow", "hidden"),
		c.photoNode(c.s.Image.Opaque(), nil),
		c.badge("div", "For Sale", abs("top", "16px", "right", "16px", "z-index", "10",
			"background-color", "rgba(255,255,255,0.9)", "backdrop-filter", "blur(8px)",
			"padding", "4px 12px", "font-size", "12px", "font-weight", "700",
			"text-transform", "uppercase", "letter-spacing", "0.05em")),
	)

	panel := c.column(RoleTextPanel, css("flex", "1", "padding", "32px", "justify-content", "center",
		"position", "relative", "z-index", "10", "background-color", white),
		c.price("h2", css("font-size", "30px", "font-weight", "300", "color", gray900, "margin", "0 0 4px")),
		c.address(css("color", gray500, "font-size", "14px", "font-weight", "500", "margin", "0 0 24px")),
		box(RoleSpecs, css("display", "flex", "gap", "24px", "color", gray800,
			"border-top", "1px solid "+gray100, "padding-top", "24px", "width", "100%"),
			stat(d.BedsText(), "Beds"), stat(d.BathsText(), "Baths"), stat(d.SqftText(), "Sqft")),
		box("", css("margin-top", "auto", "padding-top", "16px", "display", "flex",
			"justify-content", "space-between", "align-items", "center", "width", "100%"),
			c.agentCompact(false, nil),
			c.logo(true),
		),
	)

	return c.frame(css("background-color", white, "display", "flex", "flex-direction", "column"), image, panel)
}

// luxuryAccent swaps the stock blue for gold so the layout keeps its
// character when no brand color is set.
func (c canvas) luxuryAccent() string {
	if c.s.Primary == DefaultPrimary {
		return luxuryGold
	}
	return c.s.Primary
}

func (c canvas) luxurySerif() *Node {
	d := c.data
	accent := c.luxuryAccent()

	var badge *Node
	if c.s.Layout.ShowBadge {
		badge = box("", abs("bottom", "-12px", "left", "50%", "transform", "translateX(-50%)", "z-index", "10",
			"background-color", "#1a1a1a", "padding", "4px 16px", "border", "1px solid "+accent),
			txt("span", RoleBadge, css("font-size", "12px", "font-family", serif, "text-transform", "uppercase",
				"letter-spacing", "0.2em", "color", accent), c.s.BadgeText("Exclusive Listing")))
	}

	inner := box("", css("border", "1px solid "+accent, "padding", "4px", "width", "100%", "height", "100%",
		"display", "flex", "flex-direction", "column", "position", "relative", "box-sizing", "border-box"),
		box(RoleImageRegion, css("height", "60%", "width", "100%", "position", "relative", "margin-bottom", "24px", "overflow", "hidden"),
			c.photoNode(c.s.Image.Opaque().WithFilter("grayscale(20%)"), nil),
			badge,
		),
		c.column(RoleTextPanel, css("flex", "1", "padding", "0 16px"),
			c.price("h2", css("font-size", "30px", "color", white, "font-family", serif, "font-style", "italic", "margin", "0 0 8px")),
			c.address(css("color", gray400, "font-size", "12px", "text-transform", "uppercase", "letter-spacing", "0.1em", "margin", "0 0 24px")),
			specLine(css("display", "grid", "grid-template-columns", "repeat(3, 1fr)", "gap", "32px",
				"border-top", "1px solid rgba(255,255,255,0.1)", "padding-top", "16px", "margin-bottom", "auto",
				"font-family", serif, "color", accent), "",
				d.BedsText()+" Bed", d.BathsText()+" Bath", d.SqftText()+" Sqft"),
			wrap("", css("padding-bottom", "16px"), c.agentBadge(true, nil)),
		),
	)

	return c.frame(css("background-color", "#1a1a1a", "padding", "24px", "display", "flex",
		"flex-direction", "column", "align-items", "center", "justify-content", "center", "text-align", "center"),
		inner)
}

func (c canvas) boldGrid() *Node {
	d := c.data
	chip := css("background-color", gray100, "padding", "4px 8px")

	var agent *Node
	if c.agentVisible() {
		agent = box(RoleAgent, css("border-top", "1px solid "+gray200, "padding-top", "12px",
			"display", "flex", "align-items", "center", "gap", "8px"),
			box("", css("font-size", "12px", "color", gray600, "font-weight", "700", "display", "flex", "flex-direction", "column"),
				txt("span", "", nil, c.brand.AgentName),
				txt("span", "", css("font-size", "10px", "font-weight", "400"), c.brand.Phone),
			),
		)
	}

	// The framed logo ignores the dark/light variants of the shared mark.
	var logo *Node
	if c.s.Layout.ShowLogo && c.brand != nil && c.brand.LogoURL != "" {
		logo = box("", abs("top", "32px", "right", "32px", "z-index", "20", "background-color", white, "padding", "8px"),
			img(RoleLogo, c.brand.LogoURL, "Logo", css("height", "32px", "width", "auto")))
	}

	inner := box(RoleImageRegion, css("width", "100%", "height", "100%", "position", "relative", "overflow", "hidden"),
		c.photoNode(c.s.Image.Opaque(), nil),
		box(RoleDecoration, abs("inset", "0", "z-index", "10", "pointer-events", "none",
			"border", "8px solid "+c.s.Primary)),
		c.column(RoleTextPanel, abs("bottom", "32px", "right", "32px", "z-index", "20",
			"background-color", white, "padding", "24px", "max-width", "280px",
			"box-shadow", "8px 8px 0 0 rgba(0,0,0,1)"),
			c.price("h2", css("font-size", "30px", "font-weight", "900", "color", black, "margin", "0 0 4px")),
			c.address(css("font-size", "14px", "font-weight", "700", "color", gray600, "margin", "0 0 16px", "line-height", "1.25")),
			box(RoleSpecs, css("display", "flex", "gap", "12px", "font-size", "14px", "font-weight", "700", "margin-bottom", "16px"),
				txt("span", RoleSpec, chip, d.BedsText()+" BD"),
				txt("span", RoleSpec, chip, d.BathsText()+" BA"),
			),
			agent,
		),
		c.badge("div", "New on Market", abs("top", "32px", "left", "32px", "z-index", "20",
			"background-color", black, "color", white, "padding", "4px 12px", "font-weight", "700",
			"text-transform", "uppercase", "letter-spacing", "-0.05em", "font-size", "14px")),
		logo,
	)

	return c.frame(css("background-color", white, "padding", "16px"), inner)
}

func (c canvas) geometricPop() *Node {
	d := c.data
	dot := func() *Node {
		return box(RoleDecoration, css("width", "4px", "height", "4px", "background-color", white, "border-radius", "9999px"))
	}

	text := box("", abs("bottom", "0", "left", "0", "width", "100%", "padding", "32px", "box-sizing", "border-box", "z-index", "20"),
		c.column(RoleTextPanel, nil,
			box(RoleDecoration, css("width", "48px", "height", "4px", "margin-bottom", "16px", "background-color", c.s.Primary)),
			c.price("h2", css("font-size", "36px", "font-weight", "700", "color", white, "margin", "0 0 8px")),
			c.address(css("color", "rgba(255,255,255,0.8)", "font-weight", "300", "margin", "0 0 24px")),
			box(RoleSpecs, css("display", "flex", "align-items", "center", "gap", "24px", "color", white, "font-size", "14px"),
				box("", css("display", "flex", "align-items", "center", "gap", "8px"),
					icon("home", css("width", "16px", "height", "16px")), txt("span", RoleSpec, nil, d.BedsText()+"bd")),
				box("", css("display", "flex", "align-items", "center", "gap", "8px"),
					dot(), txt("span", RoleSpec, nil, d.BathsText()+"ba")),
				box("", css("display", "flex", "align-items", "center", "gap", "8px"),
					dot(), txt("span", RoleSpec, nil, d.SqftText()+"sqft")),
			),
		),
	)

	return c.frame(css("background-color", c.s.Secondary),
		box(RoleDecoration, abs("inset", "0", "z-index", "0", "background-color", white,
			"clip-path", "polygon(0 0, 100% 0, 100% 40%, 0 70%)")),
		box(RoleImageRegion, abs("top", "0", "right", "0", "width", "90%", "height", "65%", "z-index", "10",
			"overflow", "hidden", "clip-path", "polygon(0 0, 100% 0, 100% 85%, 0 100%)"),
			c.photoNode(c.s.Image.Opaque(), nil)),
		text,
		wrap("", abs("bottom", "32px", "right", "32px", "z-index", "20"),
			c.agentCompact(true, css("background-color", "rgba(0,0,0,0.3)"))),
	)
}

func (c canvas) featureSplit() *Node {
	d := c.data
	tile := func(glyph, value string) *Node {
		return box("", css("background-color", "rgba(255,255,255,0.1)", "padding", "12px",
			"border-radius", "8px", "text-align", "center", "backdrop-filter", "blur(4px)"),
			icon(glyph, css("width", "20px", "height", "20px", "color", white, "display", "block", "margin", "0 auto 4px")),
			txt("span", RoleSpec, css("color", white, "font-weight", "700"), value),
		)
	}

	image := box(RoleImageRegion, css("height", "50%", "position", "relative", "overflow", "hidden"),
		c.photoNode(c.s.Image.Opaque(), nil),
		txt("div", RoleAddress, abs("bottom", "0", "left", "0", "z-index", "10", "background-color", white,
			"padding", "8px 16px", "font-weight", "700", "font-size", "14px",
			"border-top-right-radius", "12px", "color", c.s.Secondary), d.Address),
	)

	panel := box(RoleTextPanel, css("height", "50%", "padding", "24px", "box-sizing", "border-box",
		"display", "flex", "flex-direction", "column", "position", "relative", "z-index", "10",
		"background-color", c.s.Secondary),
		box("", css("display", "flex", "justify-content", "space-between", "align-items", "flex-start", "margin-bottom", "24px"),
			c.column("", nil,
				c.badge("p", "Listing Price", css("color", "rgba(255,255,255,0.6)", "font-size", "12px",
					"text-transform", "uppercase", "letter-spacing", "0.05em", "margin", "0 0 4px")),
				c.price("h2", css("font-size", "36px", "color", white, "font-weight", "300", "margin", "0")),
			),
			c.logo(false),
		),
		box(RoleSpecs, css("display", "grid", "grid-template-columns", "repeat(3, 1fr)", "gap", "16px", "margin-bottom", "24px"),
			tile("bed", d.BedsText()), tile("bath", d.BathsText()), tile("square", d.SqftText())),
		box("", css("margin-top", "auto", "padding-top", "16px", "border-top", "1px solid rgba(255,255,255,0.1)",
			"display", "flex", "align-items", "center", "justify-content", "space-between"),
			box("", css("display", "flex", "align-items", "center", "gap", "12px"),
				box(RoleDecoration, css("width", "32px", "height", "32px", "border-radius", "9999px",
					"background-color", "rgba(255,255,255,0.2)", "display", "flex",
					"align-items", "center", "justify-content", "center"),
					icon("arrow-right", css("width", "16px", "height", "16px", "color", white))),
				txt("span", RoleNote, css("color", white, "font-size", "14px", "font-weight", "500"), "Swipe for details"),
			),
			c.agentCompact(true, nil),
		),
	)

	return c.frame(css("display", "flex", "flex-direction", "column"), image, panel)
}

func (c canvas) storyPortrait() *Node {
	d := c.data

	var badge *Node
	if c.s.Layout.ShowBadge {
		badge = box("", abs("top", "32px", "left", "0", "width", "100%", "text-align", "center", "z-index", "10"),
			txt("span", RoleBadge, css("background-color", "rgba(255,255,255,0.2)", "backdrop-filter", "blur(12px)",
				"color", white, "padding", "4px 16px", "border-radius", "9999px", "font-size", "12px",
				"font-weight", "700", "text-transform", "uppercase", "letter-spacing", "0.1em",
				"border", "1px solid rgba(255,255,255,0.3)"), c.s.BadgeText("Just Listed")))
	}

	content := c.column(RoleTextPanel, css("position", "relative", "z-index", "10", "padding", "0 24px"),
		c.price("h2", css("font-size", "48px", "font-weight", "700", "color", white, "margin", "0 0 8px", "letter-spacing", "-0.05em")),
		c.address(css("color", "rgba(255,255,255,0.9)", "font-size", "18px", "line-height", "1.375", "margin", "0 0 16px")),
		specLine(css("gap", "16px", "color", "rgba(255,255,255,0.8)", "font-size", "14px", "font-weight", "500", "margin-bottom", "16px"), "|",
			d.BedsText()+" Beds", d.BathsText()+" Baths", d.SqftText()+" Sq. Ft."),
		c.agentBadge(true, nil),
	)

	return c.frame(css("display", "flex", "flex-direction", "column").with(c.s.position()),
		c.photoNode(c.s.Image, abs("inset", "0")),
		box(RoleScrim, abs("inset", "0", "pointer-events", "none",
			"background-image", "linear-gradient(to top, #000000, transparent, transparent)")),
		badge,
		content,
	)
}

func (c canvas) classicCard() *Node {
	d := c.data

	var star *Node
	if c.s.Layout.ShowBadge {
		star = box(RoleBadge, abs("top", "-12px", "left", "-12px", "z-index", "10",
			"width", "48px", "height", "48px", "border-radius", "9999px", "color", white,
			"display", "flex", "align-items", "center", "justify-content", "center",
			"transform", "rotate(12deg)", "background-color", c.s.Secondary),
			icon("star", css("width", "24px", "height", "24px", "fill", white)))
	}

	polaroid := box("", css("width", "85%", "height", "85%", "background-color", white,
		"padding", "16px", "box-sizing", "border-box", "position", "relative", "transform", "rotate(1deg)",
		"box-shadow", "0 20px 25px rgba(0,0,0,0.15)"),
		box(RoleImageRegion, css("height", "60%", "width", "100%", "background-color", gray100,
			"margin-bottom", "16px", "overflow", "hidden"),
			c.photoNode(c.s.Image.Opaque(), nil)),
		c.column(RoleTextPanel, nil,
			c.price("h3", css("font-size", "24px", "font-family", serif, "color", gray900, "margin", "0 0 4px")),
			c.address(css("font-size", "12px", "color", gray500, "text-transform", "uppercase",
				"letter-spacing", "0.025em", "margin", "0 0 12px")),
			specLine(css("justify-content", "center", "gap", "12px", "font-size", "12px", "font-weight", "700",
				"color", gray700, "width", "100%", "margin-bottom", "12px"), "•",
				d.BedsText()+" BD", d.BathsText()+" BA", d.SqftText()+" SF"),
			wrap("", css("border-top", "1px solid "+gray200, "padding-top", "8px", "width", "100%",
				"display", "flex", "justify-content", "center"),
				c.agentCompact(false, css("background-color", gray50, "padding", "4px"))),
		),
		star,
	)

	return c.frame(css("display", "flex", "align-items", "center", "justify-content", "center",
		"background-color", gray100), polaroid)
}

func (c canvas) neighborhoodFocus() *Node {
	street, locality := canon.SplitAddress(c.data.Address)

	header := box("", css("height", "40%", "padding", "32px", "box-sizing", "border-box",
		"display", "flex", "flex-direction", "column", "justify-content", "center",
		"color", white, "position", "relative", "overflow", "hidden"),
		box(RoleDecoration, abs("top", "0", "right", "0", "padding", "32px", "opacity", "0.1", "pointer-events", "none"),
			icon("map-pin", css("width", "128px", "height", "128px"))),
		c.column(RoleTextPanel, css("position", "relative", "z-index", "10"),
			box("", css("display", "flex", "align-items", "center", "gap", "8px", "margin-bottom", "8px",
				"opacity", "0.8", "font-size", "14px", "font-weight", "500",
				"text-transform", "uppercase", "letter-spacing", "0.05em"),
				icon("map-pin", css("width", "16px", "height", "16px")),
				txt("span", RoleBadge, nil, c.s.BadgeText("Location Spotlight")),
			),
			txt("h2", RoleAddress, css("font-size", "30px", "font-weight", "700", "line-height", "1.25", "margin", "0 0 8px"), street),
			txt("p", RoleNote, css("font-size", "20px", "opacity", "0.9", "margin", "0"), locality),
		),
	)

	photo := box("", css("height", "60%", "background-color", white, "position", "relative", "padding", "8px", "box-sizing", "border-box"),
		box(RoleImageRegion, css("height", "100%", "width", "100%", "position", "relative",
			"border-radius", "8px", "overflow", "hidden"),
			c.photoNode(c.s.Image.Opaque(), nil),
			box("", abs("bottom", "16px", "left", "16px", "z-index", "10",
				"background-color", "rgba(255,255,255,0.9)", "backdrop-filter", "blur(8px)",
				"padding", "8px 16px", "border-radius", "8px"),
				c.price("p", css("font-size", "24px", "font-weight", "700", "color", gray900, "margin", "0"))),
			wrap("", abs("top", "16px", "right", "16px", "z-index", "10"), c.agentCompact(false, nil)),
		),
	)

	return c.frame(css("display", "flex", "flex-direction", "column", "background-color", c.s.Primary), header, photo)
}
