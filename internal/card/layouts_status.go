package card

func (c canvas) justListed() *Node {
	d := c.data

	var badge *Node
	if c.s.Layout.ShowBadge {
		badge = txt("div", RoleBadge, css("padding", "8px 16px", "font-size", "14px", "font-weight", "700",
			"letter-spacing", "0.1em", "text-transform", "uppercase", "color", white,
			"background-color", c.s.Primary), c.s.BadgeText("Just Listed"))
	} else {
		badge = box("", nil)
	}

	stat := func(glyph, value string) *Node {
		return box("", css("display", "flex", "align-items", "center", "gap", "4px"),
			icon(glyph, css("width", "16px", "height", "16px", "color", gray300)),
			txt("span", RoleSpec, css("font-size", "14px", "font-weight", "700"), value),
		)
	}

	content := c.column(RoleTextPanel, css("position", "relative", "z-index", "10", "padding", "24px"),
		c.price("h2", css("font-size", "36px", "font-weight", "800", "margin", "0 0 8px", "color", white,
			"letter-spacing", "-0.025em", "text-shadow", "0 4px 8px rgba(0,0,0,0.4)")),
		box("", css("display", "flex", "align-items", "center", "color", gray100, "margin-bottom", "20px",
			"font-size", "14px", "font-weight", "500"),
			icon("map-pin", css("width", "16px", "height", "16px", "margin-right", "4px", "color", c.s.Primary)),
			c.address(css("margin", "0")),
		),
		box("", css("display", "flex", "align-items", "center", "justify-content", "space-between",
			"border-top", "1px solid rgba(255,255,255,0.2)", "padding-top", "16px", "width", "100%"),
			box(RoleSpecs, css("display", "flex", "gap", "16px"),
				stat("bed", d.BedsText()),
				stat("bath", d.BathsText()),
				stat("square", d.SqftText()),
			),
			c.agentBadge(true, nil),
		),
	)

	return c.frame(css("background-color", gray900, "color", white,
		"display", "flex", "flex-direction", "column").with(c.s.position()),
		c.photoNode(c.s.Image, abs("inset", "0")),
		box(RoleScrim, abs("inset", "0", "pointer-events", "none",
			"background-image", "linear-gradient(to top, rgba(0,0,0,0.9), rgba(0,0,0,0.2), transparent)")),
		box("", abs("top", "16px", "left", "16px", "right", "16px", "z-index", "10",
			"display", "flex", "justify-content", "space-between", "align-items", "flex-start"),
			badge,
			c.logo(false),
		),
		content,
	)
}

// sold always renders the photo in grayscale on top of any configured
// adjustments.
func (c canvas) sold() *Node {
	var represented *Node
	if c.agentVisible() {
		b := c.brand
		small := css("font-size", "9px", "color", gray400, "margin", "4px 0 0")
		represented = box(RoleAgent, css("margin-top", "24px", "padding-top", "16px",
			"border-top", "1px solid rgba(255,255,255,0.1)", "width", "100%", "text-align", "center"),
			txt("p", "", css("font-size", "10px", "color", gray400, "text-transform", "uppercase",
				"letter-spacing", "0.1em", "margin", "0"), "Represented by"),
			txt("p", "", css("font-size", "14px", "font-weight", "500", "margin", "4px 0 0"), b.AgentName),
			txt("p", "", small, b.Phone),
			txt("p", "", small.set("margin", "0"), b.Email),
		)
	}

	center := c.column(RoleTextPanel, css(
		"position", "relative", "z-index", "10", "text-align", "center",
		"background-color", "rgba(0,0,0,0.8)", "padding", "32px", "margin", "0 24px",
		"max-width", "320px", "backdrop-filter", "blur(4px)",
		"border", "1px solid "+c.s.Primary),
		c.badge("h1", "SOLD", css("font-size", "48px", "font-family", serif, "margin", "0 0 8px",
			"letter-spacing", "0.1em", "color", c.s.Primary)),
		box(RoleDecoration, css("height", "2px", "width", "64px", "background-color", white,
			"margin", "0 auto 16px", "opacity", "0.5")),
		c.address(css("font-size", "18px", "font-weight", "300", "letter-spacing", "0.025em", "margin", "0")),
		represented,
	)

	return c.frame(css("background-color", black, "color", white,
		"display", "flex", "align-items", "center", "justify-content", "center"),
		c.photoNode(c.s.Image.WithFilter("grayscale(100%)"), abs("inset", "0")),
		box(RoleDecoration, abs("inset", "0", "margin", "16px", "opacity", "0.8", "pointer-events", "none",
			"border", "16px solid rgba(255,255,255,0.1)")),
		wrap("", abs("top", "32px", "right", "32px", "z-index", "10"), c.logo(false)),
		center,
	)
}

func (c canvas) openHouse() *Node {
	d := c.data

	col := func(value, label string) *Node {
		return el("span", RoleSpec, css("font-size", "12px", "font-weight", "700", "text-transform", "uppercase",
			"display", "flex", "flex-direction", "column", "align-items", "center"),
			txt("span", "", css("font-size", "18px", "line-height", "1"), value),
			txt("span", "", nil, label),
		)
	}
	rule := func() *Node {
		return box(RoleDecoration, css("width", "1px", "height", "32px", "background-color", gray200))
	}

	var contact *Node
	if c.agentVisible() {
		contact = box(RoleAgent, css("text-align", "right", "display", "flex", "flex-direction", "column", "align-items", "flex-end"),
			txt("p", "", css("font-size", "10px", "font-weight", "700", "color", gray400, "text-transform", "uppercase", "margin", "0"), "Contact"),
			txt("p", "", css("font-size", "12px", "font-weight", "700", "color", c.s.Primary, "margin", "0"), c.brand.Website),
			txt("p", "", css("font-size", "9px", "color", gray500, "margin", "0"), c.brand.Phone),
		)
	}

	image := box(RoleImageRegion, css("height", "60%", "position", "relative", "overflow", "hidden"),
		c.photoNode(c.s.Image.Opaque(), nil),
		wrap("", abs("top", "16px", "left", "16px", "z-index", "10"), c.logo(false)),
		c.badge("div", "Open House", abs("bottom", "16px", "right", "16px", "z-index", "10",
			"background-color", white, "padding", "4px 12px", "font-size", "12px", "font-weight", "700",
			"text-transform", "uppercase", "letter-spacing", "0.05em")),
	)

	disc := el("div", RoleDecoration, abs("top", "0", "left", "50%", "transform", "translate(-50%, -50%)",
		"width", "64px", "height", "64px", "border-radius", "9999px", "border", "4px solid "+white,
		"display", "flex", "flex-direction", "column", "align-items", "center", "justify-content", "center",
		"color", white, "font-size", "12px", "font-weight", "700", "text-align", "center",
		"background-color", c.s.Primary),
		txt("span", "", nil, "SUN"),
		txt("span", "", nil, "1-4PM"),
	)

	panel := c.column(RoleTextPanel, css("height", "40%", "padding", "24px", "box-sizing", "border-box",
		"justify-content", "center", "background-color", white, "position", "relative", "z-index", "10"),
		disc,
		c.price("h3", css("font-size", "30px", "font-weight", "800", "margin", "16px 0 0", "color", c.s.Secondary)),
		c.address(css("color", gray500, "font-size", "14px", "margin", "0 0 24px")),
		box("", css("display", "flex", "justify-content", "space-between", "align-items", "flex-end", "width", "100%"),
			box(RoleSpecs, css("display", "flex", "gap", "16px", "color", gray600),
				col(d.BedsText(), "Bed"), rule(), col(d.BathsText(), "Bath"), rule(), col(d.SqftText(), "Sqft")),
			contact,
		),
	)

	return c.frame(css("background-color", white, "color", gray900, "display", "flex", "flex-direction", "column"),
		image, panel)
}

func (c canvas) priceDrop() *Node {
	d := c.data

	bottom := box("", abs("bottom", "0", "left", "0", "right", "0", "pointer-events", "none",
		"background-image", "linear-gradient(to top, rgba(0,0,0,0.9), transparent)",
		"padding", "96px 32px 32px"),
		c.column(RoleTextPanel, nil,
			c.price("h2", css("font-size", "48px", "font-weight", "800", "margin", "0 0 8px",
				"line-height", "1.25", "letter-spacing", "-0.025em")),
			c.address(css("font-size", "20px", "font-weight", "300", "opacity", "0.9", "margin", "0 0 24px")),
			box("", css("display", "flex", "align-items", "center", "justify-content", "space-between",
				"border-top", "1px solid rgba(255,255,255,0.2)", "padding-top", "16px", "width", "100%"),
				specLine(css("gap", "16px", "font-size", "14px", "font-weight", "500"), "•",
					d.BedsText()+" Beds", d.BathsText()+" Baths", d.SqftText()+" sqft"),
				c.agentBadge(true, nil),
			),
		),
	)

	return c.frame(css("color", white, "background-color", c.s.Secondary),
		c.photoNode(c.s.Image, abs("inset", "0", "mix-blend-mode", "overlay")),
		wrap("", abs("top", "16px", "left", "16px", "z-index", "10"), c.logo(false)),
		c.badge("div", "PRICE DROP", abs("top", "40px", "right", "0", "z-index", "10",
			"background-color", red600, "color", white, "padding", "12px 32px",
			"font-weight", "700", "font-size", "20px", "border", "2px solid "+white,
			"transform", "translate(24px, 16px) rotate(3deg)")),
		bottom,
	)
}

// underContract always blurs and darkens the photo. Its badge is the
// headline and is shown regardless of showBadge.
func (c canvas) underContract() *Node {
	var contact *Node
	if c.s.Layout.ShowAgentInfo {
		name, phone := "Agent", ""
		var photo *Node
		if b := c.brand; b != nil {
			name = firstNonEmpty(b.AgentName, "Agent")
			phone = b.Phone
			if b.AgentPhotoURL != "" {
				photo = img("", b.AgentPhotoURL, "Agent", css("width", "40px", "height", "40px",
					"border-radius", "9999px", "object-fit", "cover"))
			}
		}
		contact = box(RoleAgent, css("background-color", white, "border-radius", "8px", "padding", "12px"),
			box("", css("display", "flex", "align-items", "center", "gap", "12px"),
				photo,
				box("", css("text-align", "left"),
					txt("p", "", css("font-size", "12px", "color", gray500, "text-transform", "uppercase", "margin", "0"),
						"Contact for similar listings"),
					txt("p", "", css("font-size", "14px", "font-weight", "700", "color", gray900, "margin", "0"), name),
					txt("p", "", css("font-size", "10px", "color", gray600, "margin", "0"), phone),
				),
			),
		)
	}

	glass := box(RoleTextPanel, css("position", "relative", "z-index", "10", "width", "80%",
		"background-color", "rgba(255,255,255,0.1)", "backdrop-filter", "blur(12px)",
		"border", "1px solid rgba(255,255,255,0.2)", "padding", "24px", "border-radius", "12px",
		"text-align", "center"),
		box(RoleDecoration, css("width", "64px", "height", "64px", "background-color", white,
			"border-radius", "9999px", "margin", "0 auto 16px", "display", "flex",
			"align-items", "center", "justify-content", "center", "color", green600),
			icon("key", css("width", "32px", "height", "32px"))),
		txt("h2", RoleBadge, css("font-size", "30px", "font-weight", "700", "color", white, "margin", "0 0 8px"),
			c.s.BadgeText("Under Contract")),
		c.address(css("color", "rgba(255,255,255,0.8)", "margin", "0 0 24px", "font-size", "14px")),
		contact,
	)

	return c.frame(css("display", "flex", "align-items", "center", "justify-content", "center"),
		c.photoNode(c.s.Image.WithFilter("blur(4px) brightness(50%)"), abs("inset", "0")),
		glass,
	)
}

func (c canvas) newPrice() *Node {
	var disc *Node
	if c.s.Layout.ShowBadge {
		disc = el("div", RoleBadge, abs("bottom", "-32px", "right", "32px", "z-index", "10",
			"width", "96px", "height", "96px", "border-radius", "9999px", "color", white,
			"display", "flex", "flex-direction", "column", "align-items", "center", "justify-content", "center",
			"border", "4px solid "+white, "transform", "rotate(12deg)", "background-color", "red"),
			txt("span", "", css("font-size", "12px", "font-weight", "700", "text-transform", "uppercase"), c.s.BadgeText("New")),
			txt("span", "", css("font-size", "14px", "font-weight", "700", "text-transform", "uppercase"), c.s.BadgeText("Price")),
		)
	}

	image := box(RoleImageRegion, css("position", "relative", "height", "60%", "overflow", "hidden"),
		c.photoNode(c.s.Image.Opaque(), nil),
		disc,
	)

	body := c.column(RoleTextPanel, css("flex", "1", "padding", "40px 32px 32px"),
		c.price("h2", css("font-size", "36px", "font-weight", "900", "color", gray900, "margin", "0 0 8px")),
		c.address(css("color", gray500, "font-weight", "500", "margin", "0 0 24px")),
		box(RoleNote, css("display", "flex", "gap", "8px"),
			icon("tag", css("width", "16px", "height", "16px", "margin-top", "4px", "color", red500)),
			txt("p", "", css("font-size", "14px", "color", gray600, "font-style", "italic", "margin", "0"),
				"\"Motivated seller! Beautiful updates throughout.\""),
		),
		wrap("", css("margin-top", "auto", "padding-top", "16px", "border-top", "1px solid "+gray100, "width", "100%"),
			c.agentCompact(false, nil)),
	)

	return c.frame(css("display", "flex", "flex-direction", "column", "background-color", white), image, body)
}
