package card

func (c canvas) sidebarListing() *Node {
	d := c.data
	label := func(s string) *Node {
		return txt("p", "", css("font-size", "12px", "font-weight", "700", "text-transform", "uppercase",
			"opacity", "0.7", "margin", "0 0 4px"), s)
	}

	sidebar := c.column(RoleTextPanel, css(
		"width", "35%", "height", "100%", "padding", "24px", "box-sizing", "border-box",
		"justify-content", "space-between", "position", "relative", "z-index", "10",
		"background-color", c.s.Primary),
		box("", css("display", "flex", "flex-direction", "column", "gap", "16px"),
			c.logo(false),
			box(RoleDecoration, css("height", "2px", "width", "48px", "background-color", "rgba(255,255,255,0.3)")),
			box("", css("color", white),
				txt("p", RoleBadge, css("font-size", "10px", "text-transform", "uppercase",
					"letter-spacing", "0.1em", "opacity", "0.8", "margin", "0 0 4px"), c.s.BadgeText("Just Listed")),
				c.price("h2", css("font-size", "24px", "font-weight", "700", "line-height", "1.25", "margin", "0")),
			),
		),
		box("", css("color", white, "display", "flex", "flex-direction", "column", "gap", "16px"),
			box("", nil,
				label("Address"),
				c.address(css("font-size", "14px", "font-weight", "500", "line-height", "1.25", "margin", "0")),
			),
			box(RoleSpecs, nil,
				label("Features"),
				txt("p", RoleSpec, css("font-size", "14px", "line-height", "1.25", "margin", "0"),
					d.BedsText()+" Bed • "+d.BathsText()+" Bath"),
				txt("p", RoleSpec, css("font-size", "14px", "line-height", "1.25", "margin", "0"),
					d.SqftText()+" Sqft"),
			),
		),
		c.agentCompact(true, css("border-top", "1px solid rgba(255,255,255,0.2)", "padding-top", "16px")),
	)

	var tag *Node
	if c.s.Layout.ShowBadge {
		tag = txt("div", RoleDecoration, abs("top", "0", "right", "0", "z-index", "10",
			"background-color", white, "color", gray900, "padding", "8px 16px",
			"font-size", "12px", "font-weight", "700", "text-transform", "uppercase", "letter-spacing", "0.1em"),
			"New Listing")
	}
	image := box(RoleImageRegion, css("width", "65%", "height", "100%", "position", "relative", "overflow", "hidden"),
		c.photoNode(c.s.Image.Opaque(), nil),
		tag,
	)

	return c.frame(css("display", "flex", "background-color", white), sidebar, image)
}

func (c canvas) diagonalFeature() *Node {
	d := c.data
	image := box(RoleImageRegion, abs("top", "0", "left", "0", "right", "0", "height", "75%", "overflow", "hidden", "z-index", "0"),
		c.photoNode(c.s.Image.Opaque(), nil))

	overlay := box(RoleTextPanel, abs(
		"bottom", "0", "left", "0", "width", "100%", "height", "45%", "z-index", "10",
		"display", "flex", "flex-direction", "column", "justify-content", "flex-end",
		"padding", "32px", "box-sizing", "border-box",
		"background-color", c.s.Secondary,
		"clip-path", "polygon(0 20%, 100% 0, 100% 100%, 0 100%)"),
		c.column("", css("color", white, "margin-top", "48px"),
			box("", css("display", "flex", "align-items", "center", "gap", "8px", "margin-bottom", "8px"),
				txt("div", RoleBadge, css("padding", "2px 8px", "background-color", white, "color", gray900,
					"font-size", "10px", "font-weight", "700", "text-transform", "uppercase",
					"letter-spacing", "0.1em", "border-radius", "2px"), c.s.BadgeText("For Sale")),
			),
			c.price("h2", css("font-size", "36px", "font-weight", "900", "margin", "0 0 4px")),
			c.address(css("color", "rgba(255,255,255,0.8)", "font-weight", "500", "margin", "0 0 16px")),
			box(RoleSpecs, css("display", "flex", "gap", "16px", "font-size", "14px", "font-weight", "700",
				"border-top", "1px solid rgba(255,255,255,0.2)", "padding-top", "16px", "width", "100%"),
				specIcon("bed", d.BedsText()),
				specIcon("bath", d.BathsText()),
				specIcon("square", d.SqftText()),
			),
		),
	)

	return c.frame(css("background-color", white),
		image,
		overlay,
		wrap("", abs("bottom", "24px", "right", "24px", "z-index", "20"), c.agentCompact(true, nil)),
		wrap("", abs("top", "24px", "left", "24px", "z-index", "20"), c.logo(false)),
	)
}

func (c canvas) softLuxury() *Node {
	d := c.data

	var agent *Node
	if c.s.Layout.ShowAgentInfo {
		var photo *Node
		var name, agency string
		if c.brand != nil {
			name, agency = c.brand.AgentName, c.brand.AgencyName
			if c.brand.AgentPhotoURL != "" {
				photo = img("", c.brand.AgentPhotoURL, "Agent", css("width", "24px", "height", "24px",
					"border-radius", "9999px", "object-fit", "cover"))
			}
		}
		agent = box(RoleAgent, css("border-top", "1px solid "+gray200, "padding-top", "12px",
			"display", "flex", "align-items", "center", "justify-content", "space-between", "width", "100%"),
			box("", css("display", "flex", "align-items", "center", "gap", "8px"),
				photo,
				txt("span", "", css("font-size", "12px", "font-weight", "700", "color", gray800), name),
			),
			txt("span", "", css("font-size", "10px", "font-weight", "500", "color", gray400), agency),
		)
	}

	glass := c.column(RoleTextPanel, css(
		"position", "relative", "z-index", "10",
		"background-color", "rgba(255,255,255,0.9)", "backdrop-filter", "blur(12px)",
		"border-radius", "16px", "padding", "24px", "border", "1px solid rgba(255,255,255,0.5)",
		"box-shadow", "0 20px 25px rgba(0,0,0,0.15)"),
		box("", css("display", "flex", "justify-content", "center", "margin", "-48px 0 12px", "width", "100%"),
			box(RoleDecoration, css("background-color", white, "padding", "8px", "border-radius", "9999px"),
				icon("home", css("width", "20px", "height", "20px", "color", c.s.Primary)))),
		txt("p", RoleBadge, css("font-size", "12px", "font-family", serif, "text-transform", "uppercase",
			"letter-spacing", "0.2em", "color", gray500, "margin", "0 0 8px"), c.s.BadgeText("Luxury Residence")),
		c.price("h2", css("font-size", "30px", "font-family", serif, "color", gray900, "margin", "0 0 4px")),
		c.address(css("color", gray600, "font-size", "14px", "font-weight", "300", "margin", "0 0 16px")),
		specLine(css("justify-content", "center", "gap", "16px", "font-size", "12px", "font-weight", "500",
			"color", gray500, "margin-bottom", "16px"), "•",
			d.BedsText()+" Bedrooms", d.BathsText()+" Bathrooms", d.SqftText()+" Sq. Ft."),
		agent,
	)

	return c.frame(css("display", "flex", "flex-direction", "column", "padding", "16px").with(c.s.position()),
		c.photoNode(c.s.Image.Opaque(), abs("inset", "0")),
		box(RoleScrim, abs("inset", "0", "pointer-events", "none",
			"background-image", "linear-gradient(to bottom, rgba(0,0,0,0.1), transparent, rgba(0,0,0,0.6))")),
		glass,
		wrap("", abs("top", "24px", "right", "24px", "z-index", "10"), c.logo(false)),
	)
}

// specIcon is a glyph followed by a bare number.
func specIcon(glyph, value string) *Node {
	return box("", css("display", "flex", "align-items", "center", "gap", "4px"),
		icon(glyph, css("width", "12px", "height", "12px")),
		txt("span", RoleSpec, nil, value),
	)
}
