package card

func (c canvas) panelBackground(p PanelStyle) string {
	switch p {
	case PanelSolidWhite:
		return white
	case PanelSolidPrimary:
		return c.s.Primary
	case PanelSolidSecondary:
		return c.s.Secondary
	default:
		return "transparent"
	}
}

// rowJustify mirrors the text alignment onto a horizontal row.
func (c canvas) rowJustify() string {
	switch c.s.Layout.TextAlign {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "flex-end"
	default:
		return "flex-start"
	}
}

// customBuilder is the parametric layout: an optional header strip, the
// photo with the listing text either overlaid or below it, and an optional
// agent footer.
func (c canvas) customBuilder() *Node {
	l := c.s.Layout
	split := l.ContentPosition == PositionBelowImage

	return c.frame(css("display", "flex", "flex-direction", "column", "background-color", white),
		c.builderHeader(),
		c.builderBody(split),
		c.builderFooter(split),
	)
}

func (c canvas) builderHeader() *Node {
	l := c.s.Layout
	if l.HeaderStyle == PanelTransparent && !l.ShowLogo {
		return nil
	}
	dark := l.HeaderStyle.dark()

	var badge *Node
	if l.ShowBadge {
		bg, fg := gray900, white
		if dark {
			bg, fg = white, gray900
		}
		badge = txt("div", RoleBadge, css(
			"padding", "4px 12px", "font-size", "12px", "font-weight", "700",
			"text-transform", "uppercase", "letter-spacing", "0.05em",
			"background-color", bg, "color", fg),
			c.s.BadgeText("Just Listed"))
	}

	return box(RoleHeader, abs(
		"top", "0", "left", "0", "width", "100%", "z-index", "30",
		"padding", "16px", "box-sizing", "border-box",
		"display", "flex", "align-items", "center", "justify-content", "space-between",
		"background-color", c.panelBackground(l.HeaderStyle)),
		c.logo(!dark && l.HeaderStyle != PanelTransparent),
		badge,
	)
}

func (c canvas) builderBody(split bool) *Node {
	region := css("position", "relative", "overflow", "hidden", "height", "60%")
	var scrim *Node
	if !split {
		region = abs("inset", "0", "overflow", "hidden", "height", "100%", "z-index", "0")
		scrim = box(RoleScrim, abs("inset", "0", "pointer-events", "none",
			"background-image", "linear-gradient(to bottom, rgba(0,0,0,0.1), transparent, rgba(0,0,0,0.8))"))
	}
	image := box(RoleImageRegion, region, c.photoNode(c.s.Image.Opaque(), nil), scrim)

	textColor := white
	panel := css("position", "relative", "z-index", "10", "padding", "24px", "box-sizing", "border-box")
	if split {
		textColor = gray900
		panel = panel.with(css("height", "40%", "justify-content", "center", "background-color", white))
	} else {
		panel = panel.with(css("height", "100%", "background-color", "transparent")).with(c.s.position())
	}

	d := c.data
	text := c.column(RoleTextPanel, panel,
		c.price("h2", css("font-size", "36px", "font-weight", "700", "margin", "0 0 8px", "color", textColor)),
		c.address(css("font-size", "18px", "margin", "0 0 24px", "opacity", "0.9", "color", textColor)),
		specLine(css("gap", "16px", "font-size", "14px", "font-weight", "500", "opacity", "0.8",
			"color", textColor, "border-top", "1px solid currentColor", "padding-top", "16px",
			"justify-content", c.rowJustify()), "",
			d.BedsText()+" Beds", d.BathsText()+" Baths", d.SqftText()+" Sqft"),
	)

	return box(RoleBody, css("flex", "1", "display", "flex", "flex-direction", "column", "position", "relative", "height", "100%"),
		image, text)
}

func (c canvas) builderFooter(split bool) *Node {
	l := c.s.Layout
	if !l.ShowAgentInfo {
		return nil
	}

	if l.FooterStyle == PanelMinimal {
		var extra CSS
		if split {
			extra = css("background-color", "rgba(255,255,255,0.1)", "border-color", gray200)
		}
		return wrap(RoleFooter, abs("bottom", "16px", "right", "16px", "z-index", "30"), c.agentCompact(!split, extra))
	}

	footer := box(RoleFooter, css("position", "relative", "z-index", "30", "width", "100%",
		"padding", "16px", "box-sizing", "border-box",
		"background-color", c.panelBackground(l.FooterStyle)))
	if c.brand == nil {
		return footer
	}

	b := c.brand
	main, sub := gray900, gray600
	if l.FooterStyle.dark() {
		main, sub = white, "rgba(255,255,255,0.8)"
	}
	var photo *Node
	if b.AgentPhotoURL != "" {
		photo = img("", b.AgentPhotoURL, "Agent", css("width", "40px", "height", "40px",
			"border-radius", "9999px", "object-fit", "cover", "border", "2px solid rgba(255,255,255,0.2)"))
	}
	footer.Children = append(footer.Children, box(RoleAgent,
		css("display", "flex", "align-items", "center", "justify-content", "space-between"),
		box("", css("display", "flex", "align-items", "center", "gap", "12px"),
			photo,
			box("", css("color", main),
				txt("p", "", css("font-weight", "700", "font-size", "14px", "line-height", "1", "margin", "0"), b.AgentName),
				txt("p", "", css("font-size", "12px", "opacity", "0.8", "margin", "0"), b.AgencyName),
			),
		),
		box("", css("text-align", "right", "font-size", "12px", "color", sub),
			txt("p", "", css("margin", "0"), b.Phone),
			txt("p", "", css("margin", "0"), b.Website),
		),
	))
	return footer
}
