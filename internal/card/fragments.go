package card

// Tailwind-derived palette shared by the layouts.
const (
	white    = "#ffffff"
	black    = "#000000"
	gray50   = "#f9fafb"
	gray100  = "#f3f4f6"
	gray200  = "#e5e7eb"
	gray300  = "#d1d5db"
	gray400  = "#9ca3af"
	gray500  = "#6b7280"
	gray600  = "#4b5563"
	gray700  = "#374151"
	gray800  = "#1f2937"
	gray900  = "#111827"
	red500   = "#ef4444"
	red600   = "#dc2626"
	green600 = "#16a34a"

	luxuryGold = "#d4af37"
	serif      = "Georgia, 'Times New Roman', serif"
)

type agentTone struct {
	main, sub, bg, border string
}

func toneFor(light bool) agentTone {
	if light {
		return agentTone{main: white, sub: gray300, bg: "rgba(0,0,0,0.5)", border: "rgba(255,255,255,0.2)"}
	}
	return agentTone{main: gray900, sub: gray500, bg: "rgba(255,255,255,0.95)", border: gray100}
}

func (c canvas) agentVisible() bool {
	return c.brand != nil && c.s.Layout.ShowAgentInfo
}

// agentBadge is the full agent card: photo or placeholder, name, agency
// and whichever of phone and email are set.
func (c canvas) agentBadge(light bool, extra CSS) *Node {
	if !c.agentVisible() {
		return nil
	}
	b := c.brand
	t := toneFor(light)

	var photo *Node
	if b.AgentPhotoURL != "" {
		photo = img("", b.AgentPhotoURL, "Agent", css(
			"width", "40px", "height", "40px", "border-radius", "9999px",
			"object-fit", "cover", "border", "1px solid "+gray200))
	} else {
		photo = box("", css(
			"width", "40px", "height", "40px", "border-radius", "9999px",
			"background-color", gray100, "display", "flex",
			"align-items", "center", "justify-content", "center"),
			icon("user", css("width", "20px", "height", "20px", "color", gray500)))
	}

	var phone, email *Node
	if b.Phone != "" {
		phone = el("span", "", css("display", "flex", "align-items", "center", "gap", "4px"),
			icon("phone", css("width", "8px", "height", "8px")), txt("span", "", nil, b.Phone))
	}
	if b.Email != "" {
		email = el("span", "", css("display", "flex", "align-items", "center", "gap", "4px"),
			icon("mail", css("width", "8px", "height", "8px")), txt("span", "", nil, b.Email))
	}

	return box(RoleAgent, css(
		"display", "flex", "align-items", "center", "gap", "12px",
		"padding", "10px", "border-radius", "8px", "max-width", "240px",
		"backdrop-filter", "blur(12px)", "box-shadow", "0 10px 15px rgba(0,0,0,0.2)",
		"background-color", t.bg, "border", "1px solid "+t.border).with(extra),
		photo,
		box("", css("flex", "1", "min-width", "0", "text-align", "left"),
			txt("p", "", css("font-size", "10px", "font-weight", "700", "text-transform", "uppercase", "line-height", "1.25", "color", t.main), b.AgentName),
			txt("p", "", css("font-size", "8px", "margin-bottom", "4px", "color", t.sub), b.AgencyName),
			box("", css("display", "flex", "flex-direction", "column", "font-size", "8px", "font-weight", "500", "line-height", "1.25", "color", t.main, "opacity", "0.9"),
				phone, email),
		),
	)
}

// agentCompact is the small inline agent mark: photo when present, name
// and phone.
func (c canvas) agentCompact(light bool, extra CSS) *Node {
	if !c.agentVisible() {
		return nil
	}
	b := c.brand
	t := toneFor(light)

	var photo *Node
	if b.AgentPhotoURL != "" {
		photo = img("", b.AgentPhotoURL, "Agent", css(
			"width", "32px", "height", "32px", "border-radius", "9999px",
			"border", "2px solid "+white, "object-fit", "cover"))
	}
	return box(RoleAgent, css("display", "flex", "align-items", "center", "gap", "8px").with(extra),
		photo,
		box("", css("display", "flex", "flex-direction", "column", "justify-content", "center"),
			txt("span", "", css("font-size", "10px", "font-weight", "700", "line-height", "1", "color", t.main), b.AgentName),
			txt("span", "", css("font-size", "8px", "line-height", "1.25", "color", t.sub, "opacity", "0.9"), b.Phone),
		),
	)
}

// logo renders nothing when the brand has no logo or the layout hides it.
// dark knocks the mark out to black for light backgrounds.
func (c canvas) logo(dark bool) *Node {
	if c.brand == nil || c.brand.LogoURL == "" || !c.s.Layout.ShowLogo {
		return nil
	}
	style := css("height", "40px", "width", "auto", "object-fit", "contain",
		"filter", "drop-shadow(0 4px 3px rgba(0,0,0,0.07))")
	if dark {
		style = style.set("filter", "brightness(0)")
	}
	return img(RoleLogo, c.brand.LogoURL, "Logo", style)
}
