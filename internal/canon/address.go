package canon

import (
	"regexp"
	"strings"
)

var rePunct = regexp.MustCompile(`[^A-Za-z0-9\s]`)

// Canonicalize normalizes an address and computes a stable property key.
// It ignores unit/suite so every unit of a parcel maps to one key.
func Canonicalize(line1, city, state, zip string) (normLine1, normCity, normState, normZip, propertyKey string) {
	n1 := Line(line1)
	c := collapseSpaces(rePunct.ReplaceAllString(strings.ToUpper(strings.TrimSpace(city)), " "))
	st := strings.ToUpper(strings.TrimSpace(state))
	if len(st) > 2 {
		st = stateAbbrev(st)
	}
	z := trimZIP(zip)

	key := strings.ToLower(n1 + "|" + c + "|" + st + "|" + z)
	return n1, c, st, z, key
}

// Line normalizes a free-form street line: upper case, no unit, no
// punctuation, USPS suffixes.
func Line(s string) string {
	n := strings.TrimSpace(strings.ToUpper(s))
	n = stripUnit(n)
	n = rePunct.ReplaceAllString(n, " ")
	n = abbreviateSuffix(n + " ")
	return collapseSpaces(n)
}

// SplitAddress separates a single-line address into its street part
// (before the first comma) and the locality (the remaining comma-separated
// parts, rejoined).
func SplitAddress(addr string) (street, locality string) {
	parts := strings.Split(addr, ",")
	street = strings.TrimSpace(parts[0])
	rest := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			rest = append(rest, p)
		}
	}
	return street, strings.Join(rest, ", ")
}

// Contains reports whether term occurs in addr, either literally
// (case-insensitive) or after both sides are normalized, so "maple ave"
// finds "123 Maple Avenue".
func Contains(addr, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(addr), strings.ToLower(term)) {
		return true
	}
	na, nt := normalizeLoose(addr), normalizeLoose(term)
	return nt != "" && strings.Contains(na, nt)
}

func normalizeLoose(s string) string {
	n := rePunct.ReplaceAllString(strings.ToUpper(s), " ")
	return collapseSpaces(abbreviateSuffix(collapseSpaces(n) + " "))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func trimZIP(z string) string {
	z = strings.TrimSpace(z)
	if len(z) >= 5 {
		return z[:5]
	}
	return z
}

func stripUnit(s string) string {
	// trailing unit designators: APT, UNIT, STE, SUITE, #
	toks := []string{" APT ", " UNIT ", " STE ", " SUITE ", " #"}
	up := " " + s + " "
	for _, t := range toks {
		if i := strings.Index(up, t); i >= 0 {
			return strings.TrimSpace(up[:i])
		}
	}
	return strings.TrimSpace(s)
}

var suffixes = map[string]string{
	" STREET ":    " ST ",
	" ROAD ":      " RD ",
	" AVENUE ":    " AVE ",
	" BOULEVARD ": " BLVD ",
	" DRIVE ":     " DR ",
	" LANE ":      " LN ",
	" COURT ":     " CT ",
	" CIRCLE ":    " CIR ",
	" TERRACE ":   " TER ",
	" PLACE ":     " PL ",
	" PARKWAY ":   " PKWY ",
	" HIGHWAY ":   " HWY ",
}

// abbreviateSuffix expects s padded with a trailing space so suffixes at
// the end of the line match as whole words.
func abbreviateSuffix(s string) string {
	out := " " + s
	for k, v := range suffixes {
		out = strings.ReplaceAll(out, k, v)
	}
	return out
}

var states = map[string]string{
	"ALABAMA": "AL", "ALASKA": "AK", "ARIZONA": "AZ", "ARKANSAS": "AR", "CALIFORNIA": "CA",
	"COLORADO": "CO", "CONNECTICUT": "CT", "DELAWARE": "DE", "FLORIDA": "FL", "GEORGIA": "GA",
	"HAWAII": "HI", "IDAHO": "ID", "ILLINOIS": "IL", "INDIANA": "IN", "IOWA": "IA",
	"KANSAS": "KS", "KENTUCKY": "KY", "LOUISIANA": "LA", "MAINE": "ME", "MARYLAND": "MD",
	"MASSACHUSETTS": "MA", "MICHIGAN": "MI", "MINNESOTA": "MN", "MISSISSIPPI": "MS", "MISSOURI": "MO",
	"MONTANA": "MT", "NEBRASKA": "NE", "NEVADA": "NV", "NEW HAMPSHIRE": "NH", "NEW JERSEY": "NJ",
	"NEW MEXICO": "NM", "NEW YORK": "NY", "NORTH CAROLINA": "NC", "NORTH DAKOTA": "ND", "OHIO": "OH",
	"OKLAHOMA": "OK", "OREGON": "OR", "PENNSYLVANIA": "PA", "RHODE ISLAND": "RI", "SOUTH CAROLINA": "SC",
	"SOUTH DAKOTA": "SD", "TENNESSEE": "TN", "TEXAS": "TX", "UTAH": "UT", "VERMONT": "VT",
	"VIRGINIA": "VA", "WASHINGTON": "WA", "WEST VIRGINIA": "WV", "WISCONSIN": "WI", "WYOMING": "WY",
}

func stateAbbrev(s string) string {
	if v, ok := states[s]; ok {
		return v
	}
	return s
}
