package stationicon

import "strings"

// Placement says where the name labels sit relative to the badge.
// Only the nine consistent compass combinations exist, so N+S and E+W
// cannot be expressed.
type Placement uint8

// Placement values.
const (
	// PlaceCenter centers the label block over the badge on both axes.
	PlaceCenter Placement = iota
	PlaceN
	PlaceS
	PlaceE
	PlaceW
	PlaceNE
	PlaceNW
	PlaceSE
	PlaceSW

	placementCount
)

// hAxis is the horizontal component of a placement.
type hAxis uint8

const (
	hCenter hAxis = iota // badge and labels share a vertical axis
	hEast                // labels right of the badge
	hWest                // labels left of the badge
)

// vAxis is the vertical component of a placement.
type vAxis uint8

const (
	vSide   vAxis = iota // labels beside the badge, stacked from the top
	vCenter              // badge and label block both vertically centered
	vSouth               // labels below the badge
	vNorth               // labels above the badge
)

// textAlign is the horizontal alignment of lines inside a label block.
type textAlign uint8

const (
	alignCenter textAlign = iota
	alignLeft
	alignRight
)

type placementInfo struct {
	name  string
	h     hAxis
	v     vAxis
	align textAlign
}

var placements = [placementCount]placementInfo{
	PlaceCenter: {"", hCenter, vCenter, alignCenter},
	PlaceN:      {"N", hCenter, vNorth, alignCenter},
	PlaceS:      {"S", hCenter, vSouth, alignCenter},
	PlaceE:      {"E", hEast, vSide, alignLeft},
	PlaceW:      {"W", hWest, vSide, alignRight},
	PlaceNE:     {"NE", hEast, vNorth, alignLeft},
	PlaceNW:     {"NW", hWest, vNorth, alignRight},
	PlaceSE:     {"SE", hEast, vSouth, alignLeft},
	PlaceSW:     {"SW", hWest, vSouth, alignRight},
}

// ParsePlacement parses a compass directive such as "N", "se" or "EN".
// Letter order and case do not matter. The empty string is PlaceCenter.
func ParsePlacement(s string) (Placement, error) {
	var n, south, e, w bool
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		switch r {
		case 'N':
			n = true
		case 'S':
			south = true
		case 'E':
			e = true
		case 'W':
			w = true
		default:
			return 0, &InvalidPlacementError{Placement: s}
		}
	}
	if (n && south) || (e && w) {
		return 0, &InvalidPlacementError{Placement: s}
	}

	var p Placement
	switch {
	case n && e:
		p = PlaceNE
	case n && w:
		p = PlaceNW
	case south && e:
		p = PlaceSE
	case south && w:
		p = PlaceSW
	case n:
		p = PlaceN
	case south:
		p = PlaceS
	case e:
		p = PlaceE
	case w:
		p = PlaceW
	default:
		p = PlaceCenter
	}
	return p, nil
}

// MustParsePlacement is like ParsePlacement but panics on error.
func MustParsePlacement(s string) Placement {
	p, err := ParsePlacement(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether p is one of the defined placements.
func (p Placement) Valid() bool { return p < placementCount }

// String returns the compass letters, vertical first ("NE", "SW", "").
func (p Placement) String() string {
	if !p.Valid() {
		return "Placement(?)"
	}
	return placements[p].name
}

// Vertical reports whether the labels are stacked above or below the badge.
func (p Placement) Vertical() bool {
	if !p.Valid() {
		return false
	}
	v := placements[p].v
	return v == vNorth || v == vSouth
}

// Horizontal reports whether the labels sit east or west of the badge.
func (p Placement) Horizontal() bool {
	return p.Valid() && placements[p].h != hCenter
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &InvalidPlacementError{Placement: p.String()}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(b []byte) error {
	v, err := ParsePlacement(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Placement) validate() error {
	if !p.Valid() {
		return &InvalidPlacementError{Placement: p.String()}
	}
	return nil
}
