package stationicon

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in   string
		want Placement
	}{
		{"", PlaceCenter},
		{"N", PlaceN},
		{"s", PlaceS},
		{"E", PlaceE},
		{"W", PlaceW},
		{"NE", PlaceNE},
		{"EN", PlaceNE},
		{"nw", PlaceNW},
		{"SE", PlaceSE},
		{"WS", PlaceSW},
		{" N ", PlaceN},
	}
	for _, tt := range tests {
		got, err := ParsePlacement(tt.in)
		if err != nil {
			t.Errorf("ParsePlacement(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePlacement(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePlacementInvalid(t *testing.T) {
	for _, in := range []string{"NS", "EW", "SN", "NSE", "NEW", "X", "N-E"} {
		_, err := ParsePlacement(in)
		var pe *InvalidPlacementError
		if !errors.As(err, &pe) {
			t.Errorf("ParsePlacement(%q) error = %v, want *InvalidPlacementError", in, err)
			continue
		}
		if pe.Placement != in {
			t.Errorf("InvalidPlacementError.Placement = %q, want %q", pe.Placement, in)
		}
	}
}

func TestPlacementAxes(t *testing.T) {
	tests := []struct {
		p                    Placement
		vertical, horizontal bool
		align                textAlign
	}{
		{PlaceCenter, false, false, alignCenter},
		{PlaceN, true, false, alignCenter},
		{PlaceS, true, false, alignCenter},
		{PlaceE, false, true, alignLeft},
		{PlaceW, false, true, alignRight},
		{PlaceNE, true, true, alignLeft},
		{PlaceSW, true, true, alignRight},
	}
	for _, tt := range tests {
		if got := tt.p.Vertical(); got != tt.vertical {
			t.Errorf("%v.Vertical() = %v, want %v", tt.p, got, tt.vertical)
		}
		if got := tt.p.Horizontal(); got != tt.horizontal {
			t.Errorf("%v.Horizontal() = %v, want %v", tt.p, got, tt.horizontal)
		}
		if got := placements[tt.p].align; got != tt.align {
			t.Errorf("%v align = %v, want %v", tt.p, got, tt.align)
		}
	}
}

func TestPlacementInvalidValue(t *testing.T) {
	p := Placement(42)
	if p.Valid() {
		t.Error("Placement(42).Valid() = true")
	}
	if p.Vertical() || p.Horizontal() {
		t.Error("invalid placement should have no axes")
	}
	var pe *InvalidPlacementError
	if err := p.validate(); !errors.As(err, &pe) {
		t.Errorf("validate() = %v, want *InvalidPlacementError", err)
	}
}

func TestPlacementJSON(t *testing.T) {
	var s struct {
		P Placement `json:"p"`
	}
	if err := json.Unmarshal([]byte(`{"p":"sw"}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.P != PlaceSW {
		t.Errorf("unmarshal = %v, want SW", s.P)
	}
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"p":"SW"}` {
		t.Errorf("marshal = %s", out)
	}

	err = json.Unmarshal([]byte(`{"p":"NS"}`), &s)
	var pe *InvalidPlacementError
	if !errors.As(err, &pe) {
		t.Errorf("unmarshal NS error = %v, want *InvalidPlacementError", err)
	}
}
