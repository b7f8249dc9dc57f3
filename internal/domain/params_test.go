package domain

import (
	"encoding/json"
	"testing"
)

func TestParameterSet_UnmarshalNumbers(t *testing.T) {
	var p ParameterSet
	data := `{"min": 1, "max": 5, "teams": "rivalry_games", "networks": "ESPN"}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.MinOr(-1) != 1 || p.MaxOr(-1) != 5 {
		t.Errorf("min/max = %v/%v", p.Min, p.Max)
	}
	if p.Teams != "rivalry_games" || p.Networks != "ESPN" {
		t.Errorf("teams/networks = %q/%q", p.Teams, p.Networks)
	}
}

func TestParameterSet_UnmarshalNumericStrings(t *testing.T) {
	var p ParameterSet
	data := `{"min": "3", "max": "10 games"}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.MinOr(-1) != 3 {
		t.Errorf("min = %v, want 3", p.Min)
	}
	if p.MaxOr(-1) != 10 {
		t.Errorf("max = %v, want 10 (leading integer)", p.Max)
	}
}

func TestParameterSet_UnmarshalNullsAreAbsent(t *testing.T) {
	var p ParameterSet
	data := `{"min": null, "max": 0, "teams": null}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.Min != nil {
		t.Errorf("null min must be absent, got %v", *p.Min)
	}
	if p.Max == nil || *p.Max != 0 {
		t.Errorf("explicit max=0 must survive, got %v", p.Max)
	}
	if p.Teams != "" {
		t.Errorf("teams = %q", p.Teams)
	}
}

func TestParameterSet_UnparsableNumericIsAbsent(t *testing.T) {
	var p ParameterSet
	data := `{"min": "several", "max": true}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Min != nil || p.Max != nil {
		t.Errorf("unparsable values must default to absent: %v %v", p.Min, p.Max)
	}
}

func TestParameterSet_UnknownKeysGoToExtra(t *testing.T) {
	var p ParameterSet
	data := `{"min": 1, "priority": "high", "time_slots": "primetime_slots"}`
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.TimeSlots != "primetime_slots" {
		t.Errorf("time_slots = %q", p.TimeSlots)
	}
	if got, ok := p.Extra["priority"]; !ok || got != "high" {
		t.Errorf("extra = %v", p.Extra)
	}
}

func TestParameterSet_MarshalRoundTrip(t *testing.T) {
	p := ParameterSet{
		Min:      IntPtr(2),
		Max:      IntPtr(0),
		Networks: "FOX",
		Extra:    map[string]any{"priority": "high"},
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back ParameterSet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.MinOr(-1) != 2 || back.MaxOr(-1) != 0 || back.Networks != "FOX" {
		t.Errorf("round trip lost fields: %+v", back)
	}
	if back.Extra["priority"] != "high" {
		t.Errorf("round trip lost extras: %v", back.Extra)
	}
	if back.Teams != "" {
		t.Errorf("absent field appeared: %q", back.Teams)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.956, 0.96},
		{0.954, 0.95},
		{0.1, 0.1},
		{1, 1},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
