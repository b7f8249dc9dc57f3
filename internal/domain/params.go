package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParameterSet is the template-scoped value mapping produced by extraction.
// Min and Max are pointers so an explicit 0 (negation) is distinguishable
// from an absent value. Unknown keys returned by the model land in Extra.
type ParameterSet struct {
	Min       *int
	Max       *int
	Teams     string
	Rounds    string
	Networks  string
	Venues    string
	TimeSlots string
	Condition string
	Extra     map[string]any
}

// MinOr returns Min or def when absent.
func (p ParameterSet) MinOr(def int) int {
	if p.Min != nil {
		return *p.Min
	}
	return def
}

// MaxOr returns Max or def when absent.
func (p ParameterSet) MaxOr(def int) int {
	if p.Max != nil {
		return *p.Max
	}
	return def
}

// UnmarshalJSON decodes a model-produced JSON object, coercing numeric
// strings for min/max and collecting unrecognized keys into Extra.
// Explicit nulls count as absent.
func (p *ParameterSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode parameters: %w", err)
	}

	for k, v := range raw {
		if v == nil {
			continue
		}
		switch k {
		case "min":
			p.Min = coerceInt(v)
		case "max":
			p.Max = coerceInt(v)
		case "teams":
			p.Teams = coerceString(v)
		case "rounds":
			p.Rounds = coerceString(v)
		case "networks":
			p.Networks = coerceString(v)
		case "venues":
			p.Venues = coerceString(v)
		case "time_slots":
			p.TimeSlots = coerceString(v)
		case "condition":
			p.Condition = coerceString(v)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra[k] = v
		}
	}

	return nil
}

// MarshalJSON renders the set back into the wire shape the original API
// exposed: flat object, absent fields omitted, extras inlined.
func (p ParameterSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 8+len(p.Extra))
	for k, v := range p.Extra {
		out[k] = v
	}
	if p.Min != nil {
		out["min"] = *p.Min
	}
	if p.Max != nil {
		out["max"] = *p.Max
	}
	setIf(out, "teams", p.Teams)
	setIf(out, "rounds", p.Rounds)
	setIf(out, "networks", p.Networks)
	setIf(out, "venues", p.Venues)
	setIf(out, "time_slots", p.TimeSlots)
	setIf(out, "condition", p.Condition)

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal parameters: %w", err)
	}
	return data, nil
}

func setIf(m map[string]any, key, val string) {
	if val != "" {
		m[key] = val
	}
}

func coerceInt(v any) *int {
	switch t := v.(type) {
	case json.Number:
		if i, err := strconv.Atoi(t.String()); err == nil {
			return &i
		}
		if f, err := t.Float64(); err == nil {
			i := int(f)
			return &i
		}
		return nil
	case string:
		return parseLeadingInt(t)
	default:
		return nil
	}
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// parseLeadingInt parses an optionally signed integer prefix ("3 games" -> 3).
// Returns nil when the string has no leading integer.
func parseLeadingInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	i, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &i
}

// IntPtr is a convenience for building parameter sets in callers and tests.
func IntPtr(v int) *int { return &v }
