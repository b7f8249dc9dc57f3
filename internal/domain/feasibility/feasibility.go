// Package feasibility applies a fixed rule set over extracted parameters to
// produce a plausibility verdict. Pure and deterministic: no I/O, recomputed
// on every call.
package feasibility

import (
	"fmt"
	"math"
	"strings"

	"github.com/mkommar/schedparse/internal/domain"
)

const baseConfidence = 0.95

// knownNetworks is the fixed broadcaster set checked by the network rule.
var knownNetworks = []string{"ESPN", "FOX", "CBS", "NBC", "ABC", "TNT"}

// Validate judges the surface plausibility of (templateID, params).
//
// Rules run in a fixed order and each mutates the running confidence
// directly. The max==0 negation rule assigns 0.85 unconditionally, so it
// overrides the 0.1 floor set by a preceding min>max violation. That
// ordering quirk is observed behavior and is kept as-is; see the package
// tests that pin it down.
func Validate(templateID int, params domain.ParameterSet) domain.FeasibilityVerdict {
	warnings := []string{}
	suggestions := []string{}
	confidence := baseConfidence

	minVal := params.MinOr(0)
	maxVal := params.MaxOr(999)

	if minVal > maxVal {
		warnings = append(warnings,
			fmt.Sprintf("Minimum value (%d) is greater than maximum value (%d)", minVal, maxVal))
		confidence = 0.1
		suggestions = append(suggestions, "Adjust min/max values so minimum is less than or equal to maximum")
	}

	if maxVal == 0 {
		// Intentional negation constraint (don't schedule).
		confidence = 0.85
		suggestions = append(suggestions, "This is a negation constraint (avoiding certain schedules)")
	}

	if minVal > 100 {
		warnings = append(warnings, fmt.Sprintf("Minimum value (%d) seems unusually high", minVal))
		confidence = math.Max(0.5, confidence-0.2)
		suggestions = append(suggestions, "Verify if this minimum value is realistic for your scheduling scenario")
	}

	switch templateID {
	case 1:
		if params.Teams == "" && params.Rounds == "" {
			warnings = append(warnings, "No specific teams or rounds specified - constraint may be too broad")
			confidence = math.Max(0.7, confidence-0.1)
		}
	case 2:
		if minVal > 10 {
			warnings = append(warnings, "More than 10 games in a single time slot may cause scheduling conflicts")
			confidence = math.Max(0.6, confidence-0.15)
			suggestions = append(suggestions, "Consider distributing games across multiple time slots")
		}
	case 3:
		if params.Teams == "" {
			warnings = append(warnings, "No specific team mentioned - constraint may apply too broadly")
			confidence = math.Max(0.7, confidence-0.1)
		}
	}

	if params.Networks != "" && !isKnownNetwork(params.Networks) {
		warnings = append(warnings,
			fmt.Sprintf("Network %q may not be a standard broadcaster", params.Networks))
		confidence = math.Max(0.75, confidence-0.1)
	}

	feasible := confidence > 0.5 && len(warnings) == 0

	if feasible && len(suggestions) == 0 {
		suggestions = []string{"This constraint appears feasible and well-formed"}
	}

	return domain.FeasibilityVerdict{
		Feasible:    feasible,
		Confidence:  domain.Round2(confidence),
		Warnings:    warnings,
		Suggestions: suggestions,
	}
}

func isKnownNetwork(networks string) bool {
	normalized := strings.ToUpper(networks)
	for _, n := range knownNetworks {
		if strings.Contains(normalized, n) {
			return true
		}
	}
	return false
}
