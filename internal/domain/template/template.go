// Package template holds the static constraint template catalog and the
// sentence renderer over it.
package template

import (
	"strconv"
	"strings"

	"github.com/mkommar/schedparse/internal/domain"
)

// UnknownSentence is rendered for template ids not present in the catalog.
// Rendering is presentation, not validation, so it never errors.
const UnknownSentence = "Unknown template"

// Template is a parameterized natural-language constraint pattern.
// Immutable, defined at process start; ids are small positive integers,
// stable across runs.
type Template struct {
	ID             int
	Name           string
	Description    string
	Sentence       string // pattern with {named} placeholders
	ExampleQueries []string
}

// Catalog is a read-only registry of constraint templates.
type Catalog struct {
	templates []Template
}

// NewCatalog creates a catalog over the given templates.
func NewCatalog(templates []Template) *Catalog {
	return &Catalog{templates: templates}
}

// Default returns the built-in sports scheduling catalog.
func Default() *Catalog {
	return NewCatalog(defaultTemplates)
}

// ByID returns the template with the given id.
func (c *Catalog) ByID(id int) (Template, bool) {
	for _, t := range c.templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// All returns the templates in catalog order.
func (c *Catalog) All() []Template {
	return c.templates
}

// Render fills the template's sentence pattern with extracted parameter
// values or per-field defaults. Total: unknown ids yield UnknownSentence.
// Each placeholder is substituted exactly once; tokens are distinct and
// non-overlapping so substitution order does not matter.
func (c *Catalog) Render(id int, params domain.ParameterSet) string {
	t, ok := c.ByID(id)
	if !ok {
		return UnknownSentence
	}

	replacements := map[string]string{
		"min":        strconv.Itoa(params.MinOr(1)),
		"max":        strconv.Itoa(params.MaxOr(999)),
		"teams":      orDefault(params.Teams, "all_teams"),
		"rounds":     orDefault(params.Rounds, "all_rounds"),
		"networks":   orDefault(params.Networks, "all_networks"),
		"venues":     orDefault(params.Venues, "all_venues"),
		"time_slots": orDefault(params.TimeSlots, "all_time_slots"),
		"condition":  orDefault(params.Condition, "constraints"),
	}

	sentence := t.Sentence
	for key, value := range replacements {
		sentence = strings.Replace(sentence, "{"+key+"}", value, 1)
	}

	return sentence
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

var defaultTemplates = []Template{
	{
		ID:          1,
		Name:        "Game Scheduling",
		Description: "Ensures a specific number of games from a team group are scheduled in certain rounds, venues, and networks",
		Sentence: "Ensure that at least {min} and at most {max} games from {teams} are scheduled across {rounds} " +
			"and played in any venue from {venues} and assigned to {networks}.",
		ExampleQueries: []string{
			"Ensure all rivalry games are scheduled on weekends and broadcast on ESPN",
			"Make sure at least 3 conference games are played in outdoor stadiums during primetime",
			"Schedule division games on FOX during weekend rounds",
			"Assign all playoff games to primetime slots on major networks",
			"Don't schedule rivalry games on weekdays",
		},
	},
	{
		ID:          2,
		Name:        "Time Slot Constraints",
		Description: "Limits the number of games that can be scheduled in specific time slots for a network",
		Sentence:    "Ensure that at least {min} and at most {max} games are scheduled in {time_slots} for {networks}.",
		ExampleQueries: []string{
			"Limit ESPN to maximum 2 games in primetime slots",
			"Ensure FOX broadcasts at least 1 game during afternoon slots",
			"Don't schedule more than 3 games on CBS in evening time slots",
			"ABC should have between 1 and 4 games in weekend primetime",
			"No more than 2 concurrent games on NBC during primetime",
		},
	},
	{
		ID:          3,
		Name:        "Team-specific Constraints",
		Description: "Applies constraints to specific teams regarding their schedule patterns",
		Sentence:    "Ensure that {teams} have at least {min} and at most {max} {condition}.",
		ExampleQueries: []string{
			"Ensure Lakers have at least 2 rest days between back-to-back games",
			"Limit Warriors to maximum 3 consecutive home games",
			"Celtics should have between 1 and 2 primetime games per week",
			"Don't schedule Knicks for more than 2 consecutive away games",
			"Ensure Heat have at least 1 home game every week",
		},
	},
}
