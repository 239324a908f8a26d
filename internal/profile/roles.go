package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// RoleTable maps a role category (matched as a substring of the lowercased
// role string) to its curated keyword set. The table is loaded once at
// startup and treated as immutable process-wide state.
type RoleTable map[string][]string

// DefaultRoleTable returns the built-in role categories.
func DefaultRoleTable() RoleTable {
	return RoleTable{
		"travel planner": {
			"itinerary", "accommodation", "restaurant", "attraction", "activity",
			"transportation", "hotel", "booking", "schedule", "location", "sightseeing",
			"tour", "experience", "dining", "nightlife", "beach", "cultural", "budget",
			"group", "friend", "vacation", "trip", "destination",
		},
		"researcher": {
			"methodology", "analysis", "data", "study", "research", "experiment",
			"result", "conclusion", "literature", "reference", "evaluation",
		},
		"student": {
			"concept", "theory", "example", "definition", "explanation", "key",
			"important", "exam", "study", "learn", "understand",
		},
		"analyst": {
			"trend", "performance", "metric", "analysis", "comparison", "data",
			"insight", "strategy", "market", "financial", "revenue",
		},
	}
}

// LoadRoleTable reads a role table from a JSON file, or returns the built-in
// table when path is empty.
func LoadRoleTable(path string) (RoleTable, error) {
	if path == "" {
		return DefaultRoleTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role table: %w", err)
	}

	var table RoleTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse role table: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("role table %s defines no roles", path)
	}

	// Lowercase the category keys so lookup stays case-insensitive.
	normalized := make(RoleTable, len(table))
	for category, words := range table {
		normalized[strings.ToLower(category)] = words
	}
	return normalized, nil
}
