package models

import "time"

// SeedBacklogs returns the sample backlogs a fresh board starts with.
func SeedBacklogs() []Backlog {
	return []Backlog{
		{
			ID:          1,
			Name:        "Product Backlog",
			Description: "Features and improvements for the main product",
			Items: []BacklogItem{
				{ID: 1, Title: "User authentication", Description: "Sign in with email and password", Assignees: []string{"alice"}},
				{ID: 2, Title: "Dashboard widgets", Description: "Configurable widgets on the home dashboard", Assignees: []string{"bob", "carol"}},
			},
			NextItemID: 3,
		},
		{
			ID:          2,
			Name:        "Technical Debt",
			Description: "Refactoring and maintenance work",
			Items: []BacklogItem{
				{ID: 1, Title: "Upgrade dependencies", Description: "Bump outdated libraries", Assignees: []string{}},
			},
			NextItemID: 2,
		},
	}
}

// SeedSprints returns the sample sprints a fresh board starts with.
func SeedSprints() []Sprint {
	return []Sprint{
		{
			ID:        1,
			Name:      "Sprint 1",
			StartDate: NewDate(2025, time.January, 6),
			EndDate:   NewDate(2025, time.January, 19),
			IsActive:  true,
			Items: []SprintItem{
				{ID: 1, BacklogID: 1, BacklogItemID: 1, Title: "User authentication", Description: "Sign in with email and password", Assignees: []string{"alice"}, Status: StatusInProgress},
			},
			NextItemID: 2,
		},
		{
			ID:         2,
			Name:       "Sprint 2",
			StartDate:  NewDate(2025, time.January, 20),
			EndDate:    NewDate(2025, time.February, 2),
			Items:      []SprintItem{},
			NextItemID: 1,
		},
	}
}
