package engine

import (
	"context"

	"checkline/internal/storage"
)

// SeedVersion gates re-application of the default catalog. Bumping it
// re-upserts the defaults by name on next launch, replacing the item lists
// of same-named templates even when the user edited them. That is the
// supported upgrade path for built-in content.
const SeedVersion = 2

// Built-in sample categories.
const (
	CategoryRoutines = "Routines"
	CategoryTravel   = "Travel"
	CategoryWork     = "Work"
	CategoryErrands  = "Errands"
)

type seedTemplate struct {
	name     string
	category string
	items    []string
}

var defaultTemplates = []seedTemplate{
	{"Morning Routine", CategoryRoutines, []string{
		"Drink a glass of water",
		"Brush teeth",
		"Shower",
		"Make the bed",
		"Prepare breakfast",
		"Eat breakfast",
		"Do a workout",
		"Review top three priorities",
		"Check weather",
	}},
	{"Evening Shutdown", CategoryRoutines, []string{
		"Tidy kitchen",
		"Pack bag for tomorrow",
		"Review tomorrow's calendar",
		"Set alarms",
		"Read a book",
		"Stretch for five minutes",
		"Lock doors",
		"Adjust thermostat",
	}},
	{"Office Day Prep", CategoryWork, []string{
		"Pack laptop and charger",
		"Pack ID card",
		"Pack notebook",
		"Pack pen",
		"Prepare lunch",
		"Fill water bottle",
		"Pack headphones",
		"Confirm meeting times",
		"Check commute",
	}},
	{"Domestic Flight", CategoryTravel, []string{
		"Check in online",
		"Save boarding pass",
		"Pack government ID",
		"Pack carry-on within limits",
		"Pack liquids in a clear bag",
		"Charge phone",
		"Charge power bank",
		"Download offline entertainment",
		"Arrive 90 minutes early",
	}},
	{"International Trip", CategoryTravel, []string{
		"Verify passport validity",
		"Confirm entry requirements",
		"Purchase travel insurance",
		"Enable travel alerts",
		"Obtain local currency",
		"Pack prescribed medications",
		"Download offline maps",
		"Pack adapters",
		"Pack chargers",
	}},
	{"Road Trip", CategoryTravel, []string{
		"Plan route",
		"Check fuel level",
		"Check oil level",
		"Check tire pressure",
		"Pack emergency kit",
		"Pack snacks",
		"Pack water",
		"Download playlists",
		"Open toll app",
	}},
	{"Sunday Reset", CategoryRoutines, []string{
		"Review the upcoming week",
		"Call family members",
		"Plan meals for the week",
		"Build a grocery list",
		"Do laundry",
		"Tidy common areas",
		"Set weekly goals",
	}},
	{"Grocery Shopping", CategoryErrands, []string{
		"Check pantry for staple items",
		"Check fridge",
		"Check freezer",
		"Review meal plan",
		"Build a store list",
		"Take reusable bags",
		"Check loyalty app",
		"Take coin for trolley",
		"Bring payment method",
	}},
	{"Library Visit", CategoryErrands, []string{
		"Gather items to return",
		"Check holds",
		"Bring library card",
		"Bring reading list",
		"Pack laptop",
		"Pack tote bag",
	}},
	{"Gym Prep", CategoryRoutines, []string{
		"Pack gym clothes",
		"Pack gym shoes",
		"Pack towel",
		"Pack water bottle",
		"Pack headphones",
		"Load workout plan",
	}},
}

// SeedDefaults upserts the built-in template catalog by name. Without force
// it is a no-op once the persisted seed version is current.
func (s *Service) SeedDefaults(ctx context.Context, force bool) error {
	if !force {
		v, err := s.settings.GetInt(ctx, storage.SettingSeedVersion)
		if err != nil {
			return err
		}
		if v >= SeedVersion {
			return nil
		}
	}

	for _, st := range defaultTemplates {
		items := make([]ItemInput, 0, len(st.items))
		for _, title := range st.items {
			items = append(items, ItemInput{Title: title, IsRequired: true})
		}
		if _, err := s.UpsertTemplate(ctx, UpsertTemplateInput{
			Name:     st.name,
			Category: st.category,
			Items:    items,
		}); err != nil {
			return err
		}
	}
	return s.settings.SetInt(ctx, storage.SettingSeedVersion, SeedVersion)
}
