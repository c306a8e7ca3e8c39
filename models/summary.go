// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProcessSummary is the aggregate returned by GET /process/GetSummary.
//
// TotalNewElements is expected to equal the sum of the per-category New*
// counters (and likewise for modified), but the server is authoritative and
// the client never recomputes or enforces it.
type ProcessSummary struct {
	TotalNewElements      int `json:"totalNewElements"`
	TotalModifiedElements int `json:"totalModifiedElements"`

	NewCustomers      int `json:"newCustomers"`
	ModifiedCustomers int `json:"modifiedCustomers"`

	NewDestinations      int `json:"newDestinations"`
	ModifiedDestinations int `json:"modifiedDestinations"`

	NewReferences      int `json:"newReferences"`
	ModifiedReferences int `json:"modifiedReferences"`

	NewItems      int `json:"newItems"`
	ModifiedItems int `json:"modifiedItems"`
}

// CategoryCounts is the new/modified breakdown of a single category.
type CategoryCounts struct {
	Category Category
	New      int
	Modified int
}

// Total returns New + Modified.
func (c CategoryCounts) Total() int {
	return c.New + c.Modified
}

// ByCategory returns the per-category breakdown in [Categories] order.
func (s ProcessSummary) ByCategory() []CategoryCounts {
	return []CategoryCounts{
		{Category: CategoryCustomers, New: s.NewCustomers, Modified: s.ModifiedCustomers},
		{Category: CategoryDestinations, New: s.NewDestinations, Modified: s.ModifiedDestinations},
		{Category: CategoryReferences, New: s.NewReferences, Modified: s.ModifiedReferences},
		{Category: CategoryItems, New: s.NewItems, Modified: s.ModifiedItems},
	}
}

// Counters returns the ten raw counters.
func (s ProcessSummary) Counters() []int {
	return []int{
		s.TotalNewElements, s.TotalModifiedElements,
		s.NewCustomers, s.ModifiedCustomers,
		s.NewDestinations, s.ModifiedDestinations,
		s.NewReferences, s.ModifiedReferences,
		s.NewItems, s.ModifiedItems,
	}
}

// HasElementsToConfirm reports whether any counter is greater than zero.
// A nil summary (not loaded, or failed to load) yields false.
func (s *ProcessSummary) HasElementsToConfirm() bool {
	if s == nil {
		return false
	}
	for _, c := range s.Counters() {
		if c > 0 {
			return true
		}
	}
	return false
}
