// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CounterpartKind classifies the relationship between a pending record and
// the live record it would replace.
type CounterpartKind int

const (
	// CounterpartNone: no live version exists yet (confirmedId empty, 0 or "0").
	CounterpartNone CounterpartKind = iota
	// CounterpartProposed: confirmedId equals id, the proposed and live
	// versions are the same record and there is nothing to compare.
	CounterpartProposed
	// CounterpartConfirmed: a distinct live version exists and can be diffed.
	CounterpartConfirmed
)

// Counterpart is computed once per pending record when the list is fetched.
// Rendering and navigation only look at Kind and never re-derive it from the
// raw id fields.
type Counterpart struct {
	Kind CounterpartKind
	// ID is the confirmed record id. Set only for CounterpartConfirmed.
	ID ID
}

// NewCounterpart classifies a pending record from its id and confirmedId.
func NewCounterpart(id, confirmedID ID) Counterpart {
	switch {
	case confirmedID.IsZero():
		return Counterpart{Kind: CounterpartNone}
	case id == confirmedID:
		return Counterpart{Kind: CounterpartProposed}
	default:
		return Counterpart{Kind: CounterpartConfirmed, ID: confirmedID}
	}
}

// CanViewDifference reports whether a field-level diff can be shown.
func (c Counterpart) CanViewDifference() bool {
	return c.Kind == CounterpartConfirmed
}

// PendingReference is one row of GET /references/FetchNotConfirmed.
type PendingReference struct {
	ID           ID     `json:"id"`
	ConfirmedID  ID     `json:"confirmedId"`
	CustomerID   ID     `json:"customerId"`
	CustomerName string `json:"customerName"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Description  string `json:"description"`
}

// PendingDestination is one row of GET /destinations/FetchNotConfirmed.
type PendingDestination struct {
	ID              ID     `json:"id"`
	ConfirmedID     ID     `json:"confirmedId"`
	CustomerID      ID     `json:"customerId"`
	CustomerName    string `json:"customerName"`
	Description     string `json:"description"`
	Address         string `json:"address"`
	City            string `json:"city"`
	TypeDescription string `json:"typeDescription"`
}

// PendingRecord is the category-independent view of a row awaiting
// confirmation. Fields holds the category's display columns in the order
// given by [PendingColumns].
type PendingRecord struct {
	Category     Category
	ID           ID
	ConfirmedID  ID
	CustomerName string
	Fields       []string
	Counterpart  Counterpart
}

// CanViewDifference reports whether the "view difference" action is enabled.
func (r PendingRecord) CanViewDifference() bool {
	return r.Counterpart.CanViewDifference()
}

// Record converts the wire row into a [PendingRecord].
func (p PendingReference) Record() PendingRecord {
	return PendingRecord{
		Category:     CategoryReferences,
		ID:           p.ID,
		ConfirmedID:  p.ConfirmedID,
		CustomerName: p.CustomerName,
		Fields:       []string{p.CustomerName, p.FirstName, p.LastName, p.Email, p.Description},
		Counterpart:  NewCounterpart(p.ID, p.ConfirmedID),
	}
}

// Record converts the wire row into a [PendingRecord].
func (p PendingDestination) Record() PendingRecord {
	return PendingRecord{
		Category:     CategoryDestinations,
		ID:           p.ID,
		ConfirmedID:  p.ConfirmedID,
		CustomerName: p.CustomerName,
		Fields:       []string{p.CustomerName, p.Description, p.Address, p.City, p.TypeDescription},
		Counterpart:  NewCounterpart(p.ID, p.ConfirmedID),
	}
}

// PendingColumns returns the column headers matching PendingRecord.Fields.
func PendingColumns(c Category) []string {
	switch c {
	case CategoryReferences:
		return []string{"Cliente", "Nome", "Cognome", "Email", "Descrizione"}
	case CategoryDestinations:
		return []string{"Cliente", "Descrizione", "Indirizzo", "Città", "Tipologia"}
	default:
		return nil
	}
}
