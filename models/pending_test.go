// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCounterpart(t *testing.T) {
	tests := []struct {
		name        string
		id          ID
		confirmedID ID
		wantKind    CounterpartKind
		wantView    bool
	}{
		{name: "identical record", id: "101", confirmedID: "101", wantKind: CounterpartProposed},
		{name: "sentinel zero string", id: "101", confirmedID: "0", wantKind: CounterpartNone},
		{name: "empty confirmed id", id: "101", confirmedID: "", wantKind: CounterpartNone},
		{name: "padded zero", id: "101", confirmedID: " 0 ", wantKind: CounterpartNone},
		{name: "distinct counterpart", id: "101", confirmedID: "55", wantKind: CounterpartConfirmed, wantView: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounterpart(tt.id, tt.confirmedID)
			assert.Equal(t, tt.wantKind, c.Kind)
			assert.Equal(t, tt.wantView, c.CanViewDifference())
			if tt.wantView {
				assert.Equal(t, tt.confirmedID, c.ID)
			} else {
				assert.Empty(t, c.ID)
			}
		})
	}
}

func TestPendingReference_Record_FromWire(t *testing.T) {
	// numeric zero, string zero, null and a real counterpart all come from the same endpoint
	body := `[
		{"id": 101, "confirmedId": 0, "customerName": "Rossi SpA", "firstName": "Mario"},
		{"id": "102", "confirmedId": "0"},
		{"id": 103, "confirmedId": null},
		{"id": 104, "confirmedId": 104},
		{"id": 105, "confirmedId": "55", "email": "a@x.com"}
	]`

	var rows []PendingReference
	require.NoError(t, json.Unmarshal([]byte(body), &rows))
	require.Len(t, rows, 5)

	want := []bool{false, false, false, false, true}
	for i, row := range rows {
		rec := row.Record()
		assert.Equal(t, CategoryReferences, rec.Category)
		assert.Equal(t, want[i], rec.CanViewDifference(), "row %d", i)
	}

	first := rows[0].Record()
	assert.Equal(t, ID("101"), first.ID)
	assert.Equal(t, []string{"Rossi SpA", "Mario", "", "", ""}, first.Fields)
	assert.Len(t, first.Fields, len(PendingColumns(CategoryReferences)))
	assert.Equal(t, CounterpartProposed, rows[3].Record().Counterpart.Kind)
}

func TestPendingDestination_Record(t *testing.T) {
	row := PendingDestination{
		ID:              "7",
		ConfirmedID:     "3",
		CustomerName:    "Bianchi Srl",
		Description:     "Magazzino",
		Address:         "Via Roma 1",
		City:            "Milano",
		TypeDescription: "Sede Operativa",
	}

	rec := row.Record()

	assert.Equal(t, CategoryDestinations, rec.Category)
	assert.True(t, rec.CanViewDifference())
	assert.Equal(t, ID("3"), rec.Counterpart.ID)
	assert.Equal(t, []string{"Bianchi Srl", "Magazzino", "Via Roma 1", "Milano", "Sede Operativa"}, rec.Fields)
}

func TestPendingColumns_NotConfirmable(t *testing.T) {
	assert.Nil(t, PendingColumns(CategoryCustomers))
	assert.Nil(t, PendingColumns(CategoryItems))
}
