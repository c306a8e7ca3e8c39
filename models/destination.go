// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Destination type codes accepted by the create/update form.
const (
	DestinationTypeRegisteredOffice = "1"
	DestinationTypeOperationalSite  = "2"
)

// Destination is a customer location ("sede").
type Destination struct {
	ID                  ID     `json:"id"`
	CustomerID          ID     `json:"customerId" validate:"required"`
	CustomerDescription string `json:"customerDescription"`
	Descr1              string `json:"descr1" validate:"required" label:"Descrizione"`
	Descr2              string `json:"descr2"`
	Address             string `json:"address"`
	City                string `json:"city"`
	Email               string `json:"email" validate:"omitempty,legacyemail" label:"Email"`
	TelephoneNumber     string `json:"telephonenumber" validate:"omitempty,number" label:"Telefono"`
	MobileNumber        string `json:"mobilenumber" validate:"omitempty,number,mobile" label:"Cellulare"`
	County              string `json:"county" validate:"required" label:"Provincia"`
	PersonReference     string `json:"personreference"`
	DestinationType     string `json:"destinationtype" validate:"desttype" label:"Tipologia Sede"`
}

// DestinationType is one entry of GET /TypeDestination/GetDestinationTypes.
type DestinationType struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
