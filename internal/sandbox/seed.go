package sandbox

import "github.com/MKhiriev/webcrm-console/models"

// Demo account.
const (
	DemoUserName = "admin"
	DemoPassword = "admin"
)

func seed(s *Store) {
	s.users[DemoUserName] = User{
		Password: DemoPassword,
		Profile: models.Credential{
			ProfileID:               "1",
			UserName:                DemoUserName,
			PersonName:              "Mario",
			PersonSurname:           "Rossi",
			Email:                   "mario.rossi@example.it",
			HasAdministrativeGrants: true,
			IsTeamMember:            true,
			LastAccessDate:          "2026-01-01T08:00:00",
		},
	}

	s.types = []models.DestinationType{
		{ID: models.DestinationTypeRegisteredOffice, Description: "Sede Legale"},
		{ID: models.DestinationTypeOperationalSite, Description: "Sede Operativa"},
	}

	s.customers = []models.Customer{
		{ID: "10", Descr1: "Rossi Trasporti SpA", Typology: "Azienda", City: "Milano", Prov: "MI"},
		{ID: "20", Descr1: "Bianchi Logistica Srl", Typology: "Azienda", City: "Torino", Prov: "TO"},
		{ID: "30", Descr1: "Verdi Autolinee", Typology: "Ente", City: "Bologna", Prov: "BO"},
	}

	s.baseline = models.ProcessSummary{ModifiedCustomers: 1, NewItems: 2}
	s.itemsByCustomer["10"] = 3
	s.itemsByCustomer["20"] = 1

	live := func(d models.Destination) {
		s.destinations.put(d.ID, &row[models.Destination]{value: d, confirmedID: d.ID, state: StateConfirmed})
	}
	proposed := func(d models.Destination, confirmedID models.ID) {
		s.destinations.put(d.ID, &row[models.Destination]{value: d, confirmedID: confirmedID, state: StateProposed})
	}

	live(models.Destination{ID: "100", CustomerID: "10", Descr1: "Sede", Address: "Via Roma 1", City: "Milano", County: "MI", DestinationType: "1", TelephoneNumber: "0212345678"})
	live(models.Destination{ID: "101", CustomerID: "10", Descr1: "Magazzino", Address: "Via Po 5", City: "Segrate", County: "MI", DestinationType: "2", PersonReference: "Luca Neri"})
	live(models.Destination{ID: "200", CustomerID: "20", Descr1: "Sede", Address: "Corso Francia 20", City: "Torino", County: "TO", DestinationType: "1"})

	proposed(models.Destination{ID: "110", CustomerID: "30", Descr1: "Deposito", Address: "Via Emilia 300", City: "Bologna", County: "BO", DestinationType: "2"}, models.NoID)
	proposed(models.Destination{ID: "111", CustomerID: "10", Descr1: "Magazzino", Address: "Via Po 7", City: "Segrate", County: "MI", DestinationType: "2", PersonReference: "Giulia Neri"}, "101")
	proposed(models.Destination{ID: "112", CustomerID: "20", Descr1: "Officina", Address: "Via Nizza 2", City: "Torino", County: "TO", DestinationType: "2"}, "112")

	liveRef := func(r models.Reference) {
		s.references.put(r.ID, &row[models.Reference]{value: r, confirmedID: r.ID, state: StateConfirmed})
	}
	proposedRef := func(r models.Reference, confirmedID models.ID) {
		s.references.put(r.ID, &row[models.Reference]{value: r, confirmedID: confirmedID, state: StateProposed})
	}

	liveRef(models.Reference{ID: "500", CustomerID: "10", FirstName: "Luca", LastName: "Neri", Role: "Buyer", Email: "luca.neri@rossi.it", Telephone: "0212345679"})
	liveRef(models.Reference{ID: "501", CustomerID: "20", FirstName: "Anna", LastName: "Gialli", Role: "Amministrazione", Email: "anna@bianchi.it"})

	proposedRef(models.Reference{ID: "510", CustomerID: "30", FirstName: "Paolo", LastName: "Blu", Role: "Direttore", Email: "paolo.blu@verdi.it"}, models.NoID)
	proposedRef(models.Reference{ID: "511", CustomerID: "10", FirstName: "Luca", LastName: "Neri", Role: "Responsabile acquisti", Email: "l.neri@rossi.it", Telephone: "0212345679"}, "500")
	proposedRef(models.Reference{ID: "512", CustomerID: "20", FirstName: "Sara", LastName: "Viola", Description: "Referente tecnico"}, "512")
}
