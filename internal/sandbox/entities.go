package sandbox

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/webcrm-console/models"
)

// ── Customers ──

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Customer{}, s.customers...)
}

func (s *Store) Customer(id models.ID) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customer(id)
	if !ok {
		return models.Customer{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}
	return c, nil
}

// CustomerSummary counts the live destinations and contacts of customer id.
func (s *Store) CustomerSummary(id models.ID) (models.CustomerSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customer(id)
	if !ok {
		return models.CustomerSummary{}, fmt.Errorf("customer %s: %w", id, ErrNotFound)
	}

	sum := models.CustomerSummary{
		ID:         c.ID,
		Descr1:     c.Descr1,
		City:       c.City,
		Province:   c.Prov,
		TotalItems: s.itemsByCustomer[id],
	}
	s.destinations.each(StateConfirmed, func(_ models.ID, r *row[models.Destination]) {
		if r.value.CustomerID == id {
			sum.TotalDestinations++
			if r.value.DestinationType == models.DestinationTypeRegisteredOffice {
				sum.Address = r.value.Address
			}
		}
	})
	s.references.each(StateConfirmed, func(_ models.ID, r *row[models.Reference]) {
		if r.value.CustomerID == id {
			sum.TotalReferences++
		}
	})
	return sum, nil
}

func (s *Store) customer(id models.ID) (models.Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// ── Destinations ──

func (s *Store) DestinationTypes() []models.DestinationType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.DestinationType{}, s.types...)
}

// DestinationsByCustomer lists the live destinations of a customer.
func (s *Store) DestinationsByCustomer(customerID models.ID) []models.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Destination{}
	s.destinations.each(StateConfirmed, func(_ models.ID, r *row[models.Destination]) {
		if r.value.CustomerID == customerID {
			out = append(out, s.withCustomerDestination(r.value))
		}
	})
	return out
}

// Destination returns a live or proposed destination.
func (s *Store) Destination(id models.ID) (models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.destinations.get(id)
	if !ok {
		return models.Destination{}, fmt.Errorf("destination %s: %w", id, ErrNotFound)
	}
	return s.withCustomerDestination(r.value), nil
}

func (s *Store) CreateDestination(d models.Destination) (models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkDestination(d); err != nil {
		return models.Destination{}, err
	}

	d.ID = models.ID(s.ids.Generate())
	s.destinations.put(d.ID, &row[models.Destination]{value: d, confirmedID: d.ID, state: StateConfirmed})
	return s.withCustomerDestination(d), nil
}

// UpdateDestination overwrites a live destination.
func (s *Store) UpdateDestination(d models.Destination) (models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.destinations.get(d.ID)
	if !ok || r.state != StateConfirmed {
		return models.Destination{}, fmt.Errorf("destination %s: %w", d.ID, ErrNotFound)
	}
	if err := s.checkDestination(d); err != nil {
		return models.Destination{}, err
	}

	r.value = d
	return s.withCustomerDestination(d), nil
}

func (s *Store) DeleteDestination(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.destinations.get(id); !ok {
		return fmt.Errorf("destination %s: %w", id, ErrNotFound)
	}
	s.destinations.remove(id)
	return nil
}

func (s *Store) checkDestination(d models.Destination) error {
	if _, ok := s.customer(d.CustomerID); !ok {
		return fmt.Errorf("unknown customer %s: %w", d.CustomerID, ErrInvalidRecord)
	}
	if strings.TrimSpace(d.Descr1) == "" {
		return fmt.Errorf("empty description: %w", ErrInvalidRecord)
	}
	return nil
}

func (s *Store) withCustomerDestination(d models.Destination) models.Destination {
	d.CustomerDescription = s.customerName(d.CustomerID)
	return d
}

// ── References ──

// ReferencesByCustomer lists the live contacts of a customer.
func (s *Store) ReferencesByCustomer(customerID models.ID) []models.Reference {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Reference{}
	s.references.each(StateConfirmed, func(_ models.ID, r *row[models.Reference]) {
		if r.value.CustomerID == customerID {
			out = append(out, s.withCustomerReference(r.value))
		}
	})
	return out
}

// Reference returns a live or proposed contact.
func (s *Store) Reference(id models.ID) (models.Reference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.references.get(id)
	if !ok {
		return models.Reference{}, fmt.Errorf("reference %s: %w", id, ErrNotFound)
	}
	return s.withCustomerReference(r.value), nil
}

func (s *Store) CreateReference(ref models.Reference) (models.Reference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReference(ref); err != nil {
		return models.Reference{}, err
	}

	ref.ID = models.ID(s.ids.Generate())
	s.references.put(ref.ID, &row[models.Reference]{value: ref, confirmedID: ref.ID, state: StateConfirmed})
	return s.withCustomerReference(ref), nil
}

// UpdateReference overwrites a live contact.
func (s *Store) UpdateReference(ref models.Reference) (models.Reference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.references.get(ref.ID)
	if !ok || r.state != StateConfirmed {
		return models.Reference{}, fmt.Errorf("reference %s: %w", ref.ID, ErrNotFound)
	}
	if err := s.checkReference(ref); err != nil {
		return models.Reference{}, err
	}

	r.value = ref
	return s.withCustomerReference(ref), nil
}

func (s *Store) DeleteReference(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.references.get(id); !ok {
		return fmt.Errorf("reference %s: %w", id, ErrNotFound)
	}
	s.references.remove(id)
	return nil
}

func (s *Store) checkReference(ref models.Reference) error {
	if _, ok := s.customer(ref.CustomerID); !ok {
		return fmt.Errorf("unknown customer %s: %w", ref.CustomerID, ErrInvalidRecord)
	}
	if strings.TrimSpace(ref.FirstName+ref.LastName) == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidRecord)
	}
	return nil
}

func (s *Store) withCustomerReference(ref models.Reference) models.Reference {
	ref.CustomerDescription = s.customerName(ref.CustomerID)
	return ref
}
