package sandbox

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/utils"
	"github.com/MKhiriev/webcrm-console/models"
)

// User is a sandbox account.
type User struct {
	Password string
	Profile  models.Credential
}

// Store holds the sandbox data set. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	users        map[string]User
	customers    []models.Customer
	destinations *table[models.Destination]
	references   *table[models.Reference]
	types        []models.DestinationType

	// baseline carries the counters of categories without a confirmation
	// workflow (customers, items).
	baseline        models.ProcessSummary
	itemsByCustomer map[models.ID]int

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewStore returns a store filled with the demo data set.
func NewStore(log *logger.Logger) *Store {
	s := &Store{
		users:           make(map[string]User),
		destinations:    newTable[models.Destination](),
		references:      newTable[models.Reference](),
		itemsByCustomer: make(map[models.ID]int),
		ids:             utils.NewUUIDGenerator(),
		logger:          log,
	}
	seed(s)
	return s
}

// ── Authentication ──

// SignIn checks the password grant and returns the user's profile without a
// token.
func (s *Store) SignIn(userName, password string) (models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[strings.ToLower(strings.TrimSpace(userName))]
	if !ok || u.Password != password {
		return models.Credential{}, ErrWrongCredentials
	}
	return u.Profile, nil
}

// ── Confirmation workflow ──

func (s *Store) Summary() models.ProcessSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := s.baseline
	sum.NewDestinations, sum.ModifiedDestinations = s.destinations.counts()
	sum.NewReferences, sum.ModifiedReferences = s.references.counts()

	sum.TotalNewElements = sum.NewCustomers + sum.NewDestinations + sum.NewReferences + sum.NewItems
	sum.TotalModifiedElements = sum.ModifiedCustomers + sum.ModifiedDestinations + sum.ModifiedReferences + sum.ModifiedItems
	return sum
}

func (s *Store) PendingDestinations() []models.PendingDestination {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.PendingDestination{}
	s.destinations.each(StateProposed, func(id models.ID, r *row[models.Destination]) {
		d := r.value
		out = append(out, models.PendingDestination{
			ID:              id,
			ConfirmedID:     r.confirmedID,
			CustomerID:      d.CustomerID,
			CustomerName:    s.customerName(d.CustomerID),
			Description:     d.Descr1,
			Address:         d.Address,
			City:            d.City,
			TypeDescription: s.typeDescription(d.DestinationType),
		})
	})
	return out
}

func (s *Store) PendingReferences() []models.PendingReference {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.PendingReference{}
	s.references.each(StateProposed, func(id models.ID, r *row[models.Reference]) {
		ref := r.value
		out = append(out, models.PendingReference{
			ID:           id,
			ConfirmedID:  r.confirmedID,
			CustomerID:   ref.CustomerID,
			CustomerName: s.customerName(ref.CustomerID),
			FirstName:    ref.FirstName,
			LastName:     ref.LastName,
			Email:        ref.Email,
			Description:  ref.Description,
		})
	})
	return out
}

// Decide applies a confirm or dismiss decision to proposal id.
func (s *Store) Decide(category models.Category, id models.ID, d models.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch {
	case category == models.CategoryDestinations && d == models.DecisionConfirm:
		err = s.destinations.confirm(id)
	case category == models.CategoryDestinations:
		err = s.destinations.dismiss(id)
	case category == models.CategoryReferences && d == models.DecisionConfirm:
		err = s.references.confirm(id)
	case category == models.CategoryReferences:
		err = s.references.dismiss(id)
	default:
		return fmt.Errorf("%s: %w", category, ErrUnsupportedCategory)
	}
	if err != nil {
		return fmt.Errorf("%s %s %s: %w", d, category, id, err)
	}

	s.logger.Info().
		Str("category", string(category)).
		Str("id", id.String()).
		Str("decision", d.String()).
		Msg("proposal decided")
	return nil
}

func (s *Store) Difference(category models.Category, id models.ID) ([]models.FieldDifference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch category {
	case models.CategoryDestinations:
		return s.destinations.difference(id, s.destinationFields)
	case models.CategoryReferences:
		return s.references.difference(id, referenceFields)
	default:
		return nil, fmt.Errorf("%s: %w", category, ErrUnsupportedCategory)
	}
}

func (s *Store) destinationFields(d models.Destination) []field {
	return []field{
		{name: "Descrizione", value: d.Descr1},
		{name: "Descrizione 2", value: d.Descr2},
		{name: "Indirizzo", value: d.Address},
		{name: "Città", value: d.City},
		{name: "Provincia", value: d.County},
		{name: "Email", value: d.Email},
		{name: "Telefono", value: d.TelephoneNumber},
		{name: "Cellulare", value: d.MobileNumber},
		{name: "Referente", value: d.PersonReference},
		{name: "Tipologia Sede", value: s.typeDescription(d.DestinationType)},
	}
}

func referenceFields(r models.Reference) []field {
	return []field{
		{name: "Nome", value: r.FirstName},
		{name: "Cognome", value: r.LastName},
		{name: "Ruolo", value: r.Role},
		{name: "Email", value: r.Email},
		{name: "Descrizione", value: r.Description},
		{name: "Telefono", value: r.Telephone},
		{name: "Cellulare", value: r.MobilePhone},
	}
}

func (s *Store) customerName(id models.ID) string {
	for _, c := range s.customers {
		if c.ID == id {
			return c.Descr1
		}
	}
	return ""
}

func (s *Store) typeDescription(id string) string {
	for _, t := range s.types {
		if t.ID == id {
			return t.Description
		}
	}
	return id
}
