package sandbox

import (
	"testing"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(logger.Nop())
}

func pendingIDs[T interface{ Record() models.PendingRecord }](rows []T) []models.ID {
	ids := make([]models.ID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.Record().ID)
	}
	return ids
}

// ── Authentication ──

func TestStore_SignIn(t *testing.T) {
	s := newTestStore(t)

	cred, err := s.SignIn(" ADMIN ", DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, DemoUserName, cred.UserName)
	assert.True(t, bool(cred.HasAdministrativeGrants))
	assert.Empty(t, cred.AccessToken)

	_, err = s.SignIn(DemoUserName, "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)

	_, err = s.SignIn("nobody", DemoPassword)
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

// ── Summary ──

func TestStore_Summary_CountsProposals(t *testing.T) {
	s := newTestStore(t)

	sum := s.Summary()

	assert.Equal(t, 1, sum.NewDestinations)
	assert.Equal(t, 2, sum.ModifiedDestinations)
	assert.Equal(t, 1, sum.NewReferences)
	assert.Equal(t, 2, sum.ModifiedReferences)
	assert.Equal(t, 1, sum.ModifiedCustomers)
	assert.Equal(t, 2, sum.NewItems)
	assert.Equal(t, 1+1+2, sum.TotalNewElements)
	assert.Equal(t, 1+2+2, sum.TotalModifiedElements)
	assert.True(t, sum.HasElementsToConfirm())
}

func TestStore_Summary_DropsAfterDecisions(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Decide(models.CategoryDestinations, "110", models.DecisionConfirm))
	require.NoError(t, s.Decide(models.CategoryReferences, "511", models.DecisionDismiss))

	sum := s.Summary()
	assert.Equal(t, 0, sum.NewDestinations)
	assert.Equal(t, 1, sum.ModifiedReferences)
}

// ── Pending lists ──

func TestStore_PendingLists_CoverEveryCounterpartKind(t *testing.T) {
	s := newTestStore(t)

	dest := s.PendingDestinations()
	require.Len(t, dest, 3)
	assert.Equal(t, []models.ID{"110", "111", "112"}, pendingIDs(dest))
	assert.Equal(t, models.CounterpartNone, dest[0].Record().Counterpart.Kind)
	assert.Equal(t, models.CounterpartConfirmed, dest[1].Record().Counterpart.Kind)
	assert.Equal(t, models.CounterpartProposed, dest[2].Record().Counterpart.Kind)
	assert.Equal(t, "Verdi Autolinee", dest[0].CustomerName)
	assert.Equal(t, "Sede Operativa", dest[0].TypeDescription)

	refs := s.PendingReferences()
	require.Len(t, refs, 3)
	assert.Equal(t, []models.ID{"510", "511", "512"}, pendingIDs(refs))
	assert.Equal(t, "Rossi Trasporti SpA", refs[1].CustomerName)
}

// ── State transitions ──

func TestStore_Decide(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		id       models.ID
		decision models.Decision
		wantErr  error
	}{
		{name: "confirm new destination", category: models.CategoryDestinations, id: "110", decision: models.DecisionConfirm},
		{name: "dismiss modified reference", category: models.CategoryReferences, id: "511", decision: models.DecisionDismiss},
		{name: "confirm identical proposal", category: models.CategoryReferences, id: "512", decision: models.DecisionConfirm},
		{name: "live record is not a proposal", category: models.CategoryDestinations, id: "100", decision: models.DecisionConfirm, wantErr: ErrNotProposed},
		{name: "unknown id", category: models.CategoryReferences, id: "999", decision: models.DecisionDismiss, wantErr: ErrNotFound},
		{name: "customers have no workflow", category: models.CategoryCustomers, id: "10", decision: models.DecisionConfirm, wantErr: ErrUnsupportedCategory},
		{name: "items have no workflow", category: models.CategoryItems, id: "1", decision: models.DecisionDismiss, wantErr: ErrUnsupportedCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)

			err := s.Decide(tt.category, tt.id, tt.decision)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStore_Confirm_ReplacesCounterpart(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Decide(models.CategoryDestinations, "111", models.DecisionConfirm))

	_, err := s.Destination("101")
	assert.ErrorIs(t, err, ErrNotFound)

	d, err := s.Destination("111")
	require.NoError(t, err)
	assert.Equal(t, "Via Po 7", d.Address)

	live := s.DestinationsByCustomer("10")
	ids := make([]models.ID, 0, len(live))
	for _, d := range live {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []models.ID{"100", "111"}, ids)
}

func TestStore_Confirm_RepointsSiblingProposals(t *testing.T) {
	s := newTestStore(t)
	sibling := models.Destination{ID: "113", CustomerID: "10", Descr1: "Magazzino", Address: "Via Po 9", City: "Segrate", County: "MI", DestinationType: "2", PersonReference: "Giulia Neri"}
	s.destinations.put(sibling.ID, &row[models.Destination]{value: sibling, confirmedID: "101", state: StateProposed})

	require.NoError(t, s.Decide(models.CategoryDestinations, "111", models.DecisionConfirm))

	var pending models.PendingDestination
	for _, p := range s.PendingDestinations() {
		if p.ID == "113" {
			pending = p
		}
	}
	require.Equal(t, models.ID("113"), pending.ID)
	assert.Equal(t, models.ID("111"), pending.ConfirmedID)

	diffs, err := s.Difference(models.CategoryDestinations, "113")
	require.NoError(t, err)
	assert.Equal(t, []models.FieldDifference{
		{PropName: "Indirizzo", OldValue: "Via Po 7", NewValue: "Via Po 9"},
	}, diffs)

	require.NoError(t, s.Decide(models.CategoryDestinations, "113", models.DecisionConfirm))
	_, err = s.Destination("111")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Dismiss_KeepsCounterpart(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Decide(models.CategoryReferences, "511", models.DecisionDismiss))

	ref, err := s.Reference("500")
	require.NoError(t, err)
	assert.Equal(t, "Buyer", ref.Role)

	_, err = s.Reference("511")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, pendingIDs(s.PendingReferences()), models.ID("511"))
}

func TestStore_Decide_IsOneShot(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Decide(models.CategoryDestinations, "112", models.DecisionConfirm))
	assert.ErrorIs(t, s.Decide(models.CategoryDestinations, "112", models.DecisionDismiss), ErrNotProposed)

	require.NoError(t, s.Decide(models.CategoryDestinations, "110", models.DecisionDismiss))
	assert.ErrorIs(t, s.Decide(models.CategoryDestinations, "110", models.DecisionConfirm), ErrNotFound)
}

// ── Differences ──

func TestStore_Difference(t *testing.T) {
	s := newTestStore(t)

	t.Run("distinct counterpart", func(t *testing.T) {
		diffs, err := s.Difference(models.CategoryDestinations, "111")
		require.NoError(t, err)
		assert.Equal(t, []models.FieldDifference{
			{PropName: "Indirizzo", OldValue: "Via Po 5", NewValue: "Via Po 7"},
			{PropName: "Referente", OldValue: "Luca Neri", NewValue: "Giulia Neri"},
		}, diffs)
	})

	t.Run("reference fields in display order", func(t *testing.T) {
		diffs, err := s.Difference(models.CategoryReferences, "511")
		require.NoError(t, err)
		require.Len(t, diffs, 2)
		assert.Equal(t, "Ruolo", diffs[0].PropName)
		assert.Equal(t, "Email", diffs[1].PropName)
	})

	t.Run("no counterpart", func(t *testing.T) {
		diffs, err := s.Difference(models.CategoryDestinations, "110")
		require.NoError(t, err)
		assert.Empty(t, diffs)
		assert.NotNil(t, diffs)
	})

	t.Run("identical proposal", func(t *testing.T) {
		diffs, err := s.Difference(models.CategoryReferences, "512")
		require.NoError(t, err)
		assert.Empty(t, diffs)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.Difference(models.CategoryReferences, "999")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unsupported category", func(t *testing.T) {
		_, err := s.Difference(models.CategoryItems, "1")
		assert.ErrorIs(t, err, ErrUnsupportedCategory)
	})
}

// ── Customers ──

func TestStore_CustomerSummary(t *testing.T) {
	s := newTestStore(t)

	sum, err := s.CustomerSummary("10")
	require.NoError(t, err)
	assert.Equal(t, "Rossi Trasporti SpA", sum.Descr1)
	assert.Equal(t, "Via Roma 1", sum.Address)
	assert.Equal(t, 2, sum.TotalDestinations)
	assert.Equal(t, 1, sum.TotalReferences)
	assert.Equal(t, 3, sum.TotalItems)

	_, err = s.CustomerSummary("99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Customers_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)

	list := s.Customers()
	require.Len(t, list, 3)
	list[0].Descr1 = "changed"

	c, err := s.Customer("10")
	require.NoError(t, err)
	assert.Equal(t, "Rossi Trasporti SpA", c.Descr1)
}

// ── CRUD ──

func TestStore_DestinationCRUD(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateDestination(models.Destination{CustomerID: "30", Descr1: "Filiale", County: "BO", DestinationType: "2"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Verdi Autolinee", created.CustomerDescription)
	assert.Len(t, s.DestinationsByCustomer("30"), 1)

	created.City = "Imola"
	updated, err := s.UpdateDestination(created)
	require.NoError(t, err)
	assert.Equal(t, "Imola", updated.City)

	require.NoError(t, s.DeleteDestination(created.ID))
	assert.Empty(t, s.DestinationsByCustomer("30"))
	assert.ErrorIs(t, s.DeleteDestination(created.ID), ErrNotFound)
}

func TestStore_DestinationCRUD_Invalid(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateDestination(models.Destination{CustomerID: "99", Descr1: "x"})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = s.CreateDestination(models.Destination{CustomerID: "10", Descr1: "  "})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = s.UpdateDestination(models.Destination{ID: "110", CustomerID: "30", Descr1: "x"})
	assert.ErrorIs(t, err, ErrNotFound, "proposals cannot be edited")
}

func TestStore_ReferenceCRUD(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateReference(models.Reference{CustomerID: "20", LastName: "Marrone"})
	require.NoError(t, err)
	assert.Equal(t, "Bianchi Logistica Srl", created.CustomerDescription)
	assert.Len(t, s.ReferencesByCustomer("20"), 2)

	created.Role = "Autista"
	updated, err := s.UpdateReference(created)
	require.NoError(t, err)
	assert.Equal(t, "Autista", updated.Role)

	got, err := s.Reference(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Autista", got.Role)

	require.NoError(t, s.DeleteReference(created.ID))
	assert.Len(t, s.ReferencesByCustomer("20"), 1)

	_, err = s.CreateReference(models.Reference{CustomerID: "20"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestState_Terminal(t *testing.T) {
	assert.False(t, StateProposed.Terminal())
	assert.True(t, StateConfirmed.Terminal())
	assert.True(t, StateDismissed.Terminal())
	assert.Equal(t, "dismissed", StateDismissed.String())
}
