package sandbox

import "github.com/MKhiriev/webcrm-console/models"

type row[T any] struct {
	value T
	// confirmedID is the live row this one would replace when proposed, or
	// the row's own id once live.
	confirmedID models.ID
	state       State
}

// table keeps rows in insertion order.
type table[T any] struct {
	rows  map[models.ID]*row[T]
	order []models.ID
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[models.ID]*row[T])}
}

func (t *table[T]) put(id models.ID, r *row[T]) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = r
}

// get returns a row that has not been dismissed.
func (t *table[T]) get(id models.ID) (*row[T], bool) {
	r, ok := t.rows[id]
	if !ok || r.state == StateDismissed {
		return nil, false
	}
	return r, true
}

func (t *table[T]) remove(id models.ID) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

func (t *table[T]) each(state State, fn func(id models.ID, r *row[T])) {
	for _, id := range t.order {
		if r := t.rows[id]; r.state == state {
			fn(id, r)
		}
	}
}

func (t *table[T]) confirm(id models.ID) error {
	r, ok := t.get(id)
	if !ok {
		return ErrNotFound
	}
	if r.state != StateProposed {
		return ErrNotProposed
	}

	if replaced := r.confirmedID; !replaced.IsZero() && replaced != id {
		t.remove(replaced)
		// Other proposals against the replaced row now modify this one.
		t.each(StateProposed, func(other models.ID, o *row[T]) {
			if other != id && o.confirmedID == replaced {
				o.confirmedID = id
			}
		})
	}
	r.state = StateConfirmed
	r.confirmedID = id
	return nil
}

func (t *table[T]) dismiss(id models.ID) error {
	r, ok := t.get(id)
	if !ok {
		return ErrNotFound
	}
	if r.state != StateProposed {
		return ErrNotProposed
	}
	r.state = StateDismissed
	return nil
}

// counts returns how many proposals create a new record and how many modify
// an existing one.
func (t *table[T]) counts() (newCount, modified int) {
	t.each(StateProposed, func(_ models.ID, r *row[T]) {
		if r.confirmedID.IsZero() {
			newCount++
		} else {
			modified++
		}
	})
	return newCount, modified
}

type field struct {
	name  string
	value string
}

// difference compares proposal id with its live counterpart field by field.
// A proposal without a distinct counterpart has no differences.
func (t *table[T]) difference(id models.ID, fields func(T) []field) ([]models.FieldDifference, error) {
	r, ok := t.get(id)
	if !ok {
		return nil, ErrNotFound
	}

	out := []models.FieldDifference{}
	if r.state != StateProposed || r.confirmedID.IsZero() || r.confirmedID == id {
		return out, nil
	}
	live, ok := t.get(r.confirmedID)
	if !ok {
		return out, nil
	}

	oldFields, newFields := fields(live.value), fields(r.value)
	for i := range newFields {
		if oldFields[i].value != newFields[i].value {
			out = append(out, models.FieldDifference{
				PropName: newFields[i].name,
				OldValue: oldFields[i].value,
				NewValue: newFields[i].value,
			})
		}
	}
	return out, nil
}
