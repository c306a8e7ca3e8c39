package models

// FieldDifference is one row of a server-computed diff between a pending
// record and its confirmed counterpart. An empty OldValue means the field had
// no previous value; an empty NewValue means the field is being cleared.
type FieldDifference struct {
	PropName string `json:"propName"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// DifferenceView is what the difference viewer renders for one pending
// record. The two reads are independent: either error may be set while the
// other half holds data.
type DifferenceView struct {
	Differences    []FieldDifference
	DifferencesErr error

	CounterpartLabel string
	CounterpartErr   error
}
