// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a WebCRM record identifier.
//
// The remote API is not consistent about identifier encoding: the same field
// may arrive as a JSON number, a JSON string or null depending on the endpoint.
// ID normalises all of them to their decimal text form so that comparisons
// between an id and its confirmedId are exact.
type ID string

// NoID is the textual sentinel the API uses for "no confirmed counterpart".
const NoID ID = "0"

// IsZero reports whether id is empty or the "0" sentinel.
func (id ID) IsZero() bool {
	s := strings.TrimSpace(string(id))
	return s == "" || s == string(NoID)
}

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts numbers, strings and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes canonical decimal ids as JSON numbers and everything
// else as strings, which is what the API expects on create/update. Ids such as
// "007" or "+5" parse as integers but are not valid JSON numbers, so they stay
// strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("0"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}
