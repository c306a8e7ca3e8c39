// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// CredentialStorageKey is the key under which the signed-in credential is
// persisted in the local key/value store.
const CredentialStorageKey = "basicAuthentication"

// Flag is a boolean that the authentication endpoint encodes either as a JSON
// bool or as the strings "TRUE"/"FALSE".
type Flag bool

// UnmarshalJSON accepts true/false, "TRUE"/"FALSE" (any case) and null.
func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = false
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flag(strings.EqualFold(strings.TrimSpace(s), "true"))
		return nil
	}

	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Flag(v)
	return nil
}

// Credential is the signed-in user's bearer token plus the lightweight
// profile returned by POST /token.
type Credential struct {
	AccessToken             string `json:"access_token"`
	ProfileID               ID     `json:"profileId"`
	UserName                string `json:"userName"`
	PersonName              string `json:"personName"`
	PersonSurname           string `json:"personSurname"`
	AliasName               string `json:"aliasName"`
	Email                   string `json:"email"`
	HasAdministrativeGrants Flag   `json:"hasAdministrativeGrants"`
	IsTeamMember            Flag   `json:"isTeamMember"`
	LastAccessDate          string `json:"lastAccessDate"`
}

// DisplayName returns the alias when set, otherwise "name surname", otherwise
// the user name.
func (c Credential) DisplayName() string {
	if c.AliasName != "" {
		return c.AliasName
	}
	if full := strings.TrimSpace(c.PersonName + " " + c.PersonSurname); full != "" {
		return full
	}
	return c.UserName
}

// SignInRequest carries the form fields of the password grant.
type SignInRequest struct {
	UserName string
	Password string
}
