package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_DecodeTokenResponse(t *testing.T) {
	body := `{
		"access_token": "abc",
		"profileId": 12,
		"userName": "mrossi",
		"personName": "Mario",
		"personSurname": "Rossi",
		"aliasName": "",
		"email": "m@rossi.it",
		"hasAdministrativeGrants": "TRUE",
		"isTeamMember": false,
		"lastAccessDate": "2026-01-02"
	}`

	var c Credential
	require.NoError(t, json.Unmarshal([]byte(body), &c))

	assert.Equal(t, "abc", c.AccessToken)
	assert.Equal(t, ID("12"), c.ProfileID)
	assert.True(t, bool(c.HasAdministrativeGrants))
	assert.False(t, bool(c.IsTeamMember))
	assert.Equal(t, "Mario Rossi", c.DisplayName())

	// persisted form must decode back to the same value
	raw, err := json.Marshal(c)
	require.NoError(t, err)
	var back Credential
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, c, back)
}

func TestFlag_Variants(t *testing.T) {
	cases := map[string]bool{`"TRUE"`: true, `"false"`: false, `true`: true, `null`: false, `"yes"`: false}
	for in, want := range cases {
		var f Flag
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		assert.Equal(t, want, bool(f), in)
	}
}

func TestCategory_Confirmable(t *testing.T) {
	assert.True(t, CategoryReferences.Confirmable())
	assert.True(t, CategoryDestinations.Confirmable())
	assert.False(t, CategoryCustomers.Confirmable())
	assert.False(t, CategoryItems.Confirmable())
	assert.Equal(t, "Contatti", CategoryReferences.Label())
}
