// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing Italian message strings shared by the
// console pages and the sandbox server responses.
//
// Keeping them in one place ensures consistent wording throughout the
// console.
package app

const (
	// MsgWrongCredentials is shown when the password grant is rejected.
	MsgWrongCredentials = "Nome utente o password non validi"

	// MsgMissingCredentials is shown when the sign-in form is incomplete.
	MsgMissingCredentials = "Inserire nome utente e password"

	// MsgSessionExpired is shown on the sign-in page after any 401.
	MsgSessionExpired = "Sessione scaduta, effettuare nuovamente l'accesso"

	// MsgServerUnavailable is shown for transport failures and timeouts.
	MsgServerUnavailable = "Rete assente o server non raggiungibile"

	// MsgServerError is shown for any 5xx response.
	MsgServerError = "Errore del server, riprovare più tardi"

	// MsgLoadError is the generic failure of a read.
	MsgLoadError = "Errore nel caricamento dei dati"

	// MsgNotFound is shown when the requested record no longer exists.
	MsgNotFound = "Record non trovato"

	// MsgConflict is shown when the record was changed concurrently.
	MsgConflict = "Il record è stato modificato da un altro utente"

	MsgConfirmSuccess = "Modifiche confermate con successo"
	MsgDismissSuccess = "Modifiche dismesse con successo"
	MsgConfirmError   = "Errore nella conferma delle modifiche"
	MsgDismissError   = "Errore nella dismissione delle modifiche"

	MsgDifferencesError       = "Impossibile caricare le differenze"
	MsgNoDifferences          = "Nessuna differenza disponibile"
	MsgCounterpartUnavailable = "Riferimento non disponibile"

	// MsgIdenticalRecords explains why the difference view is disabled for a
	// record whose confirmed counterpart is itself.
	MsgIdenticalRecords = "I record sono identici, nessuna differenza da visualizzare"

	MsgSaved   = "Salvataggio completato"
	MsgDeleted = "Eliminazione completata"

	// MsgSummaryUnknown replaces the counters when the summary could not be
	// loaded; it must never read as "nothing to confirm".
	MsgSummaryUnknown = "stato sconosciuto"
)
