package store

import (
	"context"

	"github.com/MKhiriev/webcrm-console/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialRepository persists the signed-in credential under
// [models.CredentialStorageKey].
type CredentialRepository interface {
	// SaveCredential stores cred, replacing any previous value.
	SaveCredential(ctx context.Context, cred models.Credential) error
	// GetCredential returns the stored credential or [ErrCredentialNotFound].
	GetCredential(ctx context.Context) (models.Credential, error)
	// DeleteCredential removes the stored credential. Deleting a missing
	// credential is not an error.
	DeleteCredential(ctx context.Context) error
}
