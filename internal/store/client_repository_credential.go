package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/models"
)

const (
	kvTable        = "kv_store"
	kvKeyCol       = "key"
	kvValueCol     = "value"
	kvUpdatedAtCol = "updated_at"

	kvUpsertSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCredentialRepository returns a [CredentialRepository] backed by the
// kv_store table.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *credentialRepository) SaveCredential(ctx context.Context, cred models.Credential) error {
	payload, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	query, args, err := r.builder.
		Insert(kvTable).
		Columns(kvKeyCol, kvValueCol, kvUpdatedAtCol).
		Values(models.CredentialStorageKey, string(payload), r.now().UTC()).
		Suffix(kvUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.SaveCredential").
			Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *credentialRepository) GetCredential(ctx context.Context) (models.Credential, error) {
	query, args, err := r.builder.
		Select(kvValueCol).
		From(kvTable).
		Where(sq.Eq{kvKeyCol: models.CredentialStorageKey}).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = r.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.GetCredential").
			Msg("failed to read credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var cred models.Credential
	if err = json.Unmarshal([]byte(payload), &cred); err != nil {
		r.logger.Warn().Err(err).
			Str("func", "credentialRepository.GetCredential").
			Msg("stored credential cannot be decoded")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCorruptedCredential, err)
	}

	return cred, nil
}

func (r *credentialRepository) DeleteCredential(ctx context.Context) error {
	query, args, err := r.builder.
		Delete(kvTable).
		Where(sq.Eq{kvKeyCol: models.CredentialStorageKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
