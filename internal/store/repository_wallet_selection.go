package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// walletSelectionRepository is the SQLite-backed [WalletSelectionRepository].
// Rows are keyed by currency id; enabled rows carry their display position
// and a NULL mode means the network default applies.
type walletSelectionRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewWalletSelectionRepository constructs a [WalletSelectionRepository] on db.
func NewWalletSelectionRepository(db *DB, log *logger.Logger) WalletSelectionRepository {
	log.Debug().Msg("creating wallet selection repository")
	return &walletSelectionRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

func (r *walletSelectionRepository) EnabledWallets(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	stmt, args, err := r.builder.Select("currency_id").
		From(walletSelectionTable).
		Where(sq.Eq{"enabled": true}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Err(err).Str("func", "walletSelectionRepository.EnabledWallets").Msg("failed to query enabled wallets")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return ids, nil
}

// SetEnabledWallets replaces the enabled set. The order of currencyIDs is
// kept as display order. Modes of disabled wallets are preserved.
func (r *walletSelectionRepository) SetEnabledWallets(ctx context.Context, currencyIDs []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, args, err := r.builder.Update(walletSelectionTable).
		Set("enabled", false).
		Set("position", nil).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, stmt, args...); err != nil {
		log.Err(err).Str("func", "walletSelectionRepository.SetEnabledWallets").Msg("failed to reset enabled wallets")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	for position, id := range currencyIDs {
		stmt, args, err = r.builder.Insert(walletSelectionTable).
			Columns("currency_id", "enabled", "position").
			Values(id, true, position).
			Suffix("ON CONFLICT (currency_id) DO UPDATE SET enabled = excluded.enabled, position = excluded.position").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, stmt, args...); err != nil {
			log.Err(err).
				Str("func", "walletSelectionRepository.SetEnabledWallets").
				Str("currency_id", id).
				Msg("failed to enable wallet")
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *walletSelectionRepository) WalletModes(ctx context.Context) (map[string]models.SyncMode, error) {
	stmt, args, err := r.builder.Select("currency_id", "mode").
		From(walletSelectionTable).
		Where(sq.NotEq{"mode": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "walletSelectionRepository.WalletModes").Msg("failed to query wallet modes")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	modes := make(map[string]models.SyncMode)
	for rows.Next() {
		var (
			id   string
			mode sql.NullString
		)
		if err := rows.Scan(&id, &mode); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		if m := models.SyncMode(mode.String); mode.Valid && m.Valid() {
			modes[id] = m
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return modes, nil
}

func (r *walletSelectionRepository) SetWalletMode(ctx context.Context, currencyID string, mode models.SyncMode) error {
	if !mode.Valid() {
		return ErrInvalidSyncMode
	}

	stmt, args, err := r.builder.Insert(walletSelectionTable).
		Columns("currency_id", "enabled", "mode").
		Values(currencyID, false, string(mode)).
		Suffix("ON CONFLICT (currency_id) DO UPDATE SET mode = excluded.mode").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, stmt, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "walletSelectionRepository.SetWalletMode").
			Str("currency_id", currencyID).
			Msg("failed to store wallet mode")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}
