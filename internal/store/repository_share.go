package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgerrcode"

	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/models"
)

// shareRepository is the SQL-backed implementation of [ShareRepository].
// It owns the "share_configs" table: the grant records themselves and the
// two relation queries (peer set, pairwise existence) that every access
// decision is built on.
type shareRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewShareRepository constructs a [ShareRepository] backed by the provided
// database connection and logger.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new share grant and returns the stored row.
//
// Duplicate grants between the same pair are allowed and inserted as-is.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrUnknownUserReferenced].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *shareRepository) Create(ctx context.Context, share models.ShareConfig) (models.ShareConfig, error) {
	log := logger.FromContext(ctx)

	var saved models.ShareConfig
	row := r.db.QueryRowContext(ctx, createShare, share.ID, share.GranterID, share.GranteeID, share.Role)

	if err := row.Scan(&saved.ID, &saved.GranterID, &saved.GranteeID, &saved.Role, &saved.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.ShareConfig{}, ErrUnknownUserReferenced
		default:
			log.Err(err).Str("func", "*shareRepository.Create").Msg("failed to insert share grant")
			return models.ShareConfig{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// Delete removes a share grant by id.
//
// Returns [ErrShareNotFound] when nothing was deleted.
func (r *shareRepository) Delete(ctx context.Context, shareID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteShare, shareID)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.Delete").Str("share_id", shareID).Msg("failed to delete share grant")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrShareNotFound
	}

	return nil
}

// GetByID fetches a single share grant.
func (r *shareRepository) GetByID(ctx context.Context, shareID string) (models.ShareConfig, error) {
	log := logger.FromContext(ctx)

	var share models.ShareConfig
	row := r.db.QueryRowContext(ctx, getShareByID, shareID)

	if err := row.Scan(&share.ID, &share.GranterID, &share.GranteeID, &share.Role, &share.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShareConfig{}, ErrShareNotFound
		}
		log.Err(err).Str("func", "*shareRepository.GetByID").Str("share_id", shareID).Msg("failed to fetch share grant")
		return models.ShareConfig{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return share, nil
}

// ListForUser returns every grant the user appears in, as granter or
// grantee, oldest first.
func (r *shareRepository) ListForUser(ctx context.Context, userID int64) ([]models.ShareConfig, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSharesForUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.ListForUser").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.ShareConfig, 0, 8)
	for rows.Next() {
		var share models.ShareConfig
		if err := rows.Scan(&share.ID, &share.GranterID, &share.GranteeID, &share.Role, &share.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return shares, nil
}

// SharedPeerIDs returns the ids of all users connected to userID by at
// least one grant in either direction.
//
// The grant rows are directed; the peer set is built from both columns and
// never contains userID itself, even when a self-grant row exists. The
// result is sorted for deterministic output.
//
// Every access decision runs through this query or [shareRepository.SharingExists],
// so transient driver failures are retried before the error is surfaced.
func (r *shareRepository) SharedPeerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var peers []int64

	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		var err error
		peers, err = r.fetchSharedPeerIDs(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return peers, nil
}

func (r *shareRepository) fetchSharedPeerIDs(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, sharePairsForUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.SharedPeerIDs").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	peerSet := make(map[int64]struct{}, 8)
	for rows.Next() {
		var granterID, granteeID int64
		if err := rows.Scan(&granterID, &granteeID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if granterID != userID {
			peerSet[granterID] = struct{}{}
		}
		if granteeID != userID {
			peerSet[granteeID] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	peers := make([]int64, 0, len(peerSet))
	for id := range peerSet {
		peers = append(peers, id)
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })

	return peers, nil
}

// SharingExists reports whether any grant connects the two users, in either
// direction. It does not treat (a, a) specially: without an explicit
// self-grant row the answer is false, and ownership must be checked first
// by the caller.
func (r *shareRepository) SharingExists(ctx context.Context, userA, userB int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, sharingExists, userA, userB).Scan(&exists)
	})

	if err != nil {
		log.Err(err).
			Str("func", "*shareRepository.SharingExists").
			Int64("user_a", userA).
			Int64("user_b", userB).
			Msg("failed to execute existence query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
