package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/store"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

// sharingService is the concrete implementation of SharingService.
//
// Grants are stored directed but every query over them is symmetric: for
// access purposes "A shared with B" and "B shared with A" are the same edge.
type sharingService struct {
	shareRepository store.ShareRepository

	// userRepository resolves grantee emails to user IDs when creating
	// grants, and IDs back to addresses when listing them.
	userRepository store.UserRepository

	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewSharingService(shareRepository store.ShareRepository, userRepository store.UserRepository, idGenerator *utils.UUIDGenerator, logger *logger.Logger) SharingService {
	return &sharingService{
		shareRepository: shareRepository,
		userRepository:  userRepository,
		idGenerator:     idGenerator,
		logger:          logger,
	}
}

// CreateShare issues a new grant from granterID to the user registered under
// granteeEmail. An empty role defaults to Editor.
//
// Duplicate grants between the same pair are allowed; each is an independent
// record that can be revoked on its own.
//
// Returns the persisted grant or:
//   - ErrInvalidDataProvided if granteeEmail is empty.
//   - ErrInvalidShareRole if role is neither empty nor a known value.
//   - ErrUserNotFound if no account exists for granteeEmail.
func (s *sharingService) CreateShare(ctx context.Context, granterID int64, granteeEmail string, role models.ShareRole) (models.ShareConfig, error) {
	log := logger.FromContext(ctx)

	granteeEmail = strings.TrimSpace(granteeEmail)
	if granteeEmail == "" {
		log.Error().Int64("granter_id", granterID).Msg("empty grantee email")
		return models.ShareConfig{}, ErrInvalidDataProvided
	}

	if role == "" {
		role = models.RoleEditor
	}
	if !role.Valid() {
		log.Error().Str("role", string(role)).Msg("unknown share role")
		return models.ShareConfig{}, ErrInvalidShareRole
	}

	grantee, err := s.userRepository.FindByEmail(ctx, granteeEmail)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.ShareConfig{}, ErrUserNotFound
		}
		log.Err(err).Str("email", granteeEmail).Msg("grantee lookup failed")
		return models.ShareConfig{}, fmt.Errorf("grantee lookup failed: %w", err)
	}

	share := models.ShareConfig{
		ID:        s.idGenerator.Generate(),
		GranterID: granterID,
		GranteeID: grantee.UserID,
		Role:      role,
	}

	created, err := s.shareRepository.Create(ctx, share)
	if err != nil {
		log.Err(err).Int64("granter_id", granterID).Int64("grantee_id", grantee.UserID).Msg("share creation failed")
		return models.ShareConfig{}, fmt.Errorf("share creation failed: %w", err)
	}

	return created, nil
}

// DeleteShare removes a grant by its ID. Only a party to the grant, the
// granter or the grantee, may remove it.
//
// Returns nil on success or:
//   - ErrShareNotFound if no grant with shareID exists.
//   - ErrAccessDenied if userID is neither granter nor grantee.
func (s *sharingService) DeleteShare(ctx context.Context, userID int64, shareID string) error {
	log := logger.FromContext(ctx)

	share, err := s.shareRepository.GetByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, store.ErrShareNotFound) {
			return ErrShareNotFound
		}
		log.Err(err).Str("share_id", shareID).Msg("share lookup failed")
		return fmt.Errorf("share lookup failed: %w", err)
	}

	if share.GranterID != userID && share.GranteeID != userID {
		log.Warn().Str("share_id", shareID).Int64("user_id", userID).Msg("share deletion by a non-party refused")
		return ErrAccessDenied
	}

	if err := s.shareRepository.Delete(ctx, shareID); err != nil {
		if errors.Is(err, store.ErrShareNotFound) {
			return ErrShareNotFound
		}
		log.Err(err).Str("share_id", shareID).Msg("share deletion failed")
		return fmt.Errorf("share deletion failed: %w", err)
	}

	return nil
}

// ListShares returns every grant where userID is granter or grantee, with
// the parties' email addresses resolved onto each record.
//
// A failed address lookup leaves the email empty rather than failing the
// whole listing; grants to since-deleted accounts stay visible.
func (s *sharingService) ListShares(ctx context.Context, userID int64) ([]models.ShareConfig, error) {
	log := logger.FromContext(ctx)

	shares, err := s.shareRepository.ListForUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing shares failed")
		return nil, fmt.Errorf("listing shares failed: %w", err)
	}

	emails := make(map[int64]string, 4)
	resolveEmail := func(id int64) string {
		if email, seen := emails[id]; seen {
			return email
		}
		user, err := s.userRepository.FindByID(ctx, id)
		if err != nil {
			log.Warn().Err(err).Int64("user_id", id).Msg("share party lookup failed")
			emails[id] = ""
			return ""
		}
		emails[id] = user.Email
		return user.Email
	}

	for i := range shares {
		shares[i].GranterEmail = resolveEmail(shares[i].GranterID)
		shares[i].GranteeEmail = resolveEmail(shares[i].GranteeID)
	}

	return shares, nil
}

// SharedPeerIDs returns the IDs of every user connected to userID by at least
// one grant in either direction. The result is sorted, deduplicated and never
// contains userID itself, even when a self-grant record exists.
func (s *sharingService) SharedPeerIDs(ctx context.Context, userID int64) ([]int64, error) {
	peers, err := s.shareRepository.SharedPeerIDs(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing shared peers failed")
		return nil, fmt.Errorf("listing shared peers failed: %w", err)
	}

	return peers, nil
}

// SharingExists reports whether any grant connects userA and userB in either
// direction. The check is not reflexive: (a, a) holds only when an explicit
// self-grant row exists, so callers check ownership first rather than rely
// on it.
func (s *sharingService) SharingExists(ctx context.Context, userA int64, userB int64) (bool, error) {
	exists, err := s.shareRepository.SharingExists(ctx, userA, userB)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_a", userA).Int64("user_b", userB).Msg("sharing check failed")
		return false, fmt.Errorf("sharing check failed: %w", err)
	}

	return exists, nil
}
