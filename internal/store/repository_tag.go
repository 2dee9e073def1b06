package store

import (
	"context"
	"fmt"

	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/models"
)

// tagRepository is the SQL-backed implementation of [TagRepository].
// Tag writes happen inside the recipe save transaction; this repository
// only answers the read-side tag listing.
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// ListForAuthors returns the distinct tags attached to any recipe authored
// by the given users, ordered by slug. A non-empty tagSlugs narrows the
// recipe set, not the returned tags: every tag on a matching recipe comes
// back.
func (r *tagRepository) ListForAuthors(ctx context.Context, authorIDs []int64, tagSlugs []string) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTagsQuery(authorIDs, tagSlugs)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListForAuthors").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.ListForAuthors").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0, 16)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.TagID, &tag.Name, &tag.Slug); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}
