package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

// recipeRepository is the SQL-backed implementation of [RecipeRepository].
// It executes all recipe CRUD against the "recipes" table and keeps the
// recipe_tags join in step with the recipe's Tags list inside the same
// transaction as the recipe write.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the recipe row and its tag set in one transaction and
// returns the stored representation with server-assigned timestamps.
func (r *recipeRepository) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Create").Msg("failed to begin transaction")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createRecipe,
		recipe.ID,
		recipe.PublicID,
		recipe.Slug,
		recipe.AuthorID,
		recipe.Name,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.Notes,
		recipe.VideoURL,
		recipe.Source,
		recipe.ActiveTime,
		recipe.TotalTime,
		recipe.Servings,
	)

	saved, err := scanRecipeRow(row)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Create").Str("recipe_id", recipe.ID).Msg("failed to insert recipe")
		return models.Recipe{}, err
	}

	saved.Tags, err = r.saveRecipeTags(ctx, tx, saved.ID, recipe.Tags)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Create").Str("recipe_id", recipe.ID).Msg("failed to save recipe tags")
		return models.Recipe{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*recipeRepository.Create").Msg("failed to commit transaction")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// Update rewrites all content columns of the recipe addressed by ID and
// replaces its tag set, in one transaction.
//
// Returns [ErrRecipeNotFound] when no row carries the given id.
func (r *recipeRepository) Update(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Update").Msg("failed to begin transaction")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, updateRecipe,
		recipe.ID,
		recipe.PublicID,
		recipe.Slug,
		recipe.Name,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.Notes,
		recipe.VideoURL,
		recipe.Source,
		recipe.ActiveTime,
		recipe.TotalTime,
		recipe.Servings,
	)

	saved, err := scanRecipeRow(row)
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).Str("func", "*recipeRepository.Update").Str("recipe_id", recipe.ID).Msg("failed to update recipe")
		return models.Recipe{}, err
	}

	saved.Tags, err = r.saveRecipeTags(ctx, tx, saved.ID, recipe.Tags)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Update").Str("recipe_id", recipe.ID).Msg("failed to save recipe tags")
		return models.Recipe{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*recipeRepository.Update").Msg("failed to commit transaction")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// Delete removes the recipe row; recipe_tags rows follow via ON DELETE
// CASCADE.
//
// Returns [ErrRecipeNotFound] when nothing was deleted.
func (r *recipeRepository) Delete(ctx context.Context, recipeID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRecipe, recipeID)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.Delete").Str("recipe_id", recipeID).Msg("failed to delete recipe")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// GetByID fetches a single recipe by its opaque id, tags included.
func (r *recipeRepository) GetByID(ctx context.Context, recipeID string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getRecipeByID, recipeID)

	recipe, err := scanRecipeRow(row)
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).Str("func", "*recipeRepository.GetByID").Str("recipe_id", recipeID).Msg("failed to fetch recipe")
		return models.Recipe{}, err
	}

	withTags, err := r.attachTags(ctx, []models.Recipe{recipe})
	if err != nil {
		return models.Recipe{}, err
	}

	return withTags[0], nil
}

// GetByPublicIDAndSlug fetches every recipe matching the composite shareable
// reference, oldest first. An empty slice means the reference resolves to
// nothing; callers translate that to their own not-found error.
func (r *recipeRepository) GetByPublicIDAndSlug(ctx context.Context, publicID, slug string) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getRecipesByPublicRef, publicID, slug)
	if err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.GetByPublicIDAndSlug").
			Str("public_id", publicID).
			Str("slug", slug).
			Msg("failed to execute composite reference query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes, err := scanRecipeRows(rows)
	if err != nil {
		return nil, err
	}

	return r.attachTags(ctx, recipes)
}

// ListByAuthors fetches recipes authored by any of the given users,
// optionally narrowed by tag slugs (a recipe stays if it carries at least
// one matching tag).
func (r *recipeRepository) ListByAuthors(ctx context.Context, authorIDs []int64, tagSlugs []string) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecipesQuery(authorIDs, tagSlugs)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListByAuthors").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListByAuthors").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes, err := scanRecipeRows(rows)
	if err != nil {
		return nil, err
	}

	return r.attachTags(ctx, recipes)
}

// saveRecipeTags replaces the recipe's tag set inside the caller's
// transaction: tags are upserted community-wide by slug, then the join rows
// are rewritten. Returns the stored tag names in input order with duplicate
// slugs collapsed.
func (r *recipeRepository) saveRecipeTags(ctx context.Context, tx *sql.Tx, recipeID string, tagNames []string) ([]string, error) {
	if _, err := tx.ExecContext(ctx, deleteRecipeTags, recipeID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	seen := make(map[string]struct{}, len(tagNames))
	saved := make([]string, 0, len(tagNames))

	for _, name := range tagNames {
		slug := utils.Slugify(name)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}

		var tag models.Tag
		row := tx.QueryRowContext(ctx, upsertTag, name, slug)
		if err := row.Scan(&tag.TagID, &tag.Name, &tag.Slug); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if _, err := tx.ExecContext(ctx, insertRecipeTag, recipeID, tag.TagID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		saved = append(saved, tag.Name)
	}

	return saved, nil
}

// attachTags fills the Tags field of every recipe in one additional query.
func (r *recipeRepository) attachTags(ctx context.Context, recipes []models.Recipe) ([]models.Recipe, error) {
	if len(recipes) == 0 {
		return recipes, nil
	}

	ids := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		ids = append(ids, recipe.ID)
	}

	query, args, err := buildTagsForRecipesQuery(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tagsByRecipe := make(map[string][]string, len(recipes))
	for rows.Next() {
		var recipeID string
		var tag models.Tag
		if err := rows.Scan(&recipeID, &tag.TagID, &tag.Name, &tag.Slug); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tagsByRecipe[recipeID] = append(tagsByRecipe[recipeID], tag.Name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for i := range recipes {
		recipes[i].Tags = tagsByRecipe[recipes[i].ID]
	}

	return recipes, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	err := s.Scan(
		&recipe.ID,
		&recipe.PublicID,
		&recipe.Slug,
		&recipe.AuthorID,
		&recipe.Name,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.Notes,
		&recipe.VideoURL,
		&recipe.Source,
		&recipe.ActiveTime,
		&recipe.TotalTime,
		&recipe.Servings,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	return recipe, err
}

func scanRecipeRow(row *sql.Row) (models.Recipe, error) {
	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return recipe, nil
}

func scanRecipeRows(rows *sql.Rows) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0, 16)

	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}
