package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/recipebookapp/recipebook-server/internal/config"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/store"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

// recipeService is the concrete implementation of RecipeService.
//
// It owns the two decisions everything else hangs on: turning an external
// reference into a stored recipe, and deciding whether the requester may
// read or write it. Storage access goes through the repositories; the
// sharing graph is consulted through SharingService.
type recipeService struct {
	recipeRepository store.RecipeRepository
	tagRepository    store.TagRepository

	// sharing answers peer-set and connectivity queries over share grants.
	sharing SharingService

	idGenerator *utils.UUIDGenerator

	// strictReads switches reads from the open policy (any authenticated
	// user may read any resolvable recipe) to the gated one (reads need
	// ownership or a sharing relation, like writes).
	strictReads bool

	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, tagRepository store.TagRepository, sharing SharingService, cfg config.App, idGenerator *utils.UUIDGenerator, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		tagRepository:    tagRepository,
		sharing:          sharing,
		idGenerator:      idGenerator,
		strictReads:      cfg.StrictRecipeReads,
		logger:           logger,
	}
}

// CreateRecipe stores a new recipe owned by authorID.
//
// The identity fields are always server-assigned: a fresh random UUID, the
// public id derived from its first 8 characters and the slug computed from
// the name. Whatever the caller put in those fields is discarded.
func (r *recipeService) CreateRecipe(ctx context.Context, authorID int64, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe.ID = r.idGenerator.Generate()
	recipe.PublicID = utils.PublicID(recipe.ID)
	recipe.Slug = utils.Slugify(recipe.Name)
	recipe.AuthorID = authorID

	created, err := r.recipeRepository.Create(ctx, recipe)
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Str("name", recipe.Name).Msg("recipe creation failed")
		return models.Recipe{}, fmt.Errorf("recipe creation failed: %w", err)
	}

	return created, nil
}

// GetRecipe resolves ref and returns the recipe if userID may read it.
//
// Returns ErrRecipeNotFound when the reference is malformed or matches
// nothing, and ErrAccessDenied when strict reads are enabled and no sharing
// relation connects the requester to the author.
func (r *recipeService) GetRecipe(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
	recipe, err := r.resolveReference(ctx, ref)
	if err != nil {
		return models.Recipe{}, err
	}

	if err := r.authorize(ctx, recipe, userID, false); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// UpdateRecipe resolves ref, checks write access and rewrites the recipe's
// content from update.
//
// The opaque id, author and creation time are immutable. The slug is
// recomputed from the new name and the public id from the stored UUID, so a
// rename changes the recipe's shareable reference while the canonical id
// keeps working. The tag set is replaced wholesale.
func (r *recipeService) UpdateRecipe(ctx context.Context, userID int64, ref string, update models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	existing, err := r.resolveReference(ctx, ref)
	if err != nil {
		return models.Recipe{}, err
	}

	if err := r.authorize(ctx, existing, userID, true); err != nil {
		return models.Recipe{}, err
	}

	update.ID = existing.ID
	update.AuthorID = existing.AuthorID
	update.CreatedAt = existing.CreatedAt
	update.PublicID = utils.PublicID(existing.ID)
	update.Slug = utils.Slugify(update.Name)

	updated, err := r.recipeRepository.Update(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrRecipeNotFound) {
			return models.Recipe{}, ErrRecipeNotFound
		}
		log.Err(err).Str("recipe_id", existing.ID).Msg("recipe update failed")
		return models.Recipe{}, fmt.Errorf("recipe update failed: %w", err)
	}

	return updated, nil
}

// DeleteRecipe resolves ref, checks write access and removes the recipe.
func (r *recipeService) DeleteRecipe(ctx context.Context, userID int64, ref string) error {
	log := logger.FromContext(ctx)

	recipe, err := r.resolveReference(ctx, ref)
	if err != nil {
		return err
	}

	if err := r.authorize(ctx, recipe, userID, true); err != nil {
		return err
	}

	if err := r.recipeRepository.Delete(ctx, recipe.ID); err != nil {
		if errors.Is(err, store.ErrRecipeNotFound) {
			return ErrRecipeNotFound
		}
		log.Err(err).Str("recipe_id", recipe.ID).Msg("recipe deletion failed")
		return fmt.Errorf("recipe deletion failed: %w", err)
	}

	return nil
}

// CopyRecipe clones a readable recipe into userID's own collection.
//
// The copy is a brand new recipe: fresh UUID, fresh derived public id and
// slug, userID as author. Content fields and tags carry over; the copy has
// no further link to the source.
func (r *recipeService) CopyRecipe(ctx context.Context, userID int64, ref string) (models.Recipe, error) {
	source, err := r.GetRecipe(ctx, userID, ref)
	if err != nil {
		return models.Recipe{}, err
	}

	clone := source
	clone.Tags = append([]string(nil), source.Tags...)

	return r.CreateRecipe(ctx, userID, clone)
}

// ListRecipes returns the recipes visible to userID: their own plus every
// recipe authored by a shared peer. A non-empty tagSlugs keeps only recipes
// carrying at least one of the given tags (OR semantics).
func (r *recipeService) ListRecipes(ctx context.Context, userID int64, tagSlugs []string) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	authorIDs, err := r.visibleAuthorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipes, err := r.recipeRepository.ListByAuthors(ctx, authorIDs, normalizeTagFilter(tagSlugs))
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing recipes failed")
		return nil, fmt.Errorf("listing recipes failed: %w", err)
	}

	return recipes, nil
}

// ListTags returns the distinct tags attached to recipes visible to userID.
// The tag filter narrows the recipe set the same way ListRecipes does; tags
// are then collected from the matching recipes, so filtering by one tag
// still reports the other tags those recipes carry.
func (r *recipeService) ListTags(ctx context.Context, userID int64, tagSlugs []string) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	authorIDs, err := r.visibleAuthorIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	tags, err := r.tagRepository.ListForAuthors(ctx, authorIDs, normalizeTagFilter(tagSlugs))
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing tags failed")
		return nil, fmt.Errorf("listing tags failed: %w", err)
	}

	return tags, nil
}

// resolveReference turns an external reference into a stored recipe.
//
// A canonical UUID is looked up directly. A composite reference is split on
// its first hyphen and matched against the derived (public_id, slug) pair;
// since that pair is not unique, the oldest matching recipe wins and the
// collision is logged. Malformed references and empty results both come back
// as ErrRecipeNotFound so callers cannot distinguish them.
func (r *recipeService) resolveReference(ctx context.Context, ref string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	parsed := models.ParseRecipeRef(ref)
	switch parsed.Kind {
	case models.RefOpaqueID:
		recipe, err := r.recipeRepository.GetByID(ctx, parsed.ID)
		if err != nil {
			if errors.Is(err, store.ErrRecipeNotFound) {
				return models.Recipe{}, ErrRecipeNotFound
			}
			log.Err(err).Str("recipe_id", parsed.ID).Msg("recipe lookup by id failed")
			return models.Recipe{}, fmt.Errorf("recipe lookup by id failed: %w", err)
		}
		return recipe, nil

	case models.RefComposite:
		matches, err := r.recipeRepository.GetByPublicIDAndSlug(ctx, parsed.PublicID, parsed.Slug)
		if err != nil {
			log.Err(err).Str("public_id", parsed.PublicID).Str("slug", parsed.Slug).Msg("recipe lookup by public reference failed")
			return models.Recipe{}, fmt.Errorf("recipe lookup by public reference failed: %w", err)
		}
		if len(matches) == 0 {
			return models.Recipe{}, ErrRecipeNotFound
		}
		if len(matches) > 1 {
			log.Warn().
				Str("public_id", parsed.PublicID).
				Str("slug", parsed.Slug).
				Int("matches", len(matches)).
				Msg("ambiguous public reference, using oldest match")
		}
		return matches[0], nil

	default:
		return models.Recipe{}, ErrRecipeNotFound
	}
}

// authorize decides whether requesterID may act on recipe.
//
// The author may always act. For other users a read succeeds under the open
// policy; under strict reads, and for every write, access requires at least
// one share grant connecting requester and author in either direction.
func (r *recipeService) authorize(ctx context.Context, recipe models.Recipe, requesterID int64, forWrite bool) error {
	if recipe.AuthorID == requesterID {
		return nil
	}

	if !forWrite && !r.strictReads {
		return nil
	}

	connected, err := r.sharing.SharingExists(ctx, recipe.AuthorID, requesterID)
	if err != nil {
		return err
	}
	if !connected {
		logger.FromContext(ctx).Warn().
			Str("recipe_id", recipe.ID).
			Int64("author_id", recipe.AuthorID).
			Int64("requester_id", requesterID).
			Bool("write", forWrite).
			Msg("access denied")
		return ErrAccessDenied
	}

	return nil
}

// visibleAuthorIDs is the author set whose recipes userID may list: the user
// plus every shared peer.
func (r *recipeService) visibleAuthorIDs(ctx context.Context, userID int64) ([]int64, error) {
	peers, err := r.sharing.SharedPeerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return append([]int64{userID}, peers...), nil
}

// normalizeTagFilter slugifies filter values so that lookups match the
// stored tag slugs, dropping entries that normalise to nothing.
func normalizeTagFilter(tagSlugs []string) []string {
	if len(tagSlugs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tagSlugs))
	normalized := make([]string, 0, len(tagSlugs))
	for _, raw := range tagSlugs {
		slug := utils.Slugify(raw)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		normalized = append(normalized, slug)
	}

	return normalized
}
