package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, name)
    VALUES ($1, $2)
    RETURNING user_id, email, name, created_at;`

	findUserByEmail = `SELECT user_id, email, name, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, created_at
    FROM users
    WHERE user_id = $1;`

	recipeColumns = `id, public_id, slug, author_id, name, ingredients, instructions,
		notes, video_url, source, active_time, total_time, servings, created_at, updated_at`

	createRecipe = `INSERT INTO recipes (
			id,
			public_id,
			slug,
			author_id,
			name,
			ingredients,
			instructions,
			notes,
			video_url,
			source,
			active_time,
			total_time,
			servings
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + recipeColumns + `;`

	updateRecipe = `UPDATE recipes
		SET public_id = $2,
			slug = $3,
			name = $4,
			ingredients = $5,
			instructions = $6,
			notes = $7,
			video_url = $8,
			source = $9,
			active_time = $10,
			total_time = $11,
			servings = $12,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + recipeColumns + `;`

	deleteRecipe = `DELETE FROM recipes WHERE id = $1;`

	getRecipeByID = `SELECT ` + recipeColumns + `
		FROM recipes
		WHERE id = $1;`

	// The (public_id, slug) pair is not unique; ordering by creation time
	// makes the duplicate tie-break deterministic.
	getRecipesByPublicRef = `SELECT ` + recipeColumns + `
		FROM recipes
		WHERE public_id = $1 AND slug = $2
		ORDER BY created_at, id;`

	createShare = `INSERT INTO share_configs (id, granter_id, grantee_id, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, granter_id, grantee_id, role, created_at;`

	deleteShare = `DELETE FROM share_configs WHERE id = $1;`

	getShareByID = `SELECT id, granter_id, grantee_id, role, created_at
		FROM share_configs
		WHERE id = $1;`

	listSharesForUser = `SELECT id, granter_id, grantee_id, role, created_at
		FROM share_configs
		WHERE granter_id = $1 OR grantee_id = $1
		ORDER BY created_at, id;`

	sharePairsForUser = `SELECT granter_id, grantee_id
		FROM share_configs
		WHERE granter_id = $1 OR grantee_id = $1;`

	sharingExists = `SELECT EXISTS (
		SELECT 1 FROM share_configs
		WHERE (granter_id = $1 AND grantee_id = $2)
		   OR (granter_id = $2 AND grantee_id = $1)
	);`

	upsertTag = `INSERT INTO tags (name, slug)
		VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE SET slug = excluded.slug
		RETURNING tag_id, name, slug;`

	deleteRecipeTags = `DELETE FROM recipe_tags WHERE recipe_id = $1;`

	insertRecipeTag = `INSERT INTO recipe_tags (recipe_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`
)

// queryBuilder is the shared squirrel builder configured for the $N
// placeholders both supported drivers understand.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListRecipesQuery assembles the visible-recipes query: recipes
// authored by any of authorIDs, optionally narrowed to recipes carrying at
// least one tag whose slug is in tagSlugs (OR semantics across slugs).
func buildListRecipesQuery(authorIDs []int64, tagSlugs []string) (string, []any, error) {
	builder := queryBuilder.
		Select(
			"r.id", "r.public_id", "r.slug", "r.author_id", "r.name",
			"r.ingredients", "r.instructions", "r.notes", "r.video_url",
			"r.source", "r.active_time", "r.total_time", "r.servings",
			"r.created_at", "r.updated_at",
		).
		Distinct().
		From("recipes r").
		Where(sq.Eq{"r.author_id": authorIDs}).
		OrderBy("r.created_at", "r.id")

	if len(tagSlugs) > 0 {
		builder = builder.
			Join("recipe_tags rt ON rt.recipe_id = r.id").
			Join("tags t ON t.tag_id = rt.tag_id").
			Where(sq.Eq{"t.slug": tagSlugs})
	}

	return builder.ToSql()
}

// buildTagsForRecipesQuery fetches tag rows for a batch of recipes in one
// round trip, keyed back by recipe id.
func buildTagsForRecipesQuery(recipeIDs []string) (string, []any, error) {
	return queryBuilder.
		Select("rt.recipe_id", "t.tag_id", "t.name", "t.slug").
		From("recipe_tags rt").
		Join("tags t ON t.tag_id = rt.tag_id").
		Where(sq.Eq{"rt.recipe_id": recipeIDs}).
		OrderBy("t.slug").
		ToSql()
}

// buildListTagsQuery assembles the visible-tags query: distinct tags
// attached to any recipe authored by the given users. When tagSlugs is
// non-empty the filter narrows the RECIPE set, not the tags themselves:
// a matching recipe contributes all of its tags, so filtering by one slug
// still surfaces the other tags hanging off the same recipes.
func buildListTagsQuery(authorIDs []int64, tagSlugs []string) (string, []any, error) {
	builder := queryBuilder.
		Select("t.tag_id", "t.name", "t.slug").
		Distinct().
		From("tags t").
		Join("recipe_tags rt ON rt.tag_id = t.tag_id").
		Join("recipes r ON r.id = rt.recipe_id").
		Where(sq.Eq{"r.author_id": authorIDs}).
		OrderBy("t.slug")

	if len(tagSlugs) > 0 {
		args := make([]any, 0, len(tagSlugs))
		for _, slug := range tagSlugs {
			args = append(args, slug)
		}
		builder = builder.Where(sq.Expr(
			"r.id IN (SELECT rt2.recipe_id FROM recipe_tags rt2 JOIN tags t2 ON t2.tag_id = rt2.tag_id WHERE t2.slug IN ("+sq.Placeholders(len(tagSlugs))+"))",
			args...,
		))
	}

	return builder.ToSql()
}
