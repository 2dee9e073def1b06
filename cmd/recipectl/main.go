// Command recipectl is a small command-line client for the recipe book
// server. It talks to the REST API through the adapter package and is meant
// for local development and smoke testing.
//
// Usage:
//
//	recipectl [flags] <command> [args]
//
// Commands:
//
//	version                  print the server version
//	list                     list visible recipes
//	get <ref>                fetch one recipe by ID or public reference
//	create                   create a recipe from JSON on stdin
//	update <ref>             update a recipe from JSON on stdin
//	delete <ref>             delete a recipe
//	copy <ref>               copy a recipe into your collection
//	tags                     list tags on visible recipes
//	shares                   list share grants touching you
//	share <email> [role]     grant access to another user
//	unshare <shareID>        revoke a grant you are a party to
//
// Authentication uses a bearer token passed via -token or RECIPEBOOK_TOKEN.
// For development against a server whose signing key you hold, a token can
// be minted locally with -email together with -token-sign-key and
// -token-issuer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/recipebookapp/recipebook-server/internal/adapter"
	"github.com/recipebookapp/recipebook-server/internal/logger"
	"github.com/recipebookapp/recipebook-server/internal/utils"
	"github.com/recipebookapp/recipebook-server/models"
)

func main() {
	var (
		address       = flag.String("a", envOr("RECIPEBOOK_ADDRESS", "localhost:8080"), "server address")
		token         = flag.String("token", os.Getenv("RECIPEBOOK_TOKEN"), "bearer token")
		email         = flag.String("email", "", "mint a local token for this email (requires -token-sign-key)")
		tokenSignKey  = flag.String("token-sign-key", os.Getenv("RECIPEBOOK_TOKEN_SIGN_KEY"), "signing key for local token minting")
		tokenIssuer   = flag.String("token-issuer", envOr("RECIPEBOOK_TOKEN_ISSUER", "recipebook"), "issuer for local token minting")
		tokenDuration = flag.Duration("token-duration", time.Hour, "lifetime of a locally minted token")
		tags          = flag.String("tags", "", "comma-separated tag filter for list/tags commands")
		timeout       = flag.Duration("timeout", 30*time.Second, "request timeout")
	)
	flag.Parse()

	log := logger.Nop()

	client, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		fail("connect: %v", err)
	}

	if *token == "" && *email != "" {
		minted, err := utils.GenerateIdentityToken(*tokenIssuer, *email, *tokenDuration, *tokenSignKey)
		if err != nil {
			fail("mint token: %v", err)
		}
		*token = minted.SignedString
	}
	client.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(ctx, client, args[0], args[1:], splitTags(*tags)); err != nil {
		fail("%s: %v", args[0], err)
	}
}

func run(ctx context.Context, client adapter.ServerAdapter, command string, args []string, tags []string) error {
	switch command {
	case "version":
		version, err := client.ServerVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil

	case "list":
		recipes, err := client.ListRecipes(ctx, tags)
		if err != nil {
			return err
		}
		for _, recipe := range recipes {
			fmt.Printf("%s\t%s\t%s\n", recipe.Reference(), recipe.Name, strings.Join(recipe.Tags, ","))
		}
		return nil

	case "get":
		ref, err := oneArg(args)
		if err != nil {
			return err
		}
		recipe, err := client.GetRecipe(ctx, ref)
		if err != nil {
			return err
		}
		return printJSON(recipe)

	case "create":
		var recipe models.Recipe
		if err := json.NewDecoder(os.Stdin).Decode(&recipe); err != nil {
			return fmt.Errorf("decode recipe from stdin: %w", err)
		}
		created, err := client.CreateRecipe(ctx, recipe)
		if err != nil {
			return err
		}
		return printJSON(created)

	case "update":
		ref, err := oneArg(args)
		if err != nil {
			return err
		}
		var recipe models.Recipe
		if err := json.NewDecoder(os.Stdin).Decode(&recipe); err != nil {
			return fmt.Errorf("decode recipe from stdin: %w", err)
		}
		updated, err := client.UpdateRecipe(ctx, ref, recipe)
		if err != nil {
			return err
		}
		return printJSON(updated)

	case "delete":
		ref, err := oneArg(args)
		if err != nil {
			return err
		}
		return client.DeleteRecipe(ctx, ref)

	case "copy":
		ref, err := oneArg(args)
		if err != nil {
			return err
		}
		copied, err := client.CopyRecipe(ctx, ref)
		if err != nil {
			return err
		}
		return printJSON(copied)

	case "tags":
		tagList, err := client.ListTags(ctx, tags)
		if err != nil {
			return err
		}
		for _, tag := range tagList {
			fmt.Printf("%s\t%s\n", tag.Slug, tag.Name)
		}
		return nil

	case "shares":
		shares, err := client.ListShares(ctx)
		if err != nil {
			return err
		}
		return printJSON(shares)

	case "share":
		if len(args) < 1 {
			return fmt.Errorf("usage: share <email> [role]")
		}
		role := models.RoleEditor
		if len(args) > 1 {
			role = models.ShareRole(args[1])
		}
		share, err := client.CreateShare(ctx, args[0], role)
		if err != nil {
			return err
		}
		return printJSON(share)

	case "unshare":
		shareID, err := oneArg(args)
		if err != nil {
			return err
		}
		return client.DeleteShare(ctx, shareID)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func oneArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one argument")
	}
	return args[0], nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}

	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
