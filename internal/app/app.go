package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anujkhare/codecrafters-previews/internal/datasources"
	"github.com/anujkhare/codecrafters-previews/internal/datasources/conceptapi"
	"github.com/anujkhare/codecrafters-previews/internal/datasources/mysql"
	"github.com/anujkhare/codecrafters-previews/internal/datasources/shellfile"
	"github.com/anujkhare/codecrafters-previews/internal/transport/web/router"
	"github.com/anujkhare/codecrafters-previews/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	downvotes, err := setupDownvoteRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up downvote repository: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	shell := &shellfile.Loader{
		Path: MustGetEnvAsString(ctx, "SHELL_TEMPLATE_PATH"),
	}

	concepts := conceptapi.NewClient(MustGetEnvAsString(ctx, "CONCEPT_API_BASE_URL"))

	httpRouter, err := router.MakeRouter(
		downvotes,
		shell,
		concepts,
		MustGetEnvAsString(ctx, "OG_IMAGE_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupDownvoteRepository(ctx context.Context) (datasources.DownvoteRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
