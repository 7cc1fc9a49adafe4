package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kushalstream/kushal-stream/internal/command"
	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/datasources/mysql"
	"github.com/kushalstream/kushal-stream/internal/datasources/pinecone"
	"github.com/kushalstream/kushal-stream/internal/datasources/voyageai"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/kushalstream/kushal-stream/internal/transport/web/router"
	"github.com/kushalstream/kushal-stream/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	catalog, err := setupCatalogRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up catalog repository: %w", err)
	}

	related, err := setupRelatedVideosRepository(ctx, catalog)
	if err != nil {
		return nil, fmt.Errorf("setting up related videos repository: %w", err)
	}

	embedder, err := setupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	recordInteractionCmd := command.NewRecordInteraction(
		catalog,
		catalog,
		domain.DefaultScoreWeights(),
	)

	trainSimilarityCmd := command.NewTrainSimilarity(
		catalog,
		catalog,
		DefaultTrainSimilarityConfig(),
	)

	recommendVideosCmd := command.NewRecommendVideos(catalog, related)

	httpRouter, err := router.MakeRouter(
		catalog,
		related,
		embedder,
		recordInteractionCmd,
		trainSimilarityCmd,
		recommendVideosCmd,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "LATEST_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func setupCatalogRepository(ctx context.Context) (datasources.CatalogRepository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupRelatedVideosRepository(
	ctx context.Context, catalog datasources.CatalogRepository,
) (datasources.RelatedVideosRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "RELATED_VIDEOS_DRIVER"); driver {
	case "null":
		return datasources.NullRelatedVideosRepository{}, nil
	case "collaborative":
		// Collaborative similarity serves seed-based lookups from the
		// trained table; vector search stays disabled.
		return datasources.CompositeRelatedVideosRepository{
			SimilarVideoLister:          catalog,
			SimilarVideosByVectorLister: datasources.NullRelatedVideosRepository{},
		}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown related videos driver [%s]", driver)
	}
}

func setupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDINGS_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "voyageai":
		return voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			MustGetEnvAsString(ctx, "VOYAGEAI_MODEL"),
		), nil
	default:
		return nil, fmt.Errorf("unknown embeddings driver [%s]", driver)
	}
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
