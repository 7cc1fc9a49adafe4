package router

import (
	"github.com/gorilla/mux"
	"github.com/kushalstream/kushal-stream/internal/command"
	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/transport/web/controller"
	"net/http"
	"time"
)

func MakeRouter(
	catalog datasources.CatalogRepository,
	related datasources.RelatedVideosRepository,
	embedder datasources.Embedder,
	recordInteraction *command.RecordInteraction,
	trainSimilarity *command.TrainSimilarity,
	recommendVideos *command.RecommendVideos,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/videos", controller.VideosList{
		Lister:      catalog,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/videos/{video_id}", controller.VideoGet{
		Fetcher:     catalog,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/videos/{video_id}/playback", controller.VideoPlayback{
		Fetcher: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/videos/{video_id}/related", controller.RelatedVideosList{
		Fetcher:     catalog,
		Similarity:  related,
		CacheMaxAge: 0,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/videos/{video_id}/interactions/{signal}/{value}",
		requireAuthMiddleware(controller.InteractionSet{
			Command: recordInteraction,
		})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/videos/search/semantic", controller.SemanticSearch{
		Embedder:   embedder,
		Similarity: related,
		Fetcher:    catalog,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/viewers/me/history", requireAuthMiddleware(controller.HistoryList{
		Fetcher:  catalog,
		ListFunc: catalog.ListViewedVideoIDs,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/viewers/me/recommendations", requireAuthMiddleware(controller.RecommendedVideosList{
		Command: recommendVideos,
		Fetcher: catalog,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/admin/videos", requireAdminMiddleware(controller.VideoCreate{
		Creator: catalog,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/admin/similarity/train", requireAdminMiddleware(controller.SimilarityTrain{
		Command: trainSimilarity,
	})).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Catalog:         catalog,
			CacheMaxAge:     latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
