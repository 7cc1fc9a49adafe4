package controller

import (
	"fmt"
	"github.com/gorilla/feeds"
	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"net/http"
	"time"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Catalog         interface {
		datasources.VideoLister
		datasources.VideoFetcher
	}
	CacheMaxAge time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Kushal Stream",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of new videos published to the Kushal Stream catalog",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	filters, err := videoFiltersFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse video filters in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse video list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	videoIDs, err := c.Catalog.ListLatestVideoIDs(r.Context(), filters, options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch video IDs for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	videos, err := c.Catalog.FetchVideosByID(r.Context(), videoIDs)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch videos for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, v := range videos {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          v.HashID,
			IsPermaLink: "false",
			Title:       v.Title,
			Link:        &feeds.Link{Href: v.SourceURL},
			Description: v.DescriptionStart,
			Author: &feeds.Author{
				Name: v.Channel,
			},
			Created: v.PublishedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
