package controller

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kushalstream/kushal-stream/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxPageSize     = 200
)

func parsePagination(q url.Values) (page, pageSize int, err error) {
	page = defaultPage
	pageSize = defaultPageSize

	if q.Has("page") {
		p, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if p < 1 {
			return 0, 0, fmt.Errorf("invalid page value [%d]", p)
		}
		page = int(p)
	}

	if q.Has("page_size") {
		ps, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if ps > maxPageSize {
			return 0, 0, fmt.Errorf("page size [%d] exceeds limit [%d]", ps, maxPageSize)
		}
		if ps < 1 {
			return 0, 0, fmt.Errorf("invalid page size value [%d]", ps)
		}
		pageSize = int(ps)
	}

	return page, pageSize, nil
}

func videoFiltersFromQuery(q url.Values) (domain.VideoFilters, error) {
	var filters domain.VideoFilters

	if q.Has("only_channels") {
		filters.OnlyChannels = strings.Split(q.Get("only_channels"), ",")
	}

	if q.Has("except_channels") {
		filters.ExceptChannels = strings.Split(q.Get("except_channels"), ",")
	}

	if q.Has("access_type") {
		switch accessType := domain.AccessType(q.Get("access_type")); accessType {
		case domain.AccessTypeFree, domain.AccessTypePremium:
			filters.AccessType = accessType
		default:
			return domain.VideoFilters{}, fmt.Errorf("unknown access type [%s]", accessType)
		}
	}

	if q.Has("published_after") {
		after, err := time.Parse(time.RFC3339, q.Get("published_after"))
		if err != nil {
			return domain.VideoFilters{}, fmt.Errorf("unable to parse published_after from query: %w", err)
		}
		filters.PublishedAfter = after
	}

	if q.Has("published_before") {
		before, err := time.Parse(time.RFC3339, q.Get("published_before"))
		if err != nil {
			return domain.VideoFilters{}, fmt.Errorf("unable to parse published_before from query: %w", err)
		}
		filters.PublishedBefore = before
	}

	return filters, nil
}

func listOptionsFromQuery(q url.Values) (domain.VideoListOptions, error) {
	var options domain.VideoListOptions

	page, pageSize, err := parsePagination(q)
	if err != nil {
		return domain.VideoListOptions{}, err
	}
	options.Page = page
	options.PageSize = pageSize

	if q.Has("sort") {
		orderings := strings.Split(q.Get("sort"), ",")

		for _, ordering := range orderings {
			field := ordering
			desc := false
			if strings.HasSuffix(ordering, "_desc") {
				field = ordering[:len(ordering)-5]
				desc = true
			}

			if !slices.Contains(domain.ValidOrderingFields, domain.VideoOrderingField(field)) {
				return domain.VideoListOptions{}, fmt.Errorf("unrecognised video ordering field: %s", field)
			}

			options.Ordering = append(options.Ordering, domain.VideoOrdering{
				Field: domain.VideoOrderingField(field),
				Desc:  desc,
			})
		}
	}

	return options, nil
}
