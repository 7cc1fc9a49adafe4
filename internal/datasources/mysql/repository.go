package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

var _ datasources.CatalogRepository = (*Repository)(nil)

// similarityInsertBatchSize bounds a single bulk insert; the backend
// rejects oversized statements.
const similarityInsertBatchSize = 100

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListLatestVideoIDs(
	ctx context.Context,
	filters domain.VideoFilters,
	options domain.VideoListOptions,
) ([]string, error) {
	sb := sqlbuilder.Select("hash_id")
	sb.From("videos")

	conds := buildVideosConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	orderings, err := buildVideosOrder(options)
	if err != nil {
		return nil, fmt.Errorf("building videos order by clause: %w", err)
	}

	sb.OrderBy(orderings...)
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running videos query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	videoIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning videos: %w", err)
		}
		videoIDs = append(videoIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return videoIDs, nil
}

func (r *Repository) FetchVideosByID(
	ctx context.Context,
	hashIDs []string,
) ([]domain.Video, error) {
	if len(hashIDs) == 0 {
		return []domain.Video{}, nil
	}

	sb := sqlbuilder.Select(
		"hash_id", "title", "description_start", "channel", "source_url",
		"source_kind", "access_type", "trailer_duration_seconds", "date_published",
	)
	sb.From("videos")
	sb.Where(sb.In("hash_id", sliceToAny(hashIDs)...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching videos by ID: %w", err)
	}
	defer func() { _ = rows.Close() }()

	videoMap := make(map[string]domain.Video, len(hashIDs))
	for rows.Next() {
		var v domain.Video
		var description, channel, sourceURL sql.NullString
		var publishedAt sql.NullTime
		if err := rows.Scan(
			&v.HashID, &v.Title, &description, &channel, &sourceURL,
			&v.SourceKind, &v.AccessType, &v.TrailerDurationSeconds, &publishedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning video: %w", err)
		}
		v.DescriptionStart = description.String
		v.Channel = channel.String
		v.SourceURL = sourceURL.String
		v.PublishedAt = publishedAt.Time
		videoMap[v.HashID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	viewer := domain.ViewerFromContext(ctx)
	if !viewer.IsAnonymous() {
		if err := r.annotateVideos(ctx, viewer.ID, hashIDs, videoMap); err != nil {
			return nil, err
		}
	}

	// Results keep the order of the input hash IDs.
	videos := make([]domain.Video, 0, len(hashIDs))
	for _, hashID := range hashIDs {
		if video, exists := videoMap[hashID]; exists {
			videos = append(videos, video)
		}
	}

	return videos, nil
}

// annotateVideos overlays the viewer's interaction state onto fetched
// videos.
func (r *Repository) annotateVideos(
	ctx context.Context, viewerID string, hashIDs []string, videoMap map[string]domain.Video,
) error {
	sb := sqlbuilder.Select("video_hash_id", "viewed", "liked", "score")
	sb.From("viewer_video_interactions")
	sb.Where(
		sb.Equal("viewer_id", viewerID),
		sb.In("video_hash_id", sliceToAny(hashIDs)...),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("fetching viewer interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var hashID string
		var viewed, liked bool
		var score int
		if err := rows.Scan(&hashID, &viewed, &liked, &score); err != nil {
			return fmt.Errorf("scanning viewer interaction: %w", err)
		}
		video, exists := videoMap[hashID]
		if !exists {
			continue
		}
		video.Viewed = &viewed
		video.Liked = &liked
		video.Score = &score
		videoMap[hashID] = video
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	return nil
}

func (r *Repository) CreateVideo(ctx context.Context, video domain.Video) error {
	ib := sqlbuilder.InsertInto("videos")
	ib.Cols(
		"hash_id", "title", "description_start", "channel", "source_url",
		"source_kind", "access_type", "trailer_duration_seconds", "date_published",
	)
	ib.Values(
		video.HashID, video.Title, video.DescriptionStart, video.Channel, video.SourceURL,
		string(video.SourceKind), string(video.AccessType), video.TrailerDurationSeconds,
		video.PublishedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting video: %w", err)
	}
	return nil
}

// RecordInteractionSignal merges one signal into the stored interaction
// inside a transaction: existing flags are read under lock, OR-merged
// with the signal's type override, and the score recomputed from the
// merged flag state.
func (r *Repository) RecordInteractionSignal(
	ctx context.Context,
	viewerID, videoHashID string,
	signal domain.SignalType,
	value bool,
	weights domain.ScoreWeights,
) (domain.Interaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, exists, err := getInteractionForUpdate(ctx, tx, viewerID, videoHashID)
	if err != nil {
		return domain.Interaction{}, err
	}

	merged := domain.Interaction{
		ViewerID:    viewerID,
		VideoHashID: videoHashID,
		Flags:       current.Flags.Merge(signal, value),
		UpdatedAt:   time.Now(),
	}
	merged.Score = weights.Score(merged.Flags)

	if exists {
		err = updateInteraction(ctx, tx, merged)
	} else {
		err = insertInteraction(ctx, tx, merged)
	}
	if err != nil {
		return domain.Interaction{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Interaction{}, fmt.Errorf("committing transaction: %w", err)
	}

	return merged, nil
}

func getInteractionForUpdate(
	ctx context.Context, tx *sql.Tx, viewerID, videoHashID string,
) (domain.Interaction, bool, error) {
	sb := sqlbuilder.Select("viewed", "liked", "watched", "completed", "disliked", "skipped", "score")
	sb.From("viewer_video_interactions")
	sb.Where(
		sb.Equal("viewer_id", viewerID),
		sb.Equal("video_hash_id", videoHashID),
	)
	sb.ForUpdate()

	query, args := sb.Build()
	row := tx.QueryRowContext(ctx, query, args...)

	var interaction domain.Interaction
	err := row.Scan(
		&interaction.Flags.Viewed, &interaction.Flags.Liked, &interaction.Flags.Watched,
		&interaction.Flags.Completed, &interaction.Flags.Disliked, &interaction.Flags.Skipped,
		&interaction.Score,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Interaction{}, false, nil
	}
	if err != nil {
		return domain.Interaction{}, false, fmt.Errorf("getting current interaction: %w", err)
	}

	interaction.ViewerID = viewerID
	interaction.VideoHashID = videoHashID
	return interaction, true, nil
}

func insertInteraction(ctx context.Context, tx *sql.Tx, interaction domain.Interaction) error {
	ib := sqlbuilder.InsertInto("viewer_video_interactions")
	ib.Cols(
		"viewer_id", "video_hash_id",
		"viewed", "liked", "watched", "completed", "disliked", "skipped",
		"score", "updated_at",
	)
	ib.Values(
		interaction.ViewerID, interaction.VideoHashID,
		interaction.Flags.Viewed, interaction.Flags.Liked, interaction.Flags.Watched,
		interaction.Flags.Completed, interaction.Flags.Disliked, interaction.Flags.Skipped,
		interaction.Score, interaction.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

func updateInteraction(ctx context.Context, tx *sql.Tx, interaction domain.Interaction) error {
	ub := sqlbuilder.Update("viewer_video_interactions")
	ub.Set(
		ub.Assign("viewed", interaction.Flags.Viewed),
		ub.Assign("liked", interaction.Flags.Liked),
		ub.Assign("watched", interaction.Flags.Watched),
		ub.Assign("completed", interaction.Flags.Completed),
		ub.Assign("disliked", interaction.Flags.Disliked),
		ub.Assign("skipped", interaction.Flags.Skipped),
		ub.Assign("score", interaction.Score),
		ub.Assign("updated_at", interaction.UpdatedAt),
	)
	ub.Where(
		ub.Equal("viewer_id", interaction.ViewerID),
		ub.Equal("video_hash_id", interaction.VideoHashID),
	)

	query, args := ub.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating interaction: %w", err)
	}
	return nil
}

func (r *Repository) ListAllInteractions(ctx context.Context) ([]domain.Interaction, error) {
	sb := sqlbuilder.Select(
		"viewer_id", "video_hash_id",
		"viewed", "liked", "watched", "completed", "disliked", "skipped",
		"score", "updated_at",
	)
	sb.From("viewer_video_interactions")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var interactions []domain.Interaction
	for rows.Next() {
		var i domain.Interaction
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&i.ViewerID, &i.VideoHashID,
			&i.Flags.Viewed, &i.Flags.Liked, &i.Flags.Watched,
			&i.Flags.Completed, &i.Flags.Disliked, &i.Flags.Skipped,
			&i.Score, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		i.UpdatedAt = updatedAt.Time
		interactions = append(interactions, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return interactions, nil
}

func (r *Repository) ListViewedVideoIDs(
	ctx context.Context, viewerID string, page, pageSize int,
) ([]string, error) {
	sb := sqlbuilder.Select("video_hash_id")
	sb.From("viewer_video_interactions")
	sb.Where(
		sb.Equal("viewer_id", viewerID),
		sb.Equal("viewed", true),
	)
	sb.OrderBy("updated_at DESC")
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing viewed videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	videoIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning viewed video ID: %w", err)
		}
		videoIDs = append(videoIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return videoIDs, nil
}

func (r *Repository) ListPositiveInteractions(
	ctx context.Context, viewerID string,
) ([]domain.Interaction, error) {
	sb := sqlbuilder.Select(
		"viewer_id", "video_hash_id",
		"viewed", "liked", "watched", "completed", "disliked", "skipped",
		"score", "updated_at",
	)
	sb.From("viewer_video_interactions")
	sb.Where(
		sb.Equal("viewer_id", viewerID),
		sb.Or(
			sb.Equal("liked", true),
			sb.Equal("watched", true),
			sb.Equal("completed", true),
		),
	)
	sb.OrderBy("updated_at DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing positive interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var interactions []domain.Interaction
	for rows.Next() {
		var i domain.Interaction
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&i.ViewerID, &i.VideoHashID,
			&i.Flags.Viewed, &i.Flags.Liked, &i.Flags.Watched,
			&i.Flags.Completed, &i.Flags.Disliked, &i.Flags.Skipped,
			&i.Score, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		i.UpdatedAt = updatedAt.Time
		interactions = append(interactions, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return interactions, nil
}

func (r *Repository) ListSimilarVideos(
	ctx context.Context,
	hashIDs []string,
	limit int,
) ([]domain.SimilarVideo, error) {
	if len(hashIDs) == 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select("video_b", "MAX(score) AS score")
	sb.From("video_similarities")
	sb.Where(
		sb.Equal("algorithm", domain.AlgorithmCollaborative),
		sb.In("video_a", sliceToAny(hashIDs)...),
		sb.NotIn("video_b", sliceToAny(hashIDs)...),
	)
	sb.GroupBy("video_b")
	sb.OrderBy("score DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing similar videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var similar []domain.SimilarVideo
	for rows.Next() {
		var s domain.SimilarVideo
		if err := rows.Scan(&s.HashID, &s.Score); err != nil {
			return nil, fmt.Errorf("scanning similar video: %w", err)
		}
		similar = append(similar, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return similar, nil
}

// ReplaceSimilarities rewrites the whole slice for an algorithm:
// delete everything with the tag, then insert the new rows in fixed
// batches. The two phases are not one transaction; a failed run leaves
// the slice partially written until the next successful run.
func (r *Repository) ReplaceSimilarities(
	ctx context.Context,
	algorithm string,
	entries []domain.VideoSimilarity,
) error {
	db := sqlbuilder.DeleteFrom("video_similarities")
	db.Where(db.Equal("algorithm", algorithm))

	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting existing %s similarities: %w", algorithm, err)
	}

	for _, batch := range chunkSimilarityEntries(entries, similarityInsertBatchSize) {
		ib := sqlbuilder.InsertInto("video_similarities")
		ib.Cols("video_a", "video_b", "algorithm", "score")
		for _, entry := range batch {
			ib.Values(entry.VideoA, entry.VideoB, algorithm, entry.Score)
		}

		query, args := ib.Build()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting %s similarity batch: %w", algorithm, err)
		}
	}

	return nil
}

func chunkSimilarityEntries(
	entries []domain.VideoSimilarity, size int,
) [][]domain.VideoSimilarity {
	var chunks [][]domain.VideoSimilarity
	for start := 0; start < len(entries); start += size {
		end := start + size
		if end > len(entries) {
			end = len(entries)
		}
		chunks = append(chunks, entries[start:end])
	}
	return chunks
}

func buildVideosConditions(sb *sqlbuilder.SelectBuilder, filters domain.VideoFilters) []string {
	var conds []string

	if len(filters.OnlyChannels) > 0 {
		conds = append(conds, sb.In("channel", sliceToAny(filters.OnlyChannels)...))
	}

	if len(filters.ExceptChannels) > 0 {
		conds = append(conds, sb.NotIn("channel", sliceToAny(filters.ExceptChannels)...))
	}

	if filters.AccessType != "" {
		conds = append(conds, sb.Equal("access_type", string(filters.AccessType)))
	}

	if filters.PublishedAfter != (time.Time{}) {
		conds = append(conds, sb.GreaterEqualThan("date_published", filters.PublishedAfter))
	}

	if filters.PublishedBefore != (time.Time{}) {
		conds = append(conds, sb.LessEqualThan("date_published", filters.PublishedBefore))
	}

	return conds
}

func buildVideosOrder(options domain.VideoListOptions) ([]string, error) {
	if len(options.Ordering) == 0 {
		return []string{"date_published DESC"}, nil
	}

	var orderings []string
	for _, ordering := range options.Ordering {
		var col string
		switch ordering.Field {
		case domain.VideoOrderingFieldPublishedAt:
			col = "date_published"
		case domain.VideoOrderingFieldChannel:
			col = "channel"
		case domain.VideoOrderingFieldTitle:
			col = "title"
		default:
			return nil, fmt.Errorf("unknown ordering field: %s", ordering.Field)
		}

		if ordering.Desc {
			col += " DESC"
		}
		orderings = append(orderings, col)
	}

	return orderings, nil
}

func sliceToAny[T any](values []T) []interface{} {
	result := make([]interface{}, 0, len(values))
	for _, v := range values {
		result = append(result, v)
	}
	return result
}
