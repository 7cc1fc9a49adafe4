package pinecone

import (
	"context"
	"fmt"

	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.RelatedVideosRepository = (*Client)(nil)

const indexNamespace = "videos"

// Client serves related-videos lookups from content-embedding vectors,
// one vector per video keyed by hash ID.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) ListSimilarVideos(
	ctx context.Context,
	hashIDs []string,
	limit int,
) ([]domain.SimilarVideo, error) {
	if limit > 10000 {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if len(hashIDs) == 0 {
		return nil, nil
	}

	idxConn, err := c.indexConnection()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	// Average the seed videos' vectors into a single search vector.
	vectorsResp, err := idxConn.FetchVectors(ctx, hashIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching vectors for seed videos: %w", err)
	}

	var seedVectors [][]float32
	for _, vector := range vectorsResp.Vectors {
		seedVectors = append(seedVectors, vector.Values)
	}
	if len(seedVectors) == 0 {
		return nil, nil
	}

	return c.queryByVector(ctx, idxConn, hashIDs, averageVectors(seedVectors), limit)
}

func (c *Client) ListSimilarVideosByVector(
	ctx context.Context,
	excludeHashIDs []string,
	vector []float32,
	limit int,
) ([]domain.SimilarVideo, error) {
	if len(vector) == 0 {
		return nil, nil
	}

	idxConn, err := c.indexConnection()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	return c.queryByVector(ctx, idxConn, excludeHashIDs, vector, limit)
}

func (c *Client) indexConnection() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: indexNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func (c *Client) queryByVector(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	excludeHashIDs []string,
	searchVector []float32,
	limit int,
) ([]domain.SimilarVideo, error) {
	filter, err := exclusionFilter(excludeHashIDs)
	if err != nil {
		return nil, err
	}

	topK := limit
	if topK < 10 {
		topK = 10
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          searchVector,
		TopK:            uint32(topK),
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: false,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	var results []domain.SimilarVideo
	for _, scoredVector := range resp.Matches {
		if len(results) >= limit {
			break
		}
		results = append(results, domain.SimilarVideo{
			HashID: scoredVector.Vector.Id,
			Score:  float64(scoredVector.Score),
		})
	}

	return results, nil
}

func exclusionFilter(excludeHashIDs []string) (*pinecone.MetadataFilter, error) {
	if len(excludeHashIDs) == 0 {
		return nil, nil
	}

	var excluded []any
	for _, id := range excludeHashIDs {
		excluded = append(excluded, id)
	}

	metadataMap := map[string]any{
		"hash_id": map[string]any{
			"$nin": excluded,
		},
	}

	filter, err := structpb.NewStruct(metadataMap)
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

func averageVectors(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	result := make([]float32, len(vectors[0]))
	for _, vector := range vectors {
		for i, v := range vector {
			result[i] += v
		}
	}

	for i := range result {
		result[i] /= float32(len(vectors))
	}

	return result
}
