package domain

import "math"

// AlgorithmCollaborative tags similarity rows produced by the
// collaborative-filtering trainer.
const AlgorithmCollaborative = "collaborative"

// ScoreVector maps viewer IDs to interaction scores for a single video.
// Only viewers who interacted with the video have entries.
type ScoreVector map[string]int

// SimilarVideo is a related video with its similarity score.
type SimilarVideo struct {
	HashID string  `json:"hash_id"`
	Score  float64 `json:"score"`
}

// VideoSimilarity is one directed similarity row, tagged by the
// algorithm that produced it.
type VideoSimilarity struct {
	VideoA string
	VideoB string
	Score  float64
}

// CosineSimilarity computes the cosine similarity of two sparse score
// vectors. The dot product runs over viewers present in both vectors;
// each magnitude runs over that vector's full viewer set. Returns 0
// when the vectors share no viewer or either magnitude is 0.
func CosineSimilarity(a, b ScoreVector) float64 {
	var dot float64
	common := false
	for viewer, scoreA := range a {
		scoreB, ok := b[viewer]
		if !ok {
			continue
		}
		common = true
		dot += float64(scoreA) * float64(scoreB)
	}
	if !common {
		return 0
	}

	magA := magnitude(a)
	magB := magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (magA * magB)
}

func magnitude(v ScoreVector) float64 {
	var sum float64
	for _, score := range v {
		sum += float64(score) * float64(score)
	}
	return math.Sqrt(sum)
}
