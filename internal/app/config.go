package app

import (
	"github.com/kushalstream/kushal-stream/internal/command"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

// DefaultTrainSimilarityConfig returns the production trainer settings.
func DefaultTrainSimilarityConfig() command.TrainSimilarityConfig {
	return command.TrainSimilarityConfig{
		Algorithm:          domain.AlgorithmCollaborative,
		RelevanceThreshold: 0.1,
	}
}
