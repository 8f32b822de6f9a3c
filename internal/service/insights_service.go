package service

import (
	"context"

	"github.com/Hariom009/WellPlate-sub000/internal/domain"
	"github.com/Hariom009/WellPlate-sub000/internal/llm"
)

// InsightsService generates a narrative reading of the current score.
type InsightsService interface {
	// Generate recomputes the score and asks the LLM to explain it.
	Generate(ctx context.Context) (*domain.WellnessInsightsResponse, error)
}

type insightsService struct {
	wellnessService WellnessService
	llmClient       llm.WellnessInsightsLLM
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(wellnessService WellnessService, llmClient llm.WellnessInsightsLLM) InsightsService {
	return &insightsService{
		wellnessService: wellnessService,
		llmClient:       llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context) (*domain.WellnessInsightsResponse, error) {
	score, err := s.wellnessService.Recompute(ctx)
	if err != nil {
		return nil, err
	}
	if score.NeedsPermission {
		return nil, domain.ErrPermissionRequired
	}

	insightsCtx := &domain.WellnessInsightsContext{
		Total:        score.Total,
		Level:        score.Level,
		Factors:      []domain.FactorScore{*score.Exercise, *score.Sleep, *score.Diet, *score.Usage},
		TopStressors: score.TopStressors,
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.WellnessInsightsResponse{
		Total:        score.Total,
		Level:        score.Level,
		TopStressors: score.TopStressors,
		Insights:     *output,
	}, nil
}
