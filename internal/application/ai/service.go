// Package ai provides the meal generation gateway: prompt construction,
// backend dispatch, structured-output parsing, and fallback selection.
package ai

import (
	"context"

	"go.uber.org/zap"

	"github.com/platefull/mealplanner/internal/ports/outbound"
)

// Service dispatches generation prompts to an LLM backend and parses the
// response into a meal record. It implements outbound.MealGenerator.
type Service struct {
	completer outbound.TextCompleter
	logger    *zap.Logger
}

// NewService creates a meal generation gateway over the given backend
func NewService(completer outbound.TextCompleter, logger *zap.Logger) *Service {
	return &Service{
		completer: completer,
		logger:    logger.Named("ai-gateway"),
	}
}

// GenerateMeal generates one slot's meal. Transport and parsing failures
// are absorbed here: a single failed attempt selects the static fallback
// record, with no retry. Callers never see an error.
func (s *Service) GenerateMeal(ctx context.Context, req outbound.MealRequest) outbound.MealRecord {
	prompt := BuildMealPrompt(req)

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("model call failed, using fallback meal",
			zap.String("slot", string(req.Slot)),
			zap.Error(err))
		return FallbackMeal(req.IsVegetarian)
	}

	record, err := ParseMealRecord(raw)
	if err != nil {
		s.logger.Warn("model output unparseable, using fallback meal",
			zap.String("slot", string(req.Slot)),
			zap.Error(err))
		return FallbackMeal(req.IsVegetarian)
	}

	s.logger.Info("meal generated",
		zap.String("slot", string(req.Slot)),
		zap.String("name", record.Name))

	return record
}
