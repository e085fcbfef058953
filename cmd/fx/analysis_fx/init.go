package analysis_fx

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"healthtrack/internal/config"
	"healthtrack/internal/services"
	"healthtrack/pkg/utils"
)

var Module = fx.Provide(
	ProvideNutritionAnalyzer,
	ProvideAnalysisService)

// ProvideNutritionAnalyzer builds the client for the configured AI provider.
func ProvideNutritionAnalyzer(lc fx.Lifecycle, cfg config.Config, log *logrus.Logger) (utils.NutritionAnalyzerInterface, error) {
	apiKey, model := cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel
	if cfg.AI.Provider == "gemini" {
		apiKey, model = cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel
	}

	log.WithFields(logrus.Fields{"provider": cfg.AI.Provider, "model": model}).Info("initializing nutrition analyzer")

	analyzer, err := utils.NewNutritionAnalyzer(context.Background(), cfg.AI.Provider, apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.AI.Provider, err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return analyzer.Close()
		},
	})
	return analyzer, nil
}

func ProvideAnalysisService(analyzer utils.NutritionAnalyzerInterface, cfg config.Config) services.AnalysisServiceInterface {
	return services.NewAnalysisService(analyzer, cfg.AI.Timeout)
}
