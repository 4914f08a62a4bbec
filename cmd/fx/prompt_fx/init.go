// cmd/fx/prompt_fx/init.go
package prompt_fx

import (
	"context"
	"io"
	"log"

	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvidePromptService)

// ProvideCompletionClient creates the completion client for the configured provider
func ProvideCompletionClient(lc fx.Lifecycle, cfg *config.Config) (utils.CompletionClientInterface, error) {
	completionCfg, err := cfg.CompletionConfig()
	if err != nil {
		return nil, err
	}

	log.Printf("Initializing %s completion client with model: %s", completionCfg.Provider, completionCfg.Model)

	client, err := utils.NewCompletionClient(context.Background(), completionCfg)
	if err != nil {
		return nil, err
	}

	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}

	return client, nil
}

func ProvidePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}
