package chat_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(provideChatService)

func provideChatService(completion utils.CompletionClientInterface) services.ChatServiceInterface {
	return services.NewChatService(completion)
}
