package chat_fx

import (
	"go.uber.org/fx"

	"lingua/internal/services"
)

var Module = fx.Provide(
	services.NewDocumentService,
	services.NewChatService)
