package components

import (
	"charterlink/internal/handler"
	"charterlink/internal/handler/api"
	"charterlink/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNotifyHandler,
		api.NewChannelHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
