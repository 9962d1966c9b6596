package components

import (
	"fmt"

	"restaurant-crm/internal/domain/booking"
	"restaurant-crm/internal/domain/slot"
	"restaurant-crm/internal/infra/assistant"
	"restaurant-crm/internal/pkg/config"
	"restaurant-crm/internal/usecase"
	"restaurant-crm/internal/usecase/commands"
	"restaurant-crm/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewSlotCatalog,
	booking.NewFactory,
	fx.Annotate(
		NewAssistantClient,
		fx.As(new(commands.AssistantGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewSettingsUseCase,
		commands.NewAssistantUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewSettingsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSlotCatalog(cfg config.Config) (slot.Catalog, error) {
	catalog, err := slot.NewCatalog(cfg.Booking.TimeSlots)
	if err != nil {
		return slot.Catalog{}, fmt.Errorf("invalid TIME_SLOTS: %w", err)
	}
	return catalog, nil
}

func NewAssistantClient(cfg config.Config) *assistant.Client {
	return assistant.NewClient(cfg.Assistant)
}
