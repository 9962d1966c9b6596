//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-crm/internal/domain/restaurant"
	reqdto "restaurant-crm/internal/handler/dto/request"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/internal/pkg/pgconv"
	"restaurant-crm/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SettingsBuilder struct {
	RestaurantID int64
	HostChoice   *string
	GreetingText *string
	InfoText     *string
}

func NewSettingsBuilder() *SettingsBuilder {
	host := "Anna"
	greeting := "Welcome!"
	info := "Open 12:00-23:00"
	return &SettingsBuilder{
		RestaurantID: 1,
		HostChoice:   &host,
		GreetingText: &greeting,
		InfoText:     &info,
	}
}

func (s *SettingsBuilder) With(mutate func(*SettingsBuilder)) *SettingsBuilder {
	mutate(s)
	return s
}

func (s *SettingsBuilder) BuildDomain() restaurant.Settings {
	return restaurant.Settings{
		RestaurantID: s.RestaurantID,
		HostChoice:   s.HostChoice,
		GreetingText: s.GreetingText,
		InfoText:     s.InfoText,
	}
}

func (s *SettingsBuilder) BuildInfra() sqlc.RestaurantSettings {
	return sqlc.RestaurantSettings{
		RestaurantID: s.RestaurantID,
		HostChoice:   pgconv.StringPtrToPgtype(s.HostChoice),
		GreetingText: pgconv.StringPtrToPgtype(s.GreetingText),
		InfoText:     pgconv.StringPtrToPgtype(s.InfoText),
		UpdatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (s *SettingsBuilder) BuildView() *queries.SettingsView {
	return &queries.SettingsView{
		RestaurantID: s.RestaurantID,
		HostChoice:   s.HostChoice,
		GreetingText: s.GreetingText,
		InfoText:     s.InfoText,
	}
}

func (s *SettingsBuilder) BuildUpdateRequestDTO() reqdto.UpdateSettingsRequest {
	return reqdto.UpdateSettingsRequest{
		HostChoice:   s.HostChoice,
		GreetingText: s.GreetingText,
		InfoText:     s.InfoText,
	}
}
