//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-crm/internal/infra"
	"restaurant-crm/internal/infra/repository"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/tests/common/builder"
	repositorymock "restaurant-crm/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("success: saved row is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewSettingsBuilder().With(func(s *builder.SettingsBuilder) {
			s.InfoText = nil
		})
		mockQueries := repositorymock.NewMockSettingsWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().UpsertRestaurantSettings(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertRestaurantSettingsParams) (sqlc.RestaurantSettings, error) {
				assert.Equal(t, int64(1), arg.RestaurantID)
				assert.Equal(t, "Anna", arg.HostChoice.String)
				assert.False(t, arg.InfoText.Valid)
				return b.BuildInfra(), nil
			})

		saved, err := repository.NewSettingsRepository(mockQueries).Upsert(ctx, mockDB, b.BuildDomain())

		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.RestaurantID)
		assert.Equal(t, "Welcome!", *saved.GreetingText)
		assert.Nil(t, saved.InfoText)
	})

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "error: database error occurs", returnErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{name: "error: restaurant foreign key violated", returnErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSettingsWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().UpsertRestaurantSettings(ctx, mockDB, gomock.Any()).Return(sqlc.RestaurantSettings{}, tc.returnErr)

			saved, err := repository.NewSettingsRepository(mockQueries).Upsert(ctx, mockDB, builder.NewSettingsBuilder().BuildDomain())

			require.Error(t, err)
			assert.Nil(t, saved)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
