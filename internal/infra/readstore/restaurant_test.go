//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"restaurant-crm/internal/infra"
	sqlc "restaurant-crm/internal/infra/sqlc/generated"
	"restaurant-crm/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRestaurantReadQueries struct {
	mock.Mock
}

func (m *MockRestaurantReadQueries) GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Restaurants, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Restaurants), args.Error(1)
}

func TestRestaurantFindByID(t *testing.T) {
	row := builder.NewRestaurantBuilder().BuildInfra()

	tests := []struct {
		name       string
		id         int64
		mockReturn sqlc.Restaurants
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			id:         row.ID,
			mockReturn: row,
		},
		{
			name:       "restaurant not found (pgx)",
			id:         999,
			mockReturn: sqlc.Restaurants{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "restaurant not found (database/sql)",
			id:         999,
			mockReturn: sqlc.Restaurants{},
			mockError:  sql.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			id:         row.ID,
			mockReturn: sqlc.Restaurants{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRestaurantReadQueries)
			mockQueries.On("GetRestaurantByID", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			readStore := NewRestaurantReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.id)

			if tt.mockError != nil {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, row.ID, view.ID)
				assert.Equal(t, row.Name, view.Name)
				assert.Equal(t, row.DefaultTableCount, view.DefaultTableCount)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
