//go:build unit

package queries_test

import (
	"context"
	"testing"

	"restaurant-crm/internal/infra"
	"restaurant-crm/internal/pkg/errs"
	"restaurant-crm/internal/usecase/queries"
	"restaurant-crm/tests/common/builder"
	queriesmock "restaurant-crm/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsQueries_GetSettings(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setup     func(*queriesmock.MockRestaurantReadStore, *queriesmock.MockSettingsReadStore)
		want      *queries.SettingsView
		wantErrIs error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "saved settings",
			setup: func(r *queriesmock.MockRestaurantReadStore, s *queriesmock.MockSettingsReadStore) {
				r.EXPECT().FindByID(gomock.Any(), int64(1)).Return(builder.NewRestaurantBuilder().BuildView(), nil)
				s.EXPECT().FindByRestaurantID(gomock.Any(), int64(1)).Return(builder.NewSettingsBuilder().BuildView(), nil)
			},
			want: builder.NewSettingsBuilder().BuildView(),
		},
		{
			name: "nothing saved yet returns all nil fields",
			setup: func(r *queriesmock.MockRestaurantReadStore, s *queriesmock.MockSettingsReadStore) {
				r.EXPECT().FindByID(gomock.Any(), int64(1)).Return(builder.NewRestaurantBuilder().BuildView(), nil)
				s.EXPECT().FindByRestaurantID(gomock.Any(), int64(1)).
					Return(nil, infra.WrapRepoErr("restaurant settings not found", assert.AnError, infra.KindNotFound))
			},
			want: &queries.SettingsView{RestaurantID: 1},
		},
		{
			name: "unknown restaurant",
			setup: func(r *queriesmock.MockRestaurantReadStore, s *queriesmock.MockSettingsReadStore) {
				r.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(nil, infra.WrapRepoErr("restaurant not found", assert.AnError, infra.KindNotFound))
			},
			wantErrIs: queries.ErrRestaurantNotFound,
		},
		{
			name: "settings store failure",
			setup: func(r *queriesmock.MockRestaurantReadStore, s *queriesmock.MockSettingsReadStore) {
				r.EXPECT().FindByID(gomock.Any(), int64(1)).Return(builder.NewRestaurantBuilder().BuildView(), nil)
				s.EXPECT().FindByRestaurantID(gomock.Any(), int64(1)).
					Return(nil, infra.WrapRepoErr("failed", assert.AnError, infra.KindDBFailure))
			},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			restaurants := queriesmock.NewMockRestaurantReadStore(ctrl)
			settings := queriesmock.NewMockSettingsReadStore(ctrl)
			tc.setup(restaurants, settings)

			view, err := queries.NewSettingsQueries(restaurants, settings).GetSettings(ctx, 1)

			switch {
			case tc.wantErrIs != nil:
				assert.Nil(t, view)
				assert.True(t, errs.Is(err, tc.wantErrIs))
			case tc.wantKind != "":
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tc.wantKind))
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, view)
			}
		})
	}
}
