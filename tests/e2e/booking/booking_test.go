//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	resdto "restaurant-crm/internal/handler/dto/response"
	"restaurant-crm/tests/common/authtest"
	"restaurant-crm/tests/common/builder"
	"restaurant-crm/tests/common/dbtest"
	"restaurant-crm/tests/common/httptest"
	"restaurant-crm/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/bookings"
	testDate    = "2030-01-01"
	testSlot    = "19:00"
)

type bookingSuite struct {
	e2e.SharedSuite
	token string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), s.Config.Admin.Username, s.Config.Admin.RestaurantID)
}

func slotsURL(restaurantID int64, date string) string {
	return fmt.Sprintf("/bookings/%d/%s", restaurantID, date)
}

func (s *bookingSuite) createBooking(b *builder.BookingBuilder) *http.Response {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), s.token)
	return w.Result()
}

func (s *bookingSuite) getSlots(restaurantID int64, date string) resdto.SlotsResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL(restaurantID, date), nil, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.SlotsResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func findSlot(res resdto.SlotsResponse, time string) resdto.SlotResponse {
	for _, sl := range res.Slots {
		if sl.Time == time {
			return sl
		}
	}
	return resdto.SlotResponse{}
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("予約が作成されDBに保存される", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), s.token)

		var res resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "ok", res.Status)
		require.Positive(t, res.BookingID)

		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, 1, testDate, testSlot))

		var phone string
		var tags []string
		err := s.DB.QueryRow(t.Context(), "SELECT phone, tags FROM bookings WHERE id = $1", res.BookingID).Scan(&phone, &tags)
		require.NoError(t, err)
		require.Equal(t, *b.Phone, phone)
		require.Equal(t, b.Tags, tags)
	})

	s.Run("満席の枠は409を返す", func() {
		t := s.T()

		for i := range int(s.Config.Booking.DefaultTableCount) {
			b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ClientName = fmt.Sprintf("Guest %d", i)
			})
			require.Equal(t, http.StatusCreated, s.createBooking(b).StatusCode, "%d件目の予約に失敗", i+1)
		}

		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ClientName = "Latecomer"
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No free tables for selected slot")

		require.Equal(t, int(s.Config.Booking.DefaultTableCount), dbtest.CountBookings(t, s.DB, 1, testDate, testSlot))
	})

	s.Run("同じ客の重複予約は409を返す", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		require.Equal(t, http.StatusCreated, s.createBooking(b).StatusCode)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Booking already exists for this client and slot")

		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, 1, testDate, testSlot))
	})

	s.Run("席数0のレストランは常に満席", func() {
		t := s.T()

		rid := dbtest.CreateTestRestaurant(t, s.DB, "Closed Kitchen", 0)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RestaurantID = rid
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No free tables for selected slot")
	})

	s.Run("入力エラー", func() {
		tests := []struct {
			name           string
			mutate         func(b *builder.BookingBuilder)
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "不正な日付",
				mutate:         func(b *builder.BookingBuilder) { b.Date = "2030-02-30" },
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid date format",
			},
			{
				name:           "存在しないレストラン",
				mutate:         func(b *builder.BookingBuilder) { b.RestaurantID = 999 },
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Restaurant not found",
			},
			{
				name:           "ID0のレストラン",
				mutate:         func(b *builder.BookingBuilder) { b.RestaurantID = 0 },
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Restaurant not found",
			},
			{
				name:           "未定義の時間枠",
				mutate:         func(b *builder.BookingBuilder) { b.TimeSlot = "03:00" },
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "空白のみの名前",
				mutate:         func(b *builder.BookingBuilder) { b.ClientName = "   " },
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Client name is required",
			},
		}

		for _, tt := range tests {
			s.Run(tt.name, func() {
				t := s.T()

				b := builder.NewBookingBuilder().With(tt.mutate)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), s.token)
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedMsg)
			})
		}
	})
}

func (s *bookingSuite) TestGetSlots() {
	s.Run("予約がない日は全枠が空き", func() {
		t := s.T()

		res := s.getSlots(1, testDate)

		want := make([]resdto.SlotResponse, len(s.Config.Booking.TimeSlots))
		for i, ts := range s.Config.Booking.TimeSlots {
			want[i] = resdto.SlotResponse{Time: ts, Booked: 0, Free: int(s.Config.Booking.DefaultTableCount)}
		}
		if diff := cmp.Diff(want, res.Slots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, testDate, res.Date)
	})

	s.Run("予約後はキャッシュ済みの枠も更新される", func() {
		t := s.T()

		// 先に空き状況を取得してキャッシュさせる
		before := findSlot(s.getSlots(1, testDate), testSlot)
		require.Equal(t, 0, before.Booked)

		require.Equal(t, http.StatusCreated, s.createBooking(builder.NewBookingBuilder()).StatusCode)

		after := findSlot(s.getSlots(1, testDate), testSlot)
		require.Equal(t, resdto.SlotResponse{Time: testSlot, Booked: 1, Free: int(s.Config.Booking.DefaultTableCount) - 1}, after)

		// Redis にも書き込まれていること
		keys, err := s.Redis.Keys(t.Context(), "*").Result()
		require.NoError(t, err)
		require.NotEmpty(t, keys, "空き枠キャッシュが書き込まれていない")
	})

	s.Run("エラー", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL(1, "tomorrow"), nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date format")

		for _, rid := range []int64{999, 0, -1} {
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL(rid, testDate), nil, s.token)
			httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Restaurant not found")
		}
	})
}

func (s *bookingSuite) TestConcurrentBookings() {
	s.Run("同時予約でも席数を超えない", func() {
		t := s.T()

		const attempts = 20
		capacity := int(s.Config.Booking.DefaultTableCount)

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			statuses = map[int]int{}
		)
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.ClientName = fmt.Sprintf("Rush %d", i)
				})
				code := s.createBooking(b).StatusCode
				mu.Lock()
				statuses[code]++
				mu.Unlock()
			}()
		}
		wg.Wait()

		require.Equal(t, capacity, statuses[http.StatusCreated], "statuses: %v", statuses)
		require.Equal(t, attempts-capacity, statuses[http.StatusConflict], "statuses: %v", statuses)
		require.Equal(t, capacity, dbtest.CountBookings(t, s.DB, 1, testDate, testSlot))

		// 並行したキャッシュ更新の順序は保証されないため DB から再計算させる
		require.NoError(t, s.Redis.FlushDB(t.Context()).Err())
		slot := findSlot(s.getSlots(1, testDate), testSlot)
		require.Equal(t, 0, slot.Free)
	})
}
