package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hotel-inventory/models"
	"hotel-inventory/utils"
)

func TestCreateBookingRejectsBadInput(t *testing.T) {
	svc := NewBookingService(testDB)
	guest := createTestGuest(t)
	room := createTestRoom(t, "C-101", models.RoomStatusAvailable)

	err := svc.Create(&models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.April, 12),
		CheckOutDate: date(2025, time.April, 10),
		TotalAmount:  100,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Create(&models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.April, 10),
		CheckOutDate: date(2025, time.April, 10),
		TotalAmount:  100,
	})
	require.ErrorIs(t, err, ErrInvalidInput, "zero-length stay")

	err = svc.Create(&models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.April, 10),
		CheckOutDate: date(2025, time.April, 12),
		TotalAmount:  -1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Create(&models.Booking{
		RoomID:       999999,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.April, 10),
		CheckOutDate: date(2025, time.April, 12),
		TotalAmount:  100,
	})
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.Create(&models.Booking{
		RoomID:       room.ID,
		GuestID:      999999,
		CheckInDate:  date(2025, time.April, 10),
		CheckOutDate: date(2025, time.April, 12),
		TotalAmount:  100,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBookingConflict(t *testing.T) {
	svc := NewBookingService(testDB)
	guest := createTestGuest(t)
	room := createTestRoom(t, "C-201", models.RoomStatusAvailable)

	first := &models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.May, 10),
		CheckOutDate: date(2025, time.May, 12),
		TotalAmount:  240,
	}
	require.NoError(t, svc.Create(first))
	require.Equal(t, models.BookingStatusConfirmed, first.Status)
	require.NotEmpty(t, first.ReferenceCode)

	overlap := &models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.May, 11),
		CheckOutDate: date(2025, time.May, 13),
		TotalAmount:  240,
	}
	require.ErrorIs(t, svc.Create(overlap), ErrRoomNotAvailable)

	// same-day turnover conflicts under the inclusive boundary rule
	turnover := &models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.May, 12),
		CheckOutDate: date(2025, time.May, 14),
		TotalAmount:  240,
	}
	require.ErrorIs(t, svc.Create(turnover), ErrRoomNotAvailable)

	// cancelling the first booking frees the dates
	_, err := svc.Cancel(first.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Create(overlap))
}

func TestCreateBookingTodayReservesRoom(t *testing.T) {
	svc := NewBookingService(testDB)
	rooms := NewRoomService(testDB)
	guest := createTestGuest(t)

	today := utils.StartOfDay(time.Now())

	sameDay := createTestRoom(t, "C-301", models.RoomStatusAvailable)
	require.NoError(t, svc.Create(&models.Booking{
		RoomID:       sameDay.ID,
		GuestID:      guest.ID,
		CheckInDate:  today,
		CheckOutDate: today.AddDate(0, 0, 2),
		TotalAmount:  240,
	}))
	got, err := rooms.GetByID(sameDay.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusReserved, got.Status)

	future := createTestRoom(t, "C-302", models.RoomStatusAvailable)
	require.NoError(t, svc.Create(&models.Booking{
		RoomID:       future.ID,
		GuestID:      guest.ID,
		CheckInDate:  today.AddDate(0, 0, 30),
		CheckOutDate: today.AddDate(0, 0, 32),
		TotalAmount:  240,
	}))
	got, err = rooms.GetByID(future.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusAvailable, got.Status, "future check-in leaves room status unchanged")
}

func TestLifecycleRoundTrip(t *testing.T) {
	svc := NewBookingService(testDB)
	rooms := NewRoomService(testDB)
	guest := createTestGuest(t)
	room := createTestRoom(t, "C-401", models.RoomStatusAvailable)

	booking := &models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.July, 1),
		CheckOutDate: date(2025, time.July, 5),
		TotalAmount:  480,
	}
	require.NoError(t, svc.Create(booking))

	// check-out before check-in is rejected
	_, err := svc.CheckOut(booking.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)

	checkedIn, err := svc.CheckIn(booking.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCheckedIn, checkedIn.Status)
	got, err := rooms.GetByID(room.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusOccupied, got.Status)

	// cancelling a checked-in booking is not modeled
	_, err = svc.Cancel(booking.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)

	checkedOut, err := svc.CheckOut(booking.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCheckedOut, checkedOut.Status)
	got, err = rooms.GetByID(room.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusAvailable, got.Status)

	// checked-out is terminal
	_, err = svc.CheckIn(booking.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.CheckOut(booking.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.CheckIn(999999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCancelSameDayReleasesRoom(t *testing.T) {
	svc := NewBookingService(testDB)
	rooms := NewRoomService(testDB)
	guest := createTestGuest(t)
	room := createTestRoom(t, "C-501", models.RoomStatusAvailable)

	today := utils.StartOfDay(time.Now())
	booking := &models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  today,
		CheckOutDate: today.AddDate(0, 0, 1),
		TotalAmount:  120,
	}
	require.NoError(t, svc.Create(booking))

	got, err := rooms.GetByID(room.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusReserved, got.Status)

	cancelled, err := svc.Cancel(booking.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	got, err = rooms.GetByID(room.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusAvailable, got.Status)

	// cancelled is terminal
	_, err = svc.Cancel(booking.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateBookingMutableFields(t *testing.T) {
	svc := NewBookingService(testDB)
	guest := createTestGuest(t)
	room := createTestRoom(t, "C-601", models.RoomStatusAvailable)

	booking := &models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.August, 1),
		CheckOutDate: date(2025, time.August, 4),
		TotalAmount:  360,
	}
	require.NoError(t, svc.Create(booking))
	require.Equal(t, 3, booking.NumberOfNights())
	require.Equal(t, 360.0, booking.BalanceAmount())

	updated, err := svc.Update(booking.ID, 360, 200, "late arrival")
	require.NoError(t, err)
	require.Equal(t, 200.0, updated.PaidAmount)
	require.Equal(t, 160.0, updated.BalanceAmount())
	require.Equal(t, "late arrival", updated.SpecialRequests)

	_, err = svc.Update(booking.ID, -1, 0, "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

// Two racing creations for the same room and dates: the row lock on
// the room serializes them, so exactly one commits and the other sees
// the conflict.
func TestConcurrentCreateOnlyOneSucceeds(t *testing.T) {
	svc := NewBookingService(testDB)
	guest := createTestGuest(t)
	room := createTestRoom(t, "C-701", models.RoomStatusAvailable)

	const racers = 2
	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Create(&models.Booking{
				RoomID:       room.ID,
				GuestID:      guest.ID,
				CheckInDate:  date(2025, time.September, 10),
				CheckOutDate: date(2025, time.September, 12),
				TotalAmount:  240,
			})
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, ErrRoomNotAvailable)
			conflict++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, racers-1, conflict)
}
