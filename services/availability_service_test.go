package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hotel-inventory/models"
)

func TestOverlaps(t *testing.T) {
	mar := func(d int) time.Time { return date(2025, time.March, d) }

	cases := []struct {
		name                 string
		aIn, aOut, bIn, bOut int
		want                 bool
	}{
		{"contained", 10, 12, 11, 13, true},
		{"identical", 10, 12, 10, 12, true},
		{"disjoint before", 1, 3, 10, 12, false},
		{"disjoint after", 13, 15, 10, 12, false},
		{"touching end, same-day turnover", 12, 14, 10, 12, true},
		{"touching start, same-day turnover", 8, 10, 10, 12, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, overlaps(mar(tc.aIn), mar(tc.aOut), mar(tc.bIn), mar(tc.bOut)))
		})
	}
}

func TestIsRoomAvailable(t *testing.T) {
	guest := createTestGuest(t)
	room := createTestRoom(t, "A-101", models.RoomStatusAvailable)

	bookings := NewBookingService(testDB)
	availability := NewAvailabilityService(testDB)

	booking := &models.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.March, 10),
		CheckOutDate: date(2025, time.March, 12),
		TotalAmount:  240,
	}
	require.NoError(t, bookings.Create(booking))

	free, err := availability.IsRoomAvailable(room.ID, date(2025, time.March, 11), date(2025, time.March, 13))
	require.NoError(t, err)
	require.False(t, free, "overlap at day 11-12 must block the room")

	// boundary-touching counts as a conflict under the inclusive rule
	free, err = availability.IsRoomAvailable(room.ID, date(2025, time.March, 12), date(2025, time.March, 14))
	require.NoError(t, err)
	require.False(t, free)

	free, err = availability.IsRoomAvailable(room.ID, date(2025, time.March, 13), date(2025, time.March, 15))
	require.NoError(t, err)
	require.True(t, free)
}

func TestFindAvailableRooms(t *testing.T) {
	guest := createTestGuest(t)
	free := createTestRoom(t, "B-201", models.RoomStatusAvailable)
	reserved := createTestRoom(t, "B-202", models.RoomStatusReserved)
	occupied := createTestRoom(t, "B-203", models.RoomStatusOccupied)
	maintenance := createTestRoom(t, "B-204", models.RoomStatusMaintenance)
	booked := createTestRoom(t, "B-205", models.RoomStatusAvailable)

	bookings := NewBookingService(testDB)
	availability := NewAvailabilityService(testDB)

	require.NoError(t, bookings.Create(&models.Booking{
		RoomID:       booked.ID,
		GuestID:      guest.ID,
		CheckInDate:  date(2025, time.June, 10),
		CheckOutDate: date(2025, time.June, 14),
		TotalAmount:  480,
	}))

	rooms, err := availability.FindAvailableRooms(date(2025, time.June, 11), date(2025, time.June, 12), "")
	require.NoError(t, err)

	got := map[uint]bool{}
	for _, r := range rooms {
		got[r.ID] = true
	}
	require.True(t, got[free.ID])
	require.True(t, got[reserved.ID], "reserved rooms stay in the candidate set")
	require.False(t, got[occupied.ID], "occupied rooms are excluded regardless of bookings")
	require.False(t, got[maintenance.ID])
	require.False(t, got[booked.ID], "conflicting booking excludes the room")

	// a cancelled booking no longer blocks its room
	blocking, err := bookings.List()
	require.NoError(t, err)
	var target uint
	for _, b := range blocking {
		if b.RoomID == booked.ID && b.Status == models.BookingStatusConfirmed {
			target = b.ID
		}
	}
	require.NotZero(t, target)
	_, err = bookings.Cancel(target)
	require.NoError(t, err)

	rooms, err = availability.FindAvailableRooms(date(2025, time.June, 11), date(2025, time.June, 12), "")
	require.NoError(t, err)
	got = map[uint]bool{}
	for _, r := range rooms {
		got[r.ID] = true
	}
	require.True(t, got[booked.ID])

	// type filter narrows the candidate set
	suite := &models.Room{RoomNumber: "B-206", Type: models.RoomTypeSuite, Price: 400, Capacity: 4}
	require.NoError(t, NewRoomService(testDB).Create(suite))
	rooms, err = availability.FindAvailableRooms(date(2025, time.June, 11), date(2025, time.June, 12), models.RoomTypeSuite)
	require.NoError(t, err)
	for _, r := range rooms {
		require.Equal(t, models.RoomTypeSuite, r.Type)
	}
}
