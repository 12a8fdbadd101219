package services

import "errors"

// ErrNotFound is returned when a requested room, booking or guest does
// not exist.
var ErrNotFound = errors.New("not found")

// ErrRoomNumberTaken is returned when a create or update would collide
// with another room's number.
var ErrRoomNumberTaken = errors.New("room number already exists")

// ErrRoomNotAvailable is returned when a booking would overlap a
// non-cancelled booking for the same room.
var ErrRoomNotAvailable = errors.New("room not available for requested dates")

// ErrRoomInUse is returned when deleting a room that is still
// referenced by a confirmed or checked-in booking.
var ErrRoomInUse = errors.New("room has open bookings")

// ErrInvalidInput is returned for malformed input rejected before
// touching the store.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidTransition is returned when a booking lifecycle operation
// is applied in the wrong state.
var ErrInvalidTransition = errors.New("invalid booking state transition")
