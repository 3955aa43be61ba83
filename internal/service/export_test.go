package service

import "time"

// SetClock pins the clock used to pick the default window.
func (s *CalendarService) SetClock(now func() time.Time) { s.now = now }

// SetClock pins the clock used to pick the default window.
func (s *CapacityService) SetClock(now func() time.Time) { s.now = now }

// SetClock pins the clock used to pick the default window.
func (s *CalendarMarkerService) SetClock(now func() time.Time) { s.now = now }
