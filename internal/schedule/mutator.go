// Package schedule applies booking mutations to a session's schedule and
// keeps the derived spots-remaining counts consistent.
package schedule

import "github.com/yislamovic/scheduler-v2/internal/domain"

// Book assigns an interview to the appointment slot. The interviewer id is
// accepted as-is, even if the session knows no such interviewer. Fails with
// ErrAppointmentNotFound before touching any state if the id is unknown.
func Book(s *domain.Schedule, appointmentID int, interview domain.Interview) error {
	appt, ok := s.Appointments[appointmentID]
	if !ok {
		return domain.ErrAppointmentNotFound
	}

	appt.Interview = &interview
	s.Appointments[appointmentID] = appt
	RecomputeSpots(s)
	return nil
}

// Cancel clears the appointment's interview. Cancelling an already free slot
// succeeds and leaves it free.
func Cancel(s *domain.Schedule, appointmentID int) error {
	appt, ok := s.Appointments[appointmentID]
	if !ok {
		return domain.ErrAppointmentNotFound
	}

	appt.Interview = nil
	s.Appointments[appointmentID] = appt
	RecomputeSpots(s)
	return nil
}

// RecomputeSpots recounts free slots for every day. Walking all days keeps
// the invariant trivially correct without an appointment-to-day index;
// O(total appointments) is fine at this scale.
func RecomputeSpots(s *domain.Schedule) {
	for i := range s.Days {
		spots := 0
		for _, id := range s.Days[i].Appointments {
			if !s.Appointments[id].Booked() {
				spots++
			}
		}
		s.Days[i].Spots = spots
	}
}
