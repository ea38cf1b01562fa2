package domain

// Interview pairs a student with an interviewer for one appointment slot.
// The interviewer id is not validated against the session's interviewer map;
// an unknown id only affects display.
type Interview struct {
	Student     string `json:"student"`
	Interviewer int    `json:"interviewer"`
}

// Appointment is a bookable time slot. Interview is nil while the slot is
// free. Appointments are created once at session init and never destroyed;
// book/cancel only toggle the Interview field.
type Appointment struct {
	ID        int        `json:"id"`
	Time      string     `json:"time"`
	Interview *Interview `json:"interview"`
}

// Booked reports whether the slot currently holds an interview.
func (a Appointment) Booked() bool {
	return a.Interview != nil
}

// Day groups appointment slots and the interviewers available that day.
// Spots is derived: the count of member appointments without an interview.
// It must be recomputed after every mutation, never patched incrementally.
type Day struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Appointments []int  `json:"appointments"`
	Interviewers []int  `json:"interviewers"`
	Spots        int    `json:"spots"`
}

// Interviewer is read-only after session creation.
type Interviewer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Schedule is one session's private copy of the dataset.
type Schedule struct {
	Days         []Day               `json:"days"`
	Appointments map[int]Appointment `json:"appointments"`
	Interviewers map[int]Interviewer `json:"interviewers"`
}

// Clone returns a deep copy of the schedule. Sessions must never share
// nested structures with the seed or with each other, so every slice, map
// and interview is copied.
func (s *Schedule) Clone() *Schedule {
	out := &Schedule{
		Days:         make([]Day, len(s.Days)),
		Appointments: make(map[int]Appointment, len(s.Appointments)),
		Interviewers: make(map[int]Interviewer, len(s.Interviewers)),
	}

	for i, day := range s.Days {
		d := day
		d.Appointments = append([]int(nil), day.Appointments...)
		d.Interviewers = append([]int(nil), day.Interviewers...)
		out.Days[i] = d
	}

	for id, appt := range s.Appointments {
		a := appt
		if appt.Interview != nil {
			iv := *appt.Interview
			a.Interview = &iv
		}
		out.Appointments[id] = a
	}

	for id, iv := range s.Interviewers {
		out.Interviewers[id] = iv
	}

	return out
}
