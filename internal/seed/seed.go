// Package seed holds the immutable template dataset every new session is
// cloned from: five weekdays, twenty-five appointment slots and five
// interviewers, some slots pre-booked.
package seed

import "github.com/yislamovic/scheduler-v2/internal/domain"

var base = domain.Schedule{
	Days: []domain.Day{
		{ID: 1, Name: "Monday", Appointments: []int{1, 2, 3, 4, 5}, Interviewers: []int{1, 2}, Spots: 1},
		{ID: 2, Name: "Tuesday", Appointments: []int{6, 7, 8, 9, 10}, Interviewers: []int{3, 4}, Spots: 2},
		{ID: 3, Name: "Wednesday", Appointments: []int{11, 12, 13, 14, 15}, Interviewers: []int{1, 3, 5}, Spots: 3},
		{ID: 4, Name: "Thursday", Appointments: []int{16, 17, 18, 19, 20}, Interviewers: []int{2, 5}, Spots: 2},
		{ID: 5, Name: "Friday", Appointments: []int{21, 22, 23, 24, 25}, Interviewers: []int{1, 4, 5}, Spots: 3},
	},
	Appointments: map[int]domain.Appointment{
		1:  {ID: 1, Time: "12pm", Interview: &domain.Interview{Student: "Archie Cohen", Interviewer: 2}},
		2:  {ID: 2, Time: "1pm", Interview: &domain.Interview{Student: "Leopold Silvers", Interviewer: 1}},
		3:  {ID: 3, Time: "2pm", Interview: &domain.Interview{Student: "John Doe", Interviewer: 1}},
		4:  {ID: 4, Time: "3pm"},
		5:  {ID: 5, Time: "4pm", Interview: &domain.Interview{Student: "Maria Garcia", Interviewer: 2}},
		6:  {ID: 6, Time: "12pm", Interview: &domain.Interview{Student: "Richard Wong", Interviewer: 4}},
		7:  {ID: 7, Time: "1pm", Interview: &domain.Interview{Student: "Jane Smith", Interviewer: 3}},
		8:  {ID: 8, Time: "2pm"},
		9:  {ID: 9, Time: "3pm", Interview: &domain.Interview{Student: "Alex Kumar", Interviewer: 4}},
		10: {ID: 10, Time: "4pm"},
		11: {ID: 11, Time: "12pm"},
		12: {ID: 12, Time: "1pm", Interview: &domain.Interview{Student: "Sarah Lee", Interviewer: 5}},
		13: {ID: 13, Time: "2pm"},
		14: {ID: 14, Time: "3pm"},
		15: {ID: 15, Time: "4pm", Interview: &domain.Interview{Student: "Tom Wilson", Interviewer: 3}},
		16: {ID: 16, Time: "12pm", Interview: &domain.Interview{Student: "Nina Patel", Interviewer: 5}},
		17: {ID: 17, Time: "1pm"},
		18: {ID: 18, Time: "2pm", Interview: &domain.Interview{Student: "Mike Johnson", Interviewer: 2}},
		19: {ID: 19, Time: "3pm"},
		20: {ID: 20, Time: "4pm"},
		21: {ID: 21, Time: "12pm"},
		22: {ID: 22, Time: "1pm", Interview: &domain.Interview{Student: "Emily Chen", Interviewer: 1}},
		23: {ID: 23, Time: "2pm"},
		24: {ID: 24, Time: "3pm", Interview: &domain.Interview{Student: "David Park", Interviewer: 4}},
		25: {ID: 25, Time: "4pm"},
	},
	Interviewers: map[int]domain.Interviewer{
		1: {ID: 1, Name: "Sylvia Palmer", Avatar: "https://i.imgur.com/LpaY82x.png"},
		2: {ID: 2, Name: "Tori Malcolm", Avatar: "https://i.imgur.com/Nmx0Qxo.png"},
		3: {ID: 3, Name: "Mildred Nazir", Avatar: "https://i.imgur.com/T2WwVfS.png"},
		4: {ID: 4, Name: "Cohana Roy", Avatar: "https://i.imgur.com/FK8V841.jpg"},
		5: {ID: 5, Name: "Sven Jones", Avatar: "https://i.imgur.com/twYrpay.jpg"},
	},
}

// Schedule returns a fresh deep copy of the seed dataset. The template
// itself is never handed out, so callers cannot mutate it.
func Schedule() *domain.Schedule {
	return base.Clone()
}
