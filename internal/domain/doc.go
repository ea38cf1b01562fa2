// Package domain defines the core scheduling types.
//
// Days, appointments, interviews and interviewers mirror the JSON wire
// format one-to-one. Schedule bundles a session's private copy of all three;
// Clone is the only sanctioned way to duplicate one.
package domain
