package session

import "golang.org/x/time/rate"

// LimitReason describes why a session registration was refused.
type LimitReason string

const (
	LimitReasonCapacity LimitReason = "capacity"
	LimitReasonRate     LimitReason = "rate"
)

// Limits bounds how many sessions a single instance will hold and how fast
// new ones may be registered. Every session carries a full copy of the seed
// dataset, so an unattended demo box needs a ceiling.
type Limits struct {
	maxSessions int
	creation    *rate.Limiter
}

// NewLimits creates a limiter. maxSessions 0 means unlimited;
// perSecond 0 disables the creation rate limit.
func NewLimits(maxSessions int, perSecond float64, burst int) *Limits {
	l := &Limits{maxSessions: maxSessions}
	if perSecond > 0 {
		l.creation = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	return l
}

// Allow reports whether a new session may be registered given the current
// live count. Rate is checked first so a burst does not consume capacity
// checks.
func (l *Limits) Allow(current int) (bool, LimitReason) {
	if l.creation != nil && !l.creation.Allow() {
		return false, LimitReasonRate
	}
	if l.maxSessions > 0 && current >= l.maxSessions {
		return false, LimitReasonCapacity
	}
	return true, ""
}

// MaxSessions returns the configured session ceiling (0 = unlimited).
func (l *Limits) MaxSessions() int {
	return l.maxSessions
}
