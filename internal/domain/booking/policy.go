package booking

import "time"

// CancelPolicy is the shop's cancellation window. A booking may be
// cancelled up to MinLead before its start; some shops run 2h, others
// a full day.
type CancelPolicy struct {
	MinLead time.Duration
}

// Check returns ErrTooLateToCancel when the booking starts sooner than
// MinLead from now. Starting exactly at now+MinLead is still allowed.
func (p CancelPolicy) Check(b *Booking, now time.Time) error {
	if b.StartAt().Before(now.Add(p.MinLead)) {
		return ErrTooLateToCancel
	}
	return nil
}
