package schedule

// ResolveAvailability computes the availability windows for one
// stylist on one date. An exception, when present, wins outright: its
// interval list is returned and the weekly templates are ignored.
// Without an exception the active templates' intervals are returned
// in ascending start order.
func ResolveAvailability(templates []*WeeklyTemplate, exception *DateException) []Interval {
	if exception != nil {
		return exception.Intervals()
	}
	out := make([]Interval, 0, len(templates))
	for _, t := range templates {
		if !t.IsActive() {
			continue
		}
		out = append(out, t.Interval())
	}
	sortIntervals(out)
	return out
}
