package view

import (
	"context"
	"time"
)

// CountdownTuple is the days/hours/minutes/seconds remaining until a target
// instant. Once the target passes the tuple clamps to all zeros; it never
// goes negative.
type CountdownTuple struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Zero reports whether the countdown has run out.
func (t CountdownTuple) Zero() bool {
	return t == CountdownTuple{}
}

// Remaining computes the countdown tuple from now to target.
func Remaining(target, now time.Time) CountdownTuple {
	diff := target.Sub(now)
	if diff <= 0 {
		return CountdownTuple{}
	}
	secs := int(diff / time.Second)
	return CountdownTuple{
		Days:    secs / 86400,
		Hours:   (secs / 3600) % 24,
		Minutes: (secs / 60) % 60,
		Seconds: secs % 60,
	}
}

// Countdown recomputes the tuple for target once per second and delivers it
// on the returned channel until ctx is cancelled. The first tuple is sent
// immediately; the ticker is released on every exit path.
func Countdown(ctx context.Context, target time.Time) <-chan CountdownTuple {
	out := make(chan CountdownTuple, 1)
	out <- Remaining(target, time.Now())

	go func() {
		defer close(out)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				select {
				case out <- Remaining(target, now):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
