package crisis

import (
	"time"

	"github.com/ducminhle1904/econ-signal-pipeline/pkg/types"
)

// DefaultWindow is how far a point may sit from an event and still be tagged.
const DefaultWindow = 30 * 24 * time.Hour

// Annotator tags signal points that fall near known crisis events.
type Annotator struct {
	window time.Duration
	events []types.CrisisEvent
}

// NewAnnotator creates an annotator with the default 30-day window
func NewAnnotator(events []types.CrisisEvent) *Annotator {
	return NewAnnotatorWithWindow(events, DefaultWindow)
}

// NewAnnotatorWithWindow creates an annotator with a caller-chosen window
func NewAnnotatorWithWindow(events []types.CrisisEvent, window time.Duration) *Annotator {
	owned := make([]types.CrisisEvent, len(events))
	copy(owned, events)
	return &Annotator{
		window: window,
		events: owned,
	}
}

// Annotate returns a new sequence where each point carries the nearest crisis
// event within the window, if any. When two events sit at the same distance
// the earlier one wins. The input slice is never modified.
func (a *Annotator) Annotate(points []types.SignalPoint) []types.SignalPoint {
	result := make([]types.SignalPoint, len(points))
	copy(result, points)

	for i := range result {
		result[i].Crisis = a.nearest(result[i].Date)
	}

	return result
}

// nearest finds the closest event within the window of the given date.
func (a *Annotator) nearest(date time.Time) *types.CrisisEvent {
	var best *types.CrisisEvent
	var bestDistance time.Duration

	for idx := range a.events {
		event := &a.events[idx]
		distance := date.Sub(event.Date)
		if distance < 0 {
			distance = -distance
		}
		if distance > a.window {
			continue
		}
		if best == nil || distance < bestDistance ||
			(distance == bestDistance && event.Date.Before(best.Date)) {
			best = event
			bestDistance = distance
		}
	}

	return best
}
