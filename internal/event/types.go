package event

import "go-slideback/pkg/slideback"

const (
	PullStarted   EventType = "PullStarted"   // press landed on an edge
	BackTriggered EventType = "BackTriggered" // released at full progress
	PullReleased  EventType = "PullReleased"  // released short of full progress
	Settled       EventType = "Settled"       // panel fully retracted
)

// Pull is the Data carried by every pull event.
type Pull struct {
	Side     slideback.Side
	Distance float32
}
