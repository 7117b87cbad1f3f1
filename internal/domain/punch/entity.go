package punch

import "time"

type Kind string

const (
	KindIn  Kind = "IN"
	KindOut Kind = "OUT"
)

// KindForCount returns the kind of the next punch of a day that already
// holds n punches. Days start with a check-in and alternate afterwards.
func KindForCount(n int) Kind {
	if n%2 == 0 {
		return KindIn
	}
	return KindOut
}

func (k Kind) IsValid() bool {
	return k == KindIn || k == KindOut
}

// Punch is a single check-in or check-out. Punches are never updated.
type Punch struct {
	ID        string
	Kind      Kind
	Timestamp time.Time
	UserID    string
}

// Timestamps extracts the punch times, keeping their order.
func Timestamps(punches []Punch) []time.Time {
	times := make([]time.Time, len(punches))
	for i, p := range punches {
		times[i] = p.Timestamp
	}
	return times
}
