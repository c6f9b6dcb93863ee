package services

// AdjustmentOutcome reports what happened to the secondary ledger writes of
// an operation whose primary write already succeeded. The primary result is
// never rolled back because of ledger failures; callers inspect the outcome
// to decide how to respond.
type AdjustmentOutcome struct {
	Attempted int      `json:"attempted"`
	Recorded  int      `json:"recorded"`
	Failures  []string `json:"failures,omitempty"`
}

// Degraded reports whether any secondary write failed.
func (o AdjustmentOutcome) Degraded() bool {
	return len(o.Failures) > 0
}
