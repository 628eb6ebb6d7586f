package enum

import "encoding/json"

// SubmissionState is the position of an order in the submission gate
type SubmissionState int

const (
	SubmissionStateIdle          SubmissionState = 0
	SubmissionStateItemsSelected SubmissionState = 1
	SubmissionStateComputed      SubmissionState = 2
	SubmissionStateSubmittable   SubmissionState = 3
	SubmissionStateBlocked       SubmissionState = 4
)

func (s SubmissionState) String() string {
	names := [...]string{"Idle", "ItemsSelected", "Computed", "Submittable", "Blocked"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Idle"
	}
	return names[s]
}

// Terminal reports whether the gate has reached a decision
func (s SubmissionState) Terminal() bool {
	return s == SubmissionStateSubmittable || s == SubmissionStateBlocked
}

func (s SubmissionState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
