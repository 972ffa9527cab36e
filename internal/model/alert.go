package model

import "time"

// Alert is a price/volume alert rule shown in the alert panel.
// Distance is a display string ("还需要 7.5%") maintained by the alert
// evaluator; Color is the UI accent derived from Status.
type Alert struct {
	ID        int64     `json:"id"`
	Pair      string    `json:"pair"`
	Condition string    `json:"condition"`
	Target    string    `json:"target"`
	Distance  string    `json:"distance"`
	Notify    string    `json:"notify"`
	Status    string    `json:"status"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"-"`
}
