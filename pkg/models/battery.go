package models

// BatteryInventory mirrors the `{inventory:{AA,9V}}` payload of the remote
// battery ledger.
type BatteryInventory struct {
	AA    int `json:"AA"`
	NineV int `json:"9V"`
}

// Stock returns the current count for a battery type, false for a type the
// ledger does not track.
func (b BatteryInventory) Stock(batteryType string) (int, bool) {
	switch batteryType {
	case BatteryTypeAA:
		return b.AA, true
	case BatteryType9V:
		return b.NineV, true
	default:
		return 0, false
	}
}

// BatteryEvent is one checkout entry in the battery audit trail.
type BatteryEvent struct {
	Type       string `json:"type"`
	Quantity   int    `json:"quantity"`
	Person     string `json:"person"`
	OccurredAt string `json:"occurredAt"`
}

const (
	BatteryTypeAA = "AA"
	BatteryType9V = "9V"
)
