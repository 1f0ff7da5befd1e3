package event

const (
	EventSetupFailed = "locomotion.setup_failed"
	EventGait        = "locomotion.gait"
	EventTurn        = "locomotion.turn"
)

type SetupFailedEvent struct {
	SessionID string
	Missing   []string
	Reason    string
}

// GaitEvent is published when the speed gate starts or stops running.
type GaitEvent struct {
	SessionID string
	Frame     int
	Running   bool
}

// TurnEvent is published when the turn direction changes. Direction is -1
// (left), 0 (none) or +1 (right).
type TurnEvent struct {
	SessionID string
	Frame     int
	Direction int
}

func DirectionLabel(direction int) string {
	switch {
	case direction < 0:
		return "left"
	case direction > 0:
		return "right"
	default:
		return "none"
	}
}
