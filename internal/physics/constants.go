package physics

const (
	// HandSeparationDeadband is the horizontal hand-to-hand distance (meters)
	// below which no bearing is measured.
	HandSeparationDeadband = 0.05
	// TurnInputDeadzone suppresses residual turn input after thresholding.
	TurnInputDeadzone = 0.01
	// NormalizeEpsilon is the shortest vector Normalize will scale.
	NormalizeEpsilon = 1e-6

	WorldUpY = 1.0
)
