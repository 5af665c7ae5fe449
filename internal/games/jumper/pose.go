package jumper

// Pose is the bunny's animation state.
type Pose int

const (
	PoseIdle       Pose = iota // standing texture, before the first jump
	PoseAscending              // jump texture, set on every bounce
	PoseDescending             // standing texture once falling again
)

// String returns a human-readable name for the pose.
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "Idle"
	case PoseAscending:
		return "Ascending"
	case PoseDescending:
		return "Descending"
	default:
		return "Unknown"
	}
}

// TextureKey returns the texture shown in this pose.
func (p Pose) TextureKey() string {
	if p == PoseAscending {
		return TextureJump
	}
	return TextureStand
}
