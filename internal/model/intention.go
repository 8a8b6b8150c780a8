package model

// Intention represents what an AI-driven character is doing this tick
type Intention int32

const (
	// IntentionIdle - character is standing idle, no active behavior
	IntentionIdle Intention = iota
	// IntentionMoveTo - leader is walking its scripted route
	IntentionMoveTo
	// IntentionWatch - follower keeps the leader's recording alive but does not move
	IntentionWatch
	// IntentionFollow - follower seeks the trail start or replays the trail
	IntentionFollow
)

// String returns human-readable intention name
func (i Intention) String() string {
	switch i {
	case IntentionIdle:
		return "IDLE"
	case IntentionMoveTo:
		return "MOVE_TO"
	case IntentionWatch:
		return "WATCH"
	case IntentionFollow:
		return "FOLLOW"
	default:
		return "UNKNOWN"
	}
}

// FollowState is the state of a trail follower.
type FollowState int32

const (
	// FollowSeekingStart - walking toward the leader's recorded start position
	FollowSeekingStart FollowState = iota
	// FollowReplaying - replaying recorded commands one per tick
	FollowReplaying
)

// String returns human-readable follow state name
func (s FollowState) String() string {
	switch s {
	case FollowSeekingStart:
		return "SEEKING_START"
	case FollowReplaying:
		return "REPLAYING"
	default:
		return "UNKNOWN"
	}
}
