package model

import "testing"

func TestIntentionString(t *testing.T) {
	tests := []struct {
		intention Intention
		want      string
	}{
		{IntentionIdle, "IDLE"},
		{IntentionMoveTo, "MOVE_TO"},
		{IntentionWatch, "WATCH"},
		{IntentionFollow, "FOLLOW"},
		{Intention(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.intention.String(); got != tt.want {
				t.Errorf("Intention.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFollowStateString(t *testing.T) {
	tests := []struct {
		state FollowState
		want  string
	}{
		{FollowSeekingStart, "SEEKING_START"},
		{FollowReplaying, "REPLAYING"},
		{FollowState(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("FollowState.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
