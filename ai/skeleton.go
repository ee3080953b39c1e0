package ai

import "github.com/automoto/riposte/shared/gamemath"

// SkeletonMovement is the spear skeleton's chase. It halts once it is close to
// the player and standing a little below them, which is where its thrust
// reaches.
type SkeletonMovement struct {
	*Chaser
	StopDistance float64
	TargetHeight float64 // player collider height
}

var _ Mover = (*SkeletonMovement)(nil)

func NewSkeletonMovement(self Body, target Locator, stopDistance, targetHeight float64) *SkeletonMovement {
	return &SkeletonMovement{
		Chaser:       NewChaser(self, target),
		StopDistance: stopDistance,
		TargetHeight: targetHeight,
	}
}

func (s *SkeletonMovement) StopCriteriaFulfilled() bool {
	if s.Self == nil || s.Target == nil {
		return false
	}
	return s.inReach() && s.belowTarget()
}

func (s *SkeletonMovement) Move(speed float64) {
	if s.StopCriteriaFulfilled() {
		return
	}
	s.Chaser.Move(speed)
}

func (s *SkeletonMovement) inReach() bool {
	return gamemath.Distance(s.Self.Position(), s.Target.Position()) < s.StopDistance
}

// y grows downward: below means a larger y, by less than half the player.
func (s *SkeletonMovement) belowTarget() bool {
	dy := s.Self.Position().Y - s.Target.Position().Y
	return dy > 0 && dy < s.TargetHeight/2
}
