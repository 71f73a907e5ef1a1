package domain

// VoteDirection is the sign of a single vote.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) String() string { return string(d) }

func (d VoteDirection) IsValid() bool {
	switch d {
	case VoteUp, VoteDown:
		return true
	}
	return false
}

// Delta is the change a vote applies to a running total.
func (d VoteDirection) Delta() int {
	switch d {
	case VoteUp:
		return 1
	case VoteDown:
		return -1
	}
	return 0
}

// VoteTarget names the kind of entity a vote is cast on.
type VoteTarget string

const (
	VoteTargetQuestion VoteTarget = "question"
	VoteTargetAnswer   VoteTarget = "answer"
)

func (t VoteTarget) String() string { return string(t) }

func (t VoteTarget) IsValid() bool {
	switch t {
	case VoteTargetQuestion, VoteTargetAnswer:
		return true
	}
	return false
}
