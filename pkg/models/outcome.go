package models

// OutcomeKind classifies what happened to a remote delivery attempt.
type OutcomeKind string

const (
	OutcomeAccepted    OutcomeKind = "accepted"
	OutcomeDuplicate   OutcomeKind = "duplicate"
	OutcomeRejected    OutcomeKind = "rejected"
	OutcomeUnreachable OutcomeKind = "unreachable"
)

// UnreachableCause tells apart the reasons a delivery never got an answer.
type UnreachableCause string

const (
	CauseNotConfigured UnreachableCause = "not-configured"
	CauseNetwork       UnreachableCause = "network"
	CauseBadResponse   UnreachableCause = "bad-response"
)

// RemoteOutcome is the classified result of one delivery attempt.
// Reason is set for OutcomeRejected (and carries the raw server text for
// OutcomeDuplicate); Cause is set for OutcomeUnreachable.
type RemoteOutcome struct {
	Kind   OutcomeKind      `json:"kind"`
	Reason string           `json:"reason,omitempty"`
	Cause  UnreachableCause `json:"cause,omitempty"`
}

func Accepted() RemoteOutcome {
	return RemoteOutcome{Kind: OutcomeAccepted}
}

func Duplicate(reason string) RemoteOutcome {
	return RemoteOutcome{Kind: OutcomeDuplicate, Reason: reason}
}

func Rejected(reason string) RemoteOutcome {
	return RemoteOutcome{Kind: OutcomeRejected, Reason: reason}
}

func Unreachable(cause UnreachableCause) RemoteOutcome {
	return RemoteOutcome{Kind: OutcomeUnreachable, Cause: cause}
}

// StoresLocally reports whether the outcome should be recorded in the
// local cache. Only an explicit rejection is kept out of it.
func (o RemoteOutcome) StoresLocally() bool {
	return o.Kind != OutcomeRejected
}
