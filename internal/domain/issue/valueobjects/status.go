package valueobjects

import "fmt"

type IssueStatus string

const (
	StatusOpen       IssueStatus = "open"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
	StatusClosed     IssueStatus = "closed"
	StatusCCR        IssueStatus = "ccr"
)

var validIssueStatuses = map[IssueStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusCCR:        true,
}

// Transitions are driven by explicit status updates. CCR is reachable from
// every state except resolved; an explicit update may move a resolved issue
// anywhere else, but nothing un-resolves an issue automatically.
var issueStatusTransitions = map[IssueStatus][]IssueStatus{
	StatusOpen: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
		StatusCCR,
	},
	StatusInProgress: {
		StatusOpen,
		StatusResolved,
		StatusClosed,
		StatusCCR,
	},
	StatusResolved: {
		StatusOpen,
		StatusInProgress,
		StatusClosed,
	},
	StatusClosed: {
		StatusOpen,
		StatusInProgress,
		StatusResolved,
		StatusCCR,
	},
	StatusCCR: {
		StatusOpen,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
}

func (s IssueStatus) String() string {
	return string(s)
}

func (s IssueStatus) IsValid() bool {
	return validIssueStatuses[s]
}

func (s IssueStatus) CanTransitionTo(newStatus IssueStatus) bool {
	allowed, ok := issueStatusTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

func (s IssueStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s IssueStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func (s IssueStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s IssueStatus) IsClosed() bool {
	return s == StatusClosed
}

func (s IssueStatus) IsCCR() bool {
	return s == StatusCCR
}

func NewIssueStatus(s string) (IssueStatus, error) {
	status := IssueStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}
