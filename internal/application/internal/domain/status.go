package domain

type Status string

const (
	StatusNew                Status = "New"
	StatusReviewing          Status = "Reviewing"
	StatusShortlisted        Status = "Shortlisted"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusRejected           Status = "Rejected"
	StatusHired              Status = "Hired"
)

var Statuses = []Status{
	StatusNew,
	StatusReviewing,
	StatusShortlisted,
	StatusInterviewScheduled,
	StatusRejected,
	StatusHired,
}

func (s Status) Valid() bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// StatusTransitions 更严格的状态流转，Rejected 和 Hired 是终态。
// 默认不启用，见配置 application.strictStatus
var StatusTransitions = map[Status][]Status{
	StatusNew:                {StatusReviewing, StatusShortlisted, StatusRejected},
	StatusReviewing:          {StatusShortlisted, StatusInterviewScheduled, StatusRejected},
	StatusShortlisted:        {StatusInterviewScheduled, StatusRejected},
	StatusInterviewScheduled: {StatusHired, StatusRejected},
	StatusRejected:           {},
	StatusHired:              {},
}

// CanTransitionTo 状态不变总是允许的
func (s Status) CanTransitionTo(to Status) bool {
	if s == to {
		return true
	}
	for _, next := range StatusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
