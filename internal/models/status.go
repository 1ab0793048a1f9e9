package models

// JobTransitions maps a job status to the statuses it may move to.
// Re-writing the current status is always accepted and is not listed.
var JobTransitions = map[JobStatus][]JobStatus{
	JobStatusDraft:   {JobStatusOngoing, JobStatusClosed},
	JobStatusOngoing: {JobStatusClosed},
	JobStatusClosed:  {JobStatusOngoing},
}

// ApplicationTransitions maps an application status to its successors.
// HIRED and REJECTED are terminal.
var ApplicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:     {ApplicationStatusScreening, ApplicationStatusInterview, ApplicationStatusShortlisted, ApplicationStatusRejected},
	ApplicationStatusScreening:   {ApplicationStatusInterview, ApplicationStatusShortlisted, ApplicationStatusRejected},
	ApplicationStatusInterview:   {ApplicationStatusShortlisted, ApplicationStatusOffer, ApplicationStatusRejected},
	ApplicationStatusShortlisted: {ApplicationStatusInterview, ApplicationStatusOffer, ApplicationStatusRejected},
	ApplicationStatusOffer:       {ApplicationStatusHired, ApplicationStatusRejected},
	ApplicationStatusHired:       {},
	ApplicationStatusRejected:    {},
}

func (s JobStatus) Valid() bool {
	_, ok := JobTransitions[s]
	return ok
}

// CanTransitionTo reports whether a job in status s may move to next.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range JobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) Valid() bool {
	_, ok := ApplicationTransitions[s]
	return ok
}

// CanTransitionTo reports whether an application in status s may move to next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range ApplicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
