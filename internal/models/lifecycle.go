package models

var walkTransitions = map[string][]string{
	StatusOpen:     {StatusAccepted, StatusCancelled},
	StatusAccepted: {StatusCompleted},
}

// CanTransition reports whether a walk request may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range walkTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsWalkStatus(status string) bool {
	switch status {
	case StatusOpen, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
