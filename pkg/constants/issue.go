package constants

// IssueStatus 事项状态, 按原样存储字符串
const (
	IssueStatusBacklog    = "BACKLOG"
	IssueStatusInAnalysis = "IN_ANALYSIS"
	IssueStatusInProgress = "IN_PROGRESS"
	IssueStatusBlocked    = "BLOCKED"
	IssueStatusCancelled  = "CANCELLED"
	IssueStatusCompleted  = "COMPLETED"
)

var issueStatuses = map[string]struct{}{
	IssueStatusBacklog:    {},
	IssueStatusInAnalysis: {},
	IssueStatusInProgress: {},
	IssueStatusBlocked:    {},
	IssueStatusCancelled:  {},
	IssueStatusCompleted:  {},
}

// IsValidIssueStatus 检查事项状态是否合法
func IsValidIssueStatus(status string) bool {
	_, ok := issueStatuses[status]
	return ok
}

// IssueType 事项类型
const (
	IssueTypeTask    = "TASK"
	IssueTypeBug     = "BUG"
	IssueTypeStory   = "STORY"
	IssueTypeFeature = "FEATURE"
	IssueTypeEpic    = "EPIC"
)

var issueTypes = map[string]struct{}{
	IssueTypeTask:    {},
	IssueTypeBug:     {},
	IssueTypeStory:   {},
	IssueTypeFeature: {},
	IssueTypeEpic:    {},
}

func IsValidIssueType(t string) bool {
	_, ok := issueTypes[t]
	return ok
}

// PriorityLevel 优先级
const (
	PriorityUrgent   = "URGENT"
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
	PriorityLowest   = "LOWEST"
)

var priorities = map[string]struct{}{
	PriorityUrgent:   {},
	PriorityCritical: {},
	PriorityHigh:     {},
	PriorityMedium:   {},
	PriorityLow:      {},
	PriorityLowest:   {},
}

func IsValidPriority(p string) bool {
	_, ok := priorities[p]
	return ok
}
