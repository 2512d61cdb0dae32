package types

// ScheduledJob represents a scheduled job configuration
type ScheduledJob struct {
	Name        string `json:"name"`
	Schedule    string `json:"schedule"`
	TaskName    string `json:"task"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

// SchedulerConfig represents the job scheduler configuration
type SchedulerConfig struct {
	MaxConcurrent int            `json:"max_concurrent"`
	Predefined    []ScheduledJob `json:"predefined"`
}
