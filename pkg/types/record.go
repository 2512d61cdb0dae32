package types

const (
	SourceFallback = "fallback"
	SourceUnknown  = "unknown"
)

// JobRecord is a single job listing as served to the grid.
type JobRecord struct {
	Title   string `json:"title" yaml:"title"`
	Company string `json:"company" yaml:"company"`
	Salary  string `json:"salary" yaml:"salary"`
	Source  string `json:"source" yaml:"source"`
}

// NewJobRecord builds a record, labelling it "unknown" when no source is given.
func NewJobRecord(title, company, salary, source string) JobRecord {
	if source == "" {
		source = SourceUnknown
	}
	return JobRecord{
		Title:   title,
		Company: company,
		Salary:  salary,
		Source:  source,
	}
}
