package scraper

// Field locates one value inside a job card. When First is set only the first
// match contributes its text, otherwise the text of every match is joined.
type Field struct {
	Selector string `yaml:"selector" json:"selector"`
	First    bool   `yaml:"first" json:"first"`
}

type Selectors struct {
	Card    string `yaml:"card" json:"card"`
	Title   Field  `yaml:"title" json:"title"`
	Company Field  `yaml:"company" json:"company"`
	Salary  Field  `yaml:"salary" json:"salary"`
}

// Definition describes a job board to scrape.
type Definition struct {
	Name      string    `yaml:"name" json:"name"`
	URL       string    `yaml:"url" json:"url"`
	Label     string    `yaml:"label" json:"label"`
	Limit     int       `yaml:"limit" json:"limit"`
	Selectors Selectors `yaml:"selectors" json:"selectors"`
}

func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Name:  "crypto-jobs",
			URL:   "https://crypto.jobs/jobs",
			Label: "crypto.jobs",
			Limit: 100,
			Selectors: Selectors{
				Card:    `[data-testid="job-card"], .job-card, .job-item`,
				Title:   Field{Selector: `[data-testid="job-title"], .job-title, h2`, First: true},
				Company: Field{Selector: `[data-testid="company-name"], .company-name, .company`, First: true},
				Salary:  Field{Selector: `[data-testid="salary"], .salary`},
			},
		},
		{
			Name:  "indeed",
			URL:   "https://www.indeed.com/jobs?q=cryptocurrency&sort=date",
			Label: "Indeed",
			Limit: 50,
			Selectors: Selectors{
				Card:    `[data-testid="jobCard"]`,
				Title:   Field{Selector: `[data-testid="jobTitle"] h2 a span`},
				Company: Field{Selector: `[data-testid="companyName"]`},
				Salary:  Field{Selector: `[data-testid="salary-snippet"]`},
			},
		},
	}
}
