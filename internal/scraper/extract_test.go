package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cryptoJobsPage = `<html><body>
<div data-testid="job-card">
  <h2> Solidity Developer </h2>
  <span class="company-name">OpenZeppelin</span>
  <span class="salary">$145k-$185k</span>
</div>
<div class="job-card">
  <div class="job-title">Rust Developer</div>
  <h2>Ignored heading</h2>
  <div class="company">Solana Labs</div>
</div>
<div class="job-item">
  <h2>No Company Role</h2>
</div>
<div class="job-item">
  <span class="company">Nameless Co</span>
</div>
</body></html>`

const indeedPage = `<html><body>
<div data-testid="jobCard">
  <div data-testid="jobTitle"><h2><a><span>Protocol Engineer</span></a></h2></div>
  <span data-testid="companyName">Kraken</span>
  <span data-testid="salary-snippet">$150k</span>
</div>
<div data-testid="jobCard">
  <div data-testid="jobTitle"><h2><a><span>Risk Analyst</span></a></h2></div>
  <span data-testid="companyName">Gemini</span>
</div>
</body></html>`

func definition(name string) Definition {
	for _, def := range DefaultDefinitions() {
		if def.Name == name {
			return def
		}
	}
	panic("unknown definition " + name)
}

func TestExtractCryptoJobs(t *testing.T) {
	def := definition("crypto-jobs")

	jobs, err := Extract(strings.NewReader(cryptoJobsPage), def.Selectors, def.Limit, def.Label)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Solidity Developer", jobs[0].Title)
	assert.Equal(t, "OpenZeppelin", jobs[0].Company)
	assert.Equal(t, "$145k-$185k", jobs[0].Salary)
	assert.Equal(t, "crypto.jobs", jobs[0].Source)

	assert.Equal(t, "Rust Developer", jobs[1].Title, "first title match wins")
	assert.Equal(t, "Solana Labs", jobs[1].Company)
	assert.Equal(t, DefaultSalary, jobs[1].Salary)
}

func TestExtractIndeed(t *testing.T) {
	def := definition("indeed")

	jobs, err := Extract(strings.NewReader(indeedPage), def.Selectors, def.Limit, def.Label)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Protocol Engineer", jobs[0].Title)
	assert.Equal(t, "Kraken", jobs[0].Company)
	assert.Equal(t, "$150k", jobs[0].Salary)
	assert.Equal(t, "Indeed", jobs[0].Source)
	assert.Equal(t, DefaultSalary, jobs[1].Salary)
}

func TestExtractRespectsLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, `<div class="job-card"><h2>Role %d</h2><span class="company">Co</span></div>`, i)
	}
	b.WriteString("</body></html>")

	def := definition("crypto-jobs")
	jobs, err := Extract(strings.NewReader(b.String()), def.Selectors, 3, def.Label)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "Role 0", jobs[0].Title)
	assert.Equal(t, "Role 2", jobs[2].Title)
}

func TestExtractNoMatches(t *testing.T) {
	def := definition("indeed")

	jobs, err := Extract(strings.NewReader("<p>blocked</p>"), def.Selectors, def.Limit, def.Label)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}
