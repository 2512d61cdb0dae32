package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/0xPuncker/job-grid/pkg/types"
	"github.com/PuerkitoBio/goquery"
)

// DefaultSalary is used when a card carries no salary text.
const DefaultSalary = "Competitive"

// Extract parses an HTML page and maps each job card to a record tagged with
// label. Cards without a title or company are skipped. A limit of zero or
// less means no cap.
func Extract(r io.Reader, sel Selectors, limit int, label string) ([]types.JobRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	jobs := make([]types.JobRecord, 0)
	doc.Find(sel.Card).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if limit > 0 && len(jobs) >= limit {
			return false
		}

		title := fieldText(card, sel.Title)
		company := fieldText(card, sel.Company)
		if title == "" || company == "" {
			return true
		}

		salary := fieldText(card, sel.Salary)
		if salary == "" {
			salary = DefaultSalary
		}

		jobs = append(jobs, types.NewJobRecord(title, company, salary, label))
		return true
	})

	return jobs, nil
}

func fieldText(card *goquery.Selection, f Field) string {
	if f.Selector == "" {
		return ""
	}
	found := card.Find(f.Selector)
	if f.First {
		found = found.First()
	}
	return strings.TrimSpace(found.Text())
}
