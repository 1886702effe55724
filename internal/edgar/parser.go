package edgar

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// FilingRecord is one row of an EDGAR filing index
type FilingRecord struct {
	FormType        string    `json:"form_type"`
	AccessionNumber string    `json:"accession_number"`
	Description     string    `json:"description"`
	FiledDate       time.Time `json:"filed_date"`
}

// Parser extracts filing rows from EDGAR company browse pages
type Parser struct{}

// NewParser creates a new parser instance
func NewParser() *Parser {
	return &Parser{}
}

var accessionPattern = regexp.MustCompile(`Acc-no:\s*(\S+)`)

// ParseFilingIndex extracts filing metadata from the browse page's results
// table. Rows with no recognizable form type or date are skipped.
func (p *Parser) ParseFilingIndex(doc *goquery.Document) []FilingRecord {
	var records []FilingRecord

	doc.Find("table.tableFile2 tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return // header row
		}

		formType := strings.TrimSpace(cells.Eq(0).Text())
		if formType == "" {
			return
		}

		description := strings.Join(strings.Fields(cells.Eq(2).Text()), " ")

		filedDate, err := time.Parse("2006-01-02", strings.TrimSpace(cells.Eq(3).Text()))
		if err != nil {
			return
		}

		record := FilingRecord{
			FormType:    formType,
			Description: description,
			FiledDate:   filedDate,
		}

		if match := accessionPattern.FindStringSubmatch(description); match != nil {
			record.AccessionNumber = match[1]
		}

		records = append(records, record)
	})

	return records
}
