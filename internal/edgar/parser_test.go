package edgar

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const browsePageHTML = `
<html><body>
<table class="tableFile2">
  <tr>
    <th>Filings</th><th>Format</th><th>Description</th><th>Filing Date</th><th>File/Film Number</th>
  </tr>
  <tr>
    <td>S-1</td>
    <td><a href="/Archives/edgar/data/1234567/000121390023000001-index.htm">Documents</a></td>
    <td>Registration statement
        Acc-no: 0001213900-23-000001 (33 Act) Size: 2 MB</td>
    <td>2023-02-14</td>
    <td>333-269000</td>
  </tr>
  <tr>
    <td>8-K</td>
    <td><a href="#">Documents</a></td>
    <td>Current report Acc-no: 0001213900-23-000777 (34 Act) Size: 120 KB</td>
    <td>2023-06-30</td>
    <td>001-41000</td>
  </tr>
  <tr>
    <td>10-Q</td>
    <td><a href="#">Documents</a></td>
    <td>Quarterly report</td>
    <td>not-a-date</td>
    <td></td>
  </tr>
</table>
</body></html>`

func TestParseFilingIndex(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(browsePageHTML))
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}

	records := NewParser().ParseFilingIndex(doc)

	// The malformed-date row is skipped
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.FormType != "S-1" {
		t.Errorf("form type = %q, want S-1", first.FormType)
	}
	if first.AccessionNumber != "0001213900-23-000001" {
		t.Errorf("accession = %q, want 0001213900-23-000001", first.AccessionNumber)
	}
	if got := first.FiledDate.Format("2006-01-02"); got != "2023-02-14" {
		t.Errorf("filed date = %s, want 2023-02-14", got)
	}
	if strings.Contains(first.Description, "\n") {
		t.Errorf("description should be whitespace-collapsed, got %q", first.Description)
	}

	second := records[1]
	if second.FormType != "8-K" || second.AccessionNumber != "0001213900-23-000777" {
		t.Errorf("unexpected second record: %+v", second)
	}
}

func TestParseFilingIndexEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><p>No matching filings.</p></body></html>`))
	if err != nil {
		t.Fatalf("failed to build document: %v", err)
	}

	if records := NewParser().ParseFilingIndex(doc); len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
