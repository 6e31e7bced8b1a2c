// Package report writes the run's results as styled XLSX workbooks: one
// with the scored job matches, one categorizing companies that produced
// nothing.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"internhunt/internal/domain"
	"internhunt/internal/match"
)

var jobHeaders = []string{
	"Company", "Job Title", "Location", "Posted Date", "Job URL",
	"Job ID", "Recommended Resume", "Match Score", "All Scores",
}

var jobColumnWidths = []float64{20, 40, 25, 12, 50, 15, 20, 12, 50}

// WriteJobs renders the scored postings into a timestamped workbook under
// outputDir and returns its path. Rows sort by match score, then posted
// date, newest first. results must parallel jobs; pass nil when scoring
// was skipped.
func WriteJobs(jobs []domain.Posting, results []match.Result, prefix, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102_150405")))

	order := make([]int, len(jobs))
	for i := range order {
		order[i] = i
	}
	score := func(i int) float64 {
		if i < len(results) {
			return results[i].Score
		}
		return 0
	}
	posted := func(i int) time.Time {
		if jobs[i].PostedAt != nil {
			return *jobs[i].PostedAt
		}
		return time.Time{}
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if score(i) != score(j) {
			return score(i) > score(j)
		}
		return posted(i).After(posted(j))
	})

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Job Matches"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return "", err
	}
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	highStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"C6EFCE"}},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	mediumStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFEB9C"}},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	linkStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "0563C1", Underline: "single"},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})

	for col, h := range jobHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		name, _ := excelize.ColumnNumberToName(col + 1)
		f.SetColWidth(sheet, name, name, jobColumnWidths[col])
	}

	for rowIdx, i := range order {
		row := rowIdx + 2
		j := jobs[i]

		postedDate := "Unknown"
		if j.PostedAt != nil {
			postedDate = j.PostedAt.Format("2006-01-02")
		}
		recommended, matchScore, allScores := "N/A", "N/A", "N/A"
		if i < len(results) {
			r := results[i]
			recommended = r.Recommended
			matchScore = fmt.Sprintf("%.1f%%", r.Score*100)
			allScores = r.Display
		}

		values := []any{
			j.Company, j.Title, j.Location, postedDate, j.URL,
			j.JobID, recommended, matchScore, allScores,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
			f.SetCellStyle(sheet, cell, cell, cellStyle)
		}

		scoreCell, _ := excelize.CoordinatesToCellName(8, row)
		if i < len(results) {
			switch s := results[i].Score; {
			case s >= 0.5:
				f.SetCellStyle(sheet, scoreCell, scoreCell, highStyle)
			case s >= 0.35:
				f.SetCellStyle(sheet, scoreCell, scoreCell, mediumStyle)
			}
		}

		if j.URL != "" {
			urlCell, _ := excelize.CoordinatesToCellName(5, row)
			f.SetCellHyperLink(sheet, urlCell, j.URL, "External")
			f.SetCellStyle(sheet, urlCell, urlCell, linkStyle)
		}
	}

	f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	if err := writeSummarySheet(f, jobs, results, order); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

func writeSummarySheet(f *excelize.File, jobs []domain.Posting, results []match.Result, order []int) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	rows := [][]any{
		{"Job Search Summary", ""},
		{"", ""},
		{"Generated At", time.Now().Format("2006-01-02 15:04:05")},
		{"Total Jobs Found", len(jobs)},
		{"", ""},
		{"Jobs by Company", ""},
	}
	boldRows := map[int]bool{6: true}

	companyCounts := map[string]int{}
	var companies []string
	for _, i := range order {
		if companyCounts[jobs[i].Company] == 0 {
			companies = append(companies, jobs[i].Company)
		}
		companyCounts[jobs[i].Company]++
	}
	for _, c := range companies {
		rows = append(rows, []any{c, companyCounts[c]})
	}

	if len(results) > 0 {
		rows = append(rows, []any{"", ""}, []any{"Jobs by Recommended Resume", ""})
		boldRows[len(rows)] = true

		resumeCounts := map[string]int{}
		var resumes []string
		for _, i := range order {
			if i >= len(results) {
				continue
			}
			r := results[i].Recommended
			if resumeCounts[r] == 0 {
				resumes = append(resumes, r)
			}
			resumeCounts[r]++
		}
		for _, r := range resumes {
			rows = append(rows, []any{r, resumeCounts[r]})
		}
	}

	for rowIdx, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+1)
			f.SetCellValue(sheet, cell, v)
			if rowIdx == 0 {
				f.SetCellStyle(sheet, cell, cell, titleStyle)
			} else if boldRows[rowIdx+1] {
				f.SetCellStyle(sheet, cell, cell, boldStyle)
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 15)
	return nil
}

var outcomeSheets = []struct {
	outcome domain.Outcome
	sheet   string
	status  string
	fill    string
}{
	{domain.OutcomeNoAPIFound, "No API Found", "No career API discoverable - requires manual search", "C00000"},
	{domain.OutcomeNoMatchingJobs, "No Matching Jobs", "API works but no matching intern/co-op positions found", "ED7D31"},
	{domain.OutcomeAPIError, "API Errors", "API returned error or connection failed", "FFC000"},
}

// WriteCompanyOutcomes writes one sheet per failure category listing the
// affected companies. Successful companies are omitted; with nothing to
// report the workbook holds a single all-clear note.
func WriteCompanyOutcomes(categories map[domain.Outcome][]string, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	wrote := false
	for _, oc := range outcomeSheets {
		companies := categories[oc.outcome]
		if len(companies) == 0 {
			continue
		}

		if !wrote {
			f.SetSheetName("Sheet1", oc.sheet)
		} else if _, err := f.NewSheet(oc.sheet); err != nil {
			return err
		}
		wrote = true

		headerStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{oc.fill}},
		})
		if err != nil {
			return err
		}
		f.SetCellValue(oc.sheet, "A1", "Company Name")
		f.SetCellValue(oc.sheet, "B1", "Status")
		f.SetCellStyle(oc.sheet, "A1", "B1", headerStyle)

		sorted := append([]string(nil), companies...)
		sort.Strings(sorted)
		for i, company := range sorted {
			f.SetCellValue(oc.sheet, fmt.Sprintf("A%d", i+2), company)
			f.SetCellValue(oc.sheet, fmt.Sprintf("B%d", i+2), oc.status)
		}

		f.SetColWidth(oc.sheet, "A", "A", 50)
		f.SetColWidth(oc.sheet, "B", "B", 60)
	}

	if !wrote {
		f.SetSheetName("Sheet1", "Summary")
		f.SetCellValue("Summary", "A1", "All companies returned results successfully!")
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}
