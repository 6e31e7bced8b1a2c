package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"internhunt/internal/domain"
)

// unsupportedATSTypes lists provider types we cannot scrape: fully custom
// backends, OData-only systems, and vendors without a public JSON search.
var unsupportedATSTypes = map[string]bool{
	"custom":          true,
	"custom/internal": true,
	"proprietary":     true,
	"taleo/custom":    true,
	"custom/brassring": true,
	"icims":           true,
	"oracle cloud":    true,
	"oracle/custom":   true,
	"adp":             true,
	"jobvite":         true,
	"avature":         true,
	"successfactors":  true,
}

// LoadCompanyNames reads employer names from the first column of the first
// sheet. The header cell counts as a name: these files are usually bare
// lists with no header row.
func LoadCompanyNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var names []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// LoadAppliedCompanies collects the unique company names recorded across
// every sheet of an applied-positions workbook. The company column is found
// by header; sheets without one are skipped.
func LoadAppliedCompanies(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	seen := map[string]bool{}
	var names []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) < 2 {
			continue
		}
		col := -1
		for i, h := range rows[0] {
			if strings.Contains(strings.ToLower(h), "company") || strings.Contains(h, "公司") {
				col = i
				break
			}
		}
		if col < 0 {
			continue
		}
		for _, row := range rows[1:] {
			if col >= len(row) {
				continue
			}
			name := strings.TrimSpace(row[col])
			if name == "" || seen[strings.ToLower(name)] {
				continue
			}
			seen[strings.ToLower(name)] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// LoadVerifiedAPIs reads a workbook of hand-verified (company, ATS type,
// API URL) rows and converts the scrapeable ones into provider configs.
// Rows with unsupported ATS types or placeholder URLs are skipped and their
// names returned so the caller can report them.
func LoadVerifiedAPIs(path string) (map[string]domain.ProviderConfig, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, nil, nil
	}

	configs := map[string]domain.ProviderConfig{}
	var skipped []string

	for _, row := range rows[1:] {
		name := cell(row, 0)
		atsType := cell(row, 1)
		apiURL := cell(row, 2)
		if name == "" || apiURL == "" {
			continue
		}

		if unsupportedATSTypes[strings.ToLower(atsType)] || !strings.HasPrefix(apiURL, "http") {
			skipped = append(skipped, name)
			continue
		}

		family := inferFamily(atsType, apiURL)
		if family == "" {
			skipped = append(skipped, name)
			continue
		}

		key := strings.NewReplacer(" ", "", ".", "", ",", "").Replace(name)
		configs[key] = domain.ProviderConfig{
			Name:   name,
			Type:   family,
			APIURL: apiURL,
		}
	}
	return configs, skipped, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func inferFamily(atsType, apiURL string) string {
	t := strings.ToLower(atsType)
	u := strings.ToLower(apiURL)
	switch {
	case strings.Contains(t, "workday") || strings.Contains(u, "myworkdayjobs.com"):
		return "workday"
	case strings.Contains(t, "greenhouse") || strings.Contains(u, "greenhouse.io"):
		return "greenhouse"
	case strings.Contains(t, "lever") || strings.Contains(u, "lever.co"):
		return "lever"
	case strings.Contains(t, "smartrecruiters") || strings.Contains(u, "smartrecruiters.com"):
		return "smartrecruiters"
	case strings.Contains(t, "eightfold") || strings.Contains(u, "eightfold.ai"):
		return "eightfold"
	}
	return ""
}
