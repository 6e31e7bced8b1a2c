package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, sheets map[string][][]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for sheet, rows := range sheets {
		if first {
			f.SetSheetName("Sheet1", sheet)
			first = false
		} else {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}
		for i, row := range rows {
			for j, v := range row {
				cell, err := excelize.CoordinatesToCellName(j+1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet, cell, v))
			}
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadCompanyNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Sheet1": {
			{"Stripe"},
			{"Figma"},
			{""},
			{"  Databricks  "},
		},
	})

	names, err := LoadCompanyNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stripe", "Figma", "Databricks"}, names)
}

func TestLoadCompanyNamesMissingFile(t *testing.T) {
	_, err := LoadCompanyNames(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestLoadAppliedCompanies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applied.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"2026": {
			{"Date", "Company", "Role"},
			{"2026-08-01", "Stripe", "SWE Intern"},
			{"2026-08-02", "Figma", "Design Intern"},
			{"2026-08-03", "stripe", "Another"},
		},
		"Notes": {
			{"Just text, no company column"},
		},
	})

	names, err := LoadAppliedCompanies(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Stripe", "Figma"}, names)
}

func TestLoadVerifiedAPIs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apis.xlsx")
	writeWorkbook(t, path, map[string][][]string{
		"Sheet1": {
			{"Company Name", "ATS Type", "API URL"},
			{"GoodCo", "Workday", "https://goodco.wd1.myworkdayjobs.com/wday/cxs/goodco/External/jobs"},
			{"SniffCo", "", "https://boards.greenhouse.io/sniffco"},
			{"TaleoCo", "iCIMS", "https://careers.taleoco.com"},
			{"VagueCo", "SomethingElse", "https://example.com/jobs"},
			{"NoURLCo", "Workday", ""},
		},
	})

	configs, skipped, err := LoadVerifiedAPIs(path)
	require.NoError(t, err)

	require.Len(t, configs, 2)
	assert.Equal(t, "workday", configs["GoodCo"].Type)
	assert.Equal(t, "greenhouse", configs["SniffCo"].Type, "family inferred from URL")
	assert.ElementsMatch(t, []string{"TaleoCo", "VagueCo"}, skipped)
}
