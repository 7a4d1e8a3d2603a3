// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package plan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/netSkope/notion-bootstrap/internal/csvsource"
)

// Plan is an immutable snapshot of the data row counts for the four import
// files, computed once per run and used only for the dry-run report.
type Plan struct {
	Questions       int
	Vendors         int
	Assessments     int
	AssessmentItems int
}

// Build counts the data rows of the four CSV files without touching the
// network. It fails if any required file is missing.
func Build(sampleDataDir, questionsCSV string) (*Plan, error) {
	questions, err := csvsource.CountRows(questionsCSV)
	if err != nil {
		return nil, err
	}
	vendors, err := csvsource.CountRows(filepath.Join(sampleDataDir, "vendors.csv"))
	if err != nil {
		return nil, err
	}
	assessments, err := csvsource.CountRows(filepath.Join(sampleDataDir, "assessments.csv"))
	if err != nil {
		return nil, err
	}
	items, err := csvsource.CountRows(filepath.Join(sampleDataDir, "assessment_items.csv"))
	if err != nil {
		return nil, err
	}

	return &Plan{
		Questions:       questions,
		Vendors:         vendors,
		Assessments:     assessments,
		AssessmentItems: items,
	}, nil
}

// Format renders the human-readable dry-run report.
func Format(p *Plan) string {
	lines := []string{
		"Notion import plan (dry-run)",
		"",
		"CSV imports (row counts):",
		fmt.Sprintf("- questions.csv: %d rows", p.Questions),
		fmt.Sprintf("- vendors.csv: %d rows", p.Vendors),
		fmt.Sprintf("- assessments.csv: %d rows", p.Assessments),
		fmt.Sprintf("- assessment_items.csv: %d rows", p.AssessmentItems),
		"",
		"Template databases required:",
		"- Vendors",
		"- Assessments",
		"- Question Library",
		"- Assessment Items",
	}
	return strings.Join(lines, "\n")
}
