// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/netSkope/notion-bootstrap/internal/csvsource"
	"github.com/netSkope/notion-bootstrap/internal/notion"
	"go.uber.org/zap"
)

// Titles of the template data sources the import targets. The template must
// already be installed and shared with the integration.
const (
	CollectionQuestions       = "Question Library"
	CollectionVendors         = "Vendors"
	CollectionAssessments     = "Assessments"
	CollectionAssessmentItems = "Assessment Items"
)

// createDelay is a fixed courtesy pause after every page create, a
// conservative throttle against the API rate limit.
const createDelay = 100 * time.Millisecond

// MissingReferenceError reports a row referencing a name that earlier imports
// never created.
type MissingReferenceError struct {
	Kind string // "vendor", "assessment" or "question"
	File string
	Name string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("unknown %s in %s: %s", e.Kind, e.File, e.Name)
}

// DuplicateNameError reports two rows in one CSV sharing the same primary
// name. Name maps are keyed by name, so a duplicate would silently orphan the
// earlier row's relations.
type DuplicateNameError struct {
	File string
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name in %s: %s", e.File, e.Name)
}

// field pairs a CSV column with its Notion property type. Column names and
// property names are identical across the template and the CSV packs.
type field struct {
	name string
	typ  notion.PropertyType
}

var questionFields = []field{
	{"Question Code", notion.TypeRichText},
	{"Domain", notion.TypeSelect},
	{"Question Type", notion.TypeSelect},
	{"Weight", notion.TypeNumber},
	{"Critical", notion.TypeCheckbox},
	{"Evidence Required", notion.TypeCheckbox},
	{"Suggested Evidence", notion.TypeRichText},
	{"Reference Tags", notion.TypeRichText},
	{"Pack", notion.TypeMultiSelect},
}

var vendorFields = []field{
	{"Category", notion.TypeSelect},
	{"Criticality", notion.TypeSelect},
	{"Data Access", notion.TypeMultiSelect},
	{"Vendor Contact Email", notion.TypeEmail},
	{"Status", notion.TypeSelect},
	{"Renewal Date", notion.TypeDate},
	{"Notes", notion.TypeRichText},
}

var assessmentFields = []field{
	{"Type", notion.TypeSelect},
	{"Scope Pack", notion.TypeSelect},
	{"Status", notion.TypeSelect},
	{"Start Date", notion.TypeDate},
	{"Due Date", notion.TypeDate},
	{"End Date", notion.TypeDate},
	{"Decision", notion.TypeSelect},
	{"Conditions", notion.TypeRichText},
	{"Decision Date", notion.TypeDate},
}

var assessmentItemFields = []field{
	{"Response Score Raw", notion.TypeNumber},
	{"Response Text", notion.TypeRichText},
	{"Evidence Status", notion.TypeSelect},
	{"Finding Severity", notion.TypeSelect},
	{"Notes", notion.TypeRichText},
}

// Result reports how many records each importer created.
type Result struct {
	Questions       int
	Vendors         int
	Assessments     int
	AssessmentItems int
}

// Importer creates Notion pages from the bootstrap CSV files, sequentially and
// in dependency order.
type Importer struct {
	client *notion.Client
	logger *zap.Logger
	delay  time.Duration
}

// New creates an Importer with the standard inter-create pacing.
func New(client *notion.Client, logger *zap.Logger) *Importer {
	return &Importer{
		client: client,
		logger: logger,
		delay:  createDelay,
	}
}

func (im *Importer) pause() {
	if im.delay > 0 {
		time.Sleep(im.delay)
	}
}

// buildProperties maps the declared fields of one row, dropping blank cells so
// absent properties are omitted from the payload.
func buildProperties(fields []field, row csvsource.Row) (notion.Properties, error) {
	props := make(notion.Properties, len(fields)+3)
	for _, f := range fields {
		value, err := notion.BuildValue(f.typ, row[f.name])
		if err != nil {
			return nil, fmt.Errorf("failed to map column %q: %w", f.name, err)
		}
		if value != nil {
			props[f.name] = value
		}
	}
	return props, nil
}

// setTitle adds the title property unless the name is blank.
func setTitle(props notion.Properties, property, name string) error {
	value, err := notion.BuildValue(notion.TypeTitle, name)
	if err != nil {
		return err
	}
	if value != nil {
		props[property] = value
	}
	return nil
}

// ImportQuestions imports the question library CSV and returns a question
// title to page ID map for later relation linking.
func (im *Importer) ImportQuestions(ctx context.Context, dataSourceID, csvPath string) (map[string]string, error) {
	rows, err := csvsource.ReadFile(csvPath)
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string, len(rows))
	for _, row := range rows {
		title := strings.TrimSpace(row["Question"])
		if _, exists := mapping[title]; exists {
			return nil, &DuplicateNameError{File: filepath.Base(csvPath), Name: title}
		}

		props, err := buildProperties(questionFields, row)
		if err != nil {
			return nil, err
		}
		if err := setTitle(props, "Question", title); err != nil {
			return nil, err
		}

		pageID, err := im.client.CreatePage(ctx, dataSourceID, props)
		if err != nil {
			return nil, err
		}
		mapping[title] = pageID

		im.logger.Debug("Created question",
			zap.String("question", title),
			zap.String("page_id", pageID))
		im.pause()
	}

	im.logger.Info("Imported questions",
		zap.Int("count", len(rows)),
		zap.String("csv", csvPath))
	return mapping, nil
}

// ImportVendors imports the vendors CSV and returns a vendor name to page ID
// map for later relation linking.
func (im *Importer) ImportVendors(ctx context.Context, dataSourceID, csvPath string) (map[string]string, error) {
	rows, err := csvsource.ReadFile(csvPath)
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row["Vendor"])
		if _, exists := mapping[name]; exists {
			return nil, &DuplicateNameError{File: filepath.Base(csvPath), Name: name}
		}

		props, err := buildProperties(vendorFields, row)
		if err != nil {
			return nil, err
		}
		if err := setTitle(props, "Vendor", name); err != nil {
			return nil, err
		}

		pageID, err := im.client.CreatePage(ctx, dataSourceID, props)
		if err != nil {
			return nil, err
		}
		mapping[name] = pageID

		im.logger.Debug("Created vendor",
			zap.String("vendor", name),
			zap.String("page_id", pageID))
		im.pause()
	}

	im.logger.Info("Imported vendors",
		zap.Int("count", len(rows)),
		zap.String("csv", csvPath))
	return mapping, nil
}

// ImportAssessments imports the assessments CSV, linking each row to its
// vendor page. Every vendor name must already exist in vendorIDs.
func (im *Importer) ImportAssessments(ctx context.Context, dataSourceID, csvPath string, vendorIDs map[string]string) (map[string]string, error) {
	rows, err := csvsource.ReadFile(csvPath)
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string, len(rows))
	for _, row := range rows {
		vendorName := strings.TrimSpace(row["Vendor"])
		vendorID, ok := vendorIDs[vendorName]
		if !ok || vendorID == "" {
			return nil, &MissingReferenceError{Kind: "vendor", File: filepath.Base(csvPath), Name: vendorName}
		}

		title := strings.TrimSpace(row["Assessment"])
		if _, exists := mapping[title]; exists {
			return nil, &DuplicateNameError{File: filepath.Base(csvPath), Name: title}
		}

		props, err := buildProperties(assessmentFields, row)
		if err != nil {
			return nil, err
		}
		if err := setTitle(props, "Assessment", title); err != nil {
			return nil, err
		}
		props["Vendor"] = notion.Relation(vendorID)

		pageID, err := im.client.CreatePage(ctx, dataSourceID, props)
		if err != nil {
			return nil, err
		}
		mapping[title] = pageID

		im.logger.Debug("Created assessment",
			zap.String("assessment", title),
			zap.String("vendor", vendorName),
			zap.String("page_id", pageID))
		im.pause()
	}

	im.logger.Info("Imported assessments",
		zap.Int("count", len(rows)),
		zap.String("csv", csvPath))
	return mapping, nil
}

// ImportAssessmentItems imports the assessment items CSV, linking each row to
// its assessment and question pages. Returns the number of created items.
func (im *Importer) ImportAssessmentItems(ctx context.Context, dataSourceID, csvPath string, assessmentIDs, questionIDs map[string]string) (int, error) {
	rows, err := csvsource.ReadFile(csvPath)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, row := range rows {
		assessmentTitle := strings.TrimSpace(row["Assessment"])
		assessmentID, ok := assessmentIDs[assessmentTitle]
		if !ok || assessmentID == "" {
			return created, &MissingReferenceError{Kind: "assessment", File: filepath.Base(csvPath), Name: assessmentTitle}
		}

		questionTitle := strings.TrimSpace(row["Question"])
		questionID, ok := questionIDs[questionTitle]
		if !ok || questionID == "" {
			return created, &MissingReferenceError{Kind: "question", File: filepath.Base(csvPath), Name: questionTitle}
		}

		props, err := buildProperties(assessmentItemFields, row)
		if err != nil {
			return created, err
		}
		if err := setTitle(props, "Item", assessmentTitle+" | "+questionTitle); err != nil {
			return created, err
		}
		props["Assessment"] = notion.Relation(assessmentID)
		props["Question"] = notion.Relation(questionID)

		pageID, err := im.client.CreatePage(ctx, dataSourceID, props)
		if err != nil {
			return created, err
		}
		created++

		im.logger.Debug("Created assessment item",
			zap.String("assessment", assessmentTitle),
			zap.String("question", questionTitle),
			zap.String("page_id", pageID))
		im.pause()
	}

	im.logger.Info("Imported assessment items",
		zap.Int("count", created),
		zap.String("csv", csvPath))
	return created, nil
}

// Run resolves the four destination data sources, then executes the importers
// in dependency order: questions and vendors first, assessments next (linking
// vendors), assessment items last (linking assessments and questions).
//
// A failure partway through leaves already created pages in place; re-running
// is not idempotent and will duplicate them.
func (im *Importer) Run(ctx context.Context, sampleDataDir, questionsCSV string) (*Result, error) {
	questionDS, err := im.client.FindDataSourceID(ctx, CollectionQuestions)
	if err != nil {
		return nil, err
	}
	vendorDS, err := im.client.FindDataSourceID(ctx, CollectionVendors)
	if err != nil {
		return nil, err
	}
	assessmentDS, err := im.client.FindDataSourceID(ctx, CollectionAssessments)
	if err != nil {
		return nil, err
	}
	itemDS, err := im.client.FindDataSourceID(ctx, CollectionAssessmentItems)
	if err != nil {
		return nil, err
	}

	questionIDs, err := im.ImportQuestions(ctx, questionDS, questionsCSV)
	if err != nil {
		return nil, err
	}
	vendorIDs, err := im.ImportVendors(ctx, vendorDS, filepath.Join(sampleDataDir, "vendors.csv"))
	if err != nil {
		return nil, err
	}
	assessmentIDs, err := im.ImportAssessments(ctx, assessmentDS, filepath.Join(sampleDataDir, "assessments.csv"), vendorIDs)
	if err != nil {
		return nil, err
	}
	items, err := im.ImportAssessmentItems(ctx, itemDS, filepath.Join(sampleDataDir, "assessment_items.csv"), assessmentIDs, questionIDs)
	if err != nil {
		return nil, err
	}

	return &Result{
		Questions:       len(questionIDs),
		Vendors:         len(vendorIDs),
		Assessments:     len(assessmentIDs),
		AssessmentItems: items,
	}, nil
}
