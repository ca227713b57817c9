package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateIssuePDF renders the issues of a reconciliation run as a PDF
// document using maroto/v2.
func GenerateIssuePDF(issues []Issue, updatedRows int) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addIssueHeader(m, updatedRows)
	addIssueTableHeader(m)
	for i, issue := range issues {
		addIssueRow(m, issue, i%2 == 1)
	}
	if len(issues) == 0 {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New("No issues recorded.", props.Text{Size: 8, Align: align.Left}),
				),
			),
		)
	}
	addIssueFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addIssueHeader adds the title and the updated-row summary line.
func addIssueHeader(m core.Maroto, updatedRows int) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Price Update Issues Report", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Rows updated this run: %d", updatedRows), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addIssueTableHeader adds the column header row for the issues table.
func addIssueTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("File", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Row", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("SKU", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Base SKU", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Reason", headerText)).WithStyle(&headerCell),
		),
	)
}

// addIssueRow adds one issue to the table, zebra-striping alternate rows.
func addIssueRow(m core.Maroto, issue Issue, striped bool) {
	var cellStyle *props.Cell
	if striped {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	bodyText := props.Text{Size: 7, Align: align.Left}

	colFile := col.New(3).Add(text.New(issue.File, bodyText))
	colRow := col.New(1).Add(text.New(issue.Row, bodyText))
	colSKU := col.New(2).Add(text.New(issue.SKU, bodyText))
	colBase := col.New(2).Add(text.New(issue.BaseSKU, bodyText))
	colReason := col.New(4).Add(text.New(issue.Reason, bodyText))

	if cellStyle != nil {
		colFile = colFile.WithStyle(cellStyle)
		colRow = colRow.WithStyle(cellStyle)
		colSKU = colSKU.WithStyle(cellStyle)
		colBase = colBase.WithStyle(cellStyle)
		colReason = colReason.WithStyle(cellStyle)
	}

	m.AddRows(row.New(7).Add(colFile, colRow, colSKU, colBase, colReason))
}

// addIssueFooter adds the generated-date line at the bottom.
func addIssueFooter(m core.Maroto) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", time.Now().Format("02 Jan 2006 15:04")),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
