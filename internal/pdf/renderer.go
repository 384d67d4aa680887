// Package pdf renders structured resume fields into a downloadable
// document. It is the only consumer of the layout library.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/jobhunt/backend/internal/models"
)

const (
	titleSize   = 20.0
	headingSize = 16.0
	bodySize    = 14.0
	lineHeight  = 8.0
)

// RenderResume produces a one-file PDF of the resume.
func RenderResume(rs *models.Resume) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Resume for %s", rs.Name), true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", titleSize)
	doc.CellFormat(0, 12, fmt.Sprintf("Resume for %s", rs.Name), "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", bodySize)
	writeField(doc, "Summary", rs.Summary)
	writeField(doc, "Email", rs.Email)
	writeField(doc, "Location", rs.Location)
	writeField(doc, "Contact Number", rs.ContactNumber)

	if len(rs.Education) > 0 {
		heading(doc, "Education")
		for _, edu := range rs.Education {
			writeField(doc, "Institution Name", edu.InstitutionName)
			writeField(doc, "Degree", edu.Degree)
			if edu.StartYear > 0 {
				writeField(doc, "Start Year", fmt.Sprintf("%d", edu.StartYear))
			}
			if edu.EndYear > 0 {
				writeField(doc, "End Year", fmt.Sprintf("%d", edu.EndYear))
			}
			doc.Ln(2)
		}
	}

	if len(rs.Projects) > 0 {
		heading(doc, "Projects")
		for _, project := range rs.Projects {
			writeField(doc, "Title", project.Title)
			writeField(doc, "Description", project.Description)
			writeField(doc, "Link", project.Link)
			doc.Ln(2)
		}
	}

	if len(rs.Skills) > 0 {
		heading(doc, "Skills")
		for _, skill := range rs.Skills {
			doc.MultiCell(0, lineHeight, skill, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func heading(doc *fpdf.Fpdf, text string) {
	doc.Ln(2)
	doc.SetFont("Helvetica", "U", headingSize)
	doc.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", bodySize)
}

func writeField(doc *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	doc.MultiCell(0, lineHeight, fmt.Sprintf("%s: %s", label, value), "", "L", false)
}
