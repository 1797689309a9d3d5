// Package documents renders the printable ticket artifact. PDF is the
// primary format; plain text is both a configurable format and the
// unconditional fallback when PDF generation fails.
package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

const descriptionLimit = 200

type Renderer struct {
	dir    string
	format string
	logger logger.Interface
}

func NewRenderer(cfg *config.DocumentsConfig) *Renderer {
	return &Renderer{
		dir:    cfg.Dir,
		format: cfg.Format,
		logger: logger.NewLogger().With("component", "documents.renderer"),
	}
}

// Render writes the artifact for the given snapshot and returns its
// absolute path. The filename is deterministic per ticket, so repeated
// renders overwrite the previous artifact.
func (r *Renderer) Render(snap dto.DocumentSnapshot) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create documents directory: %w", err)
	}

	if r.format != "text" {
		path, err := r.renderPDF(snap)
		if err == nil {
			return path, nil
		}
		r.logger.Warnw("pdf generation failed, falling back to text",
			"ticket_id", snap.TicketID,
			"error", err)
	}

	return r.renderText(snap)
}

func (r *Renderer) renderPDF(snap dto.DocumentSnapshot) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Support Ticket #%d", snap.TicketID))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows(snap) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(45, 7, row[0])
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, row[1], "", "L", false)
		pdf.Ln(1)
	}

	path := r.pathFor(snap.TicketID, "pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}
	if pdf.Err() {
		return "", fmt.Errorf("pdf generation error: %s", pdf.Error())
	}

	return path, nil
}

func (r *Renderer) renderText(snap dto.DocumentSnapshot) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Support Ticket #%d\n\n", snap.TicketID)
	for _, row := range rows(snap) {
		fmt.Fprintf(&b, "%s %s\n", row[0], row[1])
	}

	path := r.pathFor(snap.TicketID, "txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write text document: %w", err)
	}

	return path, nil
}

func (r *Renderer) pathFor(ticketID uint, ext string) string {
	return filepath.Join(r.dir, fmt.Sprintf("ticket_%d.%s", ticketID, ext))
}

func rows(s dto.DocumentSnapshot) [][2]string {
	rows := [][2]string{
		{"Requester:", s.RequesterName},
		{"Equipment:", fmt.Sprintf("%s (%s)", s.AssetType, s.AssetSerial)},
		{"Status:", s.Status},
		{"Technician:", orDash(s.Technician)},
		{"Damage type:", orDash(s.DamageType)},
		{"Created:", s.CreatedAt.Format("2006-01-02 15:04")},
		{"Description:", truncate(s.Description)},
	}
	if s.WorkLog != "" {
		rows = append(rows, [2]string{"Work log:", truncate(s.WorkLog)})
	}
	return rows
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func truncate(v string) string {
	runes := []rune(v)
	if len(runes) <= descriptionLimit {
		return v
	}
	return string(runes[:descriptionLimit]) + "..."
}
