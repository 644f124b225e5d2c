package statement

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// Layout constants, in points on an A4 portrait page.
const (
	pageMargin = 40

	lineSpacing       = 2
	itemSpacing       = 3
	subSectionSpacing = 8
	sectionSpacing    = 15

	brandLogoHeight  = 30
	brandLogoWidth   = 90
	brandTextPadding = 8

	addressWidthRatio = 0.7
	labelColumnRatio  = 0.5
	columnGutter      = 10

	stampSize = 60

	watermarkText    = "VERIFIED"
	watermarkSize    = 70
	watermarkOpacity = 0.35

	brandLogoPlaceholder = "[Logo]"
	pageTitle            = "Utility Statement"
	footerText           = "This is a statement of your prepaid electricity account."
)

const utf8FontFamily = "NotoSans"

// Renderer lays out one fixed-structure statement page with gofpdf. The
// layout runs top to bottom behind a single vertical cursor; every block's
// position is a pure computation over the cursor and the constants above.
type Renderer struct {
	assets    *Assets
	brandName string
	logger    *zap.Logger

	fontRegular []byte
	fontBold    []byte
}

// NewRenderer creates a renderer. Font assets are resolved once here; logo
// and stamp images are re-read per render so they can appear or disappear
// without a restart.
func NewRenderer(assets *Assets, brandName string, logger *zap.Logger) *Renderer {
	r := &Renderer{
		assets:    assets,
		brandName: brandName,
		logger:    logger,
	}
	r.fontRegular = assets.FontRegular()
	r.fontBold = assets.FontBold()
	if r.fontRegular == nil || r.fontBold == nil {
		logger.Info("statement fonts unavailable, using Helvetica")
		r.fontRegular, r.fontBold = nil, nil
	}
	return r
}

// Render writes a single-page PDF statement for data to w.
func (r *Renderer) Render(data Data, w io.Writer) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	job := &renderJob{
		Renderer: r,
		pdf:      pdf,
		data:     data,
		family:   "Helvetica",
		tr:       func(s string) string { return s },
	}
	if r.fontRegular != nil && r.fontBold != nil {
		pdf.AddUTF8FontFromBytes(utf8FontFamily, "", r.fontRegular)
		pdf.AddUTF8FontFromBytes(utf8FontFamily, "B", r.fontBold)
		job.family = utf8FontFamily
	} else {
		// Core fonts are cp1252; map what we can (the naira sign in mock
		// amounts has no mapping and degrades).
		job.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	job.pageW, job.pageH = pdf.GetPageSize()
	job.contentW = job.pageW - 2*pageMargin
	job.cur = cursor{y: pageMargin}

	job.brandHeader()
	job.title()
	job.accountHolder()
	job.meterDetails()
	job.accountAndConsumption()
	job.stampAndFooter()
	job.watermark()

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("statement layout failed: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("statement output failed: %w", err)
	}
	return nil
}

// cursor is the running vertical position of the layout.
type cursor struct {
	y float64
}

func (c *cursor) advance(h float64) { c.y += h }

type renderJob struct {
	*Renderer
	pdf    *gofpdf.Fpdf
	data   Data
	family string
	tr     func(string) string

	pageW, pageH float64
	contentW     float64
	cur          cursor
}

// lineHeight approximates the drawn height of one text line at a font size.
func lineHeight(size float64) float64 { return size * 1.2 }

func (j *renderJob) setFont(style string, size float64) {
	j.pdf.SetFont(j.family, style, size)
}

// cell draws a single line of text at (x, cursor) without advancing.
func (j *renderJob) cell(x, w float64, style string, size float64, align, text string) {
	j.setFont(style, size)
	j.pdf.SetXY(x, j.cur.y)
	j.pdf.CellFormat(w, lineHeight(size), j.tr(text), "", 0, align, false, 0, "")
}

// line draws a left-aligned line at the margin and advances the cursor.
func (j *renderJob) line(style string, size float64, text string, spacing float64) {
	j.cell(pageMargin, j.contentW, style, size, "L", text)
	j.cur.advance(lineHeight(size) + spacing)
}

func (j *renderJob) brandHeader() {
	top := j.cur.y
	logoDrawn := false

	if logo := j.assets.BrandLogo(); logo != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		j.pdf.RegisterImageOptionsReader("brand_logo", opts, bytes.NewReader(logo))
		j.pdf.ImageOptions("brand_logo", pageMargin, top, 0, brandLogoHeight, false, opts, 0, "")
		logoDrawn = true
	} else {
		j.pdf.SetTextColor(128, 128, 128)
		j.pdf.SetXY(pageMargin, top+brandLogoHeight/2-6)
		j.setFont("", 9)
		j.pdf.CellFormat(brandLogoWidth, lineHeight(9), j.tr(brandLogoPlaceholder), "", 0, "L", false, 0, "")
		j.pdf.SetTextColor(0, 0, 0)
	}

	nameX := float64(pageMargin)
	nameW := j.contentW
	align := "C"
	if logoDrawn {
		nameX = pageMargin + brandLogoWidth + brandTextPadding
		nameW = j.contentW - brandLogoWidth - brandTextPadding
		align = "L"
	}
	nameH := lineHeight(16)
	nameY := top + brandLogoHeight/2 - nameH/2
	j.setFont("B", 16)
	j.pdf.SetXY(nameX, nameY)
	j.pdf.CellFormat(nameW, nameH, j.tr(j.brandName), "", 0, align, false, 0, "")

	bottom := top + brandLogoHeight
	if nameY+nameH > bottom {
		bottom = nameY + nameH
	}
	j.cur.y = bottom
	j.cur.advance(sectionSpacing)
}

func (j *renderJob) title() {
	j.cell(pageMargin, j.contentW, "B", 20, "C", pageTitle)
	j.cur.advance(lineHeight(20) + subSectionSpacing)
}

func (j *renderJob) accountHolder() {
	j.line("", 10, "Account Holder:", lineSpacing)
	j.line("B", 12, j.data.Request.FullName, lineSpacing)

	// Address wraps within 70% of the content width.
	addrW := j.contentW * addressWidthRatio
	lh := lineHeight(10)
	j.setFont("", 10)
	lines := j.pdf.SplitLines([]byte(j.tr(j.data.Request.Address)), addrW)
	j.pdf.SetXY(pageMargin, j.cur.y)
	j.pdf.MultiCell(addrW, lh, j.tr(j.data.Request.Address), "", "L", false)
	j.cur.advance(float64(len(lines))*lh + sectionSpacing)
}

func (j *renderJob) meterDetails() {
	j.line("", 10, "Meter Details:", itemSpacing)
	j.line("", 10, fmt.Sprintf("Meter Number: %s", j.data.Request.MeterNumber), itemSpacing)
	j.line("", 10, fmt.Sprintf("Registered Name: %s", j.data.RegisteredName), sectionSpacing)
}

func (j *renderJob) accountAndConsumption() {
	j.cell(pageMargin, j.contentW, "BU", 12, "L", "Account & Consumption Details:")
	j.cur.advance(lineHeight(12) + subSectionSpacing)

	if rec := j.data.Recharge; rec != nil {
		j.tableRow("Last Recharge Date:", orNA(rec.Date), false)
		j.tableRow("Last Recharge Amount:", orNA(rec.Amount), false)
		j.tableRow("Token Received:", orNA(rec.Token), false)
	} else {
		j.tableRow("Last Recharge Information:", "Not Available", true)
	}

	cons := j.data.Consumption
	j.tableRow("Electricity Consumed (KWh):", formatConsumption(cons.ConsumptionKWh), false)
	j.tableRow("For Period:", fmt.Sprintf("%s - %s", cons.PeriodStart, cons.PeriodEnd), false)
	j.cur.advance(sectionSpacing - itemSpacing)
}

// tableRow draws one label/value pair: label column at half the content
// width, value column in the remainder past a fixed gutter.
func (j *renderJob) tableRow(label, value string, grayValue bool) {
	labelW := j.contentW * labelColumnRatio
	valueX := pageMargin + labelW + columnGutter
	valueW := j.contentW - labelW - columnGutter

	j.cell(pageMargin, labelW, "", 10, "L", label)
	if grayValue {
		j.pdf.SetTextColor(128, 128, 128)
	}
	j.cell(valueX, valueW, "", 10, "L", value)
	if grayValue {
		j.pdf.SetTextColor(0, 0, 0)
	}
	j.cur.advance(lineHeight(10) + itemSpacing)
}

func (j *renderJob) stampAndFooter() {
	footerH := lineHeight(8)
	footerSpace := footerH + 10

	stampY := j.pageH - pageMargin - footerSpace - stampSize - 5
	stampX := pageMargin + j.contentW - stampSize
	if j.cur.y > stampY {
		// Long content pushes the stamp below the cursor rather than
		// overlapping it.
		stampY = j.cur.y + subSectionSpacing
		j.logger.Debug("statement content pushed stamp down", zap.Float64("y", stampY))
	}
	if stamp := j.assets.Stamp(); stamp != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		j.pdf.RegisterImageOptionsReader("stamp", opts, bytes.NewReader(stamp))
		j.pdf.ImageOptions("stamp", stampX, stampY, stampSize, stampSize, false, opts, 0, "")
	}

	footerY := j.pageH - pageMargin - footerH - 2
	j.setFont("", 8)
	j.pdf.SetXY(pageMargin, footerY)
	j.pdf.CellFormat(j.contentW, footerH, j.tr(footerText), "", 0, "C", false, 0, "")
}

// watermark draws the translucent diagonal overlay last so it sits on top
// of every other block.
func (j *renderJob) watermark() {
	j.pdf.TransformBegin()
	j.pdf.TransformRotate(45, j.pageW/2, j.pageH/2)
	j.setFont("B", watermarkSize)
	j.pdf.SetTextColor(224, 224, 224)
	j.pdf.SetAlpha(watermarkOpacity, "Normal")
	j.pdf.SetXY(0, j.pageH/2-watermarkSize/2)
	j.pdf.CellFormat(j.pageW, watermarkSize, j.tr(watermarkText), "", 0, "C", false, 0, "")
	j.pdf.TransformEnd()
	j.pdf.SetAlpha(1, "Normal")
	j.pdf.SetTextColor(0, 0, 0)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// formatConsumption renders a reading as a plain decimal: 175 not 175.00,
// 210.5 as-is.
func formatConsumption(kwh float64) string {
	return strconv.FormatFloat(kwh, 'f', -1, 64)
}
