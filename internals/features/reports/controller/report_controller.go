package controller

import (
	"bytes"
	"image/color"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chwc_backend/internals/features/reports/service"
	"chwc_backend/internals/helpers/chart"
	"chwc_backend/internals/helpers/pdfkit"
)

var (
	yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	red    = color.RGBA{R: 255, A: 255}
	orange = color.RGBA{R: 255, G: 165, A: 255}
	green  = color.RGBA{G: 128, A: 255}
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// Appointments renders the bookings-vs-emergencies report: a line chart per
// month, then the same numbers as a table.
func (rc *ReportController) Appointments(c *fiber.Ctx) error {
	pairs, err := service.MonthlyBookingsVsEmergencies(rc.DB)
	if err != nil {
		log.Println("[ERROR] report1 aggregation:", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error generating report1")
	}

	labels, firsts, seconds := split(pairs)
	png, err := chart.RenderLine(labels, []chart.Series{
		{Label: "Bookings", Color: yellow, Values: firsts},
		{Label: "Emergencies", Color: red, Values: seconds},
	})
	if err != nil {
		log.Println("[ERROR] report1 chart:", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error generating report1")
	}

	doc := pdfkit.New()
	doc.Title("Appointments Report")
	doc.ChartImage(png, 500, 300)

	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p.Month, strconv.Itoa(p.First), strconv.Itoa(p.Second)})
	}
	doc.Table([]string{"Month", "Bookings", "Emergencies"}, rows, []float64{50, 250, 400})

	return sendPDF(c, doc, "appointment.pdf")
}

// Emergencies renders the campus breakdown: a pie over the two campuses and
// a one-row totals table.
func (rc *ReportController) Emergencies(c *fiber.Ctx) error {
	breakdown, err := service.EmergencyCampusBreakdown(rc.DB)
	if err != nil {
		log.Println("[ERROR] report2 aggregation:", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error generating report2")
	}

	png, err := chart.RenderPie([]chart.Slice{
		{Label: "Parktown", Color: orange, Value: float64(breakdown.Parktown)},
		{Label: "Main", Color: green, Value: float64(breakdown.Main)},
	})
	if err != nil {
		log.Println("[ERROR] report2 chart:", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error generating report2")
	}

	doc := pdfkit.New()
	doc.Title("Emergencies Report")
	doc.ChartImage(png, 400, 300)
	doc.Table(
		[]string{"Parktown", "Main", "Total"},
		[][]string{{
			strconv.FormatInt(breakdown.Parktown, 10),
			strconv.FormatInt(breakdown.Main, 10),
			strconv.FormatInt(breakdown.Total, 10),
		}},
		[]float64{50, 250, 400},
	)

	return sendPDF(c, doc, "emergency.pdf")
}

// PORUploads renders POR uploads against bookings per month.
func (rc *ReportController) PORUploads(c *fiber.Ctx) error {
	pairs, err := service.MonthlyUploadsVsBookings(rc.DB)
	if err != nil {
		log.Println("[ERROR] report3 aggregation:", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error generating report3")
	}

	labels, firsts, seconds := split(pairs)
	png, err := chart.RenderLine(labels, []chart.Series{
		{Label: "POR Uploads", Color: yellow, Values: firsts},
		{Label: "Bookings", Color: red, Values: seconds},
	})
	if err != nil {
		log.Println("[ERROR] report3 chart:", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error generating report3")
	}

	doc := pdfkit.New()
	doc.Title("Proof of Registration Uploads vs Bookings")
	doc.ChartImage(png, 500, 300)

	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p.Month, strconv.Itoa(p.First), strconv.Itoa(p.Second)})
	}
	doc.Table([]string{"Month", "POR Uploads", "Bookings"}, rows, []float64{50, 250, 400})

	return sendPDF(c, doc, "POR.pdf")
}

// Index is the plain landing the reports screen links from.
func (rc *ReportController) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"reports": []fiber.Map{
			{"name": "Appointments Report", "path": "/report1"},
			{"name": "Emergencies Report", "path": "/report2"},
			{"name": "POR Uploads vs Bookings", "path": "/report3"},
		},
	})
}

func sendPDF(c *fiber.Ctx, doc *pdfkit.Document, filename string) error {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		log.Println("[ERROR] rendering pdf:", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error generating report")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}

func split(pairs []service.MonthPair) (labels []string, firsts, seconds []float64) {
	for _, p := range pairs {
		labels = append(labels, p.Month)
		firsts = append(firsts, float64(p.First))
		seconds = append(seconds, float64(p.Second))
	}
	return
}
