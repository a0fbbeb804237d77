package controller

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	porModel "chwc_backend/internals/features/por/model"
	"chwc_backend/internals/testutil"
)

func newApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewReportController(db)
	app.Post("/report1", ctrl.Appointments)
	app.Post("/report2", ctrl.Emergencies)
	app.Post("/report3", ctrl.PORUploads)
	return app
}

func fetchPDF(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestReportsStreamPDFs(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedAppointment(t, db, "2441001", "2026-01-10")
	testutil.SeedEmergency(t, db, "2026-01-15")
	testutil.SeedPORUpload(t, db, "2441001", porModel.StatusPending)
	app := newApp(db)

	cases := []struct {
		path     string
		filename string
	}{
		{"/report1", "appointment.pdf"},
		{"/report2", "emergency.pdf"},
		{"/report3", "POR.pdf"},
	}
	for _, tc := range cases {
		resp, body := fetchPDF(t, app, tc.path)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d", tc.path, resp.StatusCode)
			continue
		}
		if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("%s Content-Type = %q", tc.path, ct)
		}
		if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, tc.filename) {
			t.Errorf("%s Content-Disposition = %q, want %s", tc.path, cd, tc.filename)
		}
		if !bytes.HasPrefix(body, []byte("%PDF")) {
			t.Errorf("%s body is not a PDF", tc.path)
		}
	}
}

func TestReportsOnEmptyStore(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	for _, path := range []string{"/report1", "/report2", "/report3"} {
		resp, body := fetchPDF(t, app, path)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d on empty store", path, resp.StatusCode)
		}
		if !bytes.HasPrefix(body, []byte("%PDF")) {
			t.Errorf("%s body is not a PDF on empty store", path)
		}
	}
}
