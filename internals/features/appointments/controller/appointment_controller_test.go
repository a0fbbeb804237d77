package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chwc_backend/internals/features/appointments/model"
	"chwc_backend/internals/testutil"
)

func newApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewAppointmentController(db)
	app.Post("/api/save-appointment", ctrl.Save)
	app.Get("/api/student-appointments/:studentNumber", ctrl.StudentAppointments)
	app.Get("/api/appointments", ctrl.ListAll)
	app.Put("/api/appointments/:id", ctrl.Update)
	app.Put("/api/appointments/:id/cancel", ctrl.Cancel)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestSaveAppointmentMissingFieldsWritesNothing(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/save-appointment", map[string]string{
		"referenceNumber": "REF-1",
		"studentNumber":   "2441001",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var out map[string]string
	json.NewDecoder(resp.Body).Decode(&out)
	for _, f := range []string{"appointmentType", "appointmentFor", "appointmentTime"} {
		if !strings.Contains(out["details"], f) {
			t.Errorf("details does not name %s: %q", f, out["details"])
		}
	}

	var count int64
	db.Model(&model.AppointmentModel{}).Count(&count)
	if count != 0 {
		t.Errorf("rows = %d, want 0", count)
	}
}

func TestSaveAppointmentDefaultsAndOptionalFields(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/save-appointment", map[string]string{
		"referenceNumber": "REF-1",
		"studentNumber":   "2441001",
		"appointmentType": "consultation",
		"appointmentFor":  "Flu symptoms",
		"appointmentTime": "09:30",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&out)
	if out["appointmentId"] == nil {
		t.Error("no appointmentId in response")
	}

	var row model.AppointmentModel
	db.First(&row)
	if row.Status != model.StatusScheduled {
		t.Errorf("status = %q, want scheduled", row.Status)
	}
	if row.AppointmentDate != nil {
		t.Error("appointment_date should be NULL when omitted")
	}
	if row.PreviousAppointmentRef != nil {
		t.Error("previous_appointment_ref should be NULL when omitted")
	}
}

func TestStudentAppointmentsNewestFirst(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	first := testutil.SeedAppointment(t, db, "2441001", "2026-02-01")
	db.Model(first).Update("created_at", "2026-01-01 08:00:00")
	second := testutil.SeedAppointment(t, db, "2441001", "2026-01-15")
	db.Model(second).Update("created_at", "2026-02-01 08:00:00")
	testutil.SeedAppointment(t, db, "2441099", "2026-02-20")

	resp := doJSON(t, app, http.MethodGet, "/api/student-appointments/2441001", nil)
	var out struct {
		Appointments []model.AppointmentModel `json:"appointments"`
		Count        int                      `json:"count"`
	}
	json.NewDecoder(resp.Body).Decode(&out)

	if len(out.Appointments) != 2 || out.Count != 2 {
		t.Fatalf("appointments = %d, count = %d, want 2/2", len(out.Appointments), out.Count)
	}
	if out.Appointments[0].ID != second.ID {
		t.Errorf("first listed id = %d, want most recently created %d", out.Appointments[0].ID, second.ID)
	}
}

func TestUpdateAppointmentRequiresFields(t *testing.T) {
	db := testutil.DB(t)
	row := testutil.SeedAppointment(t, db, "2441001", "2026-02-01")
	app := newApp(db)

	resp := doJSON(t, app, http.MethodPut, "/api/appointments/"+strconv.Itoa(row.ID), map[string]string{
		"appointmentDate": "2026-02-05",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPut, "/api/appointments/"+strconv.Itoa(row.ID), map[string]string{
		"appointmentDate": "2026-02-05",
		"appointmentTime": "11:00",
		"appointmentFor":  "Follow-up",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updated model.AppointmentModel
	db.First(&updated, row.ID)
	if updated.AppointmentTime != "11:00" || updated.AppointmentFor != "Follow-up" {
		t.Errorf("row not updated: %+v", updated)
	}
	if updated.Status != model.StatusScheduled {
		t.Errorf("status = %q, want scheduled default", updated.Status)
	}
}

func TestCancelAppointment(t *testing.T) {
	db := testutil.DB(t)
	row := testutil.SeedAppointment(t, db, "2441001", "2026-02-01")
	app := newApp(db)

	resp := doJSON(t, app, http.MethodPut, "/api/appointments/"+strconv.Itoa(row.ID)+"/cancel", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var updated model.AppointmentModel
	db.First(&updated, row.ID)
	if updated.Status != model.StatusCancelled {
		t.Errorf("status = %q, want cancelled", updated.Status)
	}

	// cancelling again is fine; cancelling a missing id is not
	if resp := doJSON(t, app, http.MethodPut, "/api/appointments/99999/cancel", nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", resp.StatusCode)
	}
}
