package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chwc_backend/internals/features/emergencies/model"
	"chwc_backend/internals/testutil"
)

func newApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewEmergencyController(db)
	app.Post("/api/emergency-onboarding", ctrl.Create)
	app.Get("/api/emergency-reports", ctrl.ListSummaries)
	app.Get("/api/emergency-report/:id", ctrl.Get)
	app.Put("/api/emergency-report/:id", ctrl.Update)
	app.Delete("/api/emergency-report/:id", ctrl.Delete)
	return app
}

func validIncident() map[string]interface{} {
	return map[string]interface{}{
		"date":                 "2026-02-10",
		"timeOfCall":           "10:15",
		"personResponsible":    "Sr. Dlamini",
		"callerName":           "Security",
		"department":           "Protection Services",
		"contactNumber":        "0111234567",
		"problemNature":        "Collapsed in lecture hall",
		"educationCampus":      true,
		"building":             "FNB Building",
		"staffInformed":        "Sr. Dlamini",
		"notificationTime":     "10:16",
		"teamResponding":       "Clinic team A",
		"timeLeftClinic":       "10:20",
		"chwcVehicle":          true,
		"arrivalTime":          "10:28",
		"studentNumber":        "2441001",
		"patientName":          "Thandi",
		"patientSurname":       "Mokoena",
		"primaryAssessment":    "Responsive, low blood pressure",
		"intervention":         "Vitals monitored, glucose given",
		"medicalConsent":       "give",
		"transportConsent":     "consent",
		"signature":            "T. Mokoena",
		"consentDate":          "2026-02-10",
		"ptAmbulance":          true,
		"patientTransportedTo": "Charlotte Maxeke Hospital",
		"departureTime":        "10:40",
		"chwcArrivalTime":      "10:55",
		"existingFile":         "yes",
		"referred":             "yes",
		"hospitalName":         "Charlotte Maxeke",
		"dischargeCondition":   "Stable, referred for observation",
		"dischargeTime":        "12:30",
	}
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestCreateIncidentAndFetch(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	resp := do(t, app, http.MethodPost, "/api/emergency-onboarding", validIncident())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d, want 200", resp.StatusCode)
	}
	var created map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&created)
	id := int(created["recordId"].(float64))
	if id == 0 {
		t.Fatal("no recordId in response")
	}

	resp = do(t, app, http.MethodGet, "/api/emergency-report/"+strconv.Itoa(id), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var out struct {
		Report model.EmergencyReportModel `json:"report"`
	}
	json.NewDecoder(resp.Body).Decode(&out)
	if out.Report.CallerName != "Security" || out.Report.Referred != "yes" {
		t.Errorf("fetched report mismatch: %+v", out.Report)
	}
	if out.Report.HospitalName == nil || *out.Report.HospitalName != "Charlotte Maxeke" {
		t.Errorf("hospital_name = %v", out.Report.HospitalName)
	}
}

func TestCreateIncidentMissingFieldNamed(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	body := validIncident()
	delete(body, "dischargeTime")

	resp := do(t, app, http.MethodPost, "/api/emergency-onboarding", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var out map[string]string
	json.NewDecoder(resp.Body).Decode(&out)
	if out["error"] != "Missing required field: dischargeTime" {
		t.Errorf("error = %q", out["error"])
	}

	var count int64
	db.Model(&model.EmergencyReportModel{}).Count(&count)
	if count != 0 {
		t.Errorf("rows = %d, want 0", count)
	}
}

func TestUpdateSkipsRequiredValidation(t *testing.T) {
	db := testutil.DB(t)
	row := testutil.SeedEmergency(t, db, "2026-02-10")
	app := newApp(db)

	// a near-empty body still updates; create-time requirements do not apply
	resp := do(t, app, http.MethodPut, "/api/emergency-report/"+strconv.Itoa(row.ID), map[string]interface{}{
		"callerName": "Updated Caller",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200", resp.StatusCode)
	}

	var updated model.EmergencyReportModel
	db.First(&updated, row.ID)
	if updated.CallerName != "Updated Caller" {
		t.Errorf("caller_name = %q", updated.CallerName)
	}
}

func TestListSummariesNewestFirst(t *testing.T) {
	db := testutil.DB(t)
	a := testutil.SeedEmergency(t, db, "2026-01-05")
	db.Model(a).Update("created_at", "2026-01-05 08:00:00")
	b := testutil.SeedEmergency(t, db, "2026-02-05")
	db.Model(b).Update("created_at", "2026-02-05 08:00:00")
	app := newApp(db)

	resp := do(t, app, http.MethodGet, "/api/emergency-reports", nil)
	var out struct {
		Reports []map[string]interface{} `json:"reports"`
		Count   int                      `json:"count"`
	}
	json.NewDecoder(resp.Body).Decode(&out)

	if out.Count != 2 || len(out.Reports) != 2 {
		t.Fatalf("count = %d, reports = %d", out.Count, len(out.Reports))
	}
	if int(out.Reports[0]["id"].(float64)) != b.ID {
		t.Errorf("first listed id = %v, want newest %d", out.Reports[0]["id"], b.ID)
	}
	if _, hasFull := out.Reports[0]["primary_assessment"]; hasFull {
		t.Error("summary leaked full-record columns")
	}
}

func TestDeleteIncident(t *testing.T) {
	db := testutil.DB(t)
	row := testutil.SeedEmergency(t, db, "2026-02-10")
	app := newApp(db)

	if resp := do(t, app, http.MethodDelete, "/api/emergency-report/"+strconv.Itoa(row.ID), nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodDelete, "/api/emergency-report/"+strconv.Itoa(row.ID), nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodGet, "/api/emergency-report/"+strconv.Itoa(row.ID), nil); resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", resp.StatusCode)
	}
}
