package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chwc_backend/internals/features/onboarding/model"
	"chwc_backend/internals/testutil"
)

func newApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewOnboardingController(db)
	app.Post("/api/onboarding", ctrl.SubmitOnboarding)
	app.Post("/api/check-onboarding", ctrl.CheckOnboarding)
	app.Get("/api/onboarding-data", ctrl.OnboardingData)
	return app
}

func validForm(studentNumber string) map[string]interface{} {
	return map[string]interface{}{
		"studentNumber":     studentNumber,
		"surname":           "Mokoena",
		"fullNames":         "Thandi Grace",
		"dateOfBirth":       "2002-03-15",
		"gender":            "female",
		"physicalAddress":   "12 Jorissen St, Braamfontein",
		"postalAddress":     "PO Box 1, Wits",
		"code":              "2050",
		"email":             "thandi@students.example.ac.za",
		"cell":              "0821234567",
		"emergencyName":     "Grace Mokoena",
		"emergencyRelation": "mother",
		"emergencyCell":     "0837654321",
		"medicalConditions": "no",
		"operations":        "no",
		"disability":        "no",
		"medication":        "no",
		"congenital":        "no",
		"smoking":           "no",
		"recreation":        "no",
		"psychological":     "no",
		"date":              "2026-02-10",
	}
}

func post(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestSubmitOnboardingAndCheck(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	resp := post(t, app, "/api/onboarding", validForm("2441001"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var submitted map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&submitted)
	if submitted["recordId"] == nil {
		t.Error("no recordId in submit response")
	}

	var count int64
	db.Model(&model.OnboardingStudentModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}

	check := post(t, app, "/api/check-onboarding", map[string]string{"studentNumber": "2441001"})
	var out map[string]bool
	json.NewDecoder(check.Body).Decode(&out)
	if !out["exists"] {
		t.Error("exists = false after submission")
	}

	other := post(t, app, "/api/check-onboarding", map[string]string{"studentNumber": "2441999"})
	json.NewDecoder(other.Body).Decode(&out)
	if out["exists"] {
		t.Error("exists = true for student with no record")
	}
}

func TestSubmitOnboardingDuplicateRejected(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	if resp := post(t, app, "/api/onboarding", validForm("2441001")); resp.StatusCode != http.StatusOK {
		t.Fatalf("first submit = %d", resp.StatusCode)
	}
	resp := post(t, app, "/api/onboarding", validForm("2441001"))
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second submit = %d, want 409", resp.StatusCode)
	}

	var count int64
	db.Model(&model.OnboardingStudentModel{}).Count(&count)
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestSubmitOnboardingMissingFieldNamed(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	form := validForm("2441001")
	delete(form, "surname")

	resp := post(t, app, "/api/onboarding", form)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var out map[string]string
	json.NewDecoder(resp.Body).Decode(&out)
	if !strings.Contains(out["error"], "surname") {
		t.Errorf("error does not name the field: %q", out["error"])
	}

	var count int64
	db.Model(&model.OnboardingStudentModel{}).Count(&count)
	if count != 0 {
		t.Errorf("rows = %d, want 0", count)
	}
}

func TestOnboardingDataRangeAndShape(t *testing.T) {
	db := testutil.DB(t)
	app := newApp(db)

	early := validForm("2441001")
	early["date"] = "2026-01-05"
	late := validForm("2441002")
	late["date"] = "2026-03-20"
	post(t, app, "/api/onboarding", early)
	post(t, app, "/api/onboarding", late)

	req := httptest.NewRequest(http.MethodGet, "/api/onboarding-data?from=2026-03-01&to=2026-03-31", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	var rows []map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0]["id"] != "2441002" {
		t.Errorf("id = %q, want student number", rows[0]["id"])
	}
	if rows[0]["name"] != "Mokoena, Thandi Grace" {
		t.Errorf("name = %q", rows[0]["name"])
	}
	if rows[0]["role"] != "Student" {
		t.Errorf("role = %q", rows[0]["role"])
	}
}
