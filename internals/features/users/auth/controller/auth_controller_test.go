package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chwc_backend/internals/configs"
	"chwc_backend/internals/testutil"
)

func init() {
	configs.JWTSecret = "test-secret"
}

func newAuthApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewAuthController(db)
	app.Post("/api/login", ctrl.Login)
	app.Post("/api/create-student", ctrl.CreateStudent)
	app.Post("/api/reset-student-password", ctrl.ResetStudentPassword)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestStudentLoginSuccess(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedRoles(t, db)
	testutil.SeedStudent(t, db, "2441001", "secret-pass")
	app := newAuthApp(db)

	resp := postJSON(t, app, "/api/login", map[string]string{
		"identifier": "2441001",
		"password":   "secret-pass",
		"userType":   "student",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decode(t, resp)
	if body["message"] != "Login successful" {
		t.Errorf("message = %v", body["message"])
	}
	if body["token"] == nil || body["token"] == "" {
		t.Error("no token in login response")
	}
	if body["onboardingCompleted"] != false || body["porUploaded"] != false || body["porApproved"] != false {
		t.Errorf("fresh student flags = %v/%v/%v, want all false",
			body["onboardingCompleted"], body["porUploaded"], body["porApproved"])
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("user payload missing: %v", body)
	}
	if user["student_number"] != "2441001" {
		t.Errorf("student_number = %v", user["student_number"])
	}
	if user["role_name"] != "student" {
		t.Errorf("role_name = %v", user["role_name"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password hash leaked in login response")
	}
}

func TestStudentLoginFlagsReflectRecords(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedRoles(t, db)
	testutil.SeedStudent(t, db, "2441002", "secret-pass")
	testutil.SeedPORUpload(t, db, "2441002", "approved")
	app := newAuthApp(db)

	resp := postJSON(t, app, "/api/login", map[string]string{
		"identifier": "2441002",
		"password":   "secret-pass",
		"userType":   "student",
	})
	body := decode(t, resp)
	if body["porUploaded"] != true || body["porApproved"] != true {
		t.Errorf("por flags = %v/%v, want true/true", body["porUploaded"], body["porApproved"])
	}
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedRoles(t, db)
	testutil.SeedStaff(t, db, "STF001", "secret-pass")
	app := newAuthApp(db)

	wrongPass := postJSON(t, app, "/api/login", map[string]string{
		"identifier": "STF001", "password": "nope", "userType": "staff",
	})
	unknown := postJSON(t, app, "/api/login", map[string]string{
		"identifier": "STF999", "password": "nope", "userType": "staff",
	})

	if wrongPass.StatusCode != http.StatusUnauthorized || unknown.StatusCode != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", wrongPass.StatusCode, unknown.StatusCode)
	}
	if decode(t, wrongPass)["error"] != decode(t, unknown)["error"] {
		t.Error("wrong-password and unknown-user errors differ")
	}
}

func TestLoginMissingFields(t *testing.T) {
	db := testutil.DB(t)
	app := newAuthApp(db)

	resp := postJSON(t, app, "/api/login", map[string]string{"identifier": "2441001"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/login", map[string]string{
		"identifier": "2441001", "password": "x", "userType": "alien",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid userType status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateStudentAndResetPassword(t *testing.T) {
	db := testutil.DB(t)
	testutil.SeedRoles(t, db)
	app := newAuthApp(db)

	resp := postJSON(t, app, "/api/create-student", map[string]string{
		"username":      "thandi",
		"email":         "thandi@students.example.ac.za",
		"password":      "longenough1",
		"studentNumber": "2441003",
		"fullName":      "Thandi Mokoena",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d, want 200", resp.StatusCode)
	}

	login := postJSON(t, app, "/api/login", map[string]string{
		"identifier": "2441003", "password": "longenough1", "userType": "student",
	})
	if login.StatusCode != http.StatusOK {
		t.Fatalf("login after create = %d, want 200", login.StatusCode)
	}

	reset := postJSON(t, app, "/api/reset-student-password", map[string]string{
		"studentNumber": "2441003", "newPassword": "changed-pass",
	})
	if reset.StatusCode != http.StatusOK {
		t.Fatalf("reset status = %d, want 200", reset.StatusCode)
	}

	old := postJSON(t, app, "/api/login", map[string]string{
		"identifier": "2441003", "password": "longenough1", "userType": "student",
	})
	if old.StatusCode != http.StatusUnauthorized {
		t.Errorf("old password still accepted: %d", old.StatusCode)
	}
	fresh := postJSON(t, app, "/api/login", map[string]string{
		"identifier": "2441003", "password": "changed-pass", "userType": "student",
	})
	if fresh.StatusCode != http.StatusOK {
		t.Errorf("new password rejected: %d", fresh.StatusCode)
	}
}

func TestResetPasswordUnknownStudent(t *testing.T) {
	db := testutil.DB(t)
	app := newAuthApp(db)

	resp := postJSON(t, app, "/api/reset-student-password", map[string]string{
		"studentNumber": "9999999", "newPassword": "whatever",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
