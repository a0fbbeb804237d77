package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (legacy wire shape)

   The frontend string-matches on `error` / `details`, so the payload shape
   is kept exactly as the previous backend produced it.
=================================*/

// JsonError: {"error": message}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// JsonErrorDetails: {"error": message, "details": details}
func JsonErrorDetails(c *fiber.Ctx, status int, message, details string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   message,
		"details": details,
	})
}

// JsonDBError: database failure with the driver message in details (no redaction).
func JsonDBError(c *fiber.Ctx, message string, err error) error {
	return JsonErrorDetails(c, fiber.StatusInternalServerError, message, err.Error())
}

/* ===============================
   Validation mapping (validator.v10)
=================================*/

// FirstValidationField returns the json-ish name of the first failing field,
// lower-camel like the request body keys.
func FirstValidationField(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return ""
	}
	f := ve[0].Field()
	if f == "" {
		return ""
	}
	return lowerFirst(f)
}

// JsonRequiredFieldError: 400 naming the field, matching the old
// "Missing required field: x" contract.
func JsonRequiredFieldError(c *fiber.Ctx, field string) error {
	return JsonErrorDetails(c, fiber.StatusBadRequest,
		"Missing required field: "+field,
		"The field '"+field+"' is required")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
