package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// Ambil role dari c.Locals("userRole").
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	return role, nil
}

// Ambil department dari c.Locals("department").
func GetDepartmentFromToken(c *fiber.Ctx) (string, error) {
	dept, ok := c.Locals("department").(string)
	if !ok || dept == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Department tidak ditemukan di token")
	}
	return dept, nil
}

// Ambil tahun angkatan (student) dari c.Locals("year"). 0 kalau tidak ada.
func GetYearFromToken(c *fiber.Ctx) int {
	if y, ok := c.Locals("year").(int); ok {
		return y
	}
	if f, ok := c.Locals("year").(float64); ok {
		return int(f)
	}
	return 0
}
