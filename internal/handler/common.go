package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
)

var errNoIdentity = errors.New("no authenticated employee in context")

// employeeIdentity reads the display name and team the JWT middleware
// stored in the context.
func employeeIdentity(c echo.Context) (name, team string, err error) {
	n, okName := c.Get("employee_name").(string)
	t, okTeam := c.Get("employee_team").(string)
	if !okName || n == "" {
		return "", "", errNoIdentity
	}
	if !okTeam {
		t = ""
	}
	return n, t, nil
}
