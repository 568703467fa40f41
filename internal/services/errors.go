package services

import (
	"fmt"

	"report-service/internal/models"

	"github.com/google/uuid"
)

// ApplicationNotFoundError is returned when no application exists for the
// requested identifier.
type ApplicationNotFoundError struct {
	ID uuid.UUID
}

func (e *ApplicationNotFoundError) Error() string {
	return fmt.Sprintf("application %s not found", e.ID)
}

// UnsupportedStateError is returned when the application's current state has
// no associated document template.
type UnsupportedStateError struct {
	State models.ApplicationState
}

func (e *UnsupportedStateError) Error() string {
	return fmt.Sprintf("no status document is defined for application state %q", e.State)
}
