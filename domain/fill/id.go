package fill

import (
	"github.com/google/uuid"
)

// FillID correlates one fill request across logs and response headers
type FillID string

// NewFillID creates a new unique identifier using UUID v7 for time-ordered generation
func NewFillID() FillID {
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return FillID(id.String())
}

// String returns the string representation
func (id FillID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id FillID) IsEmpty() bool {
	return id == ""
}
