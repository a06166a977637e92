// Package profile maintains the owner's skill profile and the display
// ordering of their experiences.
package profile

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/careerforge/resume-tailor/internal/types"
)

// ReorderError reports an out-of-range move.
type ReorderError struct {
	ExperienceID uuid.UUID
	ToIndex      int
	Count        int
}

func (e *ReorderError) Error() string {
	return fmt.Sprintf("cannot move experience %s to index %d of %d", e.ExperienceID, e.ToIndex, e.Count)
}

// Reorder moves the identified experience to toIndex and renumbers
// DisplayOrder as a dense 0..N-1 sequence. The input slice is not
// modified.
func Reorder(experiences []types.Experience, id uuid.UUID, toIndex int) ([]types.Experience, error) {
	from := -1
	for i, exp := range experiences {
		if exp.ID == id {
			from = i
			break
		}
	}
	if from < 0 || toIndex < 0 || toIndex >= len(experiences) {
		return nil, &ReorderError{ExperienceID: id, ToIndex: toIndex, Count: len(experiences)}
	}

	moved := experiences[from]
	rest := make([]types.Experience, 0, len(experiences)-1)
	rest = append(rest, experiences[:from]...)
	rest = append(rest, experiences[from+1:]...)

	out := make([]types.Experience, 0, len(experiences))
	out = append(out, rest[:toIndex]...)
	out = append(out, moved)
	out = append(out, rest[toIndex:]...)

	for i := range out {
		out[i].DisplayOrder = i
	}
	return out, nil
}
