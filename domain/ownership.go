package domain

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotRecipeOwner = errors.New("you are not the owner of this recipe")

// AssertOwner is the single ownership check applied before any mutation of
// a recipe or of the quantities/methods hanging off it. A recipe with no
// owner cannot be mutated through the API.
func AssertOwner(ownerID *uuid.UUID, userID string) error {
	if ownerID == nil || ownerID.String() != userID {
		return ErrNotRecipeOwner
	}
	return nil
}
