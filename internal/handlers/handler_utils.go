package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"money-manager-server/internal/schemas"
	"money-manager-server/internal/stores"
	"money-manager-server/internal/utils"
)

var (
	errEmailTaken   = errors.New("email address already registered")
	errMissingToken = errors.New("activation token missing from query")
	errNotActivated = errors.New("profile is not activated")
	errNoEmailClaim = errors.New("no email claim in request context")

	errUndeliverableEmail = errors.New("email domain has no MX records")

	errCategoryTaken       = errors.New("category name already used for this type")
	errUnknownCategoryType = errors.New("category type must be income or expense")
)

// currentProfile resolves the authenticated caller from the email claim set
// by the JWT middleware. On failure it writes the error response itself and
// returns ok == false.
func currentProfile(c *gin.Context, profileStore *stores.ProfileStore) (*schemas.Profile, bool) {
	email, exists := c.Get(utils.EmailKey.String())
	if !exists {
		utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errNoEmailClaim)
		return nil, false
	}

	profile, err := profileStore.FindByEmail(c, email.(string))
	if err != nil {
		if err == stores.ErrNotFound {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, err)
			return nil, false
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return nil, false
	}

	return profile, true
}
