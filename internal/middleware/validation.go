package middleware

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"

	"money-manager-server/internal/schemas"
	"money-manager-server/internal/utils"
)

// ValidateAndSanitizeStruct binds the request body into a fresh copy of obj,
// strips markup from its string fields and validates it. The sanitized
// payload is stored in the context for the handler.
func ValidateAndSanitizeStruct(obj interface{}) gin.HandlerFunc {
	objType := reflect.TypeOf(obj).Elem()

	return func(c *gin.Context) {
		payload := reflect.New(objType).Interface()

		if err := c.ShouldBindJSON(payload); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		validator := utils.GetValidator()
		validator.SanitizeData(payload)

		if err := validator.Validate.Struct(payload); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		c.Set(utils.SanitizedPayloadKey.String(), payload)
		c.Next()
	}
}

// SanitizedPayload retrieves the payload stored by ValidateAndSanitizeStruct.
func SanitizedPayload[T any](c *gin.Context) (*T, error) {
	value, exists := c.Get(utils.SanitizedPayloadKey.String())
	if !exists {
		return nil, errors.New("no sanitized payload in context")
	}
	payload, ok := value.(*T)
	if !ok {
		return nil, errors.New("sanitized payload has unexpected type")
	}
	return payload, nil
}
