// Package handlers implements the HTTP-facing operations of the server.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"money-manager-server/internal/managers"
	"money-manager-server/internal/middleware"
	"money-manager-server/internal/schemas"
	"money-manager-server/internal/stores"
	"money-manager-server/internal/utils"
)

type ProfileHdl interface {
	RegisterProfile(c *gin.Context)
	ActivateProfile(c *gin.Context)
	LoginProfile(c *gin.Context)
	GetProfile(c *gin.Context)
}

type ProfileHandler struct {
	ProfileStore  *stores.ProfileStore
	JWTManager    managers.JWTMgr
	MailManager   managers.MailMgr
	ActivationURL string
	// VerifyEmailMX additionally checks the MX records of the email domain
	// during registration.
	VerifyEmailMX bool
}

func NewProfileHandler(profileStore *stores.ProfileStore, jwtManager managers.JWTMgr, mailManager managers.MailMgr, activationURL string, verifyEmailMX bool) ProfileHdl {
	return &ProfileHandler{
		ProfileStore:  profileStore,
		JWTManager:    jwtManager,
		MailManager:   mailManager,
		ActivationURL: activationURL,
		VerifyEmailMX: verifyEmailMX,
	}
}

// RegisterProfile creates a new inactive profile and mails its activation
// link. A failed dispatch is logged but never rolls back the registration.
func (handler *ProfileHandler) RegisterProfile(c *gin.Context) {
	registrationRequest, err := middleware.SanitizedPayload[schemas.RegistrationRequest](c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	if handler.VerifyEmailMX && !utils.GetValidator().VerifyEmail(registrationRequest.Email) {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, errUndeliverableEmail)
		return
	}

	taken, err := handler.ProfileStore.EmailExists(c, registrationRequest.Email)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}
	if taken {
		utils.WriteAndLogError(c, schemas.EmailTaken, http.StatusConflict, errEmailTaken)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registrationRequest.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	activationToken := uuid.New().String()
	now := time.Now()
	profile := &schemas.Profile{
		ID:              uuid.New(),
		FullName:        registrationRequest.FullName,
		Email:           registrationRequest.Email,
		Password:        string(hashedPassword),
		ProfileImageURL: registrationRequest.ProfileImageURL,
		ActivationToken: &activationToken,
		IsActive:        false,
		CreatedAt:       &now,
		UpdatedAt:       &now,
	}

	if err := handler.ProfileStore.Save(c, profile); err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	activationLink := handler.ActivationURL + "/activate?token=" + activationToken
	if err := handler.MailManager.SendActivationMail(profile.Email, profile.FullName, activationLink); err != nil {
		log.WithError(err).Warn("Activation mail could not be sent to " + profile.Email)
	}

	utils.WriteAndLogResponse(c, schemas.NewProfileDTO(profile), http.StatusCreated)
}

// ActivateProfile redeems an activation token. Redeeming an already-used
// token re-sets the active flag and still reports success.
func (handler *ProfileHandler) ActivateProfile(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, errMissingToken)
		return
	}

	profile, err := handler.ProfileStore.FindByActivationToken(c, token)
	if err != nil {
		if err == stores.ErrNotFound {
			utils.WriteAndLogError(c, schemas.ActivationTokenNotFound, http.StatusNotFound, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	profile.IsActive = true
	profile.UpdatedAt = &now
	if err := handler.ProfileStore.Save(c, profile); err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, &schemas.MessageDTO{Message: "Profile activated successfully"}, http.StatusOK)
}

// LoginProfile verifies the credentials and issues a session token.
// Unknown email and wrong password produce the same generic response; the
// activation state is only checked after the credentials verified.
func (handler *ProfileHandler) LoginProfile(c *gin.Context) {
	loginRequest, err := middleware.SanitizedPayload[schemas.LoginRequest](c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	profile, err := handler.ProfileStore.FindByEmail(c, loginRequest.Email)
	if err != nil {
		if err == stores.ErrNotFound {
			utils.WriteAndLogError(c, schemas.InvalidCredentials, http.StatusBadRequest, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(loginRequest.Password)); err != nil {
		utils.WriteAndLogError(c, schemas.InvalidCredentials, http.StatusBadRequest, err)
		return
	}

	if !profile.IsActive {
		utils.WriteAndLogError(c, schemas.ProfileNotActivated, http.StatusForbidden, errNotActivated)
		return
	}

	claims := handler.JWTManager.GenerateClaims(profile.Email)
	token, err := handler.JWTManager.GenerateJWT(claims)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	response := &schemas.LoginResponseDTO{
		Token: token,
		User:  schemas.NewProfileDTO(profile),
	}
	utils.WriteAndLogResponse(c, response, http.StatusOK)
}

// GetProfile returns the public profile of the caller resolved from the
// session token's email claim.
func (handler *ProfileHandler) GetProfile(c *gin.Context) {
	profile, ok := currentProfile(c, handler.ProfileStore)
	if !ok {
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewProfileDTO(profile), http.StatusOK)
}
