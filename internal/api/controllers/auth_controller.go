package controllers

import (
	"net/http"
	"strings"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

// SignUp registers a new user with the managed auth service.
func (a *AuthController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Account created successfully")
}

func (a *AuthController) SignIn(c *gin.Context) {
	var req request_models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := a.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Signed in successfully")
}

func (a *AuthController) SignOut(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing access token")
		return
	}

	if err := a.authService.SignOut(c.Request.Context(), token); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Signed out successfully")
}

func (a *AuthController) GetUser(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing access token")
		return
	}

	user, err := a.authService.GetUser(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User fetched successfully")
}
