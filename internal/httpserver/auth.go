package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/talipby/koroglu-site/internal/domain"
	customersvc "github.com/talipby/koroglu-site/internal/service/customer"
)

const userCtxKey = "currentUser"

// identify resolves the bearer token into a user when one is present. It
// never rejects; handlers that need identity use requireUser.
func (h *handlers) identify(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		return
	}
	user, err := h.deps.CustomerSvc.LookupByToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, customersvc.ErrInvalidToken) {
			return
		}
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Set(userCtxKey, user)
}

func requireUser(c *gin.Context) {
	if currentUser(c) == nil {
		respondError(c, http.StatusUnauthorized, "authentication required")
	}
}

func requireAdmin(c *gin.Context) {
	user := currentUser(c)
	if user == nil || !user.IsAdmin() {
		respondError(c, http.StatusForbidden, "admin access required")
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

type signupRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
}

type tokenRequest struct {
	GrantType string `form:"grant_type" binding:"required"`
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	RefreshToken string      `json:"refresh_token"`
	User         domain.User `json:"user"`
}

func (h *handlers) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid signup payload")
		return
	}
	user, err := h.deps.CustomerSvc.Signup(c.Request.Context(), customersvc.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			respondError(c, http.StatusConflict, "email already registered")
			return
		}
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *handlers) token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid token request")
		return
	}
	if req.GrantType != "password" {
		respondError(c, http.StatusBadRequest, "unsupported grant_type")
		return
	}
	user, access, refresh, err := h.deps.CustomerSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, customersvc.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  access,
		TokenType:    "Bearer",
		ExpiresIn:    h.deps.CustomerSvc.AccessTTLSeconds(),
		RefreshToken: refresh,
		User:         *user,
	})
}

func (h *handlers) logout(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		h.deps.CustomerSvc.Logout(c.Request.Context(), token)
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
