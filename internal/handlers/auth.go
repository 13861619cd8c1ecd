package handlers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/auth"
	"github.com/staffdesk-dev/staffdesk/internal/types"
	"github.com/staffdesk-dev/staffdesk/internal/utils"
)

type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

type AuthHandler struct {
	credentials *auth.Credentials
	sessions    *auth.SessionManager
	sessionTTL  time.Duration
}

func NewAuthHandler(credentials *auth.Credentials, sessions *auth.SessionManager, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

func (h *AuthHandler) ShowRegister(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "register"})
}

// Register creates an identity and immediately establishes a session, the
// same way a successful login would.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.credentials.Register(ctx.Request.Context(), body.Username, body.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := h.startSession(ctx, user.ID); err != nil {
		log.Printf("Failed to create session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user": types.UserResponse{
			ID:       user.ID,
			Username: user.Username,
		},
	})
}

func (h *AuthHandler) ShowLogin(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "login"})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.credentials.Verify(ctx.Request.Context(), body.Username, body.Password)

	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := h.startSession(ctx, user.ID); err != nil {
		log.Printf("Failed to create session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Function:  user.Function,
		},
	})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(auth.SessionCookie); err == nil {
		h.sessions.Destroy(token)
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   Domain,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	ctx.Redirect(http.StatusFound, types.LoginPath)
}

// Home is the landing page behind the authentication gate.
func (h *AuthHandler) Home(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, types.LoginPath)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:        currentUser.ID,
			Username:  currentUser.Username,
			FirstName: currentUser.FirstName,
			LastName:  currentUser.LastName,
		},
	})
}

func (h *AuthHandler) startSession(ctx *gin.Context, userID uint) error {
	token, err := h.sessions.Create(userID)

	if err != nil {
		return err
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   int(h.sessionTTL.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
