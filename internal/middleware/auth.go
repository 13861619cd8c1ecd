package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/auth"
	"github.com/staffdesk-dev/staffdesk/internal/repository"
	"github.com/staffdesk-dev/staffdesk/internal/types"
)

type AuthenticatedUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthRequired gates every protected route. It resolves the session cookie
// via the session manager and threads the authenticated identity through the
// request context; on failure the request is redirected to the login page
// and never reaches the handler.
func AuthRequired(sessions *auth.SessionManager, users repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(auth.SessionCookie)

		if err != nil {
			redirectToLogin(ctx)
			return
		}

		userID, err := sessions.Resolve(token)

		if err != nil {
			redirectToLogin(ctx)
			return
		}

		user, err := users.GetByID(ctx.Request.Context(), userID)

		if err != nil {
			// The session outlived the user record; treat it as dead.
			sessions.Destroy(token)
			redirectToLogin(ctx)
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:        user.ID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
		ctx.Next()
	}
}

func redirectToLogin(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, types.LoginPath)
	ctx.Abort()
}
