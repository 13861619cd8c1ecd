package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/directory"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/types"
)

type UpdateUserRequest struct {
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Function  string `form:"function" json:"function"`
	Team      string `form:"team" json:"team"`
}

type DeleteUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
}

type SearchUserRequest struct {
	FirstName string `form:"first_name" json:"first_name" binding:"required"`
}

type UserHandler struct {
	directory *directory.Service
}

func NewUserHandler(svc *directory.Service) *UserHandler {
	return &UserHandler{directory: svc}
}

func (h *UserHandler) ListUsers(ctx *gin.Context) {
	users, err := h.directory.ListUsers(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": userResponses(users)})
}

func (h *UserHandler) GetUser(ctx *gin.Context) {
	userID, ok := parseID(ctx, "userId")
	if !ok {
		return
	}

	user, err := h.directory.GetUser(ctx.Request.Context(), userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": userResponse(*user)})
}

// UpdateUser edits the profile, including team reassignment by team name.
func (h *UserHandler) UpdateUser(ctx *gin.Context) {
	userID, ok := parseID(ctx, "userId")
	if !ok {
		return
	}

	var body UpdateUserRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.directory.UpdateProfile(ctx.Request.Context(), userID, directory.ProfileUpdate{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Function:  body.Function,
		TeamName:  body.Team,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": userResponse(*user)})
}

func (h *UserHandler) DeleteUser(ctx *gin.Context) {
	var body DeleteUserRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.directory.DeleteUserByLogin(ctx.Request.Context(), body.Username); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *UserHandler) SearchUsers(ctx *gin.Context) {
	var body SearchUserRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	users, err := h.directory.SearchUsers(ctx.Request.Context(), body.FirstName)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": userResponses(users)})
}

func userResponse(user models.User) types.UserResponse {
	response := types.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Function:  user.Function,
	}

	if user.Team != nil {
		response.Team = user.Team.Name
	}

	return response
}

func userResponses(users []models.User) []types.UserResponse {
	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, userResponse(user))
	}

	return response
}
