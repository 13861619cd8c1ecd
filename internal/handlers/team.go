package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/directory"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/types"
)

type CreateTeamRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
}

type RenameTeamRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
}

type DeleteTeamRequest struct {
	TeamID uint `form:"team_id" json:"team_id" binding:"required"`
}

type TeamHandler struct {
	directory *directory.Service
}

func NewTeamHandler(svc *directory.Service) *TeamHandler {
	return &TeamHandler{directory: svc}
}

func (h *TeamHandler) ListTeams(ctx *gin.Context) {
	teams, err := h.directory.ListTeams(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.TeamResponse, 0, len(teams))

	for _, team := range teams {
		response = append(response, types.TeamResponse{ID: team.ID, Name: team.Name})
	}

	ctx.JSON(http.StatusOK, gin.H{"teams": response})
}

func (h *TeamHandler) GetTeam(ctx *gin.Context) {
	teamID, ok := parseID(ctx, "teamId")
	if !ok {
		return
	}

	team, members, err := h.directory.GetTeam(ctx.Request.Context(), teamID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"team": teamDetail(team, members)})
}

func (h *TeamHandler) CreateTeam(ctx *gin.Context) {
	var body CreateTeamRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	team, err := h.directory.CreateTeam(ctx.Request.Context(), body.Name)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"team": types.TeamResponse{ID: team.ID, Name: team.Name}})
}

func (h *TeamHandler) RenameTeam(ctx *gin.Context) {
	teamID, ok := parseID(ctx, "teamId")
	if !ok {
		return
	}

	var body RenameTeamRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	team, members, err := h.directory.RenameTeam(ctx.Request.Context(), teamID, body.Name)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"team": teamDetail(team, members)})
}

func (h *TeamHandler) DeleteTeam(ctx *gin.Context) {
	var body DeleteTeamRequest

	if err := ctx.ShouldBind(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.directory.DeleteTeam(ctx.Request.Context(), body.TeamID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func teamDetail(team *models.Team, members []models.User) types.TeamDetailResponse {
	detail := types.TeamDetailResponse{
		ID:      team.ID,
		Name:    team.Name,
		Members: make([]types.UserResponse, 0, len(members)),
	}

	for _, member := range members {
		detail.Members = append(detail.Members, types.UserResponse{
			ID:        member.ID,
			Username:  member.Username,
			FirstName: member.FirstName,
			LastName:  member.LastName,
			Function:  member.Function,
			Team:      team.Name,
		})
	}

	return detail
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}

	return uint(id), true
}
