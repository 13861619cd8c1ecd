package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/auth"
	"github.com/staffdesk-dev/staffdesk/internal/directory"
	"github.com/staffdesk-dev/staffdesk/internal/models"
	"github.com/staffdesk-dev/staffdesk/internal/repository"
	"github.com/staffdesk-dev/staffdesk/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTeamRouter(t *testing.T) (*gin.Engine, *repository.MockTeamRepository, *http.Cookie) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemoryUserRepo()
	teams := new(repository.MockTeamRepository)

	credentials, err := auth.NewCredentials(users, bcrypt.MinCost)
	require.NoError(t, err)

	sessions := auth.NewSessionManager(time.Hour)
	t.Cleanup(sessions.Stop)

	r := router.NewRouter(router.Deps{
		Sessions:    sessions,
		Credentials: credentials,
		Directory:   directory.NewService(teams, users),
		Users:       users,
		SessionTTL:  time.Hour,
	})

	w := postJSON(t, r, "/register", gin.H{"username": "admin", "password": "secret123"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	return r, teams, sessionCookie(t, w)
}

func TestTeamRoutesRequireAuth(t *testing.T) {
	r, _, _ := setupTeamRouter(t)

	w := get(r, "/teams", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestListTeams(t *testing.T) {
	r, teams, cookie := setupTeamRouter(t)

	listing := []models.Team{{Name: "Engineering"}, {Name: "Sales"}}
	listing[0].ID = 1
	listing[1].ID = 2

	teams.On("List", mock.Anything).Return(listing, nil).Once()

	w := get(r, "/teams", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Engineering")
	assert.Contains(t, w.Body.String(), "Sales")
	teams.AssertExpectations(t)
}

func TestCreateTeamConflict(t *testing.T) {
	r, teams, cookie := setupTeamRouter(t)

	teams.On("Create", mock.Anything, mock.Anything).Return(models.ErrTeamExists).Once()

	w := postJSON(t, r, "/createTeam", gin.H{"name": "Engineering"}, cookie)

	assert.Equal(t, http.StatusConflict, w.Code)
	teams.AssertExpectations(t)
}

func TestGetTeamNotFound(t *testing.T) {
	r, teams, cookie := setupTeamRouter(t)

	teams.On("GetByID", mock.Anything, uint(42)).Return(nil, models.ErrTeamNotFound).Once()

	w := get(r, "/teams/42", cookie)

	assert.Equal(t, http.StatusNotFound, w.Code)
	teams.AssertExpectations(t)
}

func TestDeleteTeam(t *testing.T) {
	r, teams, cookie := setupTeamRouter(t)

	teams.On("Delete", mock.Anything, uint(7)).Return(nil).Once()

	w := postJSON(t, r, "/teams/deleted", gin.H{"team_id": 7}, cookie)

	assert.Equal(t, http.StatusNoContent, w.Code)
	teams.AssertExpectations(t)
}
