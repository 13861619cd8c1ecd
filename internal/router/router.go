package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/staffdesk-dev/staffdesk/internal/auth"
	"github.com/staffdesk-dev/staffdesk/internal/directory"
	"github.com/staffdesk-dev/staffdesk/internal/handlers"
	"github.com/staffdesk-dev/staffdesk/internal/middleware"
	"github.com/staffdesk-dev/staffdesk/internal/repository"
	"github.com/staffdesk-dev/staffdesk/internal/types"
	"gorm.io/gorm"
)

type Deps struct {
	Conn        *gorm.DB
	Sessions    *auth.SessionManager
	Credentials *auth.Credentials
	Directory   *directory.Service
	Users       repository.UserRepository
	SessionTTL  time.Duration
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handlers.NewAuthHandler(deps.Credentials, deps.Sessions, deps.SessionTTL)
	teamHandler := handlers.NewTeamHandler(deps.Directory)
	userHandler := handlers.NewUserHandler(deps.Directory)
	messageHandler := handlers.NewMessageHandler(deps.Conn)
	noteHandler := handlers.NewNoteHandler(deps.Conn)
	linkHandler := handlers.NewLinkHandler(deps.Conn)

	guard := middleware.AuthRequired(deps.Sessions, deps.Users)

	r.GET("/health", handlers.HealthCheck)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", guard, authHandler.Logout)

	r.GET("/", guard, authHandler.Home)

	teams := r.Group("/teams", guard)
	{
		teams.GET("", teamHandler.ListTeams)
		teams.GET("/:teamId", teamHandler.GetTeam)
		teams.POST("/:teamId/updated", teamHandler.RenameTeam)
		teams.POST("/deleted", teamHandler.DeleteTeam)
	}
	r.POST("/createTeam", guard, teamHandler.CreateTeam)

	users := r.Group("/users", guard)
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:userId", userHandler.GetUser)
		users.POST("/:userId/updated", userHandler.UpdateUser)
		users.POST("/deleted", userHandler.DeleteUser)
		users.POST("/search", userHandler.SearchUsers)
	}

	messages := r.Group("/messages", guard)
	{
		messages.GET("", messageHandler.ListMessages)
		messages.GET("/:messageId", messageHandler.GetMessage)
		messages.POST("/:messageId/updated", messageHandler.UpdateMessage)
		messages.POST("/deleted", messageHandler.DeleteMessage)
	}
	r.POST("/post-message", guard, messageHandler.CreateMessage)

	notes := r.Group("/notes", guard)
	{
		notes.GET("", noteHandler.ListNotes)
		notes.GET("/:noteId", noteHandler.GetNote)
		notes.POST("/:noteId/updated", noteHandler.UpdateNote)
		notes.POST("/deleted", noteHandler.DeleteNote)
	}
	r.POST("/post-note", guard, noteHandler.CreateNote)

	links := r.Group("/links", guard)
	{
		links.GET("", linkHandler.ListLinks)
		links.POST("/deleted", linkHandler.DeleteLink)
	}
	r.POST("/post-link", guard, linkHandler.CreateLink)

	return r
}
