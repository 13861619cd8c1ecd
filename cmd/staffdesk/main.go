package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/staffdesk-dev/staffdesk/db"
	"github.com/staffdesk-dev/staffdesk/internal/auth"
	"github.com/staffdesk-dev/staffdesk/internal/directory"
	"github.com/staffdesk-dev/staffdesk/internal/repository"
	"github.com/staffdesk-dev/staffdesk/internal/router"
)

const sweepInterval = 10 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	conn, err := db.ConnectDatabase(dsn)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	sessionTTL := 168 * time.Hour

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL: %v", err)
		}
		sessionTTL = parsed
	}

	bcryptCost := 0

	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		parsed, err := strconv.Atoi(cost)
		if err != nil {
			log.Fatalf("Invalid BCRYPT_COST: %v", err)
		}
		bcryptCost = parsed
	}

	users := repository.NewUserRepository(conn)
	teams := repository.NewTeamRepository(conn)

	credentials, err := auth.NewCredentials(users, bcryptCost)

	if err != nil {
		log.Fatalf("Failed to initialize credential store: %v", err)
	}

	sessions := auth.NewSessionManager(sessionTTL)
	sessions.StartSweeper(sweepInterval)
	defer sessions.Stop()

	r := router.NewRouter(router.Deps{
		Conn:        conn,
		Sessions:    sessions,
		Credentials: credentials,
		Directory:   directory.NewService(teams, users),
		Users:       users,
		SessionTTL:  sessionTTL,
	})

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
