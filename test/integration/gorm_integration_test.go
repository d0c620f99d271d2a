package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"anichat-be/internal/entity"
	"anichat-be/internal/repository/unitofwork"
	"anichat-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	ctx := context.Background()

	user := &entity.User{
		Id:        uuid.New(),
		Email:     "test-integration-" + uuid.New().String() + "@example.com",
		FirstName: "Integration",
		LastName:  "Test",
	}

	t.Run("Check User Upsert", func(t *testing.T) {
		assert.NoError(t, uow.UserRepository().Upsert(ctx, user))
		// Second upsert on the same id must not fail.
		assert.NoError(t, uow.UserRepository().Upsert(ctx, user))

		found, err := uow.UserRepository().FindById(ctx, user.Id)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, user.Email, found.Email)
	})

	t.Run("Check Session And Message Round Trip", func(t *testing.T) {
		session := &entity.ChatSession{
			Id:     uuid.New(),
			UserId: user.Id,
			Title:  "Integration session",
		}
		assert.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

		msg := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Role:          entity.MessageRoleUser,
			Content:       "hello from integration",
		}
		assert.NoError(t, uow.ChatMessageRepository().Create(ctx, msg))

		history, err := uow.ChatMessageRepository().FindAllBySessionId(ctx, session.Id)
		assert.NoError(t, err)
		assert.Len(t, history, 1)
		assert.Equal(t, "hello from integration", history[0].Content)

		// Cleanup inside a transaction
		assert.NoError(t, uow.Begin(ctx))
		assert.NoError(t, uow.ChatMessageRepository().DeleteBySessionId(ctx, session.Id))
		assert.NoError(t, uow.ChatSessionRepository().Delete(ctx, session.Id))
		assert.NoError(t, uow.Commit())

		gone, err := uow.ChatSessionRepository().FindById(ctx, session.Id)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})
}
