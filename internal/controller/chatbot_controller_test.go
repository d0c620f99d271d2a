package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"anichat-be/internal/pkg/serverutils"
	"anichat-be/internal/repository/memory"
	"anichat-be/internal/service"
	"anichat-be/pkg/chatbot"
	"anichat-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubProvider struct {
	reply string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.reply, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	uowFactory := memory.NewRepositoryFactory()
	assistant := chatbot.NewAssistant(&stubProvider{reply: "Konnichiwa!"}, true, 10, 0, nopLogger{})

	chatService := service.NewChatService(uowFactory, assistant, nopLogger{})
	userService := service.NewUserService(uowFactory)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))

	api := app.Group("/api")
	NewAuthController(userService).RegisterRoutes(api)
	NewChatbotController(chatService).RegisterRoutes(api)
	api.Use(func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Route not found"))
	})

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	json.Unmarshal(raw, &env)
	return resp, env
}

func TestUnknownApiRouteStructured404(t *testing.T) {
	app := newTestApp()

	resp, env := doJSON(t, app, http.MethodGet, "/api/does/not/exist", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusNotFound, env.Code)
	assert.Equal(t, "Route not found", env.Message)
}

func TestGetUser(t *testing.T) {
	app := newTestApp()

	resp, env := doJSON(t, app, http.MethodGet, "/api/auth/user", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	app := newTestApp()

	// Create
	resp, env := doJSON(t, app, http.MethodPost, "/api/chat/sessions", map[string]string{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		Id string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.Id)

	// Send a message
	resp, env = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/chat/sessions/%s/messages", created.Id), map[string]string{"content": "hi"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sent struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &sent))
	assert.Equal(t, "Konnichiwa!", sent.Message)

	// History has both turns
	resp, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/chat/sessions/%s/messages", created.Id), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var history []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)

	// List
	resp, env = doJSON(t, app, http.MethodGet, "/api/chat/sessions", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sessions []json.RawMessage
	assert.NoError(t, json.Unmarshal(env.Data, &sessions))
	assert.Len(t, sessions, 1)

	// Delete
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/chat/sessions/%s", created.Id), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/chat/sessions/%s/messages", created.Id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSendMessageMissingContent(t *testing.T) {
	app := newTestApp()

	resp, env := doJSON(t, app, http.MethodPost, "/api/chat/sessions", map[string]string{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		Id string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/chat/sessions/%s/messages", created.Id), map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestMalformedSessionIdIs404(t *testing.T) {
	app := newTestApp()

	resp, env := doJSON(t, app, http.MethodGet, "/api/chat/sessions/not-a-uuid/messages", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "session not found", env.Message)
}

func TestUnknownSessionIs404(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/chat/sessions/6f1e1f7e-df09-4c72-8a3e-111111111111", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
