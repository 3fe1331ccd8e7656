package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"anihub/pkg/models"
)

type fakeGenerator struct {
	reply      string
	err        error
	gotHistory []models.ChatMessage
	gotMessage string
}

func (f *fakeGenerator) Generate(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	f.gotHistory = history
	f.gotMessage = message
	return f.reply, f.err
}

func TestSendPassesTranscript(t *testing.T) {
	gen := &fakeGenerator{reply: "Sugoi choice!"}
	a := New(gen)

	history := []models.ChatMessage{
		{ID: "1", Role: models.RoleAssistant, Text: Greeting},
		{ID: "2", Role: models.RoleUser, Text: "recommend me a mecha show"},
	}
	reply := a.Send(context.Background(), history, "something darker?")

	require.Equal(t, "Sugoi choice!", reply)
	require.Equal(t, history, gen.gotHistory)
	require.Equal(t, "something darker?", gen.gotMessage)
}

func TestSendSwallowsFailures(t *testing.T) {
	a := New(&fakeGenerator{err: errors.New("quota exhausted")})

	reply := a.Send(context.Background(), nil, "hello")
	require.Equal(t, failureReply, reply)
}

func TestSendFallsBackOnEmptyReply(t *testing.T) {
	a := New(&fakeGenerator{reply: "   "})

	reply := a.Send(context.Background(), nil, "hello")
	require.Equal(t, emptyReply, reply)
}

func TestChatEndpointNeverErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(New(&fakeGenerator{err: errors.New("boom")})).RegisterRoutes(router.Group("/api"))

	body, _ := json.Marshal(chatReq{Message: "hi"})
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/chat", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Reply models.ChatMessage `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, failureReply, resp.Reply.Text)
	require.Equal(t, models.RoleAssistant, resp.Reply.Role)
	require.NotEmpty(t, resp.Reply.ID)
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(New(&fakeGenerator{reply: "x"})).RegisterRoutes(router.Group("/api"))

	req := httptest.NewRequest(http.MethodPost, "/api/assistant/chat", bytes.NewReader([]byte(`{"message":"  "}`)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
