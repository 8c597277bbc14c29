package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/facturio/facturio-api/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestOKEnvelope(t *testing.T) {
	c, w := testContext()

	OK(c, "Done", gin.H{"answer": 42})

	assert.Equal(t, 200, w.Code)
	body := decode(t, w)
	assert.True(t, body.Success)
	assert.Equal(t, "Done", body.Message)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.Timestamp)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestMetaReusesMiddlewareRequestID(t *testing.T) {
	c, w := testContext()
	c.Set("request_id", "req-from-logger")

	OK(c, "Done", nil)

	body := decode(t, w)
	require.NotNil(t, body.Meta)
	assert.Equal(t, "req-from-logger", body.Meta.RequestID)
}

func TestErrorMapsAppError(t *testing.T) {
	c, w := testContext()

	Error(c, apperror.NewNotFoundError("Client"))

	assert.Equal(t, 404, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "Client")
}

func TestErrorWrapsUnknownErrors(t *testing.T) {
	c, w := testContext()

	Error(c, assert.AnError)

	assert.Equal(t, 500, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
}
