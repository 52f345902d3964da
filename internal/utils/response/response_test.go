package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/aaravmahajanofficial/cosmetics-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var body response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()

	response.Success(w, http.StatusCreated, map[string]string{"number": "20240501-AB12CD"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	body := decode(t, w)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
}

func TestError(t *testing.T) {
	t.Run("AppError keeps status, code and detail", func(t *testing.T) {
		w := httptest.NewRecorder()

		response.Error(w, appErrors.NothingToOrderError("Nothing in the cart can be ordered").WithDetail("all items out of stock"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, appErrors.ErrCodeNothingToOrder, body.Error.Code)
		assert.Equal(t, []string{"all items out of stock"}, body.Error.Details)
	})

	t.Run("plain errors become 500 without the message", func(t *testing.T) {
		w := httptest.NewRecorder()

		response.Error(w, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, appErrors.ErrCodeInternal, body.Error.Code)
		assert.NotContains(t, body.Error.Message, "pq")
	})
}
