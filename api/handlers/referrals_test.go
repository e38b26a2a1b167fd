package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"referral-api/internal/config"
	"referral-api/internal/referral"
	"referral-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupReferralTest() (*gin.Engine, *referral.MockRepository) {
	gin.SetMode(gin.TestMode)

	repo := referral.NewMockRepository()
	service := referral.NewService(zap.NewNop(), repo, config.ReferralConfig{
		LinkBase: "https://t.me/tma123_bot",
		Points:   100,
	})

	handler := NewReferralHandler(service, logger.New())

	router := gin.New()
	router.POST("/referrals/", handler.CreateReferral)

	return router, repo
}

func TestCreateReferral_Success(t *testing.T) {
	router, _ := setupReferralTest()

	w := performRequest(router, http.MethodPost, "/referrals/", `{"user_tg_id":"111","friend_tg_id":"222"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "111", response["user_tg_id"])
	assert.Equal(t, "222", response["friend_tg_id"])
	assert.Equal(t, float64(100), response["points"])
	assert.NotEmpty(t, response["date"])
	assert.NotContains(t, response, "id")
}

func TestCreateReferral_Duplicate(t *testing.T) {
	router, _ := setupReferralTest()

	w := performRequest(router, http.MethodPost, "/referrals/", `{"user_tg_id":"A","friend_tg_id":"B"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/referrals/", `{"user_tg_id":"A","friend_tg_id":"B"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Referral already exists", response["detail"])
}

func TestCreateReferral_ReverseDirectionAllowed(t *testing.T) {
	router, _ := setupReferralTest()

	w := performRequest(router, http.MethodPost, "/referrals/", `{"user_tg_id":"A","friend_tg_id":"B"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, "/referrals/", `{"user_tg_id":"B","friend_tg_id":"A"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateReferral_MissingFields(t *testing.T) {
	router, _ := setupReferralTest()

	w := performRequest(router, http.MethodPost, "/referrals/", `{"user_tg_id":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, http.MethodPost, "/referrals/", ``)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReferral_RepositoryFailure(t *testing.T) {
	router, repo := setupReferralTest()
	repo.SetQueryError(assert.AnError)

	w := performRequest(router, http.MethodPost, "/referrals/", `{"user_tg_id":"A","friend_tg_id":"B"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
