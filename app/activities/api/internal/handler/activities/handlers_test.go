package activities

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"school-activities/app/activities/api/internal/config"
	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"
	"school-activities/common/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

func TestMain(m *testing.M) {
	logx.Disable()
	// 生产环境在 main 里安装，测试需要同样的错误转换
	response.SetupGlobalErrorHandler()
	os.Exit(m.Run())
}

func newTestServiceContext(enforceCapacity bool) *svc.ServiceContext {
	var c config.Config
	c.Catalog.EnforceCapacity = enforceCapacity
	return svc.NewServiceContext(c)
}

// doSignup 通过真实 handler 发起报名请求
func doSignup(svcCtx *svc.ServiceContext, activity, email string) *httptest.ResponseRecorder {
	target := fmt.Sprintf("/activities/%s/signup", url.PathEscape(activity))
	if email != "" {
		target += "?email=" + url.QueryEscape(email)
	}
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req = pathvar.WithVars(req, map[string]string{"name": activity})

	rr := httptest.NewRecorder()
	SignupHandler(svcCtx)(rr, req)
	return rr
}

// doUnregister 通过真实 handler 发起退出请求
func doUnregister(svcCtx *svc.ServiceContext, activity, email string) *httptest.ResponseRecorder {
	target := fmt.Sprintf("/activities/%s/unregister?email=%s",
		url.PathEscape(activity), url.QueryEscape(email))
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	req = pathvar.WithVars(req, map[string]string{"name": activity})

	rr := httptest.NewRecorder()
	UnregisterHandler(svcCtx)(rr, req)
	return rr
}

func doList(svcCtx *svc.ServiceContext) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	rr := httptest.NewRecorder()
	ListActivitiesHandler(svcCtx)(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp types.MessageResp
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Detail
}

func TestListActivitiesHandler(t *testing.T) {
	svcCtx := newTestServiceContext(false)

	rr := doList(svcCtx)
	require.Equal(t, http.StatusOK, rr.Code)

	var data map[string]types.ActivityInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &data))
	require.Len(t, data, 9)

	chess, ok := data["Chess Club"]
	require.True(t, ok)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Contains(t, chess.Participants, "michael@mergington.edu")
	assert.NotEmpty(t, chess.Description)
	assert.NotEmpty(t, chess.Schedule)
}

func TestListActivitiesKeyOrder(t *testing.T) {
	svcCtx := newTestServiceContext(false)

	body := doList(svcCtx).Body.String()

	// JSON 对象键顺序与目录插入顺序一致（默认 map 序列化会按字母排序）
	prev := -1
	for _, name := range []string{"Chess Club", "Programming Class", "Gym Class", "Tennis Club", "Art Studio"} {
		idx := strings.Index(body, `"`+name+`"`)
		require.Greater(t, idx, prev, "activity %q out of order", name)
		prev = idx
	}
}

func TestSignupHandlerSuccess(t *testing.T) {
	svcCtx := newTestServiceContext(false)
	email := "newstudent@mergington.edu"

	rr := doSignup(svcCtx, "Chess Club", email)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", decodeMessage(t, rr))

	var data map[string]types.ActivityInfo
	require.NoError(t, json.Unmarshal(doList(svcCtx).Body.Bytes(), &data))
	assert.Contains(t, data["Chess Club"].Participants, email)
}

func TestSignupHandlerDuplicate(t *testing.T) {
	svcCtx := newTestServiceContext(false)

	rr := doSignup(svcCtx, "Chess Club", "michael@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "already signed up")
}

func TestSignupHandlerUnknownActivity(t *testing.T) {
	svcCtx := newTestServiceContext(false)

	rr := doSignup(svcCtx, "Nonexistent Club", "test@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Activity not found", decodeDetail(t, rr))
}

func TestSignupHandlerMissingEmail(t *testing.T) {
	svcCtx := newTestServiceContext(false)

	rr := doSignup(svcCtx, "Chess Club", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NotEmpty(t, decodeDetail(t, rr))
}

func TestSignupHandlerInvalidEmail(t *testing.T) {
	svcCtx := newTestServiceContext(false)

	rr := doSignup(svcCtx, "Chess Club", "not-an-email")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "email")
}

func TestSignupHandlerFullActivity(t *testing.T) {
	svcCtx := newTestServiceContext(true)

	// Tennis Club 容量 10，种子两人，补满后再报名会被拒绝
	for i := 0; i < 8; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)
		require.Equal(t, http.StatusOK, doSignup(svcCtx, "Tennis Club", email).Code)
	}

	rr := doSignup(svcCtx, "Tennis Club", "overflow@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "full")
}

func TestUnregisterHandlerSuccess(t *testing.T) {
	svcCtx := newTestServiceContext(false)
	email := "michael@mergington.edu"

	rr := doUnregister(svcCtx, "Chess Club", email)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", decodeMessage(t, rr))

	var data map[string]types.ActivityInfo
	require.NoError(t, json.Unmarshal(doList(svcCtx).Body.Bytes(), &data))
	assert.NotContains(t, data["Chess Club"].Participants, email)

	// 重复退出返回 400
	rr = doUnregister(svcCtx, "Chess Club", email)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "not registered")
}

func TestUnregisterHandlerUnknownActivity(t *testing.T) {
	svcCtx := newTestServiceContext(false)

	rr := doUnregister(svcCtx, "Nonexistent Club", "test@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Activity not found", decodeDetail(t, rr))
}

func TestUnregisterHandlerNotRegistered(t *testing.T) {
	svcCtx := newTestServiceContext(false)

	rr := doUnregister(svcCtx, "Chess Club", "notregistered@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeDetail(t, rr), "not registered")
}

func TestSignupUnregisterSignupAgainFlow(t *testing.T) {
	svcCtx := newTestServiceContext(false)
	email := "testuser@mergington.edu"

	require.Equal(t, http.StatusOK, doSignup(svcCtx, "Programming Class", email).Code)
	require.Equal(t, http.StatusOK, doUnregister(svcCtx, "Programming Class", email).Code)
	require.Equal(t, http.StatusOK, doSignup(svcCtx, "Programming Class", email).Code)

	var data map[string]types.ActivityInfo
	require.NoError(t, json.Unmarshal(doList(svcCtx).Body.Bytes(), &data))
	assert.Contains(t, data["Programming Class"].Participants, email)
}
