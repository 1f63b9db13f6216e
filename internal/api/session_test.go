// internal/api/session_test.go
package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xibbaz/internal/metrics"
	"xibbaz/internal/objects"
)

type rpcRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
	ID      int            `json:"id"`
	Auth    *string        `json:"auth"`
}

// fakeZabbix is a canned JSON-RPC endpoint. It records every request and
// answers with the queued raw bodies in order, falling back to an empty
// result list.
type fakeZabbix struct {
	requests []rpcRequest
	replies  []string
}

func newFakeZabbix(t *testing.T) (*fakeZabbix, *Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := &fakeZabbix{}
	router := gin.New()
	router.POST("/api_jsonrpc.php", f.handle)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return f, NewSession(srv.URL, srv.Client())
}

func (f *fakeZabbix) handle(c *gin.Context) {
	var req rpcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "unreadable request")
		return
	}
	f.requests = append(f.requests, req)
	body := `{"jsonrpc":"2.0","result":[],"id":0}`
	if len(f.replies) > 0 {
		body = f.replies[0]
		f.replies = f.replies[1:]
	}
	c.Data(http.StatusOK, "application/json", []byte(body))
}

func (f *fakeZabbix) queue(bodies ...string) {
	f.replies = append(f.replies, bodies...)
}

func TestLoginAttachesToken(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","result":"0424bd59b807674191e7d77572075f33","id":0}`)

	assert.False(t, sess.Authenticated())
	ok, err := sess.Login("Admin", "zabbix")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, sess.Authenticated())

	_, err = sess.Call("apiinfo.version", nil)
	require.NoError(t, err)

	require.Len(t, f.requests, 2)
	login, call := f.requests[0], f.requests[1]
	assert.Equal(t, "2.0", login.JSONRPC)
	assert.Equal(t, "user.login", login.Method)
	assert.Equal(t, map[string]any{"user": "Admin", "password": "zabbix"}, login.Params)
	assert.Nil(t, login.Auth)
	assert.Equal(t, 0, login.ID)

	require.NotNil(t, call.Auth)
	assert.Equal(t, "0424bd59b807674191e7d77572075f33", *call.Auth)
	assert.Equal(t, 1, call.ID)
}

func TestLoginRejectedCredentials(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params.","data":"Login name or password is incorrect."},"id":0}`)

	ok, err := sess.Login("Admin", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, sess.Authenticated())
}

func TestLoginOtherRemoteErrorPropagates(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","error":{"code":-32500,"message":"Application error.","data":"No permissions to call \"user.login\"."},"id":0}`)

	_, err := sess.Login("Admin", "zabbix")
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, -32500, remote.Code)
}

func TestCallRemoteErrorVerbatim(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params.","data":"No permissions to referred object or it does not exist!"},"id":0}`)

	_, err := sess.Call("host.get", map[string]any{"hostids": "9999"})
	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, -32602, remote.Code)
	assert.Equal(t, "Invalid params.", remote.Message)
	assert.Equal(t, "No permissions to referred object or it does not exist!", remote.Data)
}

func TestCallEmptyReply(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(``)

	_, err := sess.Call("host.get", nil)
	var invalid *InvalidReplyError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "empty reply", invalid.Reason)
}

func TestCallUnparseableReply(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`<html>It works!</html>`)

	_, err := sess.Call("host.get", nil)
	var invalid *InvalidReplyError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "invalid json", invalid.Reason)
	assert.Contains(t, invalid.Body, "It works!")
}

func TestCallNilParamsBecomeEmptyObject(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","result":"3.0.1","id":0}`)

	_, err := sess.Call("apiinfo.version", nil)
	require.NoError(t, err)
	require.Len(t, f.requests, 1)
	assert.NotNil(t, f.requests[0].Params)
	assert.Empty(t, f.requests[0].Params)
}

func TestFetchAddsDefaultSelects(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","result":[{"groupid":"2","name":"Linux servers"}],"id":0}`)

	groups, err := sess.Fetch(objects.KindGroup, map[string]any{"selectHosts": "extend"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Linux servers", groups[0].Text())

	req := f.requests[0]
	assert.Equal(t, "hostgroup.get", req.Method)
	// Caller's value wins; the rest of the schema's selects fill in.
	assert.Equal(t, "extend", req.Params["selectHosts"])
	assert.Equal(t, true, req.Params["selectTemplates"])
}

func TestFetchBadResultShape(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","result":"0424bd59","id":0}`)

	_, err := sess.Fetch(objects.KindGroup, nil)
	var invalid *InvalidReplyError
	require.ErrorAs(t, err, &invalid)
}

func TestFetchOneByNameAndByID(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(
		`{"jsonrpc":"2.0","result":[{"hostid":"10084","name":"web1"}],"id":0}`,
		`{"jsonrpc":"2.0","result":[{"hostid":"10084","name":"web1"}],"id":1}`,
	)

	h, err := sess.FetchOne(objects.KindHost, "web1")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "10084", h.ID())
	filter := f.requests[0].Params["filter"].(map[string]any)
	assert.Equal(t, "web1", filter["name"])

	h, err = sess.FetchOne(objects.KindHost, "10084")
	require.NoError(t, err)
	require.NotNil(t, h)
	filter = f.requests[1].Params["filter"].(map[string]any)
	assert.Equal(t, "10084", filter["hostids"])
}

func TestFetchOneNoMatch(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","result":[],"id":0}`)

	h, err := sess.FetchOne(objects.KindHost, "nosuch")
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestFetchOneAmbiguous(t *testing.T) {
	f, sess := newFakeZabbix(t)
	f.queue(`{"jsonrpc":"2.0","result":[{"hostid":"1","name":"dup"},{"hostid":"2","name":"dup"}],"id":0}`)

	_, err := sess.FetchOne(objects.KindHost, "dup")
	var ambiguous *AmbiguousFilterError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, objects.KindHost, ambiguous.Kind)
	assert.Equal(t, 2, ambiguous.Matched)
}

func TestCallRecordsFailureOnTruncatedBody(t *testing.T) {
	// Advertise a longer body than is sent; reading the reply then fails
	// mid-stream.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.Write([]byte(`{"jsonrpc":`))
	}))
	t.Cleanup(srv.Close)
	sess := NewSession(srv.URL, srv.Client())
	sess.SetMetrics(metrics.NewCollector())

	before := testutil.ToFloat64(metrics.CallTotal.WithLabelValues("host.get", "error"))
	_, err := sess.Call("host.get", nil)
	var invalid *InvalidReplyError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "reading body")
	after := testutil.ToFloat64(metrics.CallTotal.WithLabelValues("host.get", "error"))
	assert.Equal(t, before+1, after)
}

func TestRequestIDsAreSequential(t *testing.T) {
	f, sess := newFakeZabbix(t)
	for i := 0; i < 3; i++ {
		_, err := sess.Call("apiinfo.version", nil)
		require.NoError(t, err)
	}
	require.Len(t, f.requests, 3)
	for i, req := range f.requests {
		assert.Equal(t, i, req.ID)
	}
}
