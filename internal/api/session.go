// internal/api/session.go
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"xibbaz/internal/metrics"
	"xibbaz/internal/objects"
)

// Session is the authenticated connection through which every remote call is
// issued. It is strictly synchronous and not safe for concurrent use: the
// request-id counter and the auth token are mutated without locking, so
// callers sharing one Session must serialize access themselves. No call is
// ever retried here; every failure surfaces to the caller.
type Session struct {
	endpoint string
	client   *http.Client
	log      *logrus.Entry
	metrics  *metrics.Collector
	id       int
	auth     *string
}

// NewSession builds a session for the given server address. The endpoint is
// <server>/api_jsonrpc.php. A nil client gets a default with a 30s timeout,
// the only timeout anywhere in this package.
func NewSession(server string, client *http.Client) *Session {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Session{
		endpoint: strings.TrimRight(server, "/") + "/api_jsonrpc.php",
		client:   client,
		log: logrus.WithFields(logrus.Fields{
			"component": "api",
			"session":   uuid.New().String()[:8],
		}),
	}
}

// SetMetrics attaches a call-metrics collector. Optional.
func (s *Session) SetMetrics(c *metrics.Collector) { s.metrics = c }

// Authenticated reports whether a login has succeeded on this session.
func (s *Session) Authenticated() bool { return s.auth != nil }

type request struct {
	JSONRPC string  `json:"jsonrpc"`
	Method  string  `json:"method"`
	Params  any     `json:"params"`
	ID      int     `json:"id"`
	Auth    *string `json:"auth"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RemoteError    `json:"error"`
	ID      any             `json:"id"`
}

// Call sends one JSON-RPC request and blocks for the reply. Ids are handed
// out sequentially starting at 0 and never reset; the auth token rides along
// on every call once Login has stored it (null before that).
func (s *Session) Call(method string, params any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}
	req := request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      s.id,
		Auth:    s.auth,
	}
	s.id++

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", method, err)
	}

	start := time.Now()
	resp, err := s.client.Post(s.endpoint, "application/json-rpc", bytes.NewReader(body))
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCall(method, false, time.Since(start))
		}
		return nil, fmt.Errorf("posting %s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCall(method, false, time.Since(start))
		}
		return nil, &InvalidReplyError{Reason: "reading body: " + err.Error()}
	}
	duration := time.Since(start)

	if len(bytes.TrimSpace(data)) == 0 {
		if s.metrics != nil {
			s.metrics.RecordCall(method, false, duration)
		}
		return nil, &InvalidReplyError{Reason: "empty reply"}
	}
	var reply response
	if err := json.Unmarshal(data, &reply); err != nil {
		if s.metrics != nil {
			s.metrics.RecordCall(method, false, duration)
		}
		return nil, &InvalidReplyError{Reason: "invalid json", Body: string(data)}
	}

	s.log.WithFields(logrus.Fields{
		"method":   method,
		"id":       req.ID,
		"duration": duration,
	}).Debug("api call")
	if s.metrics != nil {
		s.metrics.RecordCall(method, reply.Error == nil, duration)
	}

	if reply.Error != nil {
		return nil, reply.Error
	}
	return reply.Result, nil
}

// Login authenticates the session. A wrong user/password combination is an
// expected outcome and returns false without an error; every other remote or
// transport failure propagates. On success the returned token is attached to
// all subsequent calls until the next login.
func (s *Session) Login(user, password string) (bool, error) {
	result, err := s.Call("user.login", map[string]any{
		"user":     user,
		"password": password,
	})
	if err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) && remote.Code == codeFailedAuth {
			return false, nil
		}
		return false, err
	}
	var token string
	if err := json.Unmarshal(result, &token); err != nil {
		return false, &InvalidReplyError{Reason: "login result is not a token", Body: string(result)}
	}
	if token == "" {
		return false, nil
	}
	s.auth = &token
	return true, nil
}

// Fetch runs <kind>.get with the given params, first adding the schema's
// default relation selections for anything the caller did not specify, and
// constructs one typed Object per returned record.
func (s *Session) Fetch(kind objects.Kind, params map[string]any) ([]*objects.Object, error) {
	schema, ok := objects.SchemaFor(kind)
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	merged := make(map[string]any, len(params)+len(schema.DefaultSelects))
	for k, v := range params {
		merged[k] = v
	}
	for _, sel := range schema.DefaultSelects {
		if _, ok := merged[sel]; !ok {
			merged[sel] = true
		}
	}
	raw, err := s.Call(schema.APIName+".get", merged)
	if err != nil {
		return nil, err
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &InvalidReplyError{
			Reason: fmt.Sprintf("%s.get result is not a record list", schema.APIName),
			Body:   string(raw),
		}
	}
	out := make([]*objects.Object, 0, len(records))
	for _, rec := range records {
		o, err := objects.New(s, kind, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

var allDigits = regexp.MustCompile(`^\d+$`)

// FetchOne looks a single entity up by id or name: an all-digits key filters
// on the identifier field, anything else on the kind's text field. Zero
// matches yield nil; more than one is an AmbiguousFilterError.
func (s *Session) FetchOne(kind objects.Kind, nameOrID string) (*objects.Object, error) {
	schema, ok := objects.SchemaFor(kind)
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	filter := make(map[string]any, 1)
	if allDigits.MatchString(nameOrID) {
		filter[schema.IDParam()] = nameOrID
	} else {
		filter[schema.TextField] = nameOrID
	}
	matches, err := s.Fetch(kind, map[string]any{"filter": filter})
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, &AmbiguousFilterError{Kind: kind, Matched: len(matches)}
	}
}
