package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

type recordedRequest struct {
	body    map[string]any
	headers map[string]string
}

type scriptedResponse struct {
	status int
	body   any
}

// ApiMock is an HTTP server that records the requests it receives and replies
// with scripted responses. Responses are keyed by method and path, where a "*"
// path segment matches any value, and optionally by the index of the call.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]recordedRequest
	responses map[string]map[int]scriptedResponse
	defaults  map[string]scriptedResponse
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]recordedRequest{},
		responses: map[string]map[int]scriptedResponse{},
		defaults:  map[string]scriptedResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	req := recordedRequest{body: body, headers: map[string]string{}}
	for key, value := range r.Header {
		req.headers[key] = value[0]
	}

	a.mu.Lock()
	key := r.Method + r.URL.Path
	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], req)
	resp := a.responseFor(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	out, _ := json.Marshal(resp.body)
	_, _ = w.Write(out)
}

// SetResponse scripts the reply for the index-th call. An index of -1 sets the default reply.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	scripted := scriptedResponse{status: status, body: response}
	if index == -1 {
		a.defaults[key] = scripted
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]scriptedResponse{}
	}
	a.responses[key][index] = scripted
}

// RequestCount returns how many calls reached method and path.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	if req, ok := a.request(method, path, index); ok {
		return req.body
	}
	return nil
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	if req, ok := a.request(method, path, index); ok {
		return req.headers
	}
	return nil
}

// ClearResponses forgets the requests and scripted replies of every key starting with method and path.
func (a *ApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	prefix := method + path
	for key := range a.requests {
		if strings.HasPrefix(key, prefix) {
			delete(a.requests, key)
		}
	}
	for key := range a.responses {
		if strings.HasPrefix(key, prefix) {
			delete(a.responses, key)
		}
	}
	for key := range a.defaults {
		if strings.HasPrefix(key, prefix) {
			delete(a.defaults, key)
		}
	}
}

func (a *ApiMock) request(method, path string, index int) (recordedRequest, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	reqs := a.requests[method+path]
	if index < 0 || index >= len(reqs) {
		return recordedRequest{}, false
	}
	return reqs[index], true
}

// responseFor must be called with the lock held.
func (a *ApiMock) responseFor(method, path string, index int) scriptedResponse {
	for key, byIndex := range a.responses {
		if matchKey(key, method, path) {
			if resp, ok := byIndex[index]; ok && resp.status != 0 {
				return resp
			}
		}
	}
	for key, resp := range a.defaults {
		if matchKey(key, method, path) && resp.status != 0 {
			return resp
		}
	}
	return scriptedResponse{status: http.StatusOK, body: map[string]any{}}
}

func matchKey(key, method, path string) bool {
	if !strings.HasPrefix(key, method) {
		return false
	}
	pattern := strings.TrimPrefix(key, method)
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
