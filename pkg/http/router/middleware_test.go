package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitConcurrentRequests(t *testing.T) {
	handler := Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// distinct client ips force concurrent limiter creation
			r := httptest.NewRequest(http.MethodGet, "/api/compareRoutes", nil)
			r.RemoteAddr = fmt.Sprintf("10.0.0.%d:1234", i)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, http.StatusOK, w.Code)
		}(i)
	}
	wg.Wait()
}

func TestLimitRejectsBurstingClient(t *testing.T) {
	handler := Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	limited := false
	for i := 0; i < 100; i++ {
		r := httptest.NewRequest(http.MethodGet, "/api/compareRoutes", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code == http.StatusTooManyRequests {
			limited = true
		}
	}
	assert.True(t, limited)
}
