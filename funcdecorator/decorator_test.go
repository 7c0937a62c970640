package funcdecorator

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tag(name string, callLog *[]string) Decorator {
	return func(next HandlerFunc) HandlerFunc {
		return func(args ...interface{}) interface{} {
			*callLog = append(*callLog, name)
			return next(args...)
		}
	}
}

func TestWrapFirstDecoratorOutermost(t *testing.T) {
	var callLog []string
	fn := HandlerFunc(func(args ...interface{}) interface{} {
		callLog = append(callLog, "fn")
		return len(args)
	})

	wrapped := Wrap(fn, tag("outer", &callLog), tag("inner", &callLog))
	ret := wrapped(1, 3)

	assert.Equal(t, []string{"outer", "inner", "fn"}, callLog)
	assert.Equal(t, 2, ret)
}

func TestWrapWithoutDecorators(t *testing.T) {
	fn := HandlerFunc(func(args ...interface{}) interface{} { return "ok" })
	assert.Equal(t, "ok", Wrap(fn)())
}

func TestLoggingAndTimingPassThrough(t *testing.T) {
	fn := HandlerFunc(func(args ...interface{}) interface{} { return args[0] })
	wrapped := Wrap(fn, Logging("fn"), Timing("fn"))
	assert.Equal(t, 7, wrapped(7))
}

func TestGreetRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/greet?name=suriya", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello suriya")
}

func TestGreetRouteDefaultName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/greet", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello world")
}
