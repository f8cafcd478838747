package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Code    string   `json:"error_code"`
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

var exposeInternal atomic.Bool

func init() {
	exposeInternal.Store(true)
}

// ExposeInternal controls whether 5xx bodies carry the raw error string.
// It is set once at startup, production turns it off.
func ExposeInternal(on bool) {
	exposeInternal.Store(on)
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Invalid answers 400 with one detail line per rejected field.
func Invalid(c *gin.Context, code, message string, err error) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    code,
		Message: message,
		Details: details(err),
	})
}

// Internal logs err and answers 500. The raw error only reaches the
// client when ExposeInternal is on.
func Internal(c *gin.Context, code, message string, err error) {
	log.Error().
		Err(err).
		Str("error_code", code).
		Str("path", c.FullPath()).
		Str("request_id", c.GetString("requestID")).
		Msg(message)

	body := HTTPError{Code: code, Message: message}
	if err != nil && exposeInternal.Load() {
		body.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func details(err error) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if fe.Param() != "" {
				out = append(out, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
				continue
			}
			out = append(out, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
		}
		return out
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}

	return []string{err.Error()}
}
