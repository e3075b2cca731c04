package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"

	"member-admin/pkg/discord"
	"member-admin/pkg/errors"

	"github.com/gin-gonic/gin"
)

func newOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, newOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, newOKResp(data))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var (
		validationErr *errors.ValidationError
		httpErr       *errors.HTTPError
	)

	switch {
	case stderrors.As(err, &validationErr):
		return http.StatusBadRequest, Resp{
			ErrorCode: validationErr.Code,
			Message:   validationErr.Error(),
			Errors:    []*errors.ValidationError{validationErr},
		}
	case stderrors.As(err, &httpErr):
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		}
	default:
		if d != nil && err != nil {
			sendDiscordMessageAsync(d, buildInternalServerErrorReport(c, err.Error(), captureStackTrace()))
		}
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends the error response for err. Unknown errors become 500 and are reported to d.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends the mapped HTTPError, else falls back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			Error(c, httpErr, nil)
			return
		}
	}
	Error(c, err, d)
}

// PanicError handles a recovered panic value and sends a 500 response.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		frame, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return stackTrace
}
