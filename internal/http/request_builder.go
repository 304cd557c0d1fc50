package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/domain/dto"
	"github.com/guttosm/coffeemaker-service/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() any {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() any {
			return &dto.ErrorResponse{}
		},
	}
)

// getSuccessResponse retrieves a SuccessResponse from the pool.
func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

// putSuccessResponse returns a SuccessResponse to the pool.
func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ResponseBuilder writes the API envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := getSuccessResponse()

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the response can go back to the pool right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// NoContent sends a bare 204.
func (b *ResponseBuilder) NoContent() {
	b.c.Status(http.StatusNoContent)
}

// Error sends an error response whose code is derived from the status.
func (b *ResponseBuilder) Error(statusCode int, message string, err error) {
	b.ErrorWithCode(statusCode, dto.ErrCodeFromStatus(statusCode), message, err)
}

// ErrorWithCode sends an error response with an explicit error code, for
// statuses that carry more than one meaning (409 is both conflict and catalog_full).
func (b *ResponseBuilder) ErrorWithCode(statusCode int, code, message string, err error) {
	b.ErrorWithDetails(statusCode, code, message, nil, err)
}

// ErrorWithDetails is ErrorWithCode with extra key/value details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, code, message string, details map[string]string, err error) {
	resp := getErrorResponse()

	resp.Error = code
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// 5xx causes go to the ErrorHandler middleware for logging.
	if err != nil && statusCode >= http.StatusInternalServerError {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
