package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsmonitor/internal/usecase"
)

const RequestIDHeader = "X-Request-ID"

// ActionHandler hands every action route to the usecase service.
type ActionHandler struct {
	service *usecase.Service
}

func NewActionHandler(service *usecase.Service) *ActionHandler {
	return &ActionHandler{service: service}
}

func (h *ActionHandler) Run(c *gin.Context) {
	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(RequestIDHeader, requestID)

	res := h.service.Execute(c.Request.Context(), usecase.Request{
		ID:     requestID,
		Record: requestRecord(c, requestID),
		Action: routeParam(c, "action"),
		Param1: routeParam(c, "param1"),
		Param2: routeParam(c, "param2"),
	})

	status := res.Status()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, res.Body())
}

// routeParam returns nil for a parameter the matched route does not have.
func routeParam(c *gin.Context, name string) any {
	v, ok := c.Params.Get(name)
	if !ok {
		return nil
	}
	return v
}

// requestRecord flattens the HTTP request into the plain record the
// service validates and logs.
func requestRecord(c *gin.Context, requestID string) map[string]any {
	query := map[string]any{}
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	headers := map[string]any{}
	for k, v := range c.Request.Header {
		if len(v) > 0 {
			headers[strings.ToLower(k)] = v[0]
		}
	}

	uriParams := map[string]any{}
	for _, p := range c.Params {
		uriParams[p.Key] = p.Value
	}

	return map[string]any{
		"method":       c.Request.Method,
		"path":         c.Request.URL.Path,
		"route":        c.FullPath(),
		"query_params": query,
		"uri_params":   uriParams,
		"headers":      headers,
		"context":      map[string]any{"request_id": requestID, "source_ip": c.ClientIP()},
	}
}
