package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
)

// createTestContext builds a POST gin context whose body is the JSON encoding of body.
func createTestContext(path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	return newPostContext(path, reader)
}

// createRawTestContext builds a POST gin context with an unencoded body.
func createRawTestContext(path, raw string) (*gin.Context, *httptest.ResponseRecorder) {
	return newPostContext(path, strings.NewReader(raw))
}

func newPostContext(path string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}
