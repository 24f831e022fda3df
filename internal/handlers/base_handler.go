package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/SscSPs/biz_records_app/internal/core/domain"
	"github.com/SscSPs/biz_records_app/internal/core/validation"
	"github.com/SscSPs/biz_records_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// baseHandler is embedded by every entity handler.
type baseHandler struct {
	entity       string
	validator    *validation.Validator
	isProduction bool
}

func newBaseHandler(entity string, v *validation.Validator, isProduction bool) baseHandler {
	return baseHandler{entity: entity, validator: v, isProduction: isProduction}
}

// decodeBody reads the request body as a JSON object, keeping numbers exact.
// An empty body decodes to an empty object. It writes a 400 and returns false
// when the body is not a JSON object.
func (b *baseHandler) decodeBody(c *gin.Context) (validation.Input, bool) {
	dec := json.NewDecoder(io.LimitReader(c.Request.Body, maxBodyBytes))
	dec.UseNumber()

	var in validation.Input
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request body: "+err.Error())
		return nil, false
	}
	if in == nil {
		in = validation.Input{}
	}
	return in, true
}

// listOptions reads limit, offset and sort from the query string.
func (b *baseHandler) listOptions(c *gin.Context) (domain.ListOptions, bool) {
	opts, err := pagination.Parse(c.Query("limit"), c.Query("offset"), c.Query("sort"))
	if err != nil {
		badRequest(c, err.Error())
		return opts, false
	}
	return opts, true
}
