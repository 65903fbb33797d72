package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/jftravel/flight-offer-service/internal/pkg/exception"
)

// DecodeRequestFunc extracts a typed request from an HTTP request.
type DecodeRequestFunc func(r *http.Request) (interface{}, error)

// QueryBinder binds and validates a request from URL query parameters.
type QueryBinder interface {
	BindQuery(r *http.Request) error
}

// BodyBinder binds and validates a request after its JSON body is decoded.
type BodyBinder interface {
	Bind(r *http.Request) error
}

// DecodeQueryRequest decodes a GET request whose parameters live in the
// query string. *T must implement QueryBinder.
func DecodeQueryRequest[T any](r *http.Request) (interface{}, error) {
	req := new(T)

	binder, ok := any(req).(QueryBinder)
	if !ok {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusInternalServerError,
			Message:    "request type does not support query binding",
		}
	}

	if err := binder.BindQuery(r); err != nil {
		return nil, err
	}

	return req, nil
}

// DecodeRequest decodes a JSON request body. *T must implement BodyBinder.
func DecodeRequest[T any](r *http.Request) (interface{}, error) {
	req := new(T)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid request body",
			Cause:      err,
		}
	}

	binder, ok := any(req).(BodyBinder)
	if !ok {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusInternalServerError,
			Message:    "request type does not support body binding",
		}
	}

	if err := binder.Bind(r); err != nil {
		return nil, err
	}

	return req, nil
}

// MakeHandlerFunc bridges a go-kit endpoint into an http.HandlerFunc using
// the given decoder and response encoder.
func MakeHandlerFunc(
	endpt endpoint.Endpoint,
	decoder DecodeRequestFunc,
	encoder EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decoder(req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := endpt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encoder(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}
