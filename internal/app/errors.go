package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
)

const (
	ErrInternalServer   = "The server encountered a problem and could not process your request"
	ErrNotFound         = "The requested resource not found"
	ErrMethodNotAllowed = "The %s method is not supported for this resource"
	ErrValidationFailed = "One or more fields are invalid"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	app.sendErrorResponse(w, r, status, resp)
}

func (app *Application) sendErrorResponse(w http.ResponseWriter, r *http.Request, status int, resp any) {
	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

// invalidPurchaseResponse reports a broken purchase rule. The kind lets clients
// branch on the rule without matching on the message.
func (app *Application) invalidPurchaseResponse(w http.ResponseWriter, r *http.Request, err error) {
	var purchaseErr *domain.InvalidPurchaseError
	if !errors.As(err, &purchaseErr) {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.logger.Warn("purchase rejected", "kind", purchaseErr.Kind, "message", purchaseErr.Message)

	if acceptsPlainText(r) {
		app.plainTextResponse(w, r, http.StatusBadRequest, purchaseErr.Message)
		return
	}

	kind := string(purchaseErr.Kind)
	resp := api.ErrorResponse{
		Message:   purchaseErr.Message,
		Kind:      &kind,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	app.sendErrorResponse(w, r, http.StatusBadRequest, resp)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrValidationFailed,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, 0, len(validationErrs)),
	}

	for _, fieldErr := range validationErrs {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: appvalidator.FieldPath(fieldErr),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	if acceptsPlainText(r) {
		issues := make([]string, 0, len(resp.ValidationErrors))
		for _, v := range resp.ValidationErrors {
			issues = append(issues, v.Field+" "+v.Issue)
		}

		app.plainTextResponse(w, r, http.StatusBadRequest, strings.Join(issues, "; "))
		return
	}

	app.sendErrorResponse(w, r, http.StatusBadRequest, resp)
}

// acceptsPlainText reports whether the client's preferred media type is text/plain,
// in which case rejections are sent as the bare message.
func acceptsPlainText(r *http.Request) bool {
	mediaType, _, _ := strings.Cut(r.Header.Get("Accept"), ",")
	mediaType, _, _ = strings.Cut(mediaType, ";")

	return strings.EqualFold(strings.TrimSpace(mediaType), "text/plain")
}

func (app *Application) plainTextResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)

	_, err := w.Write([]byte(message))
	if err != nil {
		app.logError(r, err)
	}
}
