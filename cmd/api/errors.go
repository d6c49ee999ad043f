package main

import (
	"errors"
	"net/http"

	"github.com/Beka01247/coffee-order/internal/domain"
)

var (
	ErrInvalidID         = errors.New("invalid ID format")
	ErrMissingDepartment = errors.New("department_id is required")
)

const (
	codeBadRequest     = "BAD_REQUEST"
	codeNotFound       = "NOT_FOUND"
	codeInternal       = "INTERNAL"
	codeRateLimited    = "RATE_LIMITED"
	codeAlreadyOrdered = "ALREADY_ORDERED"
	codeOrderingClosed = "ORDERING_CLOSED"
	codeSyncInProgress = "SYNC_IN_PROGRESS"
	codeMenuModeLocked = "MENU_MODE_LOCKED"
	codeImportDisabled = "IMPORT_DISABLED"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, codeInternal, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, codeBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, codeNotFound, "not found")
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, code string, err error) {
	app.logger.Warnw("conflict", "method", r.Method, "path", r.URL.Path, "code", code, "error", err.Error())

	writeJsonError(w, http.StatusConflict, code, err.Error())
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusForbidden, codeOrderingClosed, err.Error())
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("service unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusServiceUnavailable, codeImportDisabled, err.Error())
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJsonError(w, http.StatusTooManyRequests, codeRateLimited, "rate limit exceeded, retry after: "+retryAfter)
}

// errorResponse maps a service error to its status and code.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		app.notFoundError(w, r, err)
	case errors.Is(err, domain.ErrAlreadyOrdered):
		app.conflictResponse(w, r, codeAlreadyOrdered, domain.ErrAlreadyOrdered)
	case errors.Is(err, domain.ErrSyncInProgress):
		app.conflictResponse(w, r, codeSyncInProgress, domain.ErrSyncInProgress)
	case errors.Is(err, domain.ErrMenuModeLocked):
		app.conflictResponse(w, r, codeMenuModeLocked, domain.ErrMenuModeLocked)
	case errors.Is(err, domain.ErrOrderingClosed):
		app.forbiddenResponse(w, r, domain.ErrOrderingClosed)
	case errors.Is(err, domain.ErrImportDisabled):
		app.serviceUnavailableResponse(w, r, domain.ErrImportDisabled)
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrMenuMismatch),
		errors.Is(err, domain.ErrInvalidCutoff):
		app.badRequestResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}
