// Package controller holds shared HTTP plumbing for the user and admin
// controller packages: identity extraction and the mapping from the
// error taxonomy to HTTP responses.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/signlearn/signbridge/internal/dto"
	"github.com/signlearn/signbridge/internal/errs"
)

// UserIDHeader carries the authenticated user's id, injected by the
// identity provider fronting this service.
const UserIDHeader = "X-User-ID"

// ActorID extracts the calling user's id from the request. When absent
// or malformed it writes a 401 and returns false.
func ActorID(ctx *gin.Context) (uint, bool) {
	raw := ctx.GetHeader(UserIDHeader)
	if raw == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing " + UserIDHeader + " header"})
		return 0, false
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid " + UserIDHeader + " header"})
		return 0, false
	}
	return uint(val), true
}

// RespondError maps a service error to the client-visible failure.
// Validation, authorization, conflict and not-found errors pass their
// message through with the taxonomy tag. Upstream and unavailable
// errors are logged with full diagnostics server-side but surfaced with
// the tag only, so upstream internals never leak to end users.
func RespondError(ctx *gin.Context, err error) {
	var e *errs.Error
	if !errors.As(err, &e) {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unclassified error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	switch e.Kind {
	case errs.KindValidation:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: e.Message, Code: string(e.Kind)})
	case errs.KindAuthorization:
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: e.Message, Code: string(e.Kind)})
	case errs.KindConflict:
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: e.Message, Code: string(e.Kind)})
	case errs.KindNotFound:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: e.Message, Code: string(e.Kind)})
	case errs.KindUpstream:
		log.Error().Int("upstream_status", e.UpstreamStatus).Str("upstream_body", e.UpstreamBody).Str("path", ctx.FullPath()).Msg("Upstream error")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "recognition service failed", Code: string(e.Kind)})
	case errs.KindUnavailable:
		log.Error().Err(e).Str("path", ctx.FullPath()).Msg("Upstream unreachable")
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "recognition service unavailable", Code: string(e.Kind)})
	default:
		log.Error().Err(e).Str("path", ctx.FullPath()).Msg("Unmapped error kind")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
