package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/httpserver"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

const (
	tenantRequiredErrMessage = "tenant header " + httpserver.TenantHeader + " is required"
	invalidBodyErrMessage    = "invalid request body"
)

func resolveNamespace(w http.ResponseWriter, r *http.Request, resolver shareddomain.NamespaceResolver) (shareddomain.Namespace, bool) {
	ns, err := resolver.ResolveNamespace(r.Context())
	if err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, tenantRequiredErrMessage)
		return "", false
	}
	return ns, true
}

// replyServiceError maps usecase errors to status codes. Storage and
// unexpected errors are logged and answered with the generic message.
func replyServiceError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, usecases.ErrFieldNotFound), errors.Is(err, usecases.ErrColumnConfigurationNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecases.ErrDuplicateField):
		httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, usecases.ErrValidation), errors.Is(err, usecases.ErrSystemField):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(message, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, message)
	}
}
