package httpapi

import (
	"log/slog"
	"net/http"

	"customfields-server/internal/customfields/httpapi/internal"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/httpserver"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

const (
	getColumnsErrMessage  = "failed to get column configuration"
	saveColumnsErrMessage = "failed to save column configuration"
)

func NewColumnConfigurationController(
	service usecases.ColumnConfigurationService,
	resolver shareddomain.NamespaceResolver,
) *ColumnConfigurationController {
	return &ColumnConfigurationController{
		service:  service,
		resolver: resolver,
	}
}

var _ httpserver.Controller = (*ColumnConfigurationController)(nil)

type ColumnConfigurationController struct {
	service  usecases.ColumnConfigurationService
	resolver shareddomain.NamespaceResolver
}

func (c *ColumnConfigurationController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/models/{model}/pages/{page}/columns", c.getColumns())
	router.Handle("PUT /v1/models/{model}/pages/{page}/columns", c.saveColumns())
}

func (c *ColumnConfigurationController) getColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		config, err := c.service.GetColumns(r.Context(), ns, r.PathValue("model"), r.PathValue("page"))
		if err != nil {
			replyServiceError(w, err, getColumnsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToColumnConfigurationResponse(config))
	}
}

func (c *ColumnConfigurationController) saveColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		var body internal.ColumnConfigurationSaveRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding save columns request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		config, err := c.service.SaveColumns(r.Context(), ns, r.PathValue("model"), r.PathValue("page"), body.Columns)
		if err != nil {
			replyServiceError(w, err, saveColumnsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToColumnConfigurationResponse(config))
	}
}
