package httpapi

import (
	"log/slog"
	"net/http"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/httpapi/internal"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/httpserver"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

const (
	getValuesErrMessage    = "failed to get field values"
	saveValuesErrMessage   = "failed to save field values"
	deleteValuesErrMessage = "failed to delete field values"
	deduplicateErrMessage  = "failed to clean up duplicate values"
)

func NewFieldValueController(
	values usecases.ValueService,
	fields usecases.FieldDefinitionService,
	deduplication usecases.DeduplicationService,
	resolver shareddomain.NamespaceResolver,
) *FieldValueController {
	return &FieldValueController{
		values:        values,
		fields:        fields,
		deduplication: deduplication,
		resolver:      resolver,
	}
}

var _ httpserver.Controller = (*FieldValueController)(nil)

type FieldValueController struct {
	values        usecases.ValueService
	fields        usecases.FieldDefinitionService
	deduplication usecases.DeduplicationService
	resolver      shareddomain.NamespaceResolver
}

func (c *FieldValueController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/models/{model}/records/{record}/pages/{page}/values", c.getValues())
	router.Handle("PUT /v1/models/{model}/records/{record}/pages/{page}/values", c.saveValues())
	router.Handle("DELETE /v1/models/{model}/records/{record}/pages/{page}/values", c.deletePageValues())
	router.Handle("POST /v1/models/{model}/records/{record}/deduplicate", c.cleanupRecordDuplicates())
	router.Handle("POST /v1/models/{model}/deduplicate", c.cleanupModelDuplicates())
}

func (c *FieldValueController) getValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		model, record, page := r.PathValue("model"), r.PathValue("record"), r.PathValue("page")
		values, err := c.values.GetValues(r.Context(), ns, model, record, page)
		if err != nil {
			replyServiceError(w, err, getValuesErrMessage)
			return
		}

		response := internal.ToFieldValuesResponse(model, record, domain.NormalizePage(page), values)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

// saveValues stores the body as given unless ?coerce=true, in which case
// every value is converted with the kind of its field definition first.
func (c *FieldValueController) saveValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		var body internal.FieldValuesSaveRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding save values request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		model, record, page := r.PathValue("model"), r.PathValue("record"), r.PathValue("page")
		values := domain.FieldValues(body.Values)

		if httpserver.GetBoolQueryParam(r, "coerce") {
			values, err = c.fields.CoerceValues(r.Context(), ns, model, page, values)
			if err != nil {
				replyServiceError(w, err, saveValuesErrMessage)
				return
			}
		}

		err = c.values.SaveValues(r.Context(), ns, model, record, page, values)
		if err != nil {
			replyServiceError(w, err, saveValuesErrMessage)
			return
		}

		saved, err := c.values.GetValues(r.Context(), ns, model, record, page)
		if err != nil {
			replyServiceError(w, err, getValuesErrMessage)
			return
		}

		response := internal.ToFieldValuesResponse(model, record, domain.NormalizePage(page), saved)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *FieldValueController) deletePageValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		deleted, err := c.values.DeletePageValues(r.Context(), ns, r.PathValue("model"), r.PathValue("page"), r.PathValue("record"))
		if err != nil {
			replyServiceError(w, err, deleteValuesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DeletedValuesResponse{Deleted: deleted})
	}
}

func (c *FieldValueController) cleanupRecordDuplicates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		removed, err := c.deduplication.CleanupDuplicates(r.Context(), ns, r.PathValue("model"), r.PathValue("record"))
		if err != nil {
			replyServiceError(w, err, deduplicateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DeduplicationResponse{Removed: removed})
	}
}

func (c *FieldValueController) cleanupModelDuplicates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		removed, err := c.deduplication.CleanupModelDuplicates(r.Context(), ns, r.PathValue("model"))
		if err != nil {
			replyServiceError(w, err, deduplicateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DeduplicationResponse{Removed: removed})
	}
}
