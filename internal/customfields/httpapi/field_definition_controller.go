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
	listFieldsErrMessage  = "failed to list fields"
	getFieldErrMessage    = "failed to get field"
	createFieldErrMessage = "failed to create field"
	updateFieldErrMessage = "failed to update field"
	deleteFieldErrMessage = "failed to delete field"
	fieldNotFoundMessage  = "field not found"
)

func NewFieldDefinitionController(
	service usecases.FieldDefinitionService,
	resolver shareddomain.NamespaceResolver,
) *FieldDefinitionController {
	return &FieldDefinitionController{
		service:  service,
		resolver: resolver,
	}
}

var _ httpserver.Controller = (*FieldDefinitionController)(nil)

type FieldDefinitionController struct {
	service  usecases.FieldDefinitionService
	resolver shareddomain.NamespaceResolver
}

func (c *FieldDefinitionController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/models/{model}/fields", c.listFields())
	router.Handle("POST /v1/models/{model}/fields", c.createField())
	router.Handle("GET /v1/fields/{id}", c.getField())
	router.Handle("PATCH /v1/fields/{id}", c.updateField())
	router.Handle("DELETE /v1/fields/{id}", c.deleteField())
}

func (c *FieldDefinitionController) listFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		page := httpserver.GetOptionalQueryParam(r, "page")
		fields, err := c.service.ListFields(r.Context(), ns, r.PathValue("model"), page)
		if err != nil {
			replyServiceError(w, err, listFieldsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldDefinitionListResponse(fields))
	}
}

func (c *FieldDefinitionController) getField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		field, err := c.service.GetField(r.Context(), ns, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, getFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldDefinitionResponse(field))
	}
}

func (c *FieldDefinitionController) createField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		var body internal.FieldDefinitionCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create field request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		field, err := c.service.CreateField(r.Context(), ns, r.PathValue("model"), body.PageName, body.ToSpec())
		if err != nil {
			replyServiceError(w, err, createFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFieldDefinitionResponse(field))
	}
}

func (c *FieldDefinitionController) updateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		var body internal.FieldDefinitionUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update field request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		patch, err := body.ToPatch()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		field, err := c.service.UpdateField(r.Context(), ns, shareddomain.ID(r.PathValue("id")), patch)
		if err != nil {
			replyServiceError(w, err, updateFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldDefinitionResponse(field))
	}
}

func (c *FieldDefinitionController) deleteField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		deleted, err := c.service.DeleteField(r.Context(), ns, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, deleteFieldErrMessage)
			return
		}
		if !deleted {
			httpserver.ReplyWithError(w, http.StatusNotFound, fieldNotFoundMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
