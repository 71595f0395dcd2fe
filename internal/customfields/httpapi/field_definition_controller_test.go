package httpapi_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/httpapi"
	"customfields-server/internal/customfields/httpapi/internal"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"
	mockusecases "customfields-server/test/unit/doubles/customfields/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FieldDefinitionController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockFieldDefinitionService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		field       domain.FieldDefinition
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockFieldDefinitionService(ctrl)
		router = http.NewServeMux()
		httpapi.NewFieldDefinitionController(mockService, shareddomain.ContextNamespaceResolver{}).AddRoutes(router)
		recorder = httptest.NewRecorder()

		var err error
		field, err = domain.NewFieldDefinitionBuilder().
			WithNamespace(_ns).
			WithModelName("customer").
			WithPageName("profile").
			WithFieldName("rating").
			WithKind("number").
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listFields", func() {
		It("should list every page when no page is given", func() {
			mockService.EXPECT().
				ListFields(gomock.Any(), _ns, "customer", (*string)(nil)).
				Return([]domain.FieldDefinition{field}, nil)

			router.ServeHTTP(recorder, tenantRequest("GET", "/v1/models/customer/fields", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response internal.FieldDefinitionListResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Data[0].FieldName).To(Equal("rating"))
			Expect(response.Data[0].FieldType).To(Equal("number"))
			Expect(response.Data[0].PageName).To(Equal("profile"))
		})

		It("should filter by page", func() {
			mockService.EXPECT().
				ListFields(gomock.Any(), _ns, "customer", utils.StringPtr("profile")).
				Return([]domain.FieldDefinition{}, nil)

			router.ServeHTTP(recorder, tenantRequest("GET", "/v1/models/customer/fields?page=profile", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"data":[]}`))
		})

		It("should require a tenant", func() {
			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/v1/models/customer/fields", nil))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should hide storage errors", func() {
			mockService.EXPECT().
				ListFields(gomock.Any(), _ns, "customer", gomock.Nil()).
				Return(nil, fmt.Errorf("%w: listing: %w", usecases.ErrStorage, errors.New("dial tcp: refused")))

			router.ServeHTTP(recorder, tenantRequest("GET", "/v1/models/customer/fields", ""))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("dial tcp"))
		})
	})

	Context("createField", func() {
		It("should create the field from the request", func() {
			mockService.EXPECT().
				CreateField(gomock.Any(), _ns, "customer", "profile", gomock.Any()).
				DoAndReturn(func(_ any, _ shareddomain.Namespace, _, _ string, spec usecases.FieldSpec) (domain.FieldDefinition, error) {
					Expect(spec.FieldName).To(Equal("rating"))
					Expect(spec.Kind).To(Equal("number"))
					Expect(spec.IsRequired).To(BeTrue())
					Expect(spec.Options).To(Equal([]domain.FieldOption{{Value: "a", Label: "a"}}))
					return field, nil
				})

			body := `{"page_name":"profile","field_name":"rating","field_type":"number","is_required":true,"field_options":["a"]}`
			router.ServeHTTP(recorder, tenantRequest("POST", "/v1/models/customer/fields", body))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		DescribeTable("should map service errors",
			func(err error, status int) {
				mockService.EXPECT().
					CreateField(gomock.Any(), _ns, "customer", "", gomock.Any()).
					Return(domain.FieldDefinition{}, err)

				router.ServeHTTP(recorder, tenantRequest("POST", "/v1/models/customer/fields", `{"field_name":"rating"}`))

				Expect(recorder.Code).To(Equal(status))
			},
			Entry("duplicate", usecases.ErrDuplicateField, http.StatusConflict),
			Entry("validation", fmt.Errorf("%w: bad name", usecases.ErrValidation), http.StatusBadRequest),
			Entry("storage", usecases.ErrStorage, http.StatusInternalServerError),
		)

		It("should reject malformed bodies", func() {
			router.ServeHTTP(recorder, tenantRequest("POST", "/v1/models/customer/fields", `{"field_name":`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("getField", func() {
		It("should return 404 for unknown fields", func() {
			mockService.EXPECT().
				GetField(gomock.Any(), _ns, shareddomain.ID("missing")).
				Return(domain.FieldDefinition{}, usecases.ErrFieldNotFound)

			router.ServeHTTP(recorder, tenantRequest("GET", "/v1/fields/missing", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("updateField", func() {
		It("should pass the page rename through", func() {
			moved := field
			moved.PageName = "billing"
			mockService.EXPECT().
				UpdateField(gomock.Any(), _ns, field.ID, gomock.Any()).
				DoAndReturn(func(_ any, _ shareddomain.Namespace, _ shareddomain.ID, patch domain.FieldPatch) (domain.FieldDefinition, error) {
					Expect(patch.PageName).To(Equal(utils.StringPtr("billing")))
					Expect(patch.DisplayName).To(BeNil())
					return moved, nil
				})

			router.ServeHTTP(recorder, tenantRequest("PATCH", "/v1/fields/"+field.ID.String(), `{"page_name":"billing"}`))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response internal.FieldDefinitionResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.PageName).To(Equal("billing"))
		})

		It("should reject unknown field types before calling the service", func() {
			router.ServeHTTP(recorder, tenantRequest("PATCH", "/v1/fields/"+field.ID.String(), `{"field_type":"blob"}`))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("deleteField", func() {
		It("should answer 204 when the field was deleted", func() {
			mockService.EXPECT().DeleteField(gomock.Any(), _ns, field.ID).Return(true, nil)

			router.ServeHTTP(recorder, tenantRequest("DELETE", "/v1/fields/"+field.ID.String(), ""))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("should answer 404 when nothing was deleted", func() {
			mockService.EXPECT().DeleteField(gomock.Any(), _ns, shareddomain.ID("missing")).Return(false, nil)

			router.ServeHTTP(recorder, tenantRequest("DELETE", "/v1/fields/missing", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should refuse system fields", func() {
			mockService.EXPECT().DeleteField(gomock.Any(), _ns, field.ID).Return(false, usecases.ErrSystemField)

			router.ServeHTTP(recorder, tenantRequest("DELETE", "/v1/fields/"+field.ID.String(), ""))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
