package httpapi_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/httpapi"
	"customfields-server/internal/customfields/usecases"
	shareddomain "customfields-server/internal/shared_kernel/domain"
	mockusecases "customfields-server/test/unit/doubles/customfields/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ColumnConfigurationController", func() {
	const columnsPath = "/v1/models/customer/pages/default/columns"

	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockColumnConfigurationService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockColumnConfigurationService(ctrl)
		router = http.NewServeMux()
		httpapi.NewColumnConfigurationController(mockService, shareddomain.ContextNamespaceResolver{}).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should return the stored columns", func() {
		mockService.EXPECT().GetColumns(gomock.Any(), _ns, "customer", "default").Return(domain.ColumnConfiguration{
			Namespace: _ns,
			ModelName: "customer",
			PageName:  domain.DefaultPage,
			Columns:   json.RawMessage(`["f1","f2"]`),
		}, nil)

		router.ServeHTTP(recorder, tenantRequest("GET", columnsPath, ""))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		Expect(recorder.Body.String()).To(ContainSubstring(`"columns":["f1","f2"]`))
	})

	It("should answer 404 when the page has no configuration", func() {
		mockService.EXPECT().GetColumns(gomock.Any(), _ns, "customer", "default").
			Return(domain.ColumnConfiguration{}, usecases.ErrColumnConfigurationNotFound)

		router.ServeHTTP(recorder, tenantRequest("GET", columnsPath, ""))

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})

	It("should save the columns of the body", func() {
		mockService.EXPECT().
			SaveColumns(gomock.Any(), _ns, "customer", "default", json.RawMessage(`{"f1":{"width":120}}`)).
			Return(domain.ColumnConfiguration{ModelName: "customer", PageName: domain.DefaultPage, Columns: json.RawMessage(`{"f1":{"width":120}}`)}, nil)

		router.ServeHTTP(recorder, tenantRequest("PUT", columnsPath, `{"columns":{"f1":{"width":120}}}`))

		Expect(recorder.Code).To(Equal(http.StatusOK))
	})

	It("should reject invalid column layouts", func() {
		mockService.EXPECT().
			SaveColumns(gomock.Any(), _ns, "customer", "default", gomock.Any()).
			Return(domain.ColumnConfiguration{}, fmt.Errorf("%w: %w", usecases.ErrValidation, domain.ErrInvalidColumns))

		router.ServeHTTP(recorder, tenantRequest("PUT", columnsPath, `{"columns":42}`))

		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})
})
