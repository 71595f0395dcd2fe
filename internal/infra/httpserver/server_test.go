package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"

	shareddomain "customfields-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type pingController struct{}

func (pingController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ns, _ := shareddomain.NamespaceFromContext(r.Context())
		ReplyJSONResponse(w, http.StatusOK, map[string]string{"namespace": ns.String()})
	}))
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp *trace.TracerProvider
	)

	ginkgo.BeforeEach(func() {
		tp = trace.NewTracerProvider(
			trace.WithSpanProcessor(tracetest.NewSpanRecorder()),
		)
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add span to request context", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusOK)
			})

			wrappedHandler := createTracingMiddleware()(testHandler)

			req := httptest.NewRequest("GET", "/test", nil)
			rec := httptest.NewRecorder()
			wrappedHandler.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})
	})

	ginkgo.Context("TenantHeaderMiddleware", func() {
		var (
			seen    shareddomain.Namespace
			present bool
			handler http.Handler
		)

		ginkgo.BeforeEach(func() {
			seen, present = "", false
			handler = createTracingMiddleware()(createTenantHeaderMiddleware()(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seen, present = shareddomain.NamespaceFromContext(r.Context())
					w.WriteHeader(http.StatusNoContent)
				}),
			))
		})

		ginkgo.It("should attach the tenant namespace", func() {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(TenantHeader, "Acme-01")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			gomega.Expect(present).To(gomega.BeTrue())
			gomega.Expect(seen).To(gomega.Equal(shareddomain.Namespace("tenant_acme_01")))
		})

		ginkgo.It("should pass requests without a tenant through", func() {
			req := httptest.NewRequest("GET", "/test", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNoContent))
			gomega.Expect(present).To(gomega.BeFalse())
		})

		ginkgo.It("should ignore unusable tenant ids", func() {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(TenantHeader, "---")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			gomega.Expect(present).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("NewServer", func() {
		var server *StandardServer

		ginkgo.BeforeEach(func() {
			server = NewServer(ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}}, pingController{})
		})

		ginkgo.It("should serve health checks", func() {
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.MatchJSON(`{"status":"success"}`))
		})

		ginkgo.It("should route to controllers through the middleware chain", func() {
			req := httptest.NewRequest("GET", "/v1/ping", nil)
			req.Header.Set(TenantHeader, "acme")
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.MatchJSON(`{"namespace":"tenant_acme"}`))
		})
	})
})
