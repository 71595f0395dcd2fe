package httpapi

import (
	"net/http"

	"customfields-server/internal/customfields/httpapi/internal"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/httpserver"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

const statsErrMessage = "failed to compute model statistics"

func NewStatsController(advisor usecases.PartitioningAdvisor, resolver shareddomain.NamespaceResolver) *StatsController {
	return &StatsController{
		advisor:  advisor,
		resolver: resolver,
	}
}

var _ httpserver.Controller = (*StatsController)(nil)

type StatsController struct {
	advisor  usecases.PartitioningAdvisor
	resolver shareddomain.NamespaceResolver
}

func (c *StatsController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/stats", c.allModelsStats())
	router.Handle("GET /v1/models/{model}/stats", c.modelStats())
}

func (c *StatsController) modelStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		stats, err := c.advisor.ModelStats(r.Context(), ns, r.PathValue("model"))
		if err != nil {
			replyServiceError(w, err, statsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToModelStatsResponse(stats))
	}
}

func (c *StatsController) allModelsStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ns, ok := resolveNamespace(w, r, c.resolver)
		if !ok {
			return
		}

		stats, err := c.advisor.AllModelsStats(r.Context(), ns)
		if err != nil {
			replyServiceError(w, err, statsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToModelStatsListResponse(stats))
	}
}
