package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/handler/http/response"
)

type ScheduleHandler interface {
	// Resolve handles GET /rules/schedule?employee=
	Resolve(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	resolver schedule.Resolver
}

func NewScheduleHandler(resolver schedule.Resolver) ScheduleHandler {
	return &scheduleHandlerImpl{
		resolver: resolver,
	}
}

// Resolve implements ScheduleHandler.
func (h *scheduleHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	req := schedule.ResolveScheduleRequest{
		Employee: strings.TrimSpace(r.URL.Query().Get("employee")),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	sched := h.resolver.Resolve(req.Employee)
	response.Success(w, map[string]interface{}{
		"schedule": sched,
		"category": sched.Category(),
	})
}
