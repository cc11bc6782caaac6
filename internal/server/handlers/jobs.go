// internal/server/handlers/jobs.go

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clipforge/internal/service/scheduling"
)

// JobRunner is the slice of the scheduler the jobs handler uses.
type JobRunner interface {
	RunJob(ctx context.Context, name string) (scheduling.RunSummary, error)
	Status() []scheduling.JobStatus
	Running() bool
}

// JobsHandler serves the scheduled-job endpoints.
type JobsHandler struct {
	runner  JobRunner
	respond *Responder
}

// NewJobsHandler creates the jobs handler.
func NewJobsHandler(runner JobRunner, respond *Responder) *JobsHandler {
	return &JobsHandler{runner: runner, respond: respond}
}

type jobsStatusResponse struct {
	SchedulerRunning bool                   `json:"schedulerRunning"`
	Jobs             []scheduling.JobStatus `json:"jobs"`
}

// Status reports the scheduler flag and every job's state.
func (h *JobsHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.respond.JSON(w, http.StatusOK, jobsStatusResponse{
		SchedulerRunning: h.runner.Running(),
		Jobs:             h.runner.Status(),
	})
}

// Run triggers a job synchronously and returns its run summary.
func (h *JobsHandler) Run(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "jobName")

	summary, err := h.runner.RunJob(r.Context(), name)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	h.respond.JSON(w, http.StatusOK, summary)
}
