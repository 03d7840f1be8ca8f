package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kstyle2198/data-pipeline/internal/response"
	"github.com/kstyle2198/data-pipeline/internal/store"
)

type GetPipelineRunsResponse = response.APIResponse[[]store.PipelineRun]
type UpdateRunStatusResponse = response.APIResponse[struct{}]

type updateRunStatusRequest struct {
	Status string `json:"status"`
}

func isValidRunStatus(status string) bool {
	switch status {
	case store.StatusSuccess, store.StatusFailure, store.StatusPartial:
		return true
	}
	return false
}

// @Summary		Get pipeline runs
// @Description	Get a list of the latest pipeline runs.
// @Tags			Runs
// @Produce		json
// @Param			limit	query		int						false	"Limit the number of results"	default(10)
// @Success		200		{object}	GetPipelineRunsResponse	"Successfully retrieved latest pipeline runs"
// @Failure		500		{object}	response.ErrorResponse	"Failed to get pipeline runs"
// @Router			/runs [get]
func (app *application) handleGetPipelineRuns(w http.ResponseWriter, r *http.Request) {
	limitParam := r.URL.Query().Get("limit")
	limit := 10
	if limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil {
			limit = l
		}
	}

	ctx := r.Context()
	data, err := app.store.Runs.GetLatest(ctx, limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get pipeline runs: "+err.Error())
		return
	}

	response := &GetPipelineRunsResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved latest pipeline runs",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// @Summary		Update run status
// @Description	Updates the status of an existing pipeline run.
// @Tags			Runs
// @Accept			json
// @Produce		json
// @Param			id		path		int						true	"Pipeline run ID"
// @Param			body	body		updateRunStatusRequest	true	"New status: success, failure, partial"
// @Success		200		{object}	UpdateRunStatusResponse	"Successfully updated run status"
// @Failure		400		{object}	response.ErrorResponse	"Invalid run ID or status"
// @Failure		500		{object}	response.ErrorResponse	"Failed to update run status"
// @Router			/runs/{id}/status [patch]
func (app *application) handleUpdateRunStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	var req updateRunStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		return
	}

	if !isValidRunStatus(req.Status) {
		writeJSONError(w, http.StatusBadRequest, "invalid status: "+req.Status)
		return
	}

	ctx := r.Context()
	if err := app.store.Runs.UpdateRunStatus(ctx, id, req.Status); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to update run status: "+err.Error())
		return
	}

	response := &UpdateRunStatusResponse{
		Success: true,
		Message: "Successfully updated run status",
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
