package routes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mbolis/quick-forms/app"
	"github.com/mbolis/quick-forms/draft"
	"github.com/mbolis/quick-forms/httpx"
	"github.com/mbolis/quick-forms/log"
)

// Draft endpoints let a respondent resume a half-filled form. They are
// deliberately unauthenticated, like the submission endpoint.

func GetDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		d, found, err := app.Drafts.Load(r.Context(), formID)
		if err != nil {
			httpx.LogInternalError(w, "drafts.load", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "get_draft", formID)
			return
		}

		render.JSON(w, r, d)
	}
}

func SaveDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		d := draft.Draft{}
		err = render.DecodeJSON(r.Body, &d)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		if err := app.Drafts.Save(r.Context(), formID, d); err != nil {
			httpx.LogInternalError(w, "drafts.save", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ClearDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		if err := app.Drafts.Clear(r.Context(), formID); err != nil {
			httpx.LogInternalError(w, "drafts.clear", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
