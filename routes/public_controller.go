package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/mattn/go-sqlite3"

	"github.com/mbolis/quick-forms/app"
	"github.com/mbolis/quick-forms/codec"
	"github.com/mbolis/quick-forms/httpx"
	"github.com/mbolis/quick-forms/log"
	"github.com/mbolis/quick-forms/model"
	"github.com/mbolis/quick-forms/validate"
)

func PublicGetForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		form, err := loadForm(r.Context(), app.DB, formID)
		if errors.Is(err, errFormNotFound) {
			httpx.LogNotFound(w, "get_form", formID)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_form", err)
			return
		}

		render.JSON(w, r, form)
	}
}

type submitRequest struct {
	Answers         []model.WireAnswer `json:"answers"`
	RespondentEmail string             `json:"respondentEmail"`
	StartTime       time.Time          `json:"startTime"`
}

func SubmitResponse(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		submission := submitRequest{}
		err = render.DecodeJSON(r.Body, &submission)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		form, err := loadForm(r.Context(), app.DB, formID)
		if errors.Is(err, errFormNotFound) {
			httpx.LogNotFound(w, "get_form", formID)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_form", err)
			return
		}
		if !form.IsPublished {
			httpx.LogStatusMsg(w, http.StatusForbidden, log.DebugLevel,
				"submit_response.unpublished", "Form is not accepting responses")
			return
		}

		answers := codec.Decode(form, submission.Answers)
		if result := validate.Submission(form, answers, submission.RespondentEmail); !result.OK() {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, map[string]any{
				"message": "Validation failed",
				"errors":  errorsBody(result),
			})
			return
		}

		now := time.Now()
		wire := codec.Encode(form, answers)
		for i := range wire {
			wire[i].Timestamp = now
		}
		answersJSON, err := json.Marshal(wire)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_response.encode_answers", err)
			return
		}

		// the partial unique index on (form_id, dedup_email) enforces
		// limitOneResponse at the storage layer, closing the
		// check-then-insert race between concurrent submissions
		dedupEmail := ""
		if form.LimitsOneResponse() {
			dedupEmail = submission.RespondentEmail
		}

		var responseID int
		err = app.QueryRowContext(r.Context(), `
			INSERT INTO response
				(form_id, answers, respondent_email, dedup_email, ip, user_agent, start_time, end_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`,
			formID,
			string(answersJSON),
			submission.RespondentEmail,
			dedupEmail,
			clientIP(r),
			r.UserAgent(),
			nullableTime(submission.StartTime),
			now,
		).Scan(&responseID)
		if isUniqueViolation(err) {
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel,
				"submit_response.duplicate", "You have already submitted a response")
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.insert_response", err)
			return
		}

		// the draft has served its purpose; losing it is not an error
		if err := app.Drafts.Clear(r.Context(), formID); err != nil {
			log.Warnf("submit_response.clear_draft: %s", err)
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": responseID,
		})
	}
}

// errorsBody flattens a validation result into the error map shape the
// original clients consume: question indexes plus an "email" key.
func errorsBody(result validate.Result) map[string]string {
	body := make(map[string]string, len(result.Questions)+1)
	for index, msg := range result.Questions {
		body[strconv.Itoa(index)] = msg
	}
	if result.Email != "" {
		body["email"] = result.Email
	}
	return body
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func clientIP(r *http.Request) string {
	return strings.Split(r.RemoteAddr, ":")[0]
}
