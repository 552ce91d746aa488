package routes

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/mbolis/quick-forms/app"
	"github.com/mbolis/quick-forms/httpx"
	"github.com/mbolis/quick-forms/log"
	"github.com/mbolis/quick-forms/model"
	"github.com/mbolis/quick-forms/routes/middlewares"
	"github.com/mbolis/quick-forms/schema"
	"github.com/mbolis/quick-forms/stats"
)

func CreateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := model.Form{}
		err := render.DecodeJSON(r.Body, &form)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		form = schema.NormalizeForm(form)
		if form.CreatedBy == "" {
			form.CreatedBy = middlewares.Username(r)
		}

		document, err := documentJSON(form)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form.encode_document", err)
			return
		}

		var formID int
		err = app.QueryRowContext(r.Context(), `
			INSERT INTO form (title, description, document, is_published, created_by)
			VALUES (?, ?, ?, ?, ?)
			RETURNING id`,
			form.Title,
			form.Description,
			string(document),
			form.IsPublished,
			form.CreatedBy,
		).Scan(&formID)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": formID,
		})
	}
}

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, version, title, description, is_published, created_by
			FROM form`)
		if err != nil {
			httpx.LogInternalError(w, "db.get_forms", err)
			return
		}
		defer rows.Close()

		forms := []model.Form{}
		for rows.Next() {
			f := model.Form{}
			err = rows.Scan(&f.ID, &f.Version, &f.Title, &f.Description, &f.IsPublished, &f.CreatedBy)
			if err != nil {
				httpx.LogInternalError(w, "db.get_forms.scan", err)
				return
			}

			forms = append(forms, f)
		}

		render.JSON(w, r, map[string]any{
			"forms": forms,
		})
	}
}

func GetForm(app app.App) http.HandlerFunc {
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

func UpdateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		form := model.Form{}
		err = render.DecodeJSON(r.Body, &form)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		// full-document replace: the whole question list is rewritten
		form = schema.NormalizeForm(form)
		document, err := documentJSON(form)
		if err != nil {
			httpx.LogInternalError(w, "db.update_form.encode_document", err)
			return
		}

		res, err := app.ExecContext(r.Context(), `
			UPDATE form
			SET
				title = ?,
				description = ?,
				document = ?,
				version = version+1
			WHERE	id = ?
				AND version = ?`,
			form.Title,
			form.Description,
			string(document),
			formID,
			form.Version,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_form", err)
			return
		}
		// optimistic lock
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.update_form.verify", err)
			return
		}
		if n < 1 {
			httpx.LogStatus(w, http.StatusConflict, log.DebugLevel, "db.update_form.verify.conflict")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func PublishForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		var body struct {
			IsPublished bool `json:"isPublished"`
		}
		err = render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		// publish state toggles independently from content edits, so
		// no version bump here
		res, err := app.ExecContext(r.Context(), `
			UPDATE form SET is_published = ? WHERE id = ?`,
			body.IsPublished,
			formID,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.publish_form", err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.publish_form.verify", err)
			return
		}
		if n < 1 {
			httpx.LogNotFound(w, "publish_form", formID)
			return
		}

		render.JSON(w, r, map[string]any{
			"id":          formID,
			"isPublished": body.IsPublished,
		})
	}
}

func DeleteForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		_, err = tx.ExecContext(r.Context(), `
			DELETE FROM response
			WHERE form_id = ?`,
			formID,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.responses", err)
			return
		}

		res, err := tx.ExecContext(r.Context(), `
			DELETE FROM form WHERE id = ?`,
			formID,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form", err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.verify", err)
			return
		}
		if n < 1 {
			httpx.LogNotFound(w, "delete_form", formID)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.commit", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		responses, ok := queryResponses(w, r, app, formID)
		if !ok {
			return
		}

		render.JSON(w, r, map[string]any{
			"responses": responses,
		})
	}
}

func DeleteResponse(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responseID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		res, err := app.ExecContext(r.Context(), `
			DELETE FROM response WHERE id = ?`,
			responseID,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_response", err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_response.verify", err)
			return
		}
		if n < 1 {
			httpx.LogNotFound(w, "delete_response", responseID)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func FormStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		responses, ok := queryResponses(w, r, app, formID)
		if !ok {
			return
		}

		render.JSON(w, r, stats.Aggregate(formID, responses))
	}
}

// queryResponses loads every response to a form, reporting 404 when the
// form itself does not exist. The bool result tells the caller whether
// a response was already written.
func queryResponses(w http.ResponseWriter, r *http.Request, app app.App, formID int) ([]model.Response, bool) {
	var exists bool
	err := app.QueryRowContext(r.Context(), `
		SELECT 1 FROM form WHERE id = ?`,
		formID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		httpx.LogNotFound(w, "get_responses", formID)
		return nil, false
	}
	if err != nil {
		httpx.LogInternalError(w, "db.get_responses.form", err)
		return nil, false
	}

	rows, err := app.QueryContext(r.Context(), `
		SELECT id, form_id, answers, respondent_email, ip, user_agent, start_time, end_time
		FROM response
		WHERE form_id = ?`,
		formID,
	)
	if err != nil {
		httpx.LogInternalError(w, "db.get_responses", err)
		return nil, false
	}
	defer rows.Close()

	responses, err := scanResponses(rows)
	if err != nil {
		httpx.LogInternalError(w, "db.get_responses.scan", err)
		return nil, false
	}
	return responses, true
}
