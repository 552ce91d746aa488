package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/mbolis/quick-forms/model"
	"github.com/mbolis/quick-forms/schema"
)

var errFormNotFound = errors.New("form not found")

// formDocument is the JSON stored in the form.document column:
// everything the list query's scalar columns don't cover.
type formDocument struct {
	Questions []model.Question `json:"questions"`
	Settings  *model.Settings  `json:"settings,omitempty"`
}

func documentJSON(form model.Form) ([]byte, error) {
	return json.Marshal(formDocument{
		Questions: form.Questions,
		Settings:  form.Settings,
	})
}

// loadForm reads and normalizes one form. Partial documents from
// earlier schema versions come out with every invariant repaired.
func loadForm(ctx context.Context, db *sql.DB, formID int) (model.Form, error) {
	form := model.Form{}
	var document string
	err := db.QueryRowContext(ctx, `
		SELECT id, version, title, description, document, is_published, created_by
		FROM form
		WHERE id = ?`,
		formID,
	).Scan(
		&form.ID, &form.Version, &form.Title, &form.Description,
		&document, &form.IsPublished, &form.CreatedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return form, errFormNotFound
	}
	if err != nil {
		return form, err
	}

	doc := formDocument{}
	if err := json.Unmarshal([]byte(document), &doc); err != nil {
		return form, err
	}
	form.Questions = doc.Questions
	form.Settings = doc.Settings

	return schema.NormalizeForm(form), nil
}

func scanResponses(rows *sql.Rows) ([]model.Response, error) {
	responses := []model.Response{}
	for rows.Next() {
		r := model.Response{}
		var answers string
		var start, end sql.NullTime
		err := rows.Scan(
			&r.ID, &r.FormID, &answers, &r.RespondentEmail,
			&r.IP, &r.UserAgent, &start, &end,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(answers), &r.Answers); err != nil {
			return nil, err
		}
		r.StartTime = start.Time
		r.EndTime = end.Time

		responses = append(responses, r)
	}
	return responses, rows.Err()
}

func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
