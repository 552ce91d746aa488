// Package draft caches in-flight respondent answers so a form can be
// resumed before submission. Drafts are keyed by form id and live
// outside the response store: saving or clearing one never touches
// submitted data.
package draft

import (
	"context"

	"github.com/mbolis/quick-forms/model"
)

// Draft is the resumable state of one respondent-facing form.
type Draft struct {
	Answers map[int]model.Value `json:"answers"`
	Email   string              `json:"email"`
}

// Store persists drafts. Implementations must treat Clear on a missing
// draft as a no-op.
type Store interface {
	Save(ctx context.Context, formID int, d Draft) error
	Load(ctx context.Context, formID int) (Draft, bool, error)
	Clear(ctx context.Context, formID int) error
}
