package model

type Form struct {
	ID          int        `json:"id,omitempty"`
	Version     int        `json:"version,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Settings    *Settings  `json:"settings,omitempty"`
	IsPublished bool       `json:"isPublished"`
	CreatedBy   string     `json:"createdBy,omitempty"`
}

type Settings struct {
	CollectEmail     bool `json:"collectEmail"`
	LimitOneResponse bool `json:"limitOneResponse"`
	ShowProgress     bool `json:"showProgress"`
}

// CollectsEmail reports whether submissions must carry a respondent
// email. Safe on forms that were never normalized.
func (f Form) CollectsEmail() bool {
	return f.Settings != nil && f.Settings.CollectEmail
}

// LimitsOneResponse reports whether a respondent email may submit at
// most once.
func (f Form) LimitsOneResponse() bool {
	return f.Settings != nil && f.Settings.LimitOneResponse
}
