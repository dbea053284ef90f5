package db

import (
	"database/sql"
	"time"

	"github.com/devmaikelrm/BotModerno-sub000/model"
)

// GetDraft retrieves the wizard draft for a user. Returns nil, nil when the
// user has no wizard in progress.
func GetDraft(userID string) (*model.Draft, error) {
	row := DB.QueryRow(`SELECT
		user_id, step,
		COALESCE(commercial_name, '') as commercial_name,
		COALESCE(model, '') as model,
		works,
		COALESCE(bands, '') as bands,
		COALESCE(provinces, '') as provinces,
		COALESCE(observations, '') as observations,
		updated_at
	FROM drafts WHERE user_id = ?`, userID)

	var d model.Draft
	var works sql.NullBool
	var bands, provinces string
	err := row.Scan(
		&d.UserID, &d.Step, &d.CommercialName, &d.Model, &works,
		&bands, &provinces, &d.Observations, &d.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if works.Valid {
		v := works.Bool
		d.Works = &v
	}
	d.Bands = splitList(bands)
	d.Provinces = splitList(provinces)
	return &d, nil
}

// SaveDraft persists a draft, overwriting any previous draft for the same
// user. The wizard calls this before prompting for the next step so a crash
// never loses an accepted answer.
func SaveDraft(d *model.Draft) error {
	d.UpdatedAt = time.Now().Unix()

	var works interface{}
	if d.Works != nil {
		works = *d.Works
	}

	_, err := DB.Exec(`INSERT INTO drafts(
		user_id, step, commercial_name, model, works, bands, provinces, observations, updated_at
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(user_id) DO UPDATE SET
		step = excluded.step,
		commercial_name = excluded.commercial_name,
		model = excluded.model,
		works = excluded.works,
		bands = excluded.bands,
		provinces = excluded.provinces,
		observations = excluded.observations,
		updated_at = excluded.updated_at`,
		d.UserID, d.Step, d.CommercialName, d.Model, works,
		joinList(d.Bands), joinList(d.Provinces), d.Observations, d.UpdatedAt,
	)
	return err
}

// DeleteDraft removes a user's draft. Deleting a missing draft is not an
// error.
func DeleteDraft(userID string) error {
	_, err := DB.Exec("DELETE FROM drafts WHERE user_id = ?", userID)
	return err
}
