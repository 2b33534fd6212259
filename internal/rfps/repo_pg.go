package rfps

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const rfpColumns = `
id, name, agency_name, advertiser_client_name, campaign_type, budget_range,
due_date, status, completion_percentage, content, ai_processing_enabled,
team_members, attachments, analysis, proposal, quality_check,
submitted_date, created_at, updated_at`

// Create inserts a new RFP.
func (r *PGRepo) Create(ctx context.Context, rfp RFP) error {
	const query = `
INSERT INTO rfps (` + rfpColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	args, err := rfpArgs(rfp)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, args...)
	return err
}

// GetByID returns an RFP by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (RFP, error) {
	const query = `SELECT ` + rfpColumns + ` FROM rfps WHERE id = $1 LIMIT 1`
	rfp, err := scanRFP(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return RFP{}, ErrNotFound
	}
	return rfp, err
}

// Update overwrites an existing RFP.
func (r *PGRepo) Update(ctx context.Context, rfp RFP) error {
	const query = `
UPDATE rfps SET
	name = $2, agency_name = $3, advertiser_client_name = $4, campaign_type = $5,
	budget_range = $6, due_date = $7, status = $8, completion_percentage = $9,
	content = $10, ai_processing_enabled = $11, team_members = $12, attachments = $13,
	analysis = $14, proposal = $15, quality_check = $16, submitted_date = $17,
	updated_at = $18
WHERE id = $1`
	teamMembers, attachments, analysis, proposal, qualityCheck, err := rfpJSONB(rfp)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		rfp.ID,
		rfp.Name,
		rfp.AgencyName,
		nullString(rfp.AdvertiserClientName),
		rfp.CampaignType,
		rfp.BudgetRange,
		rfp.DueDate,
		rfp.Status,
		rfp.CompletionPercentage,
		nullString(rfp.Content),
		rfp.AIProcessingEnabled,
		teamMembers,
		attachments,
		nullBytes(analysis),
		nullBytes(proposal),
		nullBytes(qualityCheck),
		nullString(rfp.SubmittedDate),
		rfp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an RFP by ID.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM rfps WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the filtered page, newest-updated first, plus the total match count.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]RFP, int, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 10
	}

	where := "TRUE"
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		idx := len(args)
		where += fmt.Sprintf(" AND (name ILIKE $%d OR agency_name ILIKE $%d OR advertiser_client_name ILIKE $%d)", idx, idx, idx)
	}
	if filter.Status != "" && filter.Status != StatusAll {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM rfps WHERE ` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, perPage, (page-1)*perPage)
	query := `SELECT ` + rfpColumns + ` FROM rfps WHERE ` + where +
		fmt.Sprintf(` ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectRFPs(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListRecent returns the most recently updated RFPs.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]RFP, error) {
	query := `SELECT ` + rfpColumns + ` FROM rfps ORDER BY updated_at DESC LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRFPs(rows)
}

// ListAll returns every RFP, newest-updated first.
func (r *PGRepo) ListAll(ctx context.Context) ([]RFP, error) {
	query := `SELECT ` + rfpColumns + ` FROM rfps ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRFPs(rows)
}

// ReplaceAll swaps the full collection for the given set in one transaction.
func (r *PGRepo) ReplaceAll(ctx context.Context, rfps []RFP) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rfps`); err != nil {
		return err
	}
	const query = `
INSERT INTO rfps (` + rfpColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	for _, rfp := range rfps {
		args, err := rfpArgs(rfp)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRFP(row rowScanner) (RFP, error) {
	var (
		rfp           RFP
		advertiser    sql.NullString
		content       sql.NullString
		dueDate       time.Time
		teamMembers   []byte
		attachments   []byte
		analysis      []byte
		proposal      []byte
		qualityCheck  []byte
		submittedDate sql.NullTime
	)
	err := row.Scan(
		&rfp.ID,
		&rfp.Name,
		&rfp.AgencyName,
		&advertiser,
		&rfp.CampaignType,
		&rfp.BudgetRange,
		&dueDate,
		&rfp.Status,
		&rfp.CompletionPercentage,
		&content,
		&rfp.AIProcessingEnabled,
		&teamMembers,
		&attachments,
		&analysis,
		&proposal,
		&qualityCheck,
		&submittedDate,
		&rfp.CreatedAt,
		&rfp.UpdatedAt,
	)
	if err != nil {
		return RFP{}, err
	}

	rfp.AdvertiserClientName = advertiser.String
	rfp.Content = content.String
	rfp.DueDate = dueDate.Format(DateFormat)
	if submittedDate.Valid {
		rfp.SubmittedDate = submittedDate.Time.Format(DateFormat)
	}

	if err := unmarshalJSONB(teamMembers, &rfp.TeamMembers); err != nil {
		return RFP{}, err
	}
	if rfp.TeamMembers == nil {
		rfp.TeamMembers = []TeamMember{}
	}
	if err := unmarshalJSONB(attachments, &rfp.Attachments); err != nil {
		return RFP{}, err
	}
	if rfp.Attachments == nil {
		rfp.Attachments = []Attachment{}
	}
	if len(analysis) > 0 {
		rfp.Analysis = &Analysis{}
		if err := json.Unmarshal(analysis, rfp.Analysis); err != nil {
			return RFP{}, err
		}
	}
	if len(proposal) > 0 {
		rfp.Proposal = &Proposal{}
		if err := json.Unmarshal(proposal, rfp.Proposal); err != nil {
			return RFP{}, err
		}
	}
	if len(qualityCheck) > 0 {
		rfp.QualityCheck = &QualityCheck{}
		if err := json.Unmarshal(qualityCheck, rfp.QualityCheck); err != nil {
			return RFP{}, err
		}
	}
	return rfp, nil
}

func collectRFPs(rows *sql.Rows) ([]RFP, error) {
	out := []RFP{}
	for rows.Next() {
		rfp, err := scanRFP(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rfp)
	}
	return out, rows.Err()
}

func rfpArgs(rfp RFP) ([]any, error) {
	teamMembers, attachments, analysis, proposal, qualityCheck, err := rfpJSONB(rfp)
	if err != nil {
		return nil, err
	}
	return []any{
		rfp.ID,
		rfp.Name,
		rfp.AgencyName,
		nullString(rfp.AdvertiserClientName),
		rfp.CampaignType,
		rfp.BudgetRange,
		rfp.DueDate,
		rfp.Status,
		rfp.CompletionPercentage,
		nullString(rfp.Content),
		rfp.AIProcessingEnabled,
		teamMembers,
		attachments,
		nullBytes(analysis),
		nullBytes(proposal),
		nullBytes(qualityCheck),
		nullString(rfp.SubmittedDate),
		rfp.CreatedAt,
		rfp.UpdatedAt,
	}, nil
}

func rfpJSONB(rfp RFP) (teamMembers, attachments, analysis, proposal, qualityCheck []byte, err error) {
	members := rfp.TeamMembers
	if members == nil {
		members = []TeamMember{}
	}
	if teamMembers, err = json.Marshal(members); err != nil {
		return
	}
	atts := rfp.Attachments
	if atts == nil {
		atts = []Attachment{}
	}
	if attachments, err = json.Marshal(atts); err != nil {
		return
	}
	if analysis, err = marshalOptional(rfp.Analysis); err != nil {
		return
	}
	if proposal, err = marshalOptional(rfp.Proposal); err != nil {
		return
	}
	qualityCheck, err = marshalOptional(rfp.QualityCheck)
	return
}

func marshalOptional(v any) ([]byte, error) {
	switch t := v.(type) {
	case *Analysis:
		if t == nil {
			return nil, nil
		}
	case *Proposal:
		if t == nil {
			return nil, nil
		}
	case *QualityCheck:
		if t == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

func unmarshalJSONB(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func nullBytes(b []byte) any {
	if b == nil {
		return nil
	}
	return b
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
