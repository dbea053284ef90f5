package db

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/devmaikelrm/BotModerno-sub000/model"
)

// ErrDuplicateModel is returned by InsertReport when another report already
// holds the same canonical model identifier. Callers must treat it
// differently from transient storage errors.
var ErrDuplicateModel = errors.New("a report for this model already exists")

// ErrAlreadyModerated is returned by UpdateReportStatus when the report has
// already left the pending state. The losing verdict is a no-op.
var ErrAlreadyModerated = errors.New("report is no longer pending")

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// joinList flattens a token list for storage. Tokens come out of
// textutil.ParseList and can never contain the separator.
func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// scanReport scans a row into a Report struct.
func scanReport(scanner rowScanner) (*model.Report, error) {
	var r model.Report
	var bands, provinces string
	err := scanner.Scan(
		&r.ID, &r.UserID, &r.AuthorNickname, &r.CommercialName, &r.Model,
		&r.Works, &bands, &provinces, &r.Observations, &r.Status, &r.ReviewerID, &r.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Return nil, nil if no report is found
		}
		return nil, err
	}
	r.Bands = splitList(bands)
	r.Provinces = splitList(provinces)
	return &r, nil
}

const reportColumns = `
	id, author_id, COALESCE(author_nickname, '') as author_nickname,
	commercial_name, model, works,
	COALESCE(bands, '') as bands,
	COALESCE(provinces, '') as provinces,
	COALESCE(observations, '') as observations,
	status, COALESCE(reviewer_id, '') as reviewer_id, created_at`

// InsertReport inserts a new report. A uniqueness violation on the canonical
// model identifier is mapped to ErrDuplicateModel so the submission path can
// tell the user exactly what happened; every other error is returned as-is.
func InsertReport(r *model.Report) error {
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}
	if r.Status == "" {
		r.Status = model.StatusPending
	}

	stmt, err := DB.Prepare(`INSERT INTO reports(
		id, author_id, author_nickname, commercial_name, model, works,
		bands, provinces, observations, status, created_at
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		r.ID, r.UserID, r.AuthorNickname, r.CommercialName, r.Model, r.Works,
		joinList(r.Bands), joinList(r.Provinces), r.Observations, r.Status, r.CreatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicateModel
		}
		return err
	}
	return nil
}

// GetReport retrieves a report by its ID.
func GetReport(reportID string) (*model.Report, error) {
	row := DB.QueryRow(`SELECT`+reportColumns+` FROM reports WHERE id = ?`, reportID)
	return scanReport(row)
}

// GetReportByModel retrieves a report by its canonical model identifier.
func GetReportByModel(canonicalModel string) (*model.Report, error) {
	row := DB.QueryRow(`SELECT`+reportColumns+` FROM reports WHERE model = ?`, canonicalModel)
	return scanReport(row)
}

// UpdateReportStatus moves a pending report to its verdict. The conditional
// WHERE makes the transition first-wins: when two moderators race, the second
// matches zero rows and gets ErrAlreadyModerated instead of overwriting.
func UpdateReportStatus(reportID, status, reviewerID string) error {
	res, err := DB.Exec("UPDATE reports SET status = ?, reviewer_id = ? WHERE id = ? AND status = ?",
		status, reviewerID, reportID, model.StatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAlreadyModerated
	}
	return nil
}

// ListReportsByStatus retrieves one page of reports with the given status,
// newest first. An empty status matches every report.
func ListReportsByStatus(status string, limit, offset int) ([]*model.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		if report != nil {
			reports = append(reports, report)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// CountReportsByStatus counts reports with the given status. An empty status
// counts every report.
func CountReportsByStatus(status string) (int, error) {
	var count int
	var err error
	if status == "" {
		err = DB.QueryRow("SELECT COUNT(*) FROM reports").Scan(&count)
	} else {
		err = DB.QueryRow("SELECT COUNT(*) FROM reports WHERE status = ?", status).Scan(&count)
	}
	return count, err
}

// ListApprovedReports retrieves every approved report ordered by model, for
// export.
func ListApprovedReports() ([]*model.Report, error) {
	rows, err := DB.Query(`SELECT`+reportColumns+` FROM reports WHERE status = ? ORDER BY model ASC`, model.StatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		if report != nil {
			reports = append(reports, report)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// ListReportsByAuthor retrieves all reports submitted by a user, newest first.
func ListReportsByAuthor(authorID string) ([]*model.Report, error) {
	rows, err := DB.Query(`SELECT`+reportColumns+` FROM reports WHERE author_id = ? ORDER BY created_at DESC`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		if report != nil {
			reports = append(reports, report)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
