package records

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// Store archives parse outcomes so downstream tooling (dashboards, ticketing)
// can query what the parser produced. The coerced record itself is a
// throwaway value; only the outcome row has a lifecycle.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, o *ParseOutcome) error {
	var severity, component, ts, cause sql.NullString
	var impact sql.NullInt64
	if o.Record != nil {
		severity = sql.NullString{String: string(o.Record.Severity), Valid: true}
		component = sql.NullString{String: o.Record.Component, Valid: true}
		ts = sql.NullString{String: o.Record.Timestamp, Valid: true}
		cause = sql.NullString{String: o.Record.SuspectedCause, Valid: true}
		impact = sql.NullInt64{Int64: int64(o.Record.ImpactCount), Valid: true}
	}
	const q = `
		INSERT INTO parse_outcomes
		(report_text, success, severity, component, occurred_at, suspected_cause, impact_count, error, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at
	`
	row := s.db.QueryRowContext(ctx, q,
		o.ReportText,
		o.Success,
		severity,
		component,
		ts,
		cause,
		impact,
		o.Error,
		time.Now().UTC(),
	)
	return row.Scan(&o.ID, &o.CreatedAt)
}

type ListFilter struct {
	Severity  string
	Component string
	Success   *bool
	Limit     int
}

func (s *Store) List(ctx context.Context, f ListFilter) ([]ParseOutcome, error) {
	clauses := []string{"1=1"}
	args := []interface{}{}
	idx := 1
	if f.Severity != "" {
		clauses = append(clauses, "severity = $"+itoa(idx))
		args = append(args, f.Severity)
		idx++
	}
	if f.Component != "" {
		clauses = append(clauses, "component = $"+itoa(idx))
		args = append(args, f.Component)
		idx++
	}
	if f.Success != nil {
		clauses = append(clauses, "success = $"+itoa(idx))
		args = append(args, *f.Success)
		idx++
	}
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := "SELECT id, report_text, success, severity, component, occurred_at," +
		" suspected_cause, impact_count, error, created_at" +
		" FROM parse_outcomes WHERE " + strings.Join(clauses, " AND ") +
		" ORDER BY created_at DESC LIMIT " + itoa(limit)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []ParseOutcome
	for rows.Next() {
		o, err := scanOutcome(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*ParseOutcome, error) {
	const q = `
		SELECT id, report_text, success, severity, component, occurred_at,
		       suspected_cause, impact_count, error, created_at
		FROM parse_outcomes WHERE id = $1
	`
	row := s.db.QueryRowContext(ctx, q, id)
	return scanOutcome(row.Scan)
}

func scanOutcome(scan func(...interface{}) error) (*ParseOutcome, error) {
	var o ParseOutcome
	var severity, component, ts, cause sql.NullString
	var impact sql.NullInt64
	var errMsg sql.NullString
	if err := scan(&o.ID, &o.ReportText, &o.Success, &severity, &component,
		&ts, &cause, &impact, &errMsg, &o.CreatedAt); err != nil {
		return nil, err
	}
	if o.Success {
		o.Record = &IncidentRecord{
			Severity:       Severity(severity.String),
			Component:      component.String,
			Timestamp:      ts.String,
			SuspectedCause: cause.String,
			ImpactCount:    int(impact.Int64),
		}
	}
	o.Error = errMsg.String
	return &o, nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
