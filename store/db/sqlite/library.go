package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/opencampus/librarymap/store"
)

var weekdayColumns = [store.WeekdayCount]string{
	"sunday_hours", "monday_hours", "tuesday_hours", "wednesday_hours",
	"thursday_hours", "friday_hours", "saturday_hours",
}

func (d *DB) CreateLibrary(ctx context.Context, create *store.Library) (*store.Library, error) {
	fields := []string{"uid", "name", "description", "address", "latitude", "longitude"}
	placeholderValues := []any{
		create.UID, create.Name, create.Description, create.Address,
		create.Latitude, create.Longitude,
	}
	for i, column := range weekdayColumns {
		fields = append(fields, column)
		placeholderValues = append(placeholderValues, create.Hours[i])
	}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		placeholderValues = append(placeholderValues, create.CreatedTs)
	}
	if create.UpdatedTs != 0 {
		fields = append(fields, "updated_ts")
		placeholderValues = append(placeholderValues, create.UpdatedTs)
	}

	stmt := `INSERT INTO library (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts, row_status`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
		&create.RowStatus,
	); err != nil {
		return nil, fmt.Errorf("failed to create library: %w", err)
	}

	return create, nil
}

func (d *DB) ListLibraries(ctx context.Context, find *store.FindLibrary) ([]*store.Library, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "library.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "library.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.RowStatus; v != nil {
		where, args = append(where, "library.row_status = "+placeholder(len(args)+1)), append(args, *v)
	}
	if find.MissingCoordinates {
		where = append(where, "(library.latitude IS NULL OR library.longitude IS NULL)")
	}

	query := `
		SELECT
			id, uid, row_status, created_ts, updated_ts,
			name, description, address, latitude, longitude,
			` + strings.Join(weekdayColumns[:], ", ") + `
		FROM library
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY library.name ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query libraries: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Library, 0)
	for rows.Next() {
		var library store.Library
		var latitude, longitude sql.NullFloat64

		dests := []any{
			&library.ID,
			&library.UID,
			&library.RowStatus,
			&library.CreatedTs,
			&library.UpdatedTs,
			&library.Name,
			&library.Description,
			&library.Address,
			&latitude,
			&longitude,
		}
		for i := range library.Hours {
			dests = append(dests, &library.Hours[i])
		}

		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("failed to scan library: %w", err)
		}

		if latitude.Valid {
			library.Latitude = &latitude.Float64
		}
		if longitude.Valid {
			library.Longitude = &longitude.Float64
		}

		list = append(list, &library)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate libraries: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateLibrary(ctx context.Context, update *store.UpdateLibrary) (*store.Library, error) {
	set, args := []string{}, []any{}

	if v := update.RowStatus; v != nil {
		set, args = append(set, "row_status = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Name; v != nil {
		set, args = append(set, "name = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Description; v != nil {
		set, args = append(set, "description = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Address; v != nil {
		set, args = append(set, "address = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Latitude; v != nil {
		set, args = append(set, "latitude = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Longitude; v != nil {
		set, args = append(set, "longitude = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Hours; v != nil {
		for i, column := range weekdayColumns {
			set, args = append(set, column+" = "+placeholder(len(args)+1)), append(args, v[i])
		}
	}
	if v := update.UpdatedTs; v != nil {
		set, args = append(set, "updated_ts = "+placeholder(len(args)+1)), append(args, *v)
	} else {
		set = append(set, "updated_ts = (strftime('%s', 'now'))")
	}

	args = append(args, update.ID)

	stmt := `UPDATE library SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, fmt.Errorf("failed to update library: %w", err)
	}

	list, err := d.ListLibraries(ctx, &store.FindLibrary{ID: &update.ID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("library not found")
	}
	return list[0], nil
}

func (d *DB) DeleteLibrary(ctx context.Context, delete *store.DeleteLibrary) error {
	stmt := `DELETE FROM library WHERE id = ` + placeholder(1)
	result, err := d.db.ExecContext(ctx, stmt, delete.ID)
	if err != nil {
		return fmt.Errorf("failed to delete library: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("library not found")
	}

	return nil
}
