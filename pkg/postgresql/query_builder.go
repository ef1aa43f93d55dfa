package postgresql

import (
	"fmt"
	"strings"
)

// queryBuilder implements QueryBuilder interface
type queryBuilder struct {
	selectCols  []string
	fromTable   string
	whereCond   []string
	whereArgs   []any
	orderByCols []string
	limitVal    *int
	argCounter  int
}

// NewQueryBuilder creates a new query builder
func NewQueryBuilder() QueryBuilder {
	return &queryBuilder{}
}

func (qb *queryBuilder) Select(columns ...string) QueryBuilder {
	qb.selectCols = append(qb.selectCols, columns...)
	return qb
}

func (qb *queryBuilder) From(table string) QueryBuilder {
	qb.fromTable = table
	return qb
}

func (qb *queryBuilder) Where(condition string, args ...any) QueryBuilder {
	condition, qb.argCounter = bindPlaceholders(condition, qb.argCounter, len(args))
	qb.whereCond = append(qb.whereCond, condition)
	qb.whereArgs = append(qb.whereArgs, args...)
	return qb
}

func (qb *queryBuilder) OrderBy(column string, desc ...bool) QueryBuilder {
	order := "ASC"
	if len(desc) > 0 && desc[0] {
		order = "DESC"
	}
	qb.orderByCols = append(qb.orderByCols, fmt.Sprintf("%s %s", column, order))
	return qb
}

func (qb *queryBuilder) Limit(limit int) QueryBuilder {
	qb.limitVal = &limit
	return qb
}

func (qb *queryBuilder) Build() (string, []any) {
	var query strings.Builder
	argCounter := qb.argCounter

	query.WriteString("SELECT ")
	if len(qb.selectCols) == 0 {
		query.WriteString("*")
	} else {
		query.WriteString(strings.Join(qb.selectCols, ", "))
	}

	if qb.fromTable != "" {
		query.WriteString(" FROM ")
		query.WriteString(qb.fromTable)
	}

	if len(qb.whereCond) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(qb.whereCond, " AND "))
	}

	if len(qb.orderByCols) > 0 {
		query.WriteString(" ORDER BY ")
		query.WriteString(strings.Join(qb.orderByCols, ", "))
	}

	args := make([]any, 0, len(qb.whereArgs)+1)
	args = append(args, qb.whereArgs...)

	if qb.limitVal != nil {
		argCounter++
		query.WriteString(fmt.Sprintf(" LIMIT $%d", argCounter))
		args = append(args, *qb.limitVal)
	}

	return query.String(), args
}

// insertBuilder implements InsertBuilder interface
type insertBuilder struct {
	table      string
	columns    []string
	values     [][]any
	onConflict string
}

// NewInsertBuilder creates a new insert builder
func NewInsertBuilder() InsertBuilder {
	return &insertBuilder{}
}

func (ib *insertBuilder) Into(table string) InsertBuilder {
	ib.table = table
	return ib
}

func (ib *insertBuilder) Columns(columns ...string) InsertBuilder {
	ib.columns = columns
	return ib
}

func (ib *insertBuilder) Values(values ...any) InsertBuilder {
	ib.values = append(ib.values, values)
	return ib
}

func (ib *insertBuilder) OnConflict(columns ...string) InsertBuilder {
	ib.onConflict = fmt.Sprintf("ON CONFLICT (%s)", strings.Join(columns, ", "))
	return ib
}

// OnConflictDoUpdateExcluded overwrites each column with the value proposed for insertion.
func (ib *insertBuilder) OnConflictDoUpdateExcluded(columns ...string) InsertBuilder {
	sets := make([]string, len(columns))
	for i, col := range columns {
		sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}
	ib.onConflict += " DO UPDATE SET " + strings.Join(sets, ", ")
	return ib
}

func (ib *insertBuilder) Build() (string, []any) {
	var query strings.Builder
	var args []any

	query.WriteString("INSERT INTO ")
	query.WriteString(ib.table)

	if len(ib.columns) > 0 {
		query.WriteString(" (")
		query.WriteString(strings.Join(ib.columns, ", "))
		query.WriteString(")")
	}

	query.WriteString(" VALUES ")

	rows := make([]string, len(ib.values))
	argIndex := 0
	for i, row := range ib.values {
		placeholders := make([]string, len(row))
		for j := range row {
			argIndex++
			placeholders[j] = fmt.Sprintf("$%d", argIndex)
			args = append(args, row[j])
		}
		rows[i] = "(" + strings.Join(placeholders, ", ") + ")"
	}
	query.WriteString(strings.Join(rows, ", "))

	if ib.onConflict != "" {
		query.WriteString(" ")
		query.WriteString(ib.onConflict)
	}

	return query.String(), args
}

// deleteBuilder implements DeleteBuilder interface
type deleteBuilder struct {
	table      string
	whereCond  []string
	whereArgs  []any
	argCounter int
}

// NewDeleteBuilder creates a new delete builder
func NewDeleteBuilder() DeleteBuilder {
	return &deleteBuilder{}
}

func (db *deleteBuilder) From(table string) DeleteBuilder {
	db.table = table
	return db
}

func (db *deleteBuilder) Where(condition string, args ...any) DeleteBuilder {
	condition, db.argCounter = bindPlaceholders(condition, db.argCounter, len(args))
	db.whereCond = append(db.whereCond, condition)
	db.whereArgs = append(db.whereArgs, args...)
	return db
}

func (db *deleteBuilder) Build() (string, []any) {
	query := "DELETE FROM " + db.table
	if len(db.whereCond) > 0 {
		query += " WHERE " + strings.Join(db.whereCond, " AND ")
	}
	return query, db.whereArgs
}

// bindPlaceholders replaces n `?` placeholders with $k, $k+1, ... (PostgreSQL style)
func bindPlaceholders(condition string, counter, n int) (string, int) {
	for range n {
		counter++
		condition = strings.Replace(condition, "?", fmt.Sprintf("$%d", counter), 1)
	}
	return condition, counter
}
