package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

// psql - общий билдер с $-плейсхолдерами PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
