package postgres

import "github.com/Masterminds/squirrel"

// psql is the squirrel statement builder configured for PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns the shared statement builder.
func Builder() squirrel.StatementBuilderType {
	return psql
}
