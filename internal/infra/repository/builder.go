package repository

import "github.com/Masterminds/squirrel"

// psql builds queries with postgres $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
