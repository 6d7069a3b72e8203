package psqlbuilder

import "github.com/Masterminds/squirrel"

// Построители запросов с PostgreSQL-плейсхолдерами ($1, $2, ...)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT-построитель
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert создает INSERT-построитель
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update создает UPDATE-построитель
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete создает DELETE-построитель
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
