package search

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/migrator"
)

func columnType(name, dataType string) gorm.ColumnType {
	return migrator.ColumnType{
		NameValue:     sql.NullString{String: name, Valid: true},
		DataTypeValue: sql.NullString{String: dataType, Valid: true},
	}
}

// Text-like columns come back in the order the migrator reported them,
// which gorm yields in schema declaration order
func TestTextColumnNamesPreservesDeclarationOrder(t *testing.T) {
	columnTypes := []gorm.ColumnType{
		columnType("id", "INTEGER"),
		columnType("title", "varchar(200)"),
		columnType("view_count", "bigint"),
		columnType("excerpt", "TEXT"),
		columnType("published", "boolean"),
		columnType("content", "text"),
		columnType("created_at", "timestamp with time zone"),
	}

	assert.Equal(t, []string{"title", "excerpt", "content"}, textColumnNames(columnTypes))
}

func TestTextColumnNamesAllNonText(t *testing.T) {
	columnTypes := []gorm.ColumnType{
		columnType("id", "INTEGER"),
		columnType("amount", "NUMERIC(10,2)"),
	}

	assert.Empty(t, textColumnNames(columnTypes))
}

func TestIsTextType(t *testing.T) {
	textLike := []string{
		"TEXT", "text", "VARCHAR", "varchar(255)", "NVARCHAR(100)",
		"character varying", "CHARACTER VARYING(40)", "bpchar", "CLOB",
		"longtext", "citext", "CHAR(1)",
	}
	for _, name := range textLike {
		assert.True(t, isTextType(name), "%q should be text-like", name)
	}

	notText := []string{
		"INTEGER", "int", "bigint", "NUMERIC(10,2)", "real", "boolean",
		"timestamp with time zone", "datetime", "blob", "bytea", "json", "",
	}
	for _, name := range notText {
		assert.False(t, isTextType(name), "%q should not be text-like", name)
	}
}
