package search

import (
	"strings"

	"gorm.io/gorm"
)

// textTypes are the database type names considered text-like. Parameterized
// forms like varchar(255) are matched on the base name
var textTypes = map[string]struct{}{
	"char":              {},
	"nchar":             {},
	"varchar":           {},
	"nvarchar":          {},
	"varchar2":          {},
	"character":         {},
	"character varying": {},
	"bpchar":            {},
	"text":              {},
	"tinytext":          {},
	"mediumtext":        {},
	"longtext":          {},
	"ntext":             {},
	"clob":              {},
	"citext":            {},
	"string":            {},
}

// TextColumns returns the names of the table's text-like columns in schema
// declaration order. Callers pass the result (scoped by Config.Scope)
// straight into Build
func TextColumns(db *gorm.DB, table string) ([]string, error) {
	columnTypes, err := db.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, err
	}
	return textColumnNames(columnTypes), nil
}

// textColumnNames filters column metadata down to the text-like column
// names, preserving the order the migrator reported them in
func textColumnNames(columnTypes []gorm.ColumnType) []string {
	var columns []string
	for _, columnType := range columnTypes {
		if isTextType(columnType.DatabaseTypeName()) {
			columns = append(columns, columnType.Name())
		}
	}
	return columns
}

func isTextType(typeName string) bool {
	name := strings.ToLower(typeName)
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	_, ok := textTypes[strings.TrimSpace(name)]
	return ok
}
