package output

import (
	"fmt"
)

const CommentLinePrefix = "--"

type ToSql interface {
	ToSql(Quoter) string
}

// SQLComment marks statements that are commentary rather than executable SQL
type SQLComment interface {
	Comment() string
}

type Quoter interface {
	QuoteSchema(schema string) string
	QuoteRole(role string) string
	QuoteObject(obj string) string
	QualifyObject(schema, obj string) string
	LiteralString(value string) string
}

func NewRawSQL(format string, args ...interface{}) rawSQL {
	return rawSQL(fmt.Sprintf(format, args...))
}

type rawSQL string

func (c rawSQL) ToSql(q Quoter) string {
	return string(c)
}

func NewComment(format string, args ...interface{}) comment {
	return comment(fmt.Sprintf(format, args...))
}

type comment string

func (c comment) ToSql(q Quoter) string {
	return fmt.Sprintf("%s %s", CommentLinePrefix, string(c))
}

func (c comment) Comment() string {
	return string(c)
}
