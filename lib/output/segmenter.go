package output

import (
	"fmt"
	"io"
)

// DDLStatement for tracking individual DDL statements. Exactly one of
// Comment and Statement is set.
type DDLStatement struct {
	Comment   string
	Statement string
}

func NewSegmenter(q Quoter) *Segmenter {
	return &Segmenter{quoter: q}
}

// Segmenter is an output segmenter that holds everything internally in
// arrays and then returns the properly ordered list from AllStatements()
type Segmenter struct {
	quoter Quoter
	Header []ToSql
	Body   []ToSql
	final  []ToSql
}

// SetHeader removes any previous header statements and
// starts the header fresh
func (s *Segmenter) SetHeader(stmt ToSql) {
	s.Header = []ToSql{stmt}
}

// AppendHeader adds a new statement to the header
func (s *Segmenter) AppendHeader(stmt ToSql) {
	if stmt == nil {
		return
	}
	s.Header = append(s.Header, stmt)
}

// WriteSql appends the output of ToSql() from each generator
// to the body in turn
func (s *Segmenter) WriteSql(generators ...ToSql) {
	s.Body = append(s.Body, generators...)
}

// Close compiles the parts into a single list of statements
func (s *Segmenter) Close() {
	s.final = append(s.Header, s.Body...)
	s.Header = nil
	s.Body = nil
}

// AllStatements compiles the parts into a single list if it wasn't
// previously done, then returns that list rendered through the quoter.
func (s *Segmenter) AllStatements() []DDLStatement {
	if len(s.final) == 0 {
		s.Close()
	}
	var final []DDLStatement
	for _, stmt := range s.final {
		if c, isComment := stmt.(SQLComment); isComment {
			final = append(final, DDLStatement{Comment: c.Comment()})
		} else {
			final = append(final, DDLStatement{Statement: stmt.ToSql(s.quoter)})
		}
	}
	return final
}

// WriteTo renders every statement to w, one per line, terminating
// executable statements and prefixing comments
func (s *Segmenter) WriteTo(w io.Writer) error {
	for _, stmt := range s.AllStatements() {
		line := stmt.Statement + ";"
		if stmt.Comment != "" {
			line = fmt.Sprintf("%s %s", CommentLinePrefix, stmt.Comment)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
