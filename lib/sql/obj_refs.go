package sql

import (
	"github.com/chatstack/dbgrant/lib/output"
)

type Qualifiable interface {
	Qualified(q output.Quoter) string
}

type SchemaRef struct {
	Schema string
}

func (self *SchemaRef) Qualified(q output.Quoter) string {
	return q.QuoteSchema(self.Schema)
}
