package sql

import (
	"fmt"
	"strings"

	"github.com/chatstack/dbgrant/lib/util"
)

type Quoter struct {
	Logger util.Logger

	// schema names are plain constants from config and are left bare unless
	// the operator asks otherwise (--quoteschemanames)
	ShouldQuoteSchemaNames bool
}

func (self *Quoter) quoted(name string) string {
	if strings.Contains(name, `"`) && self.Logger != nil {
		self.Logger.Warning("identifier '%s' contains embedded double quotes, escaping", name)
	}
	return fmt.Sprintf(`"%s"`, strings.ReplaceAll(name, `"`, `""`))
}

func (self *Quoter) QuoteSchema(name string) string {
	if self.ShouldQuoteSchemaNames {
		return self.quoted(name)
	}
	return name
}

// QuoteRole always quotes: role names reach us from operator input and are
// interpolated into administrative statements, so they never go in bare
func (self *Quoter) QuoteRole(name string) string {
	return self.quoted(name)
}

func (self *Quoter) QuoteObject(name string) string {
	return self.quoted(name)
}

func (self *Quoter) QualifyObject(schema string, object string) string {
	return fmt.Sprintf("%s.%s", self.QuoteSchema(schema), self.QuoteObject(object))
}

func (self *Quoter) LiteralString(value string) string {
	return fmt.Sprintf("'%s'", strings.ReplaceAll(value, "'", "''"))
}
