package lib

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/chatstack/dbgrant/lib/live"
	"github.com/chatstack/dbgrant/lib/output"
	"github.com/chatstack/dbgrant/lib/sql"
	"github.com/chatstack/dbgrant/lib/util"
)

// AllPrivileges is what the service principal gets on every object; carving
// out finer permission sets is a schema management tool's job, not this one's.
var AllPrivileges = []string{"ALL PRIVILEGES"}

type grantStep struct {
	desc string
	stmt output.ToSql
}

// GrantRunner applies the fixed statement sequence that gives one principal
// current-and-future access to one schema. Statements run strictly in order;
// the later statements assume the schema-level grant already exists.
type GrantRunner struct {
	logger util.Logger
	quoter output.Quoter
}

func NewGrantRunner(logger util.Logger, quoter output.Quoter) *GrantRunner {
	return &GrantRunner{logger: logger, quoter: quoter}
}

func (self *GrantRunner) steps(schema, principal string) []grantStep {
	roles := []string{principal}
	return []grantStep{
		{"usage on schema " + schema,
			&sql.SchemaUsageGrant{Schema: schema, Roles: roles}},
		{"all privileges on all tables in schema " + schema,
			&sql.SchemaTablesGrant{Schema: schema, Perms: AllPrivileges, Roles: roles}},
		{"all privileges on all sequences in schema " + schema,
			&sql.SchemaSequencesGrant{Schema: schema, Perms: AllPrivileges, Roles: roles}},
		{"default privileges on future tables in schema " + schema,
			sql.DefaultTablePrivilegesGrant(schema, AllPrivileges, roles)},
		{"default privileges on future sequences in schema " + schema,
			sql.DefaultSequencePrivilegesGrant(schema, AllPrivileges, roles)},
	}
}

// Statements returns the sequence without executing it, for --dry-run output.
func (self *GrantRunner) Statements(schema, principal string) []output.ToSql {
	stmts := []output.ToSql{}
	for _, step := range self.steps(schema, principal) {
		stmts = append(stmts, step.stmt)
	}
	return stmts
}

// Run executes the five statements in order against conn. The first failure
// halts the run with the database error preserved; statements already applied
// stay applied. There is no wrapping transaction: every statement is an
// idempotent grant, so a rerun after a partial failure is safe.
func (self *GrantRunner) Run(conn live.Executor, schema, principal string) error {
	if strings.TrimSpace(principal) == "" {
		return errors.New("principal may not be blank")
	}
	for _, step := range self.steps(schema, principal) {
		self.logger.Notice("Granting %s to %s", step.desc, principal)
		if err := conn.Exec(step.stmt.ToSql(self.quoter)); err != nil {
			return errors.Wrapf(err, "could not grant %s to %s", step.desc, principal)
		}
	}
	self.logger.Notice("Granted %s full access to schema %s", principal, schema)
	return nil
}
