package lib

import (
	"strings"

	"github.com/chatstack/dbgrant/lib/live"
	"github.com/chatstack/dbgrant/lib/util"
)

// Verifier checks, after a grant run, that the principal actually holds
// privileges on the schema and everything currently in it.
type Verifier struct {
	logger util.Logger
}

func NewVerifier(logger util.Logger) *Verifier {
	return &Verifier{logger: logger}
}

// Verify reports whether the principal holds privileges on the schema and on
// every existing table and sequence. Missing grants are logged as warnings
// and make the result false; the error return is for introspection failures
// only. An empty schema verifies clean.
func (self *Verifier) Verify(intro live.Introspector, schema, principal string) (bool, error) {
	self.logger.Info("Verifying privileges against PostgreSQL %s", intro.ServerVersion())

	ok := true

	usage, err := intro.GetSchemaUsage(schema, principal)
	if err != nil {
		return false, err
	}
	if !usage {
		self.logger.Warning("%s does not have USAGE on schema %s", principal, schema)
		ok = false
	}

	tables, err := intro.GetTableList(schema)
	if err != nil {
		return false, err
	}
	perms, err := intro.GetTablePerms(schema, principal)
	if err != nil {
		return false, err
	}
	granted := map[string]int{}
	for _, perm := range perms {
		granted[perm.Table]++
	}
	tablesOk := 0
	for _, table := range tables {
		if granted[table] == 0 {
			self.logger.Warning("%s has no privileges on table %s.%s", principal, schema, table)
			ok = false
			continue
		}
		tablesOk++
	}

	seqs, err := intro.GetSequenceRelList(schema)
	if err != nil {
		return false, err
	}
	seqsOk := 0
	for _, seq := range seqs {
		if !aclHoldsGrantee(seq.Acl, principal) {
			self.logger.Warning("%s has no privileges on sequence %s.%s", principal, schema, seq.Name)
			ok = false
			continue
		}
		seqsOk++
	}

	self.logger.Notice("Verified %s holds privileges on %d/%d tables and %d/%d sequences in schema %s",
		principal, tablesOk, len(tables), seqsOk, len(seqs), schema)
	return ok, nil
}

// aclHoldsGrantee scans an aclitem[] rendered as text, where each entry has
// the shape grantee=privs/grantor. Grantees needing quoting show up quoted.
func aclHoldsGrantee(acl, grantee string) bool {
	return strings.Contains(acl, grantee+"=") ||
		strings.Contains(acl, `"`+grantee+`"=`)
}
