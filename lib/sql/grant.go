package sql

import (
	"fmt"
	"strings"

	"github.com/chatstack/dbgrant/lib/output"
)

type grantObjects string

const (
	grantObjectsTables    grantObjects = "TABLES"
	grantObjectsSequences grantObjects = "SEQUENCES"
)

// roleList quotes each grantee. The PUBLIC role is actually a keyword,
// not an identifier, so don't quote it.
func roleList(q output.Quoter, roles []string) string {
	quoted := make([]string, len(roles))
	for i, role := range roles {
		if strings.EqualFold(role, "public") {
			quoted[i] = role
		} else {
			quoted[i] = q.QuoteRole(role)
		}
	}
	return strings.Join(quoted, ", ")
}

// NOTE it is the job of callers to validate that the correct permissions are set
func permList(perms []string) string {
	upper := make([]string, len(perms))
	for i, perm := range perms {
		upper[i] = strings.ToUpper(perm)
	}
	return strings.Join(upper, ", ")
}

type SchemaUsageGrant struct {
	Schema string
	Roles  []string
}

func (self *SchemaUsageGrant) ToSql(q output.Quoter) string {
	return fmt.Sprintf(
		"GRANT USAGE ON SCHEMA %s TO %s",
		(&SchemaRef{self.Schema}).Qualified(q),
		roleList(q, self.Roles),
	)
}

// SchemaTablesGrant covers every table that exists in the schema at
// execution time; pair with a DefaultPrivilegesGrant for future tables.
type SchemaTablesGrant struct {
	Schema string
	Perms  []string
	Roles  []string
}

func (self *SchemaTablesGrant) ToSql(q output.Quoter) string {
	return fmt.Sprintf(
		"GRANT %s ON ALL TABLES IN SCHEMA %s TO %s",
		permList(self.Perms),
		(&SchemaRef{self.Schema}).Qualified(q),
		roleList(q, self.Roles),
	)
}

type SchemaSequencesGrant struct {
	Schema string
	Perms  []string
	Roles  []string
}

func (self *SchemaSequencesGrant) ToSql(q output.Quoter) string {
	return fmt.Sprintf(
		"GRANT %s ON ALL SEQUENCES IN SCHEMA %s TO %s",
		permList(self.Perms),
		(&SchemaRef{self.Schema}).Qualified(q),
		roleList(q, self.Roles),
	)
}

// DefaultPrivilegesGrant sets a default-privilege rule so objects created
// in the schema after this statement runs are granted automatically.
// Only affects objects created by the executing role.
type DefaultPrivilegesGrant struct {
	Schema  string
	Objects grantObjects
	Perms   []string
	Roles   []string
}

func DefaultTablePrivilegesGrant(schema string, perms, roles []string) *DefaultPrivilegesGrant {
	return &DefaultPrivilegesGrant{schema, grantObjectsTables, perms, roles}
}

func DefaultSequencePrivilegesGrant(schema string, perms, roles []string) *DefaultPrivilegesGrant {
	return &DefaultPrivilegesGrant{schema, grantObjectsSequences, perms, roles}
}

func (self *DefaultPrivilegesGrant) ToSql(q output.Quoter) string {
	return fmt.Sprintf(
		"ALTER DEFAULT PRIVILEGES IN SCHEMA %s GRANT %s ON %s TO %s",
		(&SchemaRef{self.Schema}).Qualified(q),
		permList(self.Perms),
		self.Objects,
		roleList(q, self.Roles),
	)
}
