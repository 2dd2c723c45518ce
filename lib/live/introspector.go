package live

import (
	"github.com/pkg/errors"
)

type IntrospectorFactory interface {
	NewIntrospector(*Connection) (Introspector, error)
}

type LiveIntrospectorFactory struct{}

func (*LiveIntrospectorFactory) NewIntrospector(conn *Connection) (Introspector, error) {
	return NewIntrospector(conn)
}

// Introspector answers the privilege questions the verify pass asks of a
// live database.
type Introspector interface {
	ServerVersion() VersionNum
	GetSchemaUsage(schema, role string) (bool, error)
	GetTableList(schema string) ([]string, error)
	GetTablePerms(schema, grantee string) ([]TablePermEntry, error)
	GetSequenceRelList(schema string) ([]SequenceRelEntry, error)
}

type LiveIntrospector struct {
	conn *Connection
	vers VersionNum
}

var _ Introspector = &LiveIntrospector{}

func NewIntrospector(conn *Connection) (*LiveIntrospector, error) {
	vers, err := conn.Version()
	if err != nil {
		return nil, errors.Wrap(err, "could not read server version")
	}
	return &LiveIntrospector{conn, vers}, nil
}

func (self *LiveIntrospector) ServerVersion() VersionNum {
	return self.vers
}

func (self *LiveIntrospector) GetSchemaUsage(schema, role string) (bool, error) {
	var ok bool
	err := self.conn.QueryVal(&ok, "SELECT has_schema_privilege($1, $2, 'USAGE')", role, schema)
	if err != nil {
		return false, errors.Wrapf(err, "could not check USAGE on schema %s for %s", schema, role)
	}
	return ok, nil
}

func (self *LiveIntrospector) GetTableList(schema string) ([]string, error) {
	rows, err := self.conn.QueryRaw(`
		SELECT tablename
		FROM pg_catalog.pg_tables
		WHERE schemaname = $1
		ORDER BY tablename
	`, schema)
	if err != nil {
		return nil, err
	}

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (self *LiveIntrospector) GetTablePerms(schema, grantee string) ([]TablePermEntry, error) {
	// is_grantable comes back as the strings YES/NO, not a boolean
	res, err := self.conn.Query(`
		SELECT table_schema, table_name, grantee, privilege_type, is_grantable
		FROM information_schema.table_privileges
		WHERE table_schema = $1 AND grantee = $2
	`, schema, grantee)
	if err != nil {
		return nil, err
	}

	out := make([]TablePermEntry, len(res))
	for i, row := range res {
		out[i] = TablePermEntry{
			Schema:    row["table_schema"],
			Table:     row["table_name"],
			Grantee:   row["grantee"],
			Privilege: row["privilege_type"],
			Grantable: row["is_grantable"] == "YES",
		}
	}
	return out, nil
}

func (self *LiveIntrospector) GetSequenceRelList(schema string) ([]SequenceRelEntry, error) {
	rows, err := self.conn.QueryRaw(`
		SELECT c.oid, c.relname, COALESCE(c.relacl::text, '')
		FROM pg_catalog.pg_class c
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
		WHERE c.relkind = 'S' AND n.nspname = $1
		ORDER BY c.relname
	`, schema)
	if err != nil {
		return nil, err
	}

	out := []SequenceRelEntry{}
	for rows.Next() {
		entry := SequenceRelEntry{}
		if err := rows.Scan(&entry.Oid, &entry.Name, &entry.Acl); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
