package live

import (
	"github.com/jackc/pgtype"
)

type TablePermEntry struct {
	Schema    string
	Table     string
	Grantee   string
	Privilege string
	Grantable bool
}

type SequenceRelEntry struct {
	Oid  pgtype.OID
	Name string
	// raw aclitem[] text, empty when the sequence has only default owner acls
	Acl string
}
