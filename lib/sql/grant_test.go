package sql

import (
	"testing"

	"github.com/chatstack/dbgrant/lib/output"
)

func TestGrantStatements(t *testing.T) {
	tests := []struct {
		name string
		stmt output.ToSql
		out  string
	}{
		{
			name: "schema usage",
			stmt: &SchemaUsageGrant{Schema: "ai_chatbot", Roles: []string{"svc-123"}},
			out:  `GRANT USAGE ON SCHEMA ai_chatbot TO "svc-123"`,
		},
		{
			name: "all tables",
			stmt: &SchemaTablesGrant{Schema: "ai_chatbot", Perms: []string{"ALL PRIVILEGES"}, Roles: []string{"svc-123"}},
			out:  `GRANT ALL PRIVILEGES ON ALL TABLES IN SCHEMA ai_chatbot TO "svc-123"`,
		},
		{
			name: "all sequences",
			stmt: &SchemaSequencesGrant{Schema: "ai_chatbot", Perms: []string{"ALL PRIVILEGES"}, Roles: []string{"svc-123"}},
			out:  `GRANT ALL PRIVILEGES ON ALL SEQUENCES IN SCHEMA ai_chatbot TO "svc-123"`,
		},
		{
			name: "default table privileges",
			stmt: DefaultTablePrivilegesGrant("ai_chatbot", []string{"ALL PRIVILEGES"}, []string{"svc-123"}),
			out:  `ALTER DEFAULT PRIVILEGES IN SCHEMA ai_chatbot GRANT ALL PRIVILEGES ON TABLES TO "svc-123"`,
		},
		{
			name: "default sequence privileges",
			stmt: DefaultSequencePrivilegesGrant("ai_chatbot", []string{"ALL PRIVILEGES"}, []string{"svc-123"}),
			out:  `ALTER DEFAULT PRIVILEGES IN SCHEMA ai_chatbot GRANT ALL PRIVILEGES ON SEQUENCES TO "svc-123"`,
		},
		{
			name: "lowercase perms are uppercased",
			stmt: &SchemaTablesGrant{Schema: "app", Perms: []string{"select", "insert"}, Roles: []string{"reader"}},
			out:  `GRANT SELECT, INSERT ON ALL TABLES IN SCHEMA app TO "reader"`,
		},
		{
			name: "public role is a keyword, not quoted",
			stmt: &SchemaUsageGrant{Schema: "app", Roles: []string{"PUBLIC"}},
			out:  `GRANT USAGE ON SCHEMA app TO PUBLIC`,
		},
		{
			name: "hostile principal is escaped, not interpolated",
			stmt: &SchemaUsageGrant{Schema: "app", Roles: []string{`svc"; DROP TABLE users; --`}},
			out:  `GRANT USAGE ON SCHEMA app TO "svc""; DROP TABLE users; --"`,
		},
	}
	q := &Quoter{}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := test.stmt.ToSql(q)
			if out != test.out {
				t.Fatalf("expected '%s' but '%s'", test.out, out)
			}
		})
	}
}
