package config

// sourced from the original grant-permissions admin script's CLI surface

type Args struct {
	// the one positional: which service principal gets access.
	// go-arg prints usage and exits non-zero when it is missing,
	// before any database connection is attempted.
	Principal string `arg:"positional" placeholder:"PRINCIPAL" help:"service principal (role) to grant schema access to"`

	// Global switches and flags
	Verbose []bool `arg:"-v" help:"see more detail (verbose)."`
	Quiet   []bool `arg:"-q" help:"see less detail (quiet)."`
	Debug   bool   `arg:"--debug" help:"display extended information about errors. Automatically implies -vv."`
	// Handled by go-arg
	// Help bool `arg:"-h,--help" help:"show this usage information"`

	Schema           string `arg:"--schema,env:DBGRANT_SCHEMA" default:"ai_chatbot" help:"application schema to grant access on"`
	QuoteSchemaNames bool   `arg:"--quoteschemanames" help:"quote the schema name in generated SQL"`

	DryRun bool `arg:"--dry-run" help:"print the grant statements to stdout without connecting"`
	Verify bool `arg:"--verify" help:"after granting, introspect the schema and report the principal's privileges"`

	// Database connectivity; each falls back to the process environment so
	// deployments can ship an env file instead of flags
	DbHost     string  `arg:"--db-host,env:DBGRANT_DB_HOST" help:"database server host"`
	DbPort     uint    `arg:"--db-port,env:DBGRANT_DB_PORT" default:"5432" help:"database server port"`
	DbName     string  `arg:"--db-name,env:DBGRANT_DB_NAME" help:"database name"`
	DbUser     string  `arg:"--db-user,env:DBGRANT_DB_USER" help:"role to connect as; must be able to grant on the schema"`
	DbPassword *string `arg:"--db-password,env:DBGRANT_DB_PASSWORD" help:"password for --db-user; prompted for when omitted on a terminal"`
}

func (Args) Description() string {
	return "dbgrant - grant a service principal full current-and-future access to the application schema"
}
