package lib

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/chatstack/dbgrant/lib/config"
	"github.com/chatstack/dbgrant/lib/live"
	"github.com/chatstack/dbgrant/lib/output"
	"github.com/chatstack/dbgrant/lib/sql"
	"github.com/chatstack/dbgrant/lib/util"
)

// TODO(go,3) no globals
var GlobalDBGrant *DBGrant

type DBGrant struct {
	logger zerolog.Logger
}

var _ util.Logger = &DBGrant{}

func NewDBGrant() *DBGrant {
	return &DBGrant{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
			Timestamp().
			Str("run_id", uuid.NewString()).
			Logger(),
	}
}

// correlates to the original grant-permissions admin script
func (self *DBGrant) ArgParse() {
	args := &config.Args{}
	p := arg.MustParse(args)

	self.setVerbosity(args)

	cfg := config.Config{
		Principal: args.Principal,
		Schema:    util.CoalesceStr(args.Schema, DefaultSchema),
		DbHost:    args.DbHost,
		DbPort:    args.DbPort,
		DbName:    args.DbName,
		DbUser:    args.DbUser,
	}
	if args.DbPassword != nil {
		cfg.DbPass = *args.DbPassword
	}

	// all precondition failures surface here, before any database I/O
	if err := cfg.Validate(!args.DryRun); err != nil {
		p.Fail(err.Error())
	}

	self.Notice("dbgrant Version %s", Version)

	quoter := &sql.Quoter{Logger: self, ShouldQuoteSchemaNames: args.QuoteSchemaNames}
	runner := NewGrantRunner(self, quoter)

	if args.DryRun {
		self.doDryRun(runner, cfg)
		return
	}

	if args.DbPassword == nil && util.IsInteractive() {
		pass, err := util.PromptPassword(fmt.Sprintf("Password for %s: ", cfg.DbUser))
		self.FatalIfError(err, "could not read password")
		cfg.DbPass = pass
	}

	self.FatalIfError(self.doGrant(runner, cfg, args.Verify), "grant run failed")
}

func (self *DBGrant) doDryRun(runner *GrantRunner, cfg config.Config) {
	seg := output.NewSegmenter(runner.quoter)
	seg.AppendHeader(output.NewComment("dbgrant %s: grants for %s on schema %s", Version, cfg.Principal, cfg.Schema))
	seg.WriteSql(runner.Statements(cfg.Schema, cfg.Principal)...)
	self.FatalIfError(seg.WriteTo(os.Stdout), "could not write statements")
}

// doGrant owns the connection lifecycle: the deferred Disconnect runs on
// every exit path, including statement failure, before the caller exits
// non-zero. That is why failures return from here instead of calling Fatal.
func (self *DBGrant) doGrant(runner *GrantRunner, cfg config.Config, verify bool) error {
	conn, err := live.NewConnection(cfg.DbHost, cfg.DbPort, cfg.DbName, cfg.DbUser, cfg.DbPass)
	if err != nil {
		return err
	}
	defer conn.Disconnect()

	if err := runner.Run(conn, cfg.Schema, cfg.Principal); err != nil {
		return err
	}

	if verify {
		intro, err := live.NewIntrospector(conn)
		if err != nil {
			return err
		}
		// missing grants are warnings, not failures: an empty schema is legal
		if _, err := NewVerifier(self).Verify(intro, cfg.Schema, cfg.Principal); err != nil {
			return err
		}
	}
	return nil
}

func (self *DBGrant) Fatal(s string, args ...interface{}) {
	self.logger.Fatal().Msgf(s, args...)
}

func (self *DBGrant) FatalIfError(err error, s string, args ...interface{}) {
	if err != nil {
		self.Fatal("%s: %v", fmt.Sprintf(s, args...), err)
	}
}

func (self *DBGrant) Warning(s string, args ...interface{}) {
	self.logger.Warn().Msgf(s, args...)
}

func (self *DBGrant) Notice(s string, args ...interface{}) {
	// TODO(go,nth) differentiate between notice and info
	self.Info(s, args...)
}

func (self *DBGrant) Info(s string, args ...interface{}) {
	self.logger.Info().Msgf(s, args...)
}

// correlates to the verbosity conventions of our other db tooling
func (self *DBGrant) setVerbosity(args *config.Args) {
	// remember, lower level is higher verbosity
	// we're abusing the fact that zerolog.Level is defined as an int8
	level := zerolog.InfoLevel

	if args.Debug {
		level = zerolog.TraceLevel
	}

	level -= zerolog.Level(len(args.Verbose))
	level += zerolog.Level(len(args.Quiet))

	self.logger = self.logger.Level(util.Clamp(level, zerolog.TraceLevel, zerolog.PanicLevel))
}
