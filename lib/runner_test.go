package lib_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/chatstack/dbgrant/lib"
	"github.com/chatstack/dbgrant/lib/live"
	"github.com/chatstack/dbgrant/lib/sql"
)

// recordingLogger satisfies util.Logger and keeps everything for assertions
type recordingLogger struct {
	notices  []string
	warnings []string
}

func (l *recordingLogger) FatalIfError(err error, s string, args ...interface{}) {
	if err != nil {
		panic(err)
	}
}
func (l *recordingLogger) Fatal(s string, args ...interface{}) {
	panic(fmt.Sprintf(s, args...))
}
func (l *recordingLogger) Warning(s string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(s, args...))
}
func (l *recordingLogger) Notice(s string, args ...interface{}) {
	l.notices = append(l.notices, fmt.Sprintf(s, args...))
}
func (l *recordingLogger) Info(s string, args ...interface{}) {}

func newRunner() (*lib.GrantRunner, *recordingLogger) {
	logger := &recordingLogger{}
	return lib.NewGrantRunner(logger, &sql.Quoter{Logger: logger}), logger
}

func TestGrantRunner_Run_ExecutesAllFiveInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	conn := live.NewMockExecutor(ctrl)

	gomock.InOrder(
		conn.EXPECT().Exec(`GRANT USAGE ON SCHEMA ai_chatbot TO "svc-123"`),
		conn.EXPECT().Exec(`GRANT ALL PRIVILEGES ON ALL TABLES IN SCHEMA ai_chatbot TO "svc-123"`),
		conn.EXPECT().Exec(`GRANT ALL PRIVILEGES ON ALL SEQUENCES IN SCHEMA ai_chatbot TO "svc-123"`),
		conn.EXPECT().Exec(`ALTER DEFAULT PRIVILEGES IN SCHEMA ai_chatbot GRANT ALL PRIVILEGES ON TABLES TO "svc-123"`),
		conn.EXPECT().Exec(`ALTER DEFAULT PRIVILEGES IN SCHEMA ai_chatbot GRANT ALL PRIVILEGES ON SEQUENCES TO "svc-123"`),
	)

	runner, logger := newRunner()
	err := runner.Run(conn, "ai_chatbot", "svc-123")
	assert.NoError(t, err)

	// five progress lines then the success line
	assert.Len(t, logger.notices, 6)
	assert.Equal(t, "Granting usage on schema ai_chatbot to svc-123", logger.notices[0])
	assert.Equal(t, "Granted svc-123 full access to schema ai_chatbot", logger.notices[5])
}

func TestGrantRunner_Run_HaltsAtFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	conn := live.NewMockExecutor(ctrl)

	// statements 1-2 succeed, 3 fails, 4-5 must never run
	gomock.InOrder(
		conn.EXPECT().Exec(`GRANT USAGE ON SCHEMA ai_chatbot TO "svc-123"`),
		conn.EXPECT().Exec(`GRANT ALL PRIVILEGES ON ALL TABLES IN SCHEMA ai_chatbot TO "svc-123"`),
		conn.EXPECT().Exec(`GRANT ALL PRIVILEGES ON ALL SEQUENCES IN SCHEMA ai_chatbot TO "svc-123"`).
			Return(errors.New("permission denied for schema ai_chatbot")),
	)

	runner, _ := newRunner()
	err := runner.Run(conn, "ai_chatbot", "svc-123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not grant all privileges on all sequences in schema ai_chatbot")
	assert.Contains(t, err.Error(), "permission denied", "database error must be preserved")
}

func TestGrantRunner_Run_BlankPrincipalDoesNoIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// no expectations: any Exec call fails the test
	conn := live.NewMockExecutor(ctrl)

	runner, logger := newRunner()
	for _, principal := range []string{"", "   "} {
		err := runner.Run(conn, "ai_chatbot", principal)
		assert.Error(t, err)
	}
	assert.Empty(t, logger.notices)
}

func TestGrantRunner_Statements_QuotesHostilePrincipal(t *testing.T) {
	runner, _ := newRunner()
	stmts := runner.Statements("ai_chatbot", `svc"; DROP SCHEMA ai_chatbot; --`)
	assert.Len(t, stmts, 5)

	q := &sql.Quoter{}
	assert.Equal(t,
		`GRANT USAGE ON SCHEMA ai_chatbot TO "svc""; DROP SCHEMA ai_chatbot; --"`,
		stmts[0].ToSql(q))
}
