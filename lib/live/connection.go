package live

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// Executor is the slice of Connection the grant runner needs: execute one
// administrative statement, report the database's error verbatim.
type Executor interface {
	Exec(sql string) error
}

type Connection struct {
	conn *pgxpool.Pool
}

var _ Executor = &Connection{}

type StringMap map[string]string
type StringMapList []StringMap

func NewConnection(host string, port uint, name, user, pass string) (*Connection, error) {
	// TODO(feat) sslmode flag
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s", host, port, user, name, pass)
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "invalid connection settings")
	}
	// the grant sequence is strictly serial, one connection is all it gets
	config.MaxConns = 1
	conn, err := pgxpool.ConnectConfig(context.Background(), config)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to postgres database")
	}

	return &Connection{conn}, nil
}

func (self *Connection) Disconnect() {
	self.conn.Close()
}

func (self *Connection) Exec(sql string) error {
	_, err := self.conn.Exec(context.Background(), sql)
	return err
}

func (self *Connection) Version() (VersionNum, error) {
	var v string // for reasons unknown, this won't scan to int, only string
	err := self.QueryVal(&v, "SHOW server_version_num;")
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(v)
	return VersionNum(i), err
}

func (self *Connection) QueryRaw(query string, params ...interface{}) (pgx.Rows, error) {
	return self.conn.Query(context.Background(), query, params...)
}

func (self *Connection) Query(query string, params ...interface{}) (StringMapList, error) {
	out := StringMapList{}
	rows, err := self.conn.Query(context.Background(), query, params...)
	if err != nil {
		return nil, err
	}

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	vals := make([]sql.NullString, len(fields))
	dests := make([]interface{}, len(fields))
	for i, field := range fields {
		cols[i] = string(field.Name)
		dests[i] = &vals[i]
	}

	for rows.Next() {
		err := rows.Scan(dests...)
		if err != nil {
			return nil, err
		}

		m := StringMap{}
		for i, col := range cols {
			m[col] = vals[i].String
		}

		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (self *Connection) QueryVal(val interface{}, sql string, params ...interface{}) error {
	return self.conn.QueryRow(context.Background(), sql, params...).Scan(val)
}
