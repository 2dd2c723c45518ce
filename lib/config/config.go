package config

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Config is the fully resolved run configuration. It is built once at
// startup from args and environment and passed into the runner explicitly;
// nothing below this layer consults the environment.
type Config struct {
	Principal string
	Schema    string

	DbHost string
	DbPort uint
	DbName string
	DbUser string
	DbPass string
}

// Validate checks every precondition at once so the operator sees the full
// list of problems in a single run, not one per invocation. Runs before any
// database I/O.
func (c Config) Validate(connecting bool) error {
	var errs *multierror.Error
	if strings.TrimSpace(c.Principal) == "" {
		errs = multierror.Append(errs, errors.New("principal may not be blank"))
	}
	if strings.TrimSpace(c.Schema) == "" {
		errs = multierror.Append(errs, errors.New("schema may not be blank"))
	}
	if connecting {
		if c.DbHost == "" {
			errs = multierror.Append(errs, errors.New("db-host is required (flag or DBGRANT_DB_HOST)"))
		}
		if c.DbName == "" {
			errs = multierror.Append(errs, errors.New("db-name is required (flag or DBGRANT_DB_NAME)"))
		}
		if c.DbUser == "" {
			errs = multierror.Append(errs, errors.New("db-user is required (flag or DBGRANT_DB_USER)"))
		}
	}
	return errs.ErrorOrNil()
}
