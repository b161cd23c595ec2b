package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/Walkish/postgres-controller/log"
	"github.com/jackc/pgx/v5"
)

const defaultPageSize = 50000

// connection is the subset of *pgx.Conn the Client depends on.
type connection interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Close(ctx context.Context) error
	IsClosed() bool
	Ping(ctx context.Context) error
}

// connectFn opens the underlying connection. Package-level so unit tests can
// substitute a fake.
var connectFn = func(ctx context.Context, dsn string) (connection, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// Config holds the static connection parameters for a Client. It is supplied
// once at construction and never reloaded.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string

	// Logger receives the bulk-insert diagnostics. Defaults to a no-op
	// logger when nil.
	Logger log.Logger

	// PageSize is the number of rows submitted per batched INSERT
	// statement. Defaults to 50000.
	PageSize int
}

func (c Config) validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database is required")
	}

	if c.PageSize < 0 {
		return fmt.Errorf("page size must not be negative")
	}

	return nil
}

// dsn renders the config as a postgres:// URL with escaped credentials.
func (c Config) dsn() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}

	return u.String()
}

// connState tracks the connection lifecycle so that illegal combinations
// (a reconnect count without a first connect) are unrepresentable.
type connState uint8

const (
	stateNeverConnected connState = iota
	stateConnected
	stateReconnected
)

// Client is a single-connection PostgreSQL access helper. The connection is
// opened lazily on the first operation and re-opened when a later operation
// finds it closed.
//
// A Client is not safe for concurrent use.
type Client struct {
	config Config
	logger log.Logger

	conn       connection
	state      connState
	reconnects int
	closed     bool
}

// New validates the config and returns a Client. No connection is opened
// until the first operation.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid postgres config: %w", err)
	}

	if cfg.Logger == nil {
		cfg.Logger = &log.NoneLogger{}
	}

	if cfg.PageSize == 0 {
		cfg.PageSize = defaultPageSize
	}

	return &Client{
		config: cfg,
		logger: cfg.Logger,
	}, nil
}

// ensureConnected opens the handle if it is absent or reports closed. The
// first-ever connect is not counted as a reconnect; every later re-open
// increments the reconnect counter. Exactly one open attempt is made per
// call; a failed open surfaces as a ConnectionError.
func (c *Client) ensureConnected(ctx context.Context) error {
	if c.closed {
		return &ConnectionError{Err: ErrClientClosed}
	}

	if c.conn != nil && !c.conn.IsClosed() {
		return nil
	}

	switch c.state {
	case stateNeverConnected:
		c.state = stateConnected
	case stateConnected:
		c.state = stateReconnected
		c.reconnects = 1
	case stateReconnected:
		c.reconnects++
	}

	conn, err := connectFn(ctx, c.config.dsn())
	if err != nil {
		return &ConnectionError{Err: err}
	}

	c.conn = conn

	return nil
}

// inTransaction runs fn inside a transaction on the (lazily connected)
// handle: commit on success, rollback on every error path. Errors other
// than ConnectionError are returned unwrapped for the caller to classify.
func (c *Client) inTransaction(ctx context.Context, fn func(pgx.Tx) error) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}

	tx, err := c.conn.Begin(ctx)
	if err != nil {
		return err
	}

	// No-op after a successful commit.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Query executes a read statement and eagerly materializes the full result
// set, returning the rows and the column names in result-set order. The
// statement is executed as literal text; no parameter binding is provided,
// escaping is the caller's responsibility.
func (c *Client) Query(ctx context.Context, statement string) ([][]any, []string, error) {
	var (
		rows    [][]any
		columns []string
	)

	err := c.inTransaction(ctx, func(tx pgx.Tx) error {
		result, err := tx.Query(ctx, statement)
		if err != nil {
			return err
		}
		defer result.Close()

		for _, desc := range result.FieldDescriptions() {
			columns = append(columns, desc.Name)
		}

		for result.Next() {
			values, err := result.Values()
			if err != nil {
				return err
			}

			rows = append(rows, values)
		}

		return result.Err()
	})
	if err != nil {
		var connErr *ConnectionError
		if errors.As(err, &connErr) {
			return nil, nil, err
		}

		return nil, nil, &QueryError{Statement: statement, Err: err}
	}

	return rows, columns, nil
}

// QueryRows is Query with the column names discarded.
func (c *Client) QueryRows(ctx context.Context, statement string) ([][]any, error) {
	rows, _, err := c.Query(ctx, statement)

	return rows, err
}

// Execute runs a write or DDL statement inside its own transaction and
// discards any result. Same contract as Query otherwise.
func (c *Client) Execute(ctx context.Context, statement string) error {
	err := c.inTransaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, statement)

		return err
	})
	if err != nil {
		var connErr *ConnectionError
		if errors.As(err, &connErr) {
			return err
		}

		return &QueryError{Statement: statement, Err: err}
	}

	return nil
}

// Ping verifies the (lazily connected) handle is alive.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.ensureConnected(ctx); err != nil {
		return err
	}

	if err := c.conn.Ping(ctx); err != nil {
		return &ConnectionError{Err: err}
	}

	return nil
}

// IsConnected reports whether a live handle is currently held.
func (c *Client) IsConnected() bool {
	return !c.closed && c.conn != nil && !c.conn.IsClosed()
}

// HasConnected reports whether a first connection attempt has ever been
// made by this client.
func (c *Client) HasConnected() bool {
	return c.state != stateNeverConnected
}

// Reconnects returns the number of re-opens after the first connect. The
// first-ever connect is not counted.
func (c *Client) Reconnects() int {
	return c.reconnects
}

// Close releases the connection handle and permanently tears the client
// down: subsequent operations fail with ErrClientClosed and never
// reconnect.
func (c *Client) Close(ctx context.Context) error {
	c.closed = true

	if c.conn == nil {
		return nil
	}

	conn := c.conn
	c.conn = nil

	if conn.IsClosed() {
		return nil
	}

	return conn.Close(ctx)
}
