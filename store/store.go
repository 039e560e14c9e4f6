// Package store persists the login session in the local data store.
package store

import (
	"encoding/json"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/noritama/dakoku/internal/models"
)

const (
	sessionBucket = "session"
	sessionKey    = "current"
)

var errStoreLocked = errors.New(
	"is dakoku already running? Only one instance can access the store at a time",
)

// DB is the session storage interface.
type DB interface {
	// SaveSession replaces the stored session wholesale.
	SaveSession(sess *models.Session) error
	// Session returns the stored session, or nil when logged out.
	Session() (*models.Session, error)
	// DeleteSession removes the stored session.
	DeleteSession() error
	// Close ends the database connection
	Close() error
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) SaveSession(sess *models.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put([]byte(sessionKey), value)
	})
}

func (c *Client) Session() (*models.Session, error) {
	var sess *models.Session

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket)).Get([]byte(sessionKey))
		if len(b) == 0 {
			return nil
		}

		sess = &models.Session{}

		return json.Unmarshal(b, sess)
	})

	return sess, err
}

func (c *Client) DeleteSession() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Delete([]byte(sessionKey))
	})
}

// NewClient opens the database at the given path, creating the session
// bucket if necessary.
func NewClient(path string) (*Client, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errStoreLocked
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{db}, nil
}
