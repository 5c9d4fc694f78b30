// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"sync"
	"time"

	ms "github.com/go-sql-driver/mysql"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
)

const (
	// mutexTableName is the table created by the schema migrations to hold run locks
	mutexTableName = "RunLocks"

	// maxKeyLength matches the width of the Id column
	maxKeyLength = 64

	// minWaitInterval is the minimum amount of time to wait between locking attempts
	minWaitInterval = 1 * time.Second

	// maxWaitInterval is the maximum amount of time to wait between locking attempts
	maxWaitInterval = 5 * time.Minute

	// pollWaitInterval is the usual time to wait between unsuccessful locking attempts
	pollWaitInterval = 1 * time.Second

	// jitterWaitInterval is the amount of jitter to add when waiting to avoid thundering herds
	jitterWaitInterval = minWaitInterval / 2

	// tTL is the interval after which a locked mutex will expire unless refreshed
	tTL = time.Second * 15

	// refreshInterval is the interval on which the mutex will be refreshed when locked
	refreshInterval = tTL / 2

	mysqlDuplicateEntry = 1062
)

// nextWaitInterval determines how long to wait until the next lock retry.
func nextWaitInterval(lastWaitInterval time.Duration, err error) time.Duration {
	nextWaitInterval := lastWaitInterval

	if nextWaitInterval <= 0 {
		nextWaitInterval = minWaitInterval
	}

	if err != nil {
		nextWaitInterval *= 2
		if nextWaitInterval > maxWaitInterval {
			nextWaitInterval = maxWaitInterval
		}
	} else {
		nextWaitInterval = pollWaitInterval
	}

	// Add some jitter to avoid unnecessary collision between competing other instances.
	nextWaitInterval += time.Duration(rand.Int63n(int64(jitterWaitInterval)) - int64(jitterWaitInterval)/2) //nolint: gosec

	return nextWaitInterval
}

// Mutex keeps two migrator processes from working on the same destination
// project at once. It behaves like sync.Mutex across every process sharing
// the database; the row expires unless the holder keeps refreshing it.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	noCopy
	key string

	db *sql.DB
	// lock guards the variables used to manage the refresh task, and is not itself related to
	// the db lock.
	lock        sync.Mutex
	stopRefresh chan bool
	refreshDone chan bool
	conn        *sql.Conn
}

// NewMutex creates a mutex with the given key name.
//
// returns error if key is empty or does not fit the lock table.
func NewMutex(key string, db *sql.DB) (*Mutex, error) {
	if key == "" {
		return nil, errors.New("mutex key must not be empty")
	}
	if len(key) > maxKeyLength {
		return nil, errors.Errorf("mutex key %q is longer than %d characters", key, maxKeyLength)
	}

	return &Mutex{
		key: key,
		db:  db,
	}, nil
}

// tryLock makes a single attempt to lock the mutex, returning true only if successful.
func (m *Mutex) tryLock(ctx context.Context) (bool, error) {
	now := time.Now()
	tx, err := m.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer m.finalizeTx(tx)

	query := fmt.Sprintf("INSERT INTO %s (Id, ExpireAt) VALUES (?, ?)", mutexTableName)
	if _, err = tx.ExecContext(ctx, query, m.key, now.Add(tTL).Unix()); err != nil {
		var mysqlErr *ms.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			mlog.Debug("Project is locked by another run, trying to take over an expired lock", mlog.String("key", m.key))
		}
		m.finalizeTx(tx)

		if err2 := m.takeOverExpired(ctx, now); err2 == nil {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to lock mutex")
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}

	return true, nil
}

// takeOverExpired claims the lock row when its holder stopped refreshing it.
func (m *Mutex) takeOverExpired(ctx context.Context, t time.Time) error {
	tx, err := m.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer m.finalizeTx(tx)

	e, err := m.getExpireAt(ctx, tx)
	if err != nil {
		return err
	}

	if t.Unix() < e {
		return errors.New("lock is still held")
	}

	query := fmt.Sprintf("UPDATE %s SET ExpireAt = ? WHERE Id = ?", mutexTableName)
	if _, err = tx.ExecContext(ctx, query, t.Add(tTL).Unix(), m.key); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "unable to set new expireat for mutex")
	}

	return nil
}

func (m *Mutex) getExpireAt(ctx context.Context, tx *sql.Tx) (int64, error) {
	var expireAt int64
	query := fmt.Sprintf("SELECT ExpireAt FROM %s WHERE Id = ? FOR UPDATE", mutexTableName)
	if err := tx.QueryRowContext(ctx, query, m.key).Scan(&expireAt); err != nil {
		return -1, errors.Wrap(err, "failed to fetch mutex from db")
	}

	return expireAt, nil
}

// refreshLock pushes the expiry of the held lock one TTL past now.
func (m *Mutex) refreshLock(ctx context.Context) error {
	query := fmt.Sprintf("UPDATE %s SET ExpireAt = ? WHERE Id = ?", mutexTableName)
	if _, err := m.conn.ExecContext(ctx, query, time.Now().Add(tTL).Unix(), m.key); err != nil {
		return errors.Wrap(err, "unable to refresh expireat for mutex")
	}
	return nil
}

// Lock locks m unless the context is canceled. If the mutex is already locked by any other
// instance, including the current one, the calling goroutine blocks until the mutex can be locked,
// or the context is canceled.
//
// The mutex is locked only if a nil error is returned.
func (m *Mutex) Lock(ctx context.Context) error {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return err
	}

	m.lock.Lock()
	m.conn = conn
	m.lock.Unlock()

	var waitInterval time.Duration
	for {
		select {
		case <-ctx.Done():
			conn.Close()
			return ctx.Err()
		case <-time.After(waitInterval):
		}

		ok, err := m.tryLock(ctx)
		if err != nil || !ok {
			waitInterval = nextWaitInterval(waitInterval, err)
			continue
		}

		break
	}

	stop := make(chan bool)
	done := make(chan bool)
	go func() {
		defer close(done)
		t := time.NewTicker(refreshInterval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				if err := m.refreshLock(context.Background()); err != nil {
					mlog.Warn("Failed to refresh run lock", mlog.String("key", m.key), mlog.Err(err))
					return
				}
			case <-stop:
				return
			}
		}
	}()

	m.lock.Lock()
	m.stopRefresh = stop
	m.refreshDone = done
	m.lock.Unlock()

	return nil
}

// Unlock unlocks m. It is a run-time error if m is not locked on entry to Unlock.
//
// Just like sync.Mutex, a locked Lock is not associated with a particular goroutine or a process.
func (m *Mutex) Unlock() error {
	m.lock.Lock()
	if m.stopRefresh == nil {
		m.lock.Unlock()
		panic("mutex has not been acquired")
	}

	close(m.stopRefresh)
	m.stopRefresh = nil
	<-m.refreshDone
	conn := m.conn
	m.conn = nil
	m.lock.Unlock()

	defer conn.Close()

	// If an error occurs deleting, the mutex will still expire, allowing later retry.
	query := fmt.Sprintf("DELETE FROM %s WHERE Id = ?", mutexTableName)
	_, err := conn.ExecContext(context.Background(), query, m.key)
	return err
}

func (m *Mutex) finalizeTx(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		mlog.Debug("failed to rollback transaction", mlog.Err(err))
	}
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock() {}
