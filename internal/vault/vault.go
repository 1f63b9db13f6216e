// internal/vault/vault.go - local credential store backed by BoltDB
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var credentialsBucket = []byte("credentials")

// Vault is a small on-disk secret store for API passwords, keyed by
// service and user. It replaces reaching into the process environment on
// every run: `xibbaz login` stores the password once and later runs read
// it back.
type Vault struct {
	db   *bbolt.DB
	path string
}

// Open opens (or creates) the vault file. The containing directory is
// created with owner-only permissions.
func Open(path string) (*Vault, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}

	v := &Vault{db: db, path: path}

	if err := v.initBucket(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize vault: %w", err)
	}

	return v, nil
}

func (v *Vault) initBucket() error {
	return v.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(credentialsBucket)
		return err
	})
}

// Get returns the stored password for service/user, or "" when none is
// stored.
func (v *Vault) Get(service, user string) (string, error) {
	var password string

	err := v.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(credentialsBucket)
		if data := b.Get(key(service, user)); data != nil {
			password = string(data)
		}
		return nil
	})

	return password, err
}

// Set stores the password for service/user, replacing any previous value.
func (v *Vault) Set(service, user, password string) error {
	return v.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(credentialsBucket)
		return b.Put(key(service, user), []byte(password))
	})
}

// Delete removes the stored password for service/user.
func (v *Vault) Delete(service, user string) error {
	return v.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(credentialsBucket)
		return b.Delete(key(service, user))
	})
}

func (v *Vault) Close() error {
	return v.db.Close()
}

func key(service, user string) []byte {
	return []byte(service + ":" + user)
}
