package storage

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"chronosdeck/internal/model"
	"chronosdeck/internal/paths"
)

// ErrDocNotFound is returned when a document is not found in the store.
var ErrDocNotFound = errors.New("document not found")

// IsErrDocNotFound returns true if the error is a document not found error.
func IsErrDocNotFound(err error) bool {
	return errors.Is(err, ErrDocNotFound) || errors.Is(err, badger.ErrKeyNotFound)
}

// Document is one raw entry of a collection snapshot.
type Document struct {
	ID   string
	Data []byte
}

// Decode unmarshals the document into v and sets its id.
func (doc Document) Decode(v model.Model) error {
	if err := json.Unmarshal(doc.Data, v); err != nil {
		return err
	}
	v.SetID(doc.ID)
	return nil
}

// Create stores v as a new document in the collection, generating its id.
func (d *DB) Create(c paths.Collection, v model.Model) error {
	v.SetID(uuid.NewString())
	return d.Put(c, v)
}

// Put stores v under its current id in the collection.
func (d *DB) Put(c paths.Collection, v model.Model) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(c.Doc(v.GetID())), data)
	})
}

// Get retrieves the document with the given id and unmarshals it into v.
func (d *DB) Get(c paths.Collection, id string, v model.Model) error {
	return d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(c.Doc(id)))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrDocNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, v); err != nil {
				return err
			}
			v.SetID(id)
			return nil
		})
	})
}

// Delete removes the document with the given id from the collection.
func (d *DB) Delete(c paths.Collection, id string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(c.Doc(id)))
	})
}

// Exists checks if a document exists in the collection.
func (d *DB) Exists(c paths.Collection, id string) (bool, error) {
	var exists bool
	err := d.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(c.Doc(id)))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				exists = false
				return nil
			}
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

// Snapshot reads the full current contents of a collection. Iteration order
// is the store's key order; consumers must not assume insertion order.
func (d *DB) Snapshot(c paths.Collection) ([]Document, error) {
	var docs []Document
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 100
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(c.Prefix())
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := c.ID(string(item.Key()))
			if id == "" {
				// Key belongs to a nested subcollection, not this one.
				continue
			}
			err := item.Value(func(val []byte) error {
				data := make([]byte, len(val))
				copy(data, val)
				docs = append(docs, Document{ID: id, Data: data})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return docs, err
}

// List retrieves all documents in a collection decoded as T.
func List[T model.Model](d *DB, c paths.Collection, newFunc func() T) ([]T, error) {
	docs, err := d.Snapshot(c)
	if err != nil {
		return nil, err
	}

	results := make([]T, 0, len(docs))
	for _, doc := range docs {
		v := newFunc()
		if err := doc.Decode(v); err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}
