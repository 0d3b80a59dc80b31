package store

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"nop/codec"
	"nop/crypto"
	"nop/wireio"
	"strings"
	"time"
)

var (
	ErrEntryNotFound    = errors.New("entry not found")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrInvalidKey       = errors.New("invalid key")
)

var (
	entriesPrefix   = Prefixer("entries")
	entryDataPrefix = Prefixer(string(entriesPrefix("entry")))
)

// Entry is one stored encoding. Type is the textual type descriptor the
// payload was encoded with; Digest is the BLAKE2b-256 of Payload.
type Entry struct {
	Key      string
	Type     string
	Digest   crypto.Hash
	Payload  []byte
	StoredAt time.Time
}

func (e *Entry) Verify() error {
	if crypto.Blake2B256(e.Payload) != e.Digest {
		return errors.Wrapf(ErrChecksumMismatch, "entry %s", e.Key)
	}
	return nil
}

// The record layout is itself a sequence of nop values:
// [String type][Binary digest][Binary payload][Int64 unix nanos].

func encodeEntry(e *Entry) ([]byte, error) {
	w := wireio.NewBufferWriter()
	defer w.Release()
	if err := codec.Write[string](codec.Text, e.Type, w); err != nil {
		return nil, err
	}
	if err := codec.Write[[]byte](codec.Bytes, e.Digest.Bytes(), w); err != nil {
		return nil, err
	}
	if err := codec.Write[[]byte](codec.Bytes, e.Payload, w); err != nil {
		return nil, err
	}
	if err := codec.Write[int64](codec.Int64, e.StoredAt.UnixNano(), w); err != nil {
		return nil, err
	}
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

func decodeEntry(key string, b []byte) (*Entry, error) {
	r := wireio.NewBufferReader(b)
	e := &Entry{
		Key: key,
	}
	var digest []byte
	var storedAt int64
	if err := codec.Read[string](codec.Text, &e.Type, r); err != nil {
		return nil, errors.Wrap(err, "error decoding entry type")
	}
	if err := codec.Read[[]byte](codec.Bytes, &digest, r); err != nil {
		return nil, errors.Wrap(err, "error decoding entry digest")
	}
	if err := codec.Read[[]byte](codec.Bytes, &e.Payload, r); err != nil {
		return nil, errors.Wrap(err, "error decoding entry payload")
	}
	if err := codec.Read[int64](codec.Int64, &storedAt, r); err != nil {
		return nil, errors.Wrap(err, "error decoding entry timestamp")
	}
	if r.Remaining() != 0 {
		return nil, errors.Wrapf(codec.ErrTrailingData, "entry %s", key)
	}
	h, err := crypto.NewHashFromBytes(digest)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding entry digest")
	}
	e.Digest = h
	e.StoredAt = time.Unix(0, storedAt)
	return e, nil
}

func validateKey(key string) error {
	if key == "" || strings.ContainsRune(key, '/') {
		return errors.Wrapf(ErrInvalidKey, "%q", key)
	}
	return nil
}

func PutEntry(db *leveldb.DB, key string, typ string, payload []byte) (*Entry, error) {
	var e *Entry
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		var err error
		e, err = PutEntryTx(tx, key, typ, payload)
		return err
	})
	return e, err
}

func PutEntryTx(tx *leveldb.Transaction, key string, typ string, payload []byte) (*Entry, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	e := &Entry{
		Key:      key,
		Type:     typ,
		Digest:   crypto.Blake2B256(payload),
		Payload:  payload,
		StoredAt: time.Now(),
	}
	b, err := encodeEntry(e)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding entry")
	}
	if err := tx.Put(entryDataPrefix(key), b, nil); err != nil {
		return nil, errors.Wrap(err, "error writing entry")
	}
	logger.Debug("stored entry", "key", key, "type", typ, "bytes", len(payload))
	return e, nil
}

// GetEntry returns the entry stored under key after checking its digest.
func GetEntry(db *leveldb.DB, key string) (*Entry, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	b, err := db.Get(entryDataPrefix(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, errors.Wrapf(ErrEntryNotFound, "entry %s", key)
	}
	if err != nil {
		return nil, errors.Wrap(err, "error getting entry")
	}
	e, err := decodeEntry(key, b)
	if err != nil {
		return nil, err
	}
	if err := e.Verify(); err != nil {
		return nil, err
	}
	return e, nil
}

func DeleteEntry(db *leveldb.DB, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return WithTx(db, func(tx *leveldb.Transaction) error {
		k := entryDataPrefix(key)
		has, err := tx.Has(k, nil)
		if err != nil {
			return errors.Wrap(err, "error checking for entry existence")
		}
		if !has {
			return errors.Wrapf(ErrEntryNotFound, "entry %s", key)
		}
		if err := tx.Delete(k, nil); err != nil {
			return errors.Wrap(err, "error deleting entry")
		}
		return nil
	})
}

type EntryStream struct {
	iter iterator.Iterator
}

// Next returns the next entry in key order, or nil when the stream is
// exhausted. Digests are not checked here; callers decide whether to Verify.
func (es *EntryStream) Next() (*Entry, error) {
	if !es.iter.Next() {
		return nil, nil
	}
	key := entryDataPrefix.Trim(es.iter.Key())
	return decodeEntry(key, es.iter.Value())
}

func (es *EntryStream) Close() error {
	es.iter.Release()
	return es.iter.Error()
}

func StreamEntries(db *leveldb.DB) (*EntryStream, error) {
	iter := db.NewIterator(entryDataPrefix.Range(), nil)
	return &EntryStream{
		iter: iter,
	}, nil
}
