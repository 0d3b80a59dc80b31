package store

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"nop/log"
)

type TxCb func(tx *leveldb.Transaction) error

var logger = log.WithModule("store")

func Open(path string) (*leveldb.DB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}
	logger.Debug("opened database", "path", path)
	return db, nil
}

// WithTx runs cb inside a transaction, committing when cb succeeds and
// discarding otherwise. A panic in cb discards the transaction and is
// re-raised.
func WithTx(db *leveldb.DB, cb TxCb) (err error) {
	tx, err := db.OpenTransaction()
	if err != nil {
		return errors.Wrap(err, "error opening transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Discard()
			panic(p)
		} else if err != nil {
			tx.Discard()
		} else if cErr := tx.Commit(); cErr != nil {
			err = errors.Wrap(cErr, "error committing transaction")
		}
	}()

	return cb(tx)
}
