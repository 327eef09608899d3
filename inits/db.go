package inits

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"time"

	"github.com/hashicorp/go-memdb"
)

const SubmissionTable = "submission"

// DBInit creates the in-memory store backing accepted contact submissions.
func DBInit() (*memdb.MemDB, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			SubmissionTable: {
				Name: SubmissionTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:         "id",
						Unique:       true,
						Indexer:      &memdb.StringFieldIndex{Field: "ID"},
						AllowMissing: false,
					},
					"email": {
						Name:         "email",
						Unique:       false,
						Indexer:      &memdb.StringFieldIndex{Field: "Email", Lowercase: true},
						AllowMissing: false,
					},
					"expiry": {
						Name:         "expiry",
						Unique:       false,
						Indexer:      &TimeFieldIndex{Field: "Expiry"},
						AllowMissing: false,
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return db, nil
}

// TimeFieldIndex indexes a time.Time field so that iteration follows
// chronological order.
type TimeFieldIndex struct {
	Field string
}

func (t *TimeFieldIndex) FromObject(obj interface{}) (bool, []byte, error) {
	v := reflect.Indirect(reflect.ValueOf(obj))
	fv := v.FieldByName(t.Field)
	if !fv.IsValid() {
		return false, nil, fmt.Errorf("field '%s' for %#v is invalid", t.Field, obj)
	}
	ts, ok := fv.Interface().(time.Time)
	if !ok {
		return false, nil, fmt.Errorf("field '%s' is not a time.Time", t.Field)
	}
	if ts.IsZero() {
		return false, nil, nil
	}
	return true, encodeTime(ts), nil
}

func (t *TimeFieldIndex) FromArgs(args ...interface{}) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("must provide only a single argument")
	}
	ts, ok := args[0].(time.Time)
	if !ok {
		return nil, fmt.Errorf("argument must be a time.Time: %#v", args[0])
	}
	return encodeTime(ts), nil
}

// Times before 1970 are not expected; they would sort after all others.
func encodeTime(ts time.Time) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(ts.UnixNano()))
	return buf
}
