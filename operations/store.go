package operations

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/ynot-advisory/landing/inits"
	"github.com/ynot-advisory/landing/models"
)

// SubmissionStore keeps accepted submissions in memory until they expire.
type SubmissionStore struct {
	db *memdb.MemDB
}

func NewSubmissionStore(db *memdb.MemDB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

func (s *SubmissionStore) Insert(sub *models.Submission) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(inits.SubmissionTable, sub); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	txn.Commit()
	return nil
}

// FindRecent returns the latest submission with the same email and message
// received at or after since, or nil when there is none.
func (s *SubmissionStore) FindRecent(email, message string, since time.Time) (*models.Submission, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(inits.SubmissionTable, "email", strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("lookup submission: %w", err)
	}

	var found *models.Submission
	for obj := it.Next(); obj != nil; obj = it.Next() {
		sub := obj.(*models.Submission)
		if sub.Message != message || sub.Received.Before(since) {
			continue
		}
		if found == nil || sub.Received.After(found.Received) {
			found = sub
		}
	}
	return found, nil
}

func (s *SubmissionStore) Get(id string) (*models.Submission, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(inits.SubmissionTable, "id", id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if obj == nil {
		return nil, nil
	}
	return obj.(*models.Submission), nil
}

func (s *SubmissionStore) Count() (int, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(inits.SubmissionTable, "id")
	if err != nil {
		return 0, err
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}

// DeleteExpired removes every submission whose expiry is not after now.
func (s *SubmissionStore) DeleteExpired(now time.Time) ([]*models.Submission, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	it, err := txn.Get(inits.SubmissionTable, "expiry")
	if err != nil {
		return nil, fmt.Errorf("scan expiry: %w", err)
	}

	// The expiry index is ordered, so collect until the first live entry.
	var expired []*models.Submission
	for obj := it.Next(); obj != nil; obj = it.Next() {
		sub := obj.(*models.Submission)
		if sub.Expiry.After(now) {
			break
		}
		expired = append(expired, sub)
	}

	for _, sub := range expired {
		if err := txn.Delete(inits.SubmissionTable, sub); err != nil {
			return nil, fmt.Errorf("delete submission %s: %w", sub.ID, err)
		}
	}

	txn.Commit()
	return expired, nil
}

func (s *SubmissionStore) Delete(id string) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(inits.SubmissionTable, "id", id); err != nil {
		return fmt.Errorf("delete submission %s: %w", id, err)
	}

	txn.Commit()
	return nil
}
