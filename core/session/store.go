package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	ds "github.com/ipfs/go-datastore"
	dsq "github.com/ipfs/go-datastore/query"
	dslvl "github.com/ipfs/go-ds-leveldb"
	"github.com/pyropy/lrucache/core/model"
	"github.com/pyropy/lrucache/lib/checksum"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrChecksumMismatch = errors.New("session checksum mismatch")
)

// Store keeps recorded sessions in leveldb, JSON encoded and keyed by session ID.
type Store struct {
	Sessions *dslvl.Datastore
}

func NewStore(dsPath string) (*Store, error) {
	p := fmt.Sprintf("%s/sessions", dsPath)
	store, err := dslvl.NewDatastore(p, nil)
	if err != nil {
		return nil, err
	}

	return &Store{
		Sessions: store,
	}, nil
}

func (s *Store) Close() error {
	return s.Sessions.Close()
}

// Put stamps the session checksum and persists it.
func (s *Store) Put(ctx context.Context, session *model.Session) error {
	b, err := session.ChecksumBytes()
	if err != nil {
		return err
	}
	session.Checksum = checksum.CalculateCheckSum(b)

	b, err = json.Marshal(session)
	if err != nil {
		return err
	}

	return s.Sessions.Put(ctx, key(session.ID), b)
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	b, err := s.Sessions.Get(ctx, key(id))
	if errors.Is(err, ds.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return decode(b)
}

// All returns every stored session, oldest first.
func (s *Store) All(ctx context.Context) ([]*model.Session, error) {
	sessions := make([]*model.Session, 0)

	res, err := s.Sessions.Query(ctx, dsq.Query{})
	if err != nil {
		return sessions, err
	}
	defer res.Close()

	for {
		r, hasNext := res.NextSync()
		if !hasNext {
			break
		}
		if r.Error != nil {
			return sessions, r.Error
		}

		session, err := decode(r.Value)
		if err != nil {
			return sessions, err
		}
		sessions = append(sessions, session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return sessions, nil
}

func key(id uuid.UUID) ds.Key {
	return ds.NewKey(id.String())
}

func decode(b []byte) (*model.Session, error) {
	var session model.Session
	err := json.Unmarshal(b, &session)
	if err != nil {
		return nil, err
	}

	ops, err := session.ChecksumBytes()
	if err != nil {
		return nil, err
	}
	if !checksum.Verify(ops, session.Checksum) {
		return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, session.ID)
	}

	return &session, nil
}
