package kv

import (
	"context"
	"testing"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	"github.com/SscSPs/site_claims_app/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreSuite runs the same contract checks against every store that can
// run without external services.
type StoreSuite struct {
	suite.Suite
	newStore func() portsrepo.KeyValueStore
	store    portsrepo.KeyValueStore
}

func (s *StoreSuite) SetupTest() {
	s.store = s.newStore()
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *StoreSuite) TestGetMissingKey() {
	_, err := s.store.Get(context.Background(), portsrepo.KeyCurrentUser)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreSuite) TestPutThenGet() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, portsrepo.KeyUsers, []byte(`[{"id":"Admin"}]`)))

	v, err := s.store.Get(ctx, portsrepo.KeyUsers)
	s.Require().NoError(err)
	s.Equal(`[{"id":"Admin"}]`, string(v))
}

func (s *StoreSuite) TestPutOverwrites() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, portsrepo.KeyCurrentUser, []byte("first")))
	s.Require().NoError(s.store.Put(ctx, portsrepo.KeyCurrentUser, []byte("second")))

	v, err := s.store.Get(ctx, portsrepo.KeyCurrentUser)
	s.Require().NoError(err)
	s.Equal("second", string(v))
}

func (s *StoreSuite) TestDelete() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, portsrepo.KeyCurrentUser, []byte("x")))
	s.Require().NoError(s.store.Delete(ctx, portsrepo.KeyCurrentUser))
	s.Require().NoError(s.store.Delete(ctx, "never-set"))

	_, err := s.store.Get(ctx, portsrepo.KeyCurrentUser)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() portsrepo.KeyValueStore { return NewMemoryStore() }})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() portsrepo.KeyValueStore {
		conn, err := database.OpenSQLite(":memory:")
		require.NoError(t, err)
		store, err := NewSQLiteStore(context.Background(), conn)
		require.NoError(t, err)
		return store
	}})
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	value := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
