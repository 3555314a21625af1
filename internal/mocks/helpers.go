package mocks

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/cyphera/cyphera-wallets/internal/db"
)

// NewMockStoreForTest creates a new mock Store for testing
func NewMockStoreForTest(t *testing.T) *MockStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStore(ctrl)
}

// ExpectTx makes the next ExecTx run its callback against store itself,
// so queries issued inside the transaction hit the same expectations.
// The callback's error is returned unchanged, as a rolled back transaction would.
func ExpectTx(store *MockStore) *gomock.Call {
	return store.EXPECT().
		ExecTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(db.Querier) error) error {
			return fn(store)
		})
}
