package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/favorite-food/internal/domain/audit"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

func TestListEvents(t *testing.T) {
	repo := &fakeAuditRepo{}
	userID := uuid.New()
	for i := 0; i < DefaultListLimit+5; i++ {
		require.NoError(t, repo.Append(context.Background(), &audit.Entry{UserID: userID, EventType: audit.EventSignedIn}))
	}
	require.NoError(t, repo.Append(context.Background(), &audit.Entry{UserID: uuid.New(), EventType: audit.EventSignedUp}))

	uc := NewListEventsUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), ListEventsInput{UserID: userID})
	require.NoError(t, err)
	assert.Len(t, out.Entries, DefaultListLimit)

	out, err = uc.Execute(context.Background(), ListEventsInput{UserID: userID, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, out.Entries, 3)
	for _, e := range out.Entries {
		assert.Equal(t, userID, e.UserID)
	}
}

func TestListEvents_Rejections(t *testing.T) {
	uc := NewListEventsUseCase(&fakeAuditRepo{}, logger.NewNop())

	for _, limit := range []int{-1, MaxListLimit + 1} {
		_, err := uc.Execute(context.Background(), ListEventsInput{UserID: uuid.New(), Limit: limit})
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	}

	uc = NewListEventsUseCase(&fakeAuditRepo{err: errors.New("db down")}, logger.NewNop())
	_, err := uc.Execute(context.Background(), ListEventsInput{UserID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}
