package scoring

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/scorekeeper-backend/internal/domain"
)

var storedColor = regexp.MustCompile(`^#([0-9A-F]{6}|[0-9A-F]{3})$`)

// ---------------------------------------------------------------------------
// CreateParticipant
// ---------------------------------------------------------------------------

func TestCreateParticipant_NormalizesNameAndColor(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedSession(anonymous()), memStores(), nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     CreateParticipantInput
		wantName  string
		corrected bool
	}{
		{"hex six", CreateParticipantInput{Name: "  Alice ", Color: "#a1b2c3"}, "Alice", false},
		{"hex three", CreateParticipantInput{Name: "Bob", Color: "#abc"}, "Bob", false},
		{"no color", CreateParticipantInput{Name: "Carol"}, "Carol", true},
		{"named color", CreateParticipantInput{Name: "Dan  Brown", Color: "red"}, "Dan  Brown", true},
	}
	for _, tt := range tests {
		res := svc.CreateParticipant(ctx, tt.input)
		require.True(t, res.OK(), tt.name)
		assert.Equal(t, tt.corrected, res.Color.Corrected(), tt.name)

		found := svc.FindParticipant(ctx, res.Participant.ID)
		require.NotNil(t, found, tt.name)
		assert.Equal(t, tt.wantName, found.Name, tt.name)
		assert.Regexp(t, storedColor, found.Color, tt.name)
	}
}

func TestCreateParticipant_CorrectedColorComesFromPalette(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedSession(anonymous()), memStores(), nil)

	res := svc.CreateParticipant(context.Background(), CreateParticipantInput{Name: "Eve", Color: "#12345"})

	require.True(t, res.OK())
	assert.Equal(t, domain.ColorCorrected, res.Color.Status)
	assert.Equal(t, "#12345", res.Color.Original)
	assert.True(t, slices.Contains(domain.Palette[:], res.Participant.Color))
}

func TestCreateParticipant_EmptyNameRejected(t *testing.T) {
	t.Parallel()

	store := &participantStoreMock{}
	svc := newTestService(fixedSession(anonymous()), Stores{Participants: store, Games: &gameStoreMock{}}, nil)

	res := svc.CreateParticipant(context.Background(), CreateParticipantInput{Name: "   "})

	assert.False(t, res.OK())
	assert.Empty(t, store.CreateCalls())
}

func TestCreateParticipant_StoreFailure(t *testing.T) {
	t.Parallel()

	store := &participantStoreMock{
		CreateFunc: func(ctx context.Context, scope domain.Scope, p domain.Participant) (*domain.Participant, error) {
			return nil, errors.New("disk full")
		},
	}
	svc := newTestService(fixedSession(anonymous()), Stores{Participants: store, Games: &gameStoreMock{}}, nil)

	res := svc.CreateParticipant(context.Background(), CreateParticipantInput{Name: "Frank", Color: "#FFF"})

	assert.False(t, res.OK())
	assert.Equal(t, domain.ColorAccepted, res.Color.Status)
}

// ---------------------------------------------------------------------------
// UpdateParticipant
// ---------------------------------------------------------------------------

func TestUpdateParticipant_AppliesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedSession(anonymous()), memStores(), nil)
	ctx := context.Background()
	created := svc.CreateParticipant(ctx, CreateParticipantInput{Name: "Gina", Color: "#00FF00"})
	require.True(t, created.OK())

	res := svc.UpdateParticipant(ctx, UpdateParticipantInput{ID: created.Participant.ID, Name: ptr(" Gina B ")})

	require.True(t, res.OK())
	assert.Equal(t, "Gina B", res.Participant.Name)
	assert.Equal(t, "#00FF00", res.Participant.Color)
	assert.Empty(t, res.Color.Status, "color untouched")
}

func TestUpdateParticipant_RevalidatesColor(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedSession(anonymous()), memStores(), nil)
	ctx := context.Background()
	created := svc.CreateParticipant(ctx, CreateParticipantInput{Name: "Hank", Color: "#000000"})
	require.True(t, created.OK())

	res := svc.UpdateParticipant(ctx, UpdateParticipantInput{ID: created.Participant.ID, Color: ptr("not-a-color")})

	require.True(t, res.OK())
	assert.True(t, res.Color.Corrected())
	assert.Equal(t, res.Color.Color, res.Participant.Color)
	assert.Equal(t, "Hank", res.Participant.Name)
}

func TestUpdateParticipant_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedSession(anonymous()), memStores(), nil)

	res := svc.UpdateParticipant(context.Background(), UpdateParticipantInput{ID: uuid.New(), Name: ptr("Ida")})

	assert.False(t, res.OK())
}

func TestUpdateParticipant_EmptyNameRejected(t *testing.T) {
	t.Parallel()

	store := &participantStoreMock{}
	svc := newTestService(fixedSession(anonymous()), Stores{Participants: store, Games: &gameStoreMock{}}, nil)

	res := svc.UpdateParticipant(context.Background(), UpdateParticipantInput{ID: uuid.New(), Name: ptr("")})

	assert.False(t, res.OK())
	assert.Empty(t, store.UpdateCalls())
}

// ---------------------------------------------------------------------------
// DeleteParticipant / FindParticipant / ListParticipants
// ---------------------------------------------------------------------------

func TestDeleteParticipant_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedSession(anonymous()), memStores(), nil)
	ctx := context.Background()
	svc.CreateParticipant(ctx, CreateParticipantInput{Name: "A"})
	svc.CreateParticipant(ctx, CreateParticipantInput{Name: "B"})

	before := len(svc.ListParticipants(ctx))
	ok := svc.DeleteParticipant(ctx, uuid.New())
	after := len(svc.ListParticipants(ctx))

	assert.False(t, ok)
	assert.Equal(t, 2, before)
	assert.Equal(t, before, after)
}

func TestDeleteParticipant_KeepsGames(t *testing.T) {
	t.Parallel()

	svc := newTestService(fixedSession(anonymous()), memStores(), nil)
	ctx := context.Background()
	a := svc.CreateParticipant(ctx, CreateParticipantInput{Name: "A"}).Participant
	require.NotNil(t, a)
	game := svc.CreateGame(ctx, CreateGameInput{Name: "Chess", WinnerID: a.ID, ParticipantIDs: []uuid.UUID{a.ID}})
	require.Equal(t, domain.OutcomeCreated, game.Outcome)

	assert.True(t, svc.DeleteParticipant(ctx, a.ID))
	assert.Nil(t, svc.FindParticipant(ctx, a.ID))
	assert.Len(t, svc.ListGames(ctx), 1)
}

func TestFindParticipant_StoreFailureIsNil(t *testing.T) {
	t.Parallel()

	store := &participantStoreMock{
		GetByIDFunc: func(ctx context.Context, scope domain.Scope, id uuid.UUID) (*domain.Participant, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := newTestService(fixedSession(anonymous()), Stores{Participants: store, Games: &gameStoreMock{}}, nil)

	assert.Nil(t, svc.FindParticipant(context.Background(), uuid.New()))
}

func TestListParticipants_FailureIsEmpty(t *testing.T) {
	t.Parallel()

	store := &participantStoreMock{
		ListFunc: func(ctx context.Context, scope domain.Scope) ([]domain.Participant, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newTestService(fixedSession(anonymous()), Stores{Participants: store, Games: &gameStoreMock{}}, nil)

	list := svc.ListParticipants(context.Background())

	require.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListParticipants_ScopedByContext(t *testing.T) {
	t.Parallel()

	stores := memStores()
	group := domain.Session{Context: domain.Context{ID: "-100", Type: domain.ContextTypeGroup}}
	private := domain.Session{Context: domain.Context{ID: "7", Type: domain.ContextTypePrivate}}
	ctx := context.Background()

	newTestService(fixedSession(group), stores, nil).CreateParticipant(ctx, CreateParticipantInput{Name: "G"})
	newTestService(fixedSession(private), stores, nil).CreateParticipant(ctx, CreateParticipantInput{Name: "P"})

	groupList := newTestService(fixedSession(group), stores, nil).ListParticipants(ctx)
	require.Len(t, groupList, 1)
	assert.Equal(t, "G", groupList[0].Name)
}
