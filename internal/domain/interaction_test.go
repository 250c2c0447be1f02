package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteraction_KnownActions(t *testing.T) {
	cases := map[string]Interaction{
		"accept_12":      {Kind: InteractionAccept, EventID: 12},
		"reject_7":       {Kind: InteractionReject, EventID: 7},
		"interested_3":   {Kind: InteractionInterested, EventID: 3},
		"modalReject_44": {Kind: InteractionRejectModal, EventID: 44},
		"close_9":        {Kind: InteractionCloseTicket, EventID: 9},
	}

	for id, want := range cases {
		got, err := ParseInteraction(id)
		require.NoError(t, err, id)
		assert.Equal(t, want, got, id)
		assert.Equal(t, id, got.CustomID())
	}
}

func TestParseInteraction_Unknown(t *testing.T) {
	for _, id := range []string{"", "accept", "accept_", "_5", "delete_5", "accept_abc", "accept_-1", "accept_0"} {
		_, err := ParseInteraction(id)
		assert.ErrorIs(t, err, ErrUnknownInteraction, id)
	}
}

func TestInteractionKind_ModeratorOnly(t *testing.T) {
	assert.True(t, InteractionAccept.ModeratorOnly())
	assert.True(t, InteractionReject.ModeratorOnly())
	assert.True(t, InteractionRejectModal.ModeratorOnly())
	assert.False(t, InteractionInterested.ModeratorOnly())
	assert.False(t, InteractionCloseTicket.ModeratorOnly())
	assert.Equal(t, "unknown", InteractionUnknown.String())
}
