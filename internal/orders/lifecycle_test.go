package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionHappyPath(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusConfirmed))
	assert.True(t, CanTransition(StatusConfirmed, StatusPreparing))
	assert.True(t, CanTransition(StatusPreparing, StatusReady))
	assert.True(t, CanTransition(StatusReady, StatusDelivered))
}

func TestCanTransitionNoSkipping(t *testing.T) {
	assert.False(t, CanTransition(StatusPending, StatusPreparing))
	assert.False(t, CanTransition(StatusPending, StatusDelivered))
	assert.False(t, CanTransition(StatusConfirmed, StatusReady))
}

func TestCanTransitionNoBackwards(t *testing.T) {
	assert.False(t, CanTransition(StatusPreparing, StatusConfirmed))
	assert.False(t, CanTransition(StatusReady, StatusPending))
}

func TestCancelledReachableFromAnyNonTerminal(t *testing.T) {
	for _, from := range []string{StatusPending, StatusConfirmed, StatusPreparing, StatusReady} {
		assert.True(t, CanTransition(from, StatusCancelled), "de %s", from)
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	for _, to := range []string{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCancelled} {
		assert.False(t, CanTransition(StatusDelivered, to))
		assert.False(t, CanTransition(StatusCancelled, to))
	}
}

func TestCancelledThenPreparingRejected(t *testing.T) {
	// Scénario admin : pending → cancelled persiste, puis preparing refusé
	next, err := Transition(StatusPending, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, next)

	_, err = Transition(next, StatusPreparing)
	require.Error(t, err)
	assert.IsType(t, ValidationError(""), err)
}

func TestTransitionUnknownStatus(t *testing.T) {
	_, err := Transition(StatusPending, "shipped")
	assert.Error(t, err)
}

func TestNotificationMessageContainsOrderNumber(t *testing.T) {
	msg := NotificationMessage("Maria", "123456789", StatusReady)
	assert.Contains(t, msg, "Olá, Maria!")
	assert.Contains(t, msg, "Pedido: #123456789")
	assert.Contains(t, msg, statusMessages[StatusReady])
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Pendente", StatusLabel(StatusPending))
	assert.Equal(t, "Cancelado", StatusLabel(StatusCancelled))
	assert.Equal(t, "outro", StatusLabel("outro"))
}
