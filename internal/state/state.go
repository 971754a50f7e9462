// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-star-fighter/internal/app"
	"go-star-fighter/internal/auth"
)

// State is the interface for all game screens.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context is shared by every state: the simulation, the login service and
// the identity of the current player.
type Context struct {
	Machine *StateMachine
	Game    *app.Game
	Auth    *auth.Service
	User    auth.User
}

// StateMachine drives the active state.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
