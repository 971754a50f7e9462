// internal/state/login_state.go
package state

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-star-fighter/internal/config"
	"go-star-fighter/pkg/render"
)

var _ State = (*LoginState)(nil)

const maxFieldLength = 20

// LoginState collects a username, then a password, and verifies them
// against the account database. The battle is reachable without logging in;
// this screen only attaches an identity to the session.
type LoginState struct {
	ctx *Context

	username      string
	password      string
	enteringPass  bool
	status        string
	inputBuf      []rune
}

func NewLoginState(ctx *Context) *LoginState {
	return &LoginState{ctx: ctx, status: "Enter username"}
}

func (s *LoginState) Enter() {}
func (s *LoginState) Exit()  {}

func (s *LoginState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Machine.SetState(NewMenuState(s.ctx))
		return
	}

	s.inputBuf = ebiten.AppendInputChars(s.inputBuf[:0])
	for _, r := range s.inputBuf {
		if !allowedChar(r) {
			continue
		}
		if s.enteringPass {
			if len(s.password) < maxFieldLength {
				s.password += string(r)
			}
		} else if len(s.username) < maxFieldLength {
			s.username += string(r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if s.enteringPass && s.password != "" {
			s.password = s.password[:len(s.password)-1]
		} else if !s.enteringPass && s.username != "" {
			s.username = s.username[:len(s.username)-1]
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.submit()
	}
}

func (s *LoginState) submit() {
	if !s.enteringPass {
		if s.username == "" {
			return
		}
		s.enteringPass = true
		s.status = "Enter password"
		return
	}
	if s.password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	user, err := s.ctx.Auth.Login(ctx, s.username, s.password)
	if err != nil {
		log.Printf("login failed for %q: %v", s.username, err)
		s.status = "Login error, try again"
		s.password = ""
		return
	}
	if !user.LoggedIn {
		s.status = "Invalid credentials"
		s.password = ""
		s.enteringPass = false
		return
	}

	s.ctx.User = user
	s.ctx.Machine.SetState(NewMenuState(s.ctx))
}

// allowedChar keeps the account charset: letters, digits and _@.- only.
func allowedChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '@' || r == '.' || r == '-':
		return true
	}
	return false
}

func (s *LoginState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	centerX := config.ScreenWidth / 2

	render.DrawTextCentered(screen, "LOGIN", centerX, 160, config.TextLightColor)
	render.DrawTextCentered(screen, s.status, centerX, 200, config.TextDimColor)

	render.DrawTextCentered(screen, "Username: "+s.username+cursorFor(!s.enteringPass), centerX, 260, config.TextLightColor)
	masked := strings.Repeat("*", len(s.password))
	render.DrawTextCentered(screen, "Password: "+masked+cursorFor(s.enteringPass), centerX, 290, config.TextLightColor)

	render.DrawTextCentered(screen, "ENTER to confirm, ESC to cancel", centerX, 360, config.TextDimColor)
}

func cursorFor(active bool) string {
	if active {
		return "_"
	}
	return ""
}
