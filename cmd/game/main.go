// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-star-fighter/internal/app"
	"go-star-fighter/internal/auth"
	"go-star-fighter/internal/config"
	"go-star-fighter/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "simulation seed, 0 uses the clock")
	dsn := flag.String("dsn", os.Getenv("STAR_FIGHTER_DSN"), "MySQL DSN of the account database; empty disables login")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	var store auth.Store
	if *dsn != "" {
		mysqlStore, err := auth.NewMySQLStore(*dsn)
		if err != nil {
			log.Printf("account database unavailable, login disabled: %v", err)
		} else {
			defer mysqlStore.Close()
			store = mysqlStore
		}
	}

	sm := state.NewStateMachine()
	ctx := &state.Context{
		Machine: sm,
		Game:    app.NewGame(*seed),
		Auth:    auth.NewService(store),
	}
	sm.SetState(state.NewMenuState(ctx))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Star Fighter")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
