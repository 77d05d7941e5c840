package scenes

import (
	"github.com/decker502/jungle/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

var (
	_ Scene           = (*LevelScene)(nil)
	_ game.Disposable = (*LevelScene)(nil)
)
