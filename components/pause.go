package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state and which input last changed it.
type PauseData struct {
	IsPaused bool
	By       InputSource
}

var Pause = donburi.NewComponentType[PauseData]()
