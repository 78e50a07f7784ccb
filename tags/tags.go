package tags

import "github.com/yohamta/donburi"

var (
	Dummy = donburi.NewTag().SetName("Dummy")
)
