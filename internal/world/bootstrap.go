package world

import "github.com/lightsout/lightsout/internal/vecmath"

// SpawnPoint is where a new run starts: the origin room, standing on the floor.
var SpawnPoint = vecmath.Vec(0, 0.01+playerHalfHeight+playerRadius+0.05, 0)

// Bootstrap adds the singletons every run needs: the player, the scene
// controller and the telephone. The player goes first so the scene can
// stream rooms around it on its first update.
func Bootstrap(w *World) (player, scene *Entity) {
	player = NewPlayer(SpawnPoint)
	w.AddEntity(player, IDPlayer)
	scene = NewScene()
	w.AddEntity(scene, IDScene)
	w.AddEntity(NewTelephone(), IDTelephone)
	return player, scene
}
