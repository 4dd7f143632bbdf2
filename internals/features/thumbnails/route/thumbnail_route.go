package route

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	thumbCtrl "studyhard_backend/internals/features/thumbnails/controller"
	"studyhard_backend/internals/features/thumbnails/storage"
)

// ThumbnailRoutes: upload di belakang gate; backend local juga disajikan statis.
func ThumbnailRoutes(app *fiber.App, store storage.ThumbnailStore, gate fiber.Handler) {
	ctrl := thumbCtrl.NewThumbnailController(store)
	app.Post("/assignments/thumbnail", gate, ctrl.Upload)

	if local, ok := store.(*storage.LocalStore); ok && strings.HasPrefix(local.PublicBase, "/") {
		app.Static(local.PublicBase, local.Dir, fiber.Static{
			MaxAge: 86400,
		})
	}
}
