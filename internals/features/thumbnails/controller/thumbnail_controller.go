package controller

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"studyhard_backend/internals/features/thumbnails/service"
	"studyhard_backend/internals/features/thumbnails/storage"
	helper "studyhard_backend/internals/helpers"
)

type ThumbnailController struct {
	Store storage.ThumbnailStore
}

func NewThumbnailController(store storage.ThumbnailStore) *ThumbnailController {
	return &ThumbnailController{Store: store}
}

// =========================
// POST /assignments/thumbnail (multipart: thumbnail)
// =========================
func (ctrl *ThumbnailController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("thumbnail")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "thumbnail file is required")
	}
	if fh.Size > service.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "thumbnail exceeds 5MB")
	}

	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot open thumbnail")
	}
	defer src.Close()

	all, err := io.ReadAll(io.LimitReader(src, service.MaxUploadSize+1))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cannot read thumbnail")
	}
	if len(all) > service.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "thumbnail exceeds 5MB")
	}

	out, err := service.ToThumbnailWebP(all, fh.Filename)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "unsupported or corrupt image")
	}

	key := time.Now().UTC().Format("20060102") + "/" + uuid.NewString() + ".webp"
	url, err := ctrl.Store.Put(c.UserContext(), key, out, "image/webp")
	if err != nil {
		log.Error().Err(err).Msg("store thumbnail")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store thumbnail")
	}

	return helper.JsonCreated(c, "Thumbnail uploaded", fiber.Map{"url": url})
}
