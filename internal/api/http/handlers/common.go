package handlers

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/WebArtifcatsind/my-project-backend/pkg/util"
)

const dateLayout = "2006-01-02"

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+name, nil)
	}
	return id, nil
}

// formFileBytes reads an uploaded multipart file into memory. A missing file
// yields empty data and no error; required-file checks belong to the caller.
func formFileBytes(c *fiber.Ctx, field string) (string, []byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return "", nil, apperrors.NewValidationError("unreadable file upload", nil)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, apperrors.NewValidationError("unreadable file upload", nil)
	}
	return header.Filename, data, nil
}
