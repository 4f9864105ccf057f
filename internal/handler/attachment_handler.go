package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/attachment"
)

const maxAttachmentSize = 10 << 20 // 10 MiB

type AttachmentHandler struct {
	attachmentSvc attachment.Service
}

func NewAttachmentHandler(attachmentSvc attachment.Service) *AttachmentHandler {
	return &AttachmentHandler{attachmentSvc: attachmentSvc}
}

func (h *AttachmentHandler) Upload(c *fiber.Ctx) error {
	requestID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("A file is required")
	}
	if fileHeader.Size > maxAttachmentSize {
		return middleware.BadRequest("File exceeds the 10 MiB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read uploaded file")
	}
	defer file.Close()

	var caption *string
	if v := c.FormValue("caption"); v != "" {
		caption = &v
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	a, err := h.attachmentSvc.Upload(
		c.Context(), requestID,
		fileHeader.Filename, fileHeader.Size, mimeType,
		file, caption, middleware.GetCurrentUserID(c),
	)
	if err != nil {
		return mapDomainError(err)
	}

	return created(c, a)
}

func (h *AttachmentHandler) ListByRequest(c *fiber.Ctx) error {
	requestID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	attachments, err := h.attachmentSvc.ListByRequest(c.Context(), requestID)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, attachments)
}

func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "attachmentId")
	if err != nil {
		return err
	}

	if err := h.attachmentSvc.Delete(c.Context(), id); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "Attachment deleted"})
}
