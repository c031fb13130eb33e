package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/MeritX-US/meritx-intake/errors"
	"github.com/MeritX-US/meritx-intake/internal/adapter/dto"
	"github.com/MeritX-US/meritx-intake/internal/usecase/transcription"
)

// defaultUploadExt is used when the upload carries no file extension; browser
// recordings arrive as WebM blobs.
const defaultUploadExt = ".webm"

// TranscribeHandler handles audio upload and transcription requests
type TranscribeHandler struct {
	svc       transcription.Service
	uploadDir string
	logger    *zap.Logger
}

// NewTranscribeHandler creates a new transcription handler
func NewTranscribeHandler(svc transcription.Service, uploadDir string, logger *zap.Logger) *TranscribeHandler {
	return &TranscribeHandler{svc: svc, uploadDir: uploadDir, logger: logger}
}

// Transcribe accepts a multipart audio upload and returns the canonical transcript
// @Summary      Transcribe a consultation recording
// @Description  Uploads an audio file, transcribes it with speaker separation and PII redaction, and returns the transcript
// @Tags         Transcription
// @Accept       mpfd
// @Produce      json
// @Param        audio     formData  file    true   "Audio recording (MP3, WAV, or WebM)"
// @Param        language  formData  string  false  "Language code or auto"  default(auto)
// @Success      200  {object}  dto.TranscribeResponse
// @Failure      400  {object}  dto.ErrorResponse  "Missing audio or unsupported language"
// @Failure      500  {object}  dto.ErrorResponse  "Transcription failed"
// @Router       /transcribe [post]
func (h *TranscribeHandler) Transcribe(c echo.Context) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("No audio file provided"))
	}

	var req dto.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request"))
	}
	if req.Language == "" {
		req.Language = "auto"
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("Unsupported language code"))
	}

	path, err := h.saveUpload(file)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	if h.logger != nil {
		h.logger.Info("audio upload received",
			zap.String("filename", file.Filename),
			zap.Int64("size", file.Size),
			zap.String("language", req.Language),
		)
	}

	transcript, err := h.svc.TranscribeFile(c.Request().Context(), path, req.Language)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.TranscribeResponse{Transcript: transcript})
}

// saveUpload stores the multipart file under the upload directory with a
// unique name, preserving the original extension.
func (h *TranscribeHandler) saveUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = defaultUploadExt
	}
	path := filepath.Join(h.uploadDir, uuid.NewString()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
