package controllers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lingua/internal/config"
	"lingua/internal/models/request_models"
	"lingua/internal/services"
	"lingua/pkg/logger"
	"lingua/pkg/utils"
)

type ChatController struct {
	chatService     services.ChatServiceInterface
	documentService services.DocumentServiceInterface
	uploadDir       string
	log             *logger.Logger
}

func NewChatController(
	chatService services.ChatServiceInterface,
	documentService services.DocumentServiceInterface,
	cfg *config.Config,
	log *logger.Logger,
) *ChatController {
	return &ChatController{
		chatService:     chatService,
		documentService: documentService,
		uploadDir:       cfg.UploadDir,
		log:             log.With("controller", "ChatController"),
	}
}

// ChatHandler godoc
// @Summary Chat with the AI tutor
// @Description Multipart (file, message, messages) or JSON (message, messages). Reply is an HTML fragment.
// @Tags Chat
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "pdf, doc, docx or txt"
// @Param message formData string false "Free text message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/chat [post]
func (h *ChatController) ChatHandler(c *gin.Context) {
	in := services.ChatInput{}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		in.Message = c.PostForm("message")
		in.Messages = parseFormMessages(c.PostForm("messages"))

		file, err := c.FormFile("file")
		if err != nil && err != http.ErrMissingFile {
			utils.RespondError(c, http.StatusBadRequest, "Invalid file upload")
			return
		}
		if file != nil {
			text, err := h.extractUpload(c, file)
			if err != nil {
				utils.HandleServiceError(c, err)
				return
			}
			in.DocumentText = text
		}
	} else {
		var req request_models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "No valid message or file uploaded.")
			return
		}
		in.Message = req.Message
		in.Messages = toChatMessages(req.Messages)
	}

	reply, err := h.chatService.Chat(c.Request.Context(), in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// extractUpload stores the upload under the upload dir, reads its text and removes it again.
func (h *ChatController) extractUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if !services.IsAllowedUploadType(file.Header.Get("Content-Type")) {
		return "", utils.ErrUnsupportedFileType
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(h.uploadDir, fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))

	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			h.log.Warn("failed to remove upload", "path", path, "error", err)
		}
	}()

	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return h.documentService.ExtractText(path, services.FileTypeFromName(file.Filename))
}

// VoiceHandler godoc
// @Summary Short spoken-style reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.VoiceRequest true "Transcribed message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.APIResponse
// @Router /api/voiceAssistant [post]
func (h *ChatController) VoiceHandler(c *gin.Context) {
	var req request_models.VoiceRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	reply, err := h.chatService.VoiceReply(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// parseFormMessages reads the optional JSON "messages" form field. Anything unparsable is ignored.
func parseFormMessages(raw string) []utils.ChatMessage {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var msgs []request_models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil
	}
	return toChatMessages(msgs)
}

func toChatMessages(in []request_models.ChatMessage) []utils.ChatMessage {
	out := make([]utils.ChatMessage, 0, len(in))
	for _, m := range in {
		out = append(out, utils.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
