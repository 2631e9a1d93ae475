package letters

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/render"
	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches letter routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/letters", h.generate)
	rg.POST("/letters/export", h.export)
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume file is required", nil)
		return
	}
	if extract.Detect(fileHeader.Filename) == extract.KindUnsupported {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume must be a PDF or DOCX file", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read resume file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read resume file", nil)
		return
	}

	complexity, err := strconv.Atoi(strings.TrimSpace(c.PostForm("complexity")))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "complexity must be an integer", nil)
		return
	}

	in := GenerateInput{
		JobText:        c.PostForm("jobText"),
		ResumeFileName: fileHeader.Filename,
		ResumeData:     data,
		FullName:       c.PostForm("fullName"),
		Email:          c.PostForm("email"),
		Tone:           c.PostForm("tone"),
		Complexity:     complexity,
		Length:         c.PostForm("length"),
		CompanyName:    c.PostForm("companyName"),
		PositionTitle:  c.PostForm("positionTitle"),
		RecipientName:  c.PostForm("recipientName"),
		ClosingPhrase:  c.PostForm("closingPhrase"),
	}

	out, err := h.Svc.Generate(c.Request.Context(), in)
	if err != nil {
		var completionErr *llm.CompletionError
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
		case errors.Is(err, extract.ErrMalformedDocument):
			respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeMalformedDocument, "resume file could not be parsed", err.Error())
		case errors.As(err, &completionErr):
			respond.Error(c, http.StatusBadGateway, ErrorCodeCompletionFailed, "letter generation failed", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to generate letter", nil)
		}
		return
	}

	c.Set("letterId", out.ID)
	c.Set("resumeKind", extract.Detect(fileHeader.Filename).String())

	respond.JSON(c, http.StatusCreated, toResponse(out))
}

func (h *Handler) export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Letter) == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "letter is required", nil)
		return
	}

	data, err := render.Letter(req.Letter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeExportFailed, "failed to export letter", err.Error())
		return
	}
	metrics.IncLetterExported()

	c.Header("Content-Disposition", `attachment; filename=`+render.FileName)
	c.Data(http.StatusOK, render.MIMEType, data)
}
