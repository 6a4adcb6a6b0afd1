package controller

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"material-issue-sheet/models"
	"material-issue-sheet/ordering"
	"material-issue-sheet/service"
	"material-issue-sheet/utils"
)

// OrderSheetController handles HTTP requests for exporting the order sheet
type OrderSheetController struct {
	guard       *SessionGuard
	spreadsheet service.OrderSheetWriter
	printer     service.OrderSheetWriter
	validate    *validator.Validate
	now         func() time.Time
	logger      *zap.Logger
}

// NewOrderSheetController creates a new OrderSheetController.
// printer may be nil, in which case PDF export answers 503.
func NewOrderSheetController(
	guard *SessionGuard,
	spreadsheet service.OrderSheetWriter,
	printer service.OrderSheetWriter,
	logger *zap.Logger,
) *OrderSheetController {
	return &OrderSheetController{
		guard:       guard,
		spreadsheet: spreadsheet,
		printer:     printer,
		validate:    newValidator(),
		now:         time.Now,
		logger:      logger,
	}
}

// Export handles POST /api/order-sheet and returns the .xlsx workbook as an attachment
func (c *OrderSheetController) Export(w http.ResponseWriter, r *http.Request) {
	c.download(w, r, "Export", c.spreadsheet)
}

// ExportPDF handles POST /api/order-sheet/pdf and returns a printable PDF as an attachment
func (c *OrderSheetController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if c.printer == nil {
		requestLogger(c.logger, r, "ExportPDF").Warn("pdf export is not configured")
		http.Error(w, "PDF export is not available", http.StatusServiceUnavailable)
		return
	}
	c.download(w, r, "ExportPDF", c.printer)
}

// Preview handles POST /api/order-sheet/preview and returns the laid-out grid as JSON
func (c *OrderSheetController) Preview(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(c.logger, r, "Preview")

	sheet, ok := c.prepare(w, r, log)
	if !ok {
		return
	}
	writeJSON(w, r, c.logger, http.StatusOK, sheet)
}

func (c *OrderSheetController) download(w http.ResponseWriter, r *http.Request, handler string, writer service.OrderSheetWriter) {
	log := requestLogger(c.logger, r, handler)

	sheet, ok := c.prepare(w, r, log)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := writer.Write(r.Context(), sheet, &buf); err != nil {
		log.Error("failed to write order sheet", zap.Error(err))
		http.Error(w, fmt.Sprintf("Failed to generate order sheet: %v", err), http.StatusInternalServerError)
		return
	}

	filename := utils.SafeFileName(sheet.FileBaseName, writer.Extension())
	w.Header().Set("Content-Type", writer.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error("failed to send order sheet", zap.Error(err))
		return
	}

	log.Info("order sheet downloaded",
		zap.String("filename", filename),
		zap.Int("bytes", buf.Len()),
	)
}

// prepare decodes the header, validates the export and lays out the sheet.
// It writes the error response itself and reports false when the request must stop.
func (c *OrderSheetController) prepare(w http.ResponseWriter, r *http.Request, log *zap.Logger) (*models.OrderSheet, bool) {
	var req models.OrderSheetRequest
	if err := decodeBody(r, c.validate, &req); err != nil {
		log.Warn("invalid order sheet request", zap.Error(err))
		writeJSON(w, r, c.logger, http.StatusBadRequest, models.ExportErrorResponse{Error: err.Error()})
		return nil, false
	}

	date, err := utils.ParseSheetDate(req.Date, c.now())
	if err != nil {
		log.Warn("invalid order sheet date", zap.Error(err))
		writeJSON(w, r, c.logger, http.StatusBadRequest, models.ExportErrorResponse{Error: err.Error(), Field: "date"})
		return nil, false
	}

	header := models.OrderSheetHeader{
		FromWarehouse: req.FromWarehouse,
		ToWarehouse:   req.ToWarehouse,
		IssuedBy:      req.IssuedBy,
		ReceivedBy:    req.ReceivedBy,
		Date:          date,
	}
	confirm := ordering.ConfirmFunc(func(string) bool {
		return req.ConfirmMissingIssuer
	})

	var (
		sheet      *models.OrderSheet
		prepareErr error
	)
	c.guard.Do(func(s *ordering.Session) {
		sheet, prepareErr = s.PrepareOrderSheet(header, confirm)
	})
	if prepareErr != nil {
		status, body := exportErrorResponse(prepareErr)
		log.Info("order sheet export rejected",
			zap.Int("status", status),
			zap.String("field", body.Field),
			zap.Error(prepareErr),
		)
		writeJSON(w, r, c.logger, status, body)
		return nil, false
	}
	return sheet, true
}

// exportErrorResponse maps an export validation error to a status and body
func exportErrorResponse(err error) (int, models.ExportErrorResponse) {
	body := models.ExportErrorResponse{Error: err.Error()}

	var fieldErr *ordering.FieldError
	if errors.As(err, &fieldErr) {
		body.Field = fieldErr.Field
	}

	switch {
	case errors.Is(err, ordering.ErrExportDeclined):
		body.Prompt = ordering.MissingIssuerPrompt
		return http.StatusConflict, body
	case errors.Is(err, ordering.ErrEmptyCart), errors.Is(err, ordering.ErrMissingDestination):
		return http.StatusBadRequest, body
	default:
		return http.StatusInternalServerError, body
	}
}
