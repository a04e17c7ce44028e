package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milldesk/milldesk-api/internal/application/service"
	"github.com/milldesk/milldesk-api/internal/presentation/http/dto/response"
)

// BackupHandler handles export and import HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func sendExport(c *gin.Context, export *service.Export, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

// ExportCustomers handles GET /backup/customers?format=json|csv|xlsx
func (h *BackupHandler) ExportCustomers(c *gin.Context) {
	ctx := c.Request.Context()
	switch c.DefaultQuery("format", "json") {
	case "csv":
		export, err := h.backupService.ExportCustomersCSV(ctx)
		sendExport(c, export, err)
	case "xlsx":
		export, err := h.backupService.ExportCustomersXLSX(ctx)
		sendExport(c, export, err)
	default:
		export, err := h.backupService.ExportCustomersJSON(ctx)
		sendExport(c, export, err)
	}
}

// ExportSuppliers handles GET /backup/suppliers?format=json|csv
func (h *BackupHandler) ExportSuppliers(c *gin.Context) {
	ctx := c.Request.Context()
	switch c.DefaultQuery("format", "json") {
	case "csv":
		export, err := h.backupService.ExportSuppliersCSV(ctx)
		sendExport(c, export, err)
	default:
		export, err := h.backupService.ExportSuppliersJSON(ctx)
		sendExport(c, export, err)
	}
}

// ExportFull handles GET /backup/full
func (h *BackupHandler) ExportFull(c *gin.Context) {
	export, err := h.backupService.ExportFull(c.Request.Context())
	sendExport(c, export, err)
}

// Import handles POST /backup/import. The body is either raw JSON or a
// multipart upload with a "file" field. Nothing is written unless the whole
// batch validates.
func (h *BackupHandler) Import(c *gin.Context) {
	var data []byte
	var err error

	if file, fileErr := c.FormFile("file"); fileErr == nil {
		f, openErr := file.Open()
		if openErr != nil {
			response.ErrorWithCode(c, 400, "Could not read uploaded file")
			return
		}
		defer f.Close()
		data, err = io.ReadAll(f)
	} else {
		data, err = io.ReadAll(c.Request.Body)
	}
	if err != nil {
		response.ErrorWithCode(c, 400, "Could not read import payload")
		return
	}

	env, err := h.backupService.ImportCustomers(c.Request.Context(), data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Backup imported successfully", gin.H{
		"customers":     len(env.Customers),
		"ledgerEntries": len(env.LedgerEntries),
		"bookedStock":   len(env.BookedStock),
		"sales":         len(env.Sales),
	})
}
