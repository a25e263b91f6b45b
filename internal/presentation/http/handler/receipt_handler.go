package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sarveshkp/rentreceipt-api/internal/application/service"
	"github.com/sarveshkp/rentreceipt-api/internal/presentation/http/dto/request"
	"github.com/sarveshkp/rentreceipt-api/internal/presentation/http/dto/response"
	"github.com/sarveshkp/rentreceipt-api/pkg/pagination"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	printService   *service.PrintService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, printService *service.PrintService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, printService: printService}
}

// List handles listing the user's receipt history
// @Summary List receipts
// @Description List the current user's receipts, newest first
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Filter by tenant name or receipt number"
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.receiptService.ListReceipts(c.Request.Context(), *userID, params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Receipts retrieved successfully", result)
}

// Create handles creating a receipt
// @Summary Create receipt
// @Description Create a receipt and add it to the user's history
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.ToInput(*userID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rec, err := h.receiptService.CreateReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", gin.H{"receipt": rec})
}

// Get handles retrieving a single receipt
// @Summary Get receipt
// @Description Get a receipt by ID
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	rec, err := h.receiptService.GetReceipt(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", gin.H{"receipt": rec})
}

// Delete handles deleting a receipt
// @Summary Delete receipt
// @Description Delete a receipt from the user's history
// @Tags receipts
// @Security BearerAuth
// @Param id path string true "Receipt ID"
// @Success 204
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DownloadPDF handles PDF export of a stored receipt
// @Summary Download receipt PDF
// @Description Generate and download the receipt as a PDF document
// @Tags receipts
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Receipt ID"
// @Param orientation query string false "Page orientation (portrait or landscape)"
// @Success 200 {file} binary
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id}/pdf [get]
func (h *ReceiptHandler) DownloadPDF(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	pdf, filename, err := h.receiptService.GeneratePDF(c.Request.Context(), *userID, id, c.Query("orientation"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Preview handles PDF preview of an unsaved receipt
// @Summary Preview receipt PDF
// @Description Generate a PDF from the request body without saving anything
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce application/pdf
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Param orientation query string false "Page orientation (portrait or landscape)"
// @Success 200 {file} binary
// @Failure 422 {object} response.APIResponse
// @Router /receipts/preview [post]
func (h *ReceiptHandler) Preview(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.ToInput(*userID)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pdf, err := h.receiptService.Preview(c.Request.Context(), input, c.Query("orientation"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=receipt-preview.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Share handles emailing a receipt PDF
// @Summary Share receipt
// @Description Email the receipt PDF to the given address
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param request body request.ShareReceiptRequest true "Recipient email"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id}/share [post]
func (h *ReceiptHandler) Share(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req request.ShareReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.receiptService.ShareReceipt(c.Request.Context(), *userID, id, req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent successfully", nil)
}

// Print handles printing a receipt ticket
// @Summary Print receipt
// @Description Print the receipt on the configured thermal printer
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{id}/print [post]
func (h *ReceiptHandler) Print(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.printService.PrintReceipt(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}
