package handler

import (
	"github.com/distroflow/distribution-api/internal/application/service"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/request"
	"github.com/distroflow/distribution-api/internal/presentation/http/dto/response"
	"github.com/distroflow/distribution-api/pkg/pagination"
	"github.com/distroflow/distribution-api/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VendorHandler handles vendor and vendor invoice HTTP requests
type VendorHandler struct {
	vendorService *service.VendorService
	files         *storage.FileStore
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *service.VendorService, files *storage.FileStore) *VendorHandler {
	return &VendorHandler{vendorService: vendorService, files: files}
}

// List handles listing vendors
func (h *VendorHandler) List(c *gin.Context) {
	var filter request.VendorFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}

	result, err := h.vendorService.ListVendors(c.Request.Context(), params, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Vendors retrieved successfully", result)
}

// Create handles creating a vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req request.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), vendorInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vendor created successfully", vendor)
}

func vendorInput(req *request.VendorRequest) *service.VendorInput {
	return &service.VendorInput{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}
}

// Get handles getting a single vendor
func (h *VendorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor retrieved successfully", vendor)
}

// Update handles updating a vendor
func (h *VendorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), id, vendorInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor updated successfully", vendor)
}

// Delete handles deleting a vendor
func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListInvoices lists a vendor's invoices alongside the outstanding balance
func (h *VendorHandler) ListInvoices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var filter request.VendorFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}

	summary, err := h.vendorService.ListInvoices(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor invoices retrieved successfully", summary)
}

// CreateInvoice records a vendor invoice
func (h *VendorHandler) CreateInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.VendorInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.vendorService.CreateInvoice(c.Request.Context(), id, invoiceInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

func invoiceInput(req *request.VendorInvoiceRequest) *service.VendorInvoiceInput {
	return &service.VendorInvoiceInput{
		PurchaseOrderID: req.PurchaseOrderID,
		InvoiceNo:       req.InvoiceNo,
		InvoiceDate:     req.InvoiceDate,
		Amount:          req.Amount,
		Paid:            req.Paid,
		ImageURL:        req.ImageURL,
	}
}

// UpdateInvoice updates a vendor invoice
func (h *VendorHandler) UpdateInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.VendorInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.vendorService.UpdateInvoice(c.Request.Context(), invoiceID, invoiceInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// MarkInvoicePaid marks a vendor invoice as paid
func (h *VendorHandler) MarkInvoicePaid(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.vendorService.MarkInvoicePaid(c.Request.Context(), invoiceID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice marked as paid", nil)
}

// DeleteInvoice deletes a vendor invoice
func (h *VendorHandler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoiceId"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.vendorService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UploadInvoiceImage stores a photo of a paper invoice
func (h *VendorHandler) UploadInvoiceImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Image file is required")
		return
	}

	path, err := h.files.SaveImage(file, "invoices")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice image uploaded successfully", gin.H{"url": "/uploads/" + path})
}
