package handlers

import (
	"errors"
	"strconv"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/services"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/pagination"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles event transaction endpoints
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// mapTransactionError translates transaction domain errors to HTTP responses
func mapTransactionError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return response.NotFound(c, "Transaction not found")
	case errors.Is(err, domain.ErrReceiptNotFound):
		return response.NotFound(c, "Receipt not found")
	case errors.Is(err, domain.ErrEventNotFound):
		return response.NotFound(c, "Event not found")
	case errors.Is(err, domain.ErrEventCancelled):
		return response.Conflict(c, "Event is cancelled")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "You don't have permission to manage this event's finances")
	case errors.Is(err, domain.ErrTransactionNotPending):
		return response.Conflict(c, "Transaction has already been settled")
	case errors.Is(err, domain.ErrInvalidTransactionState):
		return response.BadRequest(c, "Status must be COMPLETED or INVALID")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, "Invalid transaction data")
	default:
		return response.InternalServerError(c, fallback)
	}
}

// Create records a transaction
// @Summary Create transaction
// @Description Record a transaction against an event (event head or current administrator)
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateTransactionInput true "Transaction data"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Title == "" {
		return response.BadRequest(c, "Transaction title is required")
	}

	transaction, err := h.transactionService.Create(c.Context(), actorID, &input)
	if err != nil {
		return mapTransactionError(c, err, "Failed to create transaction")
	}

	return response.Created(c, "Transaction created successfully", fiber.Map{"transaction": transaction})
}

// ListByEvent lists transactions of an event
// @Summary List event transactions
// @Description List transactions of an event with pagination
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /transactions/event/{eventId} [get]
func (h *TransactionHandler) ListByEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("eventId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid event ID")
	}

	params := pagination.GetParams(c)
	transactions, total, err := h.transactionService.ListByEventID(c.Context(), uint(eventID), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list transactions")
	}

	return response.Success(c, "Transactions retrieved successfully", pagination.NewResponse(transactions, params, total))
}

// Get gets a transaction by ID
// @Summary Get transaction
// @Description Get a transaction by ID
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	transaction, err := h.transactionService.GetByID(c.Context(), uint(id))
	if err != nil {
		return mapTransactionError(c, err, "Failed to get transaction")
	}

	return response.Success(c, "Transaction retrieved successfully", fiber.Map{"transaction": transaction})
}

// Update edits a pending transaction
// @Summary Update transaction
// @Description Edit descriptive fields of a pending transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param body body services.UpdateTransactionInput true "Transaction data"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.UpdateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	transaction, err := h.transactionService.Update(c.Context(), actorID, uint(id), &input)
	if err != nil {
		return mapTransactionError(c, err, "Failed to update transaction")
	}

	return response.Success(c, "Transaction updated successfully", fiber.Map{"transaction": transaction})
}

// UpdateStatusRequest represents a settle request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus settles a pending transaction
// @Summary Settle transaction
// @Description Settle a pending transaction as COMPLETED or INVALID
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /transactions/{id}/status [put]
func (h *TransactionHandler) UpdateStatus(c *fiber.Ctx) error {
	actorID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	transaction, err := h.transactionService.UpdateStatus(c.Context(), actorID, uint(id), req.Status)
	if err != nil {
		return mapTransactionError(c, err, "Failed to update transaction status")
	}

	return response.Success(c, "Transaction status updated successfully", fiber.Map{"transaction": transaction})
}

// GetReceipt gets the receipt attached to a transaction
// @Summary Get transaction receipt
// @Description Get the receipt metadata attached to a transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id}/receipt [get]
func (h *TransactionHandler) GetReceipt(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	receipt, err := h.transactionService.GetReceipt(c.Context(), uint(id))
	if err != nil {
		return mapTransactionError(c, err, "Failed to get receipt")
	}

	return response.Success(c, "Receipt retrieved successfully", fiber.Map{"receipt": receipt})
}
