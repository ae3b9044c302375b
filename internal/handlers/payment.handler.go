package handlers

import (
	"bytes"
	"fmt"

	"clubmanager/internal/app"
	paymentController "clubmanager/internal/controllers/payment"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Handler
	controller *paymentController.PaymentController
}

func NewPaymentHandler(app app.App, router fiber.Router) *PaymentHandler {
	return &PaymentHandler{
		controller: app.PaymentController,
		Handler:    newHandler(app, router, "payment_handler"),
	}
}

// Payments are append only.
func (h *PaymentHandler) Register() {
	payments := h.router.Group("/payments")
	payments.Get("/", h.getPayments)
	payments.Get("/export", h.exportPayments)
	payments.Get("/:id", h.getPayment)
	payments.Post("/", h.createPayment)
}

func (h *PaymentHandler) getPayments(c *fiber.Ctx) error {
	payments, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "payments": payments})
}

func (h *PaymentHandler) getPayment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	payment, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "payment": payment})
}

func (h *PaymentHandler) createPayment(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	receipt, err := h.controller.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "receipt": receipt})
}

func (h *PaymentHandler) exportPayments(c *fiber.Ctx) error {
	year, err := queryYear(c)
	if err != nil {
		return h.fail(c, err)
	}

	var buf bytes.Buffer
	rows, err := h.controller.Export(c.UserContext(), year, &buf)
	if err != nil {
		return h.fail(c, err)
	}

	filename := "payments.csv"
	if year != 0 {
		filename = fmt.Sprintf("payments-%d.csv", year)
	}

	h.log.Function("exportPayments").Info("Exported payments", "year", year, "rows", rows)
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
