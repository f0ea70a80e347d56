package handler

import (
	"net/http"

	"storefront/internal/service"

	"github.com/shopspring/decimal"
)

type basicItemRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

type purchaseAllBasicRequest struct {
	Items []basicItemRequest `json:"items" validate:"required,min=1,dive"`
}

type legacyCartLineRequest struct {
	ProductID int             `json:"productId" validate:"gt=0,lte=2147483647"`
	Price     decimal.Decimal `json:"price"`
	// Zero means one.
	Quantity int `json:"quantity" validate:"gte=0,lte=2147483647"`
}

type purchaseAllRequest struct {
	UserID    int                     `json:"userId" validate:"gt=0,lte=2147483647"`
	CartItems []legacyCartLineRequest `json:"cartItems" validate:"required,min=1,dive"`
}

func (h *Handler) PurchaseSingle(w http.ResponseWriter, r *http.Request) {
	var req basicItemRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.Sales.RecordSingle(r.Context(), service.BasicItem{Name: req.Name, Price: req.Price}); err != nil {
		h.writeError(w, r, err, "Error processing purchase.")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Item purchased successfully!"})
}

func (h *Handler) PurchaseAllBasic(w http.ResponseWriter, r *http.Request) {
	var req purchaseAllBasicRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		h.badRequest(w, "Cart is empty.")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.badRequest(w, validationMessage(err))
		return
	}

	items := make([]service.BasicItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.BasicItem{Name: item.Name, Price: item.Price})
	}

	if err := h.svc.Sales.RecordBasic(r.Context(), items); err != nil {
		h.writeError(w, r, err, "Error processing purchase.")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "All items purchased successfully!"})
}

func (h *Handler) PurchaseAll(w http.ResponseWriter, r *http.Request) {
	var req purchaseAllRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	lines := make([]service.CartLine, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		lines = append(lines, service.CartLine{
			ProductID: item.ProductID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := h.svc.Sales.RecordCart(r.Context(), req.UserID, lines); err != nil {
		h.writeError(w, r, err, "Error placing order")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Purchase completed successfully!"})
}
