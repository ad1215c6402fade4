package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"folio/internal/planner"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type FinanceHandler struct {
	Svc *planner.Service
}

func (h *FinanceHandler) List(w http.ResponseWriter, r *http.Request) {
	from, err := parseTimePtr(queryPtr(r, "startDate"))
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	to, err := parseTimePtr(queryPtr(r, "endDate"))
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	transactions, err := h.Svc.ListTransactions(r.Context(), planner.TxFilter{
		From:     from,
		To:       to,
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
	})
	if err != nil {
		serverError(w, "transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": transactions})
}

func (h *FinanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.Svc.GetTransaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Analytics aggregates the inclusive date range into totals, category
// breakdowns, and the monthly trend.
func (h *FinanceHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")
	if startStr == "" || endStr == "" {
		fail(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}
	start, err := parseTime(startStr)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := parseTime(endStr)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	a, err := h.Svc.GetAnalytics(r.Context(), start, end)
	if err != nil {
		serverError(w, "analytics", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type createTransactionReq struct {
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Tags          []string        `json:"tags"`
}

func (r createTransactionReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.In(anyList(planner.TxTypes)...)),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.PaymentMethod, validation.Required, validation.In(anyList(planner.PaymentMethods)...)),
		validation.Field(&r.Amount, validation.By(nonNegativeAmount)),
	)
}

// Amounts are stored as positive magnitudes; direction lives in the type.
func nonNegativeAmount(value any) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func (h *FinanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := parseTime(req.Date)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid date")
		return
	}

	t, err := h.Svc.CreateTransaction(r.Context(), planner.CreateTransactionInput{
		Date:          date,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Tags:          req.Tags,
	})
	if err != nil {
		serverError(w, "transaction", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "transaction": t})
}

type updateTransactionReq struct {
	Date          *string          `json:"date"`
	Type          *string          `json:"type"`
	Category      *string          `json:"category"`
	Amount        *decimal.Decimal `json:"amount"`
	Description   *string          `json:"description"`
	PaymentMethod *string          `json:"paymentMethod"`
	Tags          *[]string        `json:"tags"`
}

func (r updateTransactionReq) Validate() error {
	errs := validation.Errors{}
	if r.Type != nil {
		if err := validation.Validate(*r.Type, validation.In(anyList(planner.TxTypes)...)); err != nil {
			errs["type"] = err
		}
	}
	if r.PaymentMethod != nil {
		if err := validation.Validate(*r.PaymentMethod, validation.In(anyList(planner.PaymentMethods)...)); err != nil {
			errs["paymentMethod"] = err
		}
	}
	if r.Amount != nil {
		if err := nonNegativeAmount(*r.Amount); err != nil {
			errs["amount"] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (h *FinanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "bad json")
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	date, err := parseTimePtr(req.Date)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid date")
		return
	}

	t, err := h.Svc.UpdateTransaction(r.Context(), chi.URLParam(r, "id"), planner.UpdateTransactionInput{
		Date:          date,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Tags:          req.Tags,
	})
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "transaction", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "transaction": t})
}

func (h *FinanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.DeleteTransaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, planner.ErrNotFound) {
			fail(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "transaction", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
