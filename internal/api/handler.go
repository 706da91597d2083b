package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"apotek/m/internal/store"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	catalog     *store.Catalog
	staff       *store.Directory
	procurement *store.Procurement
	sales       *store.Sales
	reports     *store.Reports
	logger      zerolog.Logger
}

// New constructs a Handler over the given database handle.
func New(db *sqlx.DB, logger zerolog.Logger) *Handler {
	return &Handler{
		catalog:     store.NewCatalog(db),
		staff:       store.NewDirectory(db),
		procurement: store.NewProcurement(db),
		sales:       store.NewSales(db),
		reports:     store.NewReports(db),
		logger:      logger,
	}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/medicines", func(r chi.Router) {
		r.Get("/", h.listMedicines)
		r.Post("/", h.createMedicine)
		r.Get("/expiring", h.expiringMedicines)
		r.Put("/{id}", h.updateMedicine)
		r.Delete("/{id}", h.deleteMedicine)
	})

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.listEmployees)
		r.Post("/", h.createEmployee)
		r.Put("/{id}", h.updateEmployee)
		r.Delete("/{id}", h.deleteEmployee)
	})

	r.Route("/purchases", func(r chi.Router) {
		r.Get("/", h.listPurchases)
		r.Post("/", h.recordPurchase)
		r.Put("/{id}", h.editPurchase)
		r.Delete("/{id}", h.deletePurchase)
	})

	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.listSales)
		r.Post("/", h.recordSale)
		r.Put("/{id}", h.editSale)
		r.Delete("/{id}", h.deleteSale)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/stats", h.stats)
		r.Get("/recent", h.recentTransactions)
		r.Get("/sales", h.salesSummary)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Medicine handlers

func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.catalog.List()
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, medicines)
}

func (h *Handler) createMedicine(w http.ResponseWriter, r *http.Request) {
	var form store.MedicineForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	med, err := h.catalog.Create(form)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, med)
}

func (h *Handler) updateMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var form store.MedicineForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	med, err := h.catalog.Update(id, form)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, med)
}

func (h *Handler) deleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.Delete(id); err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) expiringMedicines(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	medicines, err := h.catalog.Expiring(days)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, medicines)
}

// Employee handlers

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.staff.List()
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var form store.EmployeeForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	emp, err := h.staff.Create(form)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emp)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var form store.EmployeeForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	emp, err := h.staff.Update(id, form)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emp)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.staff.Delete(id); err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Purchase handlers

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.procurement.List()
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, purchases)
}

func (h *Handler) recordPurchase(w http.ResponseWriter, r *http.Request) {
	var form store.PurchaseForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	purchase, err := h.procurement.Record(form)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, purchase)
}

func (h *Handler) editPurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var form store.PurchaseForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	purchase, err := h.procurement.Edit(id, form)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, purchase)
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.procurement.Delete(id); err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Sale handlers

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales.List()
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sales)
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var form store.SaleForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	sale, err := h.sales.Record(form)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, sale)
}

func (h *Handler) editSale(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var form store.SaleForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	sale, err := h.sales.Edit(id, form)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sale)
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.sales.Delete(id); err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Report handlers

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.Stats()
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) recentTransactions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	feed, err := h.reports.Recent(limit)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, feed)
}

func (h *Handler) salesSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.SalesBetween(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// Helpers

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondStoreError(w http.ResponseWriter, err error) {
	var (
		validation   *store.ValidationError
		notFound     *store.NotFoundError
		insufficient *store.InsufficientStockError
	)
	switch {
	case errors.As(err, &validation):
		respondError(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &insufficient):
		respondJSON(w, http.StatusConflict, map[string]any{
			"error":     insufficient.Error(),
			"available": insufficient.Available,
		})
	default:
		h.logger.Error().Err(err).Msg("store failure")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
