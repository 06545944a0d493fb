package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/floramart/flowerex/internal/domain"
	"github.com/floramart/flowerex/internal/usecase"
)

// Server is the JSON boundary over the data layer. Handlers only decode
// the request, call one usecase and encode the result.
type Server struct {
	mux     *http.ServeMux
	users   domain.UserRepo
	catalog *usecase.CatalogUC
	orders  *usecase.OrderUC
	reviews *usecase.ReviewUC
	reports *usecase.ReportUC
}

func New(users domain.UserRepo, catalog *usecase.CatalogUC, orders *usecase.OrderUC, reviews *usecase.ReviewUC, reports *usecase.ReportUC) http.Handler {
	s := &Server{
		mux:     http.NewServeMux(),
		users:   users,
		catalog: catalog,
		orders:  orders,
		reviews: reviews,
		reports: reports,
	}
	s.routes()
	return s.mux
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/users", s.apiCreateUser)
	s.mux.HandleFunc("GET /api/users/{id}", s.apiGetUser)
	s.mux.HandleFunc("DELETE /api/users/{id}", s.apiDeleteUser)

	s.mux.HandleFunc("GET /api/flowers", s.apiListFlowers)
	s.mux.HandleFunc("POST /api/flowers", s.apiCreateFlower)
	s.mux.HandleFunc("GET /api/flowers/{id}", s.apiGetFlower)
	s.mux.HandleFunc("DELETE /api/flowers/{id}", s.apiDeleteFlower)

	s.mux.HandleFunc("GET /api/lots", s.apiPublicCatalog)
	s.mux.HandleFunc("POST /api/lots", s.apiCreateLot)
	s.mux.HandleFunc("GET /api/lots/{id}", s.apiGetLot)
	s.mux.HandleFunc("PATCH /api/lots/{id}", s.apiUpdateLot)
	s.mux.HandleFunc("DELETE /api/lots/{id}", s.apiDeleteLot)
	s.mux.HandleFunc("GET /api/lots/{id}/reviews", s.apiListLotReviews)
	s.mux.HandleFunc("POST /api/lots/{id}/reviews", s.apiCreateLotReview)

	s.mux.HandleFunc("POST /api/orders", s.apiCreateOrder)
	s.mux.HandleFunc("GET /api/orders/{id}", s.apiGetOrder)
	s.mux.HandleFunc("POST /api/orders/{id}/items", s.apiAddOrderItem)
	s.mux.HandleFunc("GET /api/orders/{id}/total", s.apiOrderTotal)
	s.mux.HandleFunc("POST /api/orders/{id}/pay", s.apiPayOrder)
	s.mux.HandleFunc("GET /api/buyers/{id}/orders", s.apiOrdersByBuyer)

	s.mux.HandleFunc("GET /api/salesmen/{id}/lots", s.apiLotsBySalesman)
	s.mux.HandleFunc("GET /api/salesmen/{id}/sales", s.apiSalesBySalesman)
	s.mux.HandleFunc("GET /api/salesmen/{id}/reviews", s.apiListSalesmanReviews)
	s.mux.HandleFunc("POST /api/salesmen/{id}/reviews", s.apiCreateSalesmanReview)

	s.mux.HandleFunc("GET /api/report/settlement", s.apiSettlement)
}

// --- Users ---

func (s *Server) apiCreateUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string      `json:"username"`
		Role     domain.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	switch in.Role {
	case domain.RoleSalesman, domain.RoleBuyer, domain.RoleUnset:
	default:
		writeErr(w, &domain.ValidationError{Reason: "unknown role " + string(in.Role)})
		return
	}
	u := &domain.User{ID: uuid.New(), Username: in.Username, Role: in.Role}
	if err := s.users.Save(r.Context(), u); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) apiGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := s.users.FindByID(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "username": u.Username, "role": u.Role})
}

func (s *Server) apiDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := s.users.FindByID(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	if err := s.users.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// --- Flowers ---

func (s *Server) apiCreateFlower(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name  string       `json:"name"`
		Shade domain.Shade `json:"shade"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	f, err := s.catalog.CreateFlower(r.Context(), in.Name, in.Shade)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (s *Server) apiListFlowers(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalog.ListFlowers(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list})
}

func (s *Server) apiGetFlower(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	f, err := s.catalog.GetFlower(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) apiDeleteFlower(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.DeleteFlower(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// --- Lots ---

func (s *Server) apiPublicCatalog(w http.ResponseWriter, r *http.Request) {
	list, total, err := s.catalog.PublicCatalog(r.Context(), pageParams(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list, "total": total})
}

func (s *Server) apiCreateLot(w http.ResponseWriter, r *http.Request) {
	var in struct {
		SalesmanID uuid.UUID       `json:"salesman_id"`
		FlowerID   uuid.UUID       `json:"flower_id"`
		Title      string          `json:"title"`
		Amount     int             `json:"amount"`
		UnitPrice  decimal.Decimal `json:"unit_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	l, err := s.catalog.CreateLot(r.Context(), in.SalesmanID, in.FlowerID, in.Title, in.Amount, in.UnitPrice)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (s *Server) apiGetLot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	l, err := s.catalog.GetLot(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) apiUpdateLot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in struct {
		Title  *string `json:"title"`
		Amount *int    `json:"amount"`
		Hide   *bool   `json:"hide"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	l, err := s.catalog.UpdateLot(r.Context(), id, usecase.LotPatch{Title: in.Title, Amount: in.Amount, Hide: in.Hide})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) apiDeleteLot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.DeleteLot(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) apiLotsBySalesman(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	list, total, err := s.catalog.LotsBySalesman(r.Context(), id, pageParams(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list, "total": total})
}

// --- Orders ---

func (s *Server) apiCreateOrder(w http.ResponseWriter, r *http.Request) {
	var in struct {
		BuyerID     uuid.UUID `json:"buyer_id"`
		Description string    `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	o, err := s.orders.Create(r.Context(), in.BuyerID, in.Description)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) apiGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	o, err := s.orders.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) apiAddOrderItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in struct {
		LotID  uuid.UUID `json:"lot_id"`
		Amount int       `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	it, err := s.orders.AddItem(r.Context(), id, in.LotID, in.Amount)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (s *Server) apiOrderTotal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	total, err := s.orders.GetTotalCost(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order_id": id, "total": total})
}

func (s *Server) apiPayOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	o, err := s.orders.MarkPaid(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) apiOrdersByBuyer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	list, total, err := s.orders.OrdersByBuyer(r.Context(), id, pageParams(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list, "total": total})
}

func (s *Server) apiSalesBySalesman(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	list, total, err := s.orders.SalesBySalesman(r.Context(), id, pageParams(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list, "total": total})
}

// --- Reviews ---

func (s *Server) apiCreateLotReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in struct {
		AuthorID uuid.UUID `json:"author_id"`
		Context  string    `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	rev, err := s.reviews.CreateLotReview(r.Context(), in.AuthorID, id, in.Context)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rev)
}

func (s *Server) apiListLotReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	list, err := s.reviews.ListLotReviews(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list})
}

func (s *Server) apiCreateSalesmanReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in struct {
		AuthorID uuid.UUID `json:"author_id"`
		Context  string    `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	rev, err := s.reviews.CreateSalesmanReview(r.Context(), in.AuthorID, id, in.Context)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rev)
}

func (s *Server) apiListSalesmanReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	list, err := s.reviews.ListSalesmanReviews(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": list})
}

// --- Report ---

func (s *Server) apiSettlement(w http.ResponseWriter, r *http.Request) {
	entries, err := s.reports.Settlement(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if r.URL.Query().Get("format") == "xlsx" {
		s.settlementXLSX(w, entries)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (s *Server) settlementXLSX(w http.ResponseWriter, entries []domain.SettlementEntry) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Settlement"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		writeErr(w, err)
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")
	_ = f.SetSheetRow(sheet, "A1", &[]any{"Salesman", "Buyer", "Price sum"})
	for i, e := range entries {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &[]any{e.SalesmanUsername, e.BuyerUsername, e.PriceSum.StringFixed(2)})
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="settlement.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("settlement xlsx write")
	}
}

// --- Helpers ---

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func pageParams(r *http.Request) domain.Page {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	return domain.Page{Page: page, PageSize: size}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	var ce *domain.ConstraintError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"status": "error", "message": ve.Reason})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"status": "error", "message": "not found"})
	case errors.As(err, &ce):
		writeJSON(w, http.StatusConflict, map[string]any{"status": "error", "message": ce.Error()})
	default:
		log.Error().Err(err).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"status": "error", "message": "internal error"})
	}
}
