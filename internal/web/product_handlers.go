package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
	"github.com/rogerio-castellano/catalog-dashboard/internal/products"
)

type dashboardData struct {
	pageData
	Products    []models.Product
	SearchTerm  string
	CurrentPage int
	TotalPages  int
	PageNumbers []int
	PrevPage    int
	NextPage    int
	Form        map[string]string
	FormErrors  map[string]string
	EditingID   string
}

var successMessages = map[string]string{
	"created": "Product created successfully.",
	"updated": "Product updated successfully.",
	"deleted": "Product deleted successfully.",
}

func (s *Server) dashboardPage(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{pageData: s.newPageData()}
	data.Success = successMessages[r.URL.Query().Get("success")]

	if err := s.products.Load(r.Context()); err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadGateway, "dashboard.html", data)
		return
	}

	s.products.SetSearchTerm(r.URL.Query().Get("q"))
	s.applyRequestedPage(r.URL.Query().Get("page"))
	s.fillListing(&data)
	s.render(w, http.StatusOK, "dashboard.html", data)
}

// applyRequestedPage clamps the requested page into range before handing it
// to the controller; the controller itself never clamps.
func (s *Server) applyRequestedPage(raw string) {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return
	}
	total := s.products.TotalPages()
	if total < 1 {
		return
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	s.products.SetPage(page)
}

func (s *Server) fillListing(data *dashboardData) {
	data.SearchTerm = s.products.SearchTerm()
	data.CurrentPage = s.products.CurrentPage()
	data.TotalPages = s.products.TotalPages()
	data.Products = s.products.Page(data.CurrentPage)
	data.PageNumbers = products.PageNumbers(data.CurrentPage, data.TotalPages, s.cfg.MaxPageButtons)
	data.PrevPage = data.CurrentPage - 1
	data.NextPage = data.CurrentPage + 1
}

func draftFromForm(r *http.Request) models.ProductDraft {
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	return models.ProductDraft{
		Name:     r.FormValue("name"),
		Code:     r.FormValue("code"),
		Quantity: quantity,
		Price:    price,
	}
}

func draftForm(d models.ProductDraft, r *http.Request) map[string]string {
	return map[string]string{
		"name":     d.Name,
		"code":     d.Code,
		"quantity": r.FormValue("quantity"),
		"price":    r.FormValue("price"),
	}
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	draft := draftFromForm(r)

	fieldErrors, err := s.products.Create(r.Context(), draft)
	if err == nil && fieldErrors == nil {
		s.redirectToListing(w, r, "created")
		return
	}

	data := dashboardData{pageData: s.newPageData()}
	data.Form = draftForm(draft, r)
	data.FormErrors = fieldErrors
	status := http.StatusBadRequest
	if err != nil {
		data.Error = err.Error()
		status = http.StatusBadGateway
	}
	s.renderListing(w, r, status, data)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	draft := draftFromForm(r)

	data := dashboardData{pageData: s.newPageData()}
	if fieldErrors := products.ValidateDraft(draft); fieldErrors != nil {
		data.Form = draftForm(draft, r)
		data.FormErrors = fieldErrors
		data.EditingID = id
		s.renderListing(w, r, http.StatusBadRequest, data)
		return
	}

	if err := s.products.Update(r.Context(), id, draft); err != nil {
		data.Error = err.Error()
		s.renderListing(w, r, http.StatusBadGateway, data)
		return
	}
	s.redirectToListing(w, r, "updated")
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		data := dashboardData{pageData: s.newPageData()}
		data.Error = err.Error()
		s.renderListing(w, r, http.StatusBadGateway, data)
		return
	}
	s.redirectToListing(w, r, "deleted")
}

// renderListing re-renders the dashboard around a failed form submission,
// keeping the current search term and table contents.
func (s *Server) renderListing(w http.ResponseWriter, r *http.Request, status int, data dashboardData) {
	s.products.SetSearchTerm(r.FormValue("q"))
	s.fillListing(&data)
	s.render(w, status, "dashboard.html", data)
}

func (s *Server) redirectToListing(w http.ResponseWriter, r *http.Request, success string) {
	q := url.Values{}
	if term := r.FormValue("q"); term != "" {
		q.Set("q", term)
	}
	q.Set("success", success)
	http.Redirect(w, r, "/dashboard?"+q.Encode(), http.StatusSeeOther)
}
