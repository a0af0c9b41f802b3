package views

import (
	"box-shipping-service/internal/domain"
	"box-shipping-service/internal/store"
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Handler renders the browser-facing views: the submission form at the
// root path, the box list at /boxes, and a not-found page for anything
// else. Mutations from the form flow through the same store action API
// as the JSON handlers.
type Handler struct {
	Store    *store.Store
	Notifier *store.Notifier
	tmpl     *template.Template
}

func NewHandler(st *store.Store, notifier *store.Notifier) *Handler {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"currency": domain.FormatCurrency,
		"cssColor": func(triplet string) template.CSS {
			return template.CSS(domain.RGBTripletToCSSColor(triplet))
		},
	}).ParseFS(templateFS, "templates/*.tmpl"))

	return &Handler{Store: st, Notifier: notifier, tmpl: tmpl}
}

type formData struct {
	Countries []domain.Country
	Values    domain.Candidate
	Errors    map[string]string
	TopError  string
}

type listData struct {
	State         store.State
	Notifications []store.Notification
}

// Form serves the submission form and handles its POST. The mux routes
// every unmatched path here, so anything but the exact root renders the
// not-found view.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, http.StatusOK, "form.tmpl", formData{Countries: domain.Countries()})
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	candidate := domain.Candidate{
		ReceiverName: r.PostFormValue("receiverName"),
		Weight:       r.PostFormValue("weight"),
		BoxColor:     r.PostFormValue("boxColor"),
		Country:      r.PostFormValue("country"),
	}

	res := h.Store.Add(r.Context(), candidate)

	if len(res.FieldErrors) > 0 {
		h.Notifier.Push(store.LevelWarning, "Some fields need attention")
		h.render(w, http.StatusUnprocessableEntity, "form.tmpl", formData{
			Countries: domain.Countries(),
			Values:    candidate,
			Errors:    res.FieldErrors,
		})
		return
	}

	if res.Err != nil {
		h.Notifier.Push(store.LevelError, store.GenericErrorMessage)
		h.render(w, http.StatusBadRequest, "form.tmpl", formData{
			Countries: domain.Countries(),
			Values:    candidate,
			TopError:  store.GenericErrorMessage,
		})
		return
	}

	h.Notifier.Push(store.LevelSuccess, "Box for "+res.Box.ReceiverName+" added")
	http.Redirect(w, r, "/boxes", http.StatusSeeOther)
}

// List renders the box table with aggregate statistics.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.render(w, http.StatusOK, "boxes.tmpl", listData{
		State:         h.Store.Snapshot(),
		Notifications: h.Notifier.List(),
	})
}

// Remove handles the list view's per-row delete form.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.Store.Remove(r.PostFormValue("id")) {
		h.Notifier.Push(store.LevelSuccess, "Box removed")
	}

	http.Redirect(w, r, "/boxes", http.StatusSeeOther)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "notfound.tmpl", nil)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s failed: %v", name, err)
	}
}
