package records

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

const (
	msgConnectionFailed = "Database connection failed."
	msgPageNotFound     = "Page not found."
)

// Handler wires the portfolio pages to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the landing page, the five CRUD verticals and the contact form.
// contactGuards run before the contact submission handler.
func (h *Handler) RegisterRoutes(r gin.IRouter, contactGuards ...gin.HandlerFunc) {
	r.GET("/", h.home)
	for _, schema := range Editable() {
		r.GET(schema.ListPath, h.list(schema))
		r.GET("/add-"+schema.Kind, h.addForm(schema))
		r.POST("/add-"+schema.Kind, h.create(schema))
		r.GET("/edit-"+schema.Kind+"/:id", h.editForm(schema))
		r.POST("/edit-"+schema.Kind+"/:id", h.update(schema))
		r.GET("/delete-"+schema.Kind+"/:id", h.remove(schema))
	}
	r.GET("/contact", h.contactForm)
	r.POST("/contact", append(contactGuards, h.submitContact)...)
}

func (h *Handler) home(c *gin.Context) {
	respond.HTML(c, "index.html", gin.H{"Title": "Home"})
}

func (h *Handler) list(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("recordKind", schema.Kind)
		recs, err := h.Svc.List(c.Request.Context(), schema)
		if err != nil {
			storeFailure(c, err, schema.Messages.List)
			return
		}
		respond.HTML(c, "list.html", gin.H{
			"Title":   schema.Title,
			"Schema":  schema,
			"Records": recs,
		})
	}
}

func (h *Handler) addForm(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderForm(c, schema, Record{}, schema.AddPath(), "Add "+schema.Noun(), "Add")
	}
}

func (h *Handler) create(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("recordKind", schema.Kind)
		id, err := h.Svc.Create(c.Request.Context(), schema, formFields(c, schema))
		if err != nil {
			storeFailure(c, err, schema.Messages.Create)
			return
		}
		c.Set("recordId", id)
		respond.Redirect(c, schema.ListPath)
	}
}

// editForm renders the form pre-filled from the stored record. A missing id renders the
// same form with blank fields.
func (h *Handler) editForm(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, schema)
		if !ok {
			return
		}
		rec, err := h.Svc.Get(c.Request.Context(), schema, id)
		switch {
		case err == nil:
		case errors.Is(err, ErrNotFound):
			rec = Record{ID: id}
		default:
			storeFailure(c, err, schema.Messages.Load)
			return
		}
		renderForm(c, schema, rec, schema.EditPath(id), "Edit "+schema.Noun(), "Save")
	}
}

func (h *Handler) update(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, schema)
		if !ok {
			return
		}
		if err := h.Svc.Update(c.Request.Context(), schema, id, formFields(c, schema)); err != nil {
			storeFailure(c, err, schema.Messages.Update)
			return
		}
		respond.Redirect(c, schema.ListPath)
	}
}

func (h *Handler) remove(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, schema)
		if !ok {
			return
		}
		if err := h.Svc.Delete(c.Request.Context(), schema, id); err != nil {
			storeFailure(c, err, schema.Messages.Delete)
			return
		}
		respond.Redirect(c, schema.ListPath)
	}
}

func (h *Handler) contactForm(c *gin.Context) {
	renderForm(c, Contact, Record{}, "/contact", "Contact me", "Send")
}

func (h *Handler) submitContact(c *gin.Context) {
	c.Set("recordKind", Contact.Kind)
	if _, err := h.Svc.Create(c.Request.Context(), Contact, formFields(c, Contact)); err != nil {
		storeFailure(c, err, Contact.Messages.Create)
		return
	}
	respond.Redirect(c, "/")
}

func renderForm(c *gin.Context, schema Schema, rec Record, action, heading, submit string) {
	respond.HTML(c, "form.html", gin.H{
		"Title":   heading,
		"Heading": heading,
		"Schema":  schema,
		"Record":  rec,
		"Action":  action,
		"Submit":  submit,
	})
}

// formFields copies the schema's columns from the posted form. Absent fields become
// empty strings; values are passed through untouched.
func formFields(c *gin.Context, schema Schema) Fields {
	fields := make(Fields, len(schema.Columns))
	for _, col := range schema.Columns {
		fields[col.Name] = c.PostForm(col.Name)
	}
	return fields
}

func pathID(c *gin.Context, schema Schema) (int64, bool) {
	c.Set("recordKind", schema.Kind)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.ErrorPage(c, http.StatusNotFound, msgPageNotFound, err)
		return 0, false
	}
	c.Set("recordId", id)
	return id, true
}

// storeFailure converts a gateway error into the error view. Connection failures share
// one message; statement failures use the route's own message.
func storeFailure(c *gin.Context, err error, queryMessage string) {
	switch {
	case errors.Is(err, ErrStoreUnavailable):
		respond.ErrorPage(c, http.StatusServiceUnavailable, msgConnectionFailed, err)
	case errors.Is(err, ErrUnsupported):
		respond.ErrorPage(c, http.StatusNotFound, msgPageNotFound, err)
	default:
		respond.ErrorPage(c, http.StatusInternalServerError, queryMessage, err)
	}
}
