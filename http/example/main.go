/*
Package main serves a to-do list whose HTML forms
rename, toggle, and delete items through PUT, PATCH, and DELETE routes.

The forms POST with a "_method" query parameter;
the method override in front of the router does the rest.
*/
package main

import (
	"embed"
	"errors"
	"fmt"
	html "html/template"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/override"
	"github.com/xy-planning-network/override/http/router"
	"github.com/xy-planning-network/override/logger"
	"github.com/xy-planning-network/override/ranger"
)

//go:embed items.tmpl
var files embed.FS

var itemsTmpl = html.Must(html.ParseFS(files, "items.tmpl"))

// Handler holds what the item handlers share.
type Handler struct {
	items *Items
	l     logger.Logger
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := itemsTmpl.Execute(w, h.items.List()); err != nil {
		h.l.Error("could not render items", &logger.LogContext{Error: err, Request: r})
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	name, ok := h.name(w, r)
	if !ok {
		return
	}

	item := h.items.Add(name)
	h.l.Info("added item", &logger.LogContext{Data: map[string]any{"id": item.ID}})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	name, ok := h.name(w, r)
	if !ok {
		return
	}

	h.done(w, r, h.items.Rename(id, name))
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.id(w, r); ok {
		h.done(w, r, h.items.Toggle(id))
	}
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.id(w, r); ok {
		h.done(w, r, h.items.Remove(id))
	}
}

// done redirects back to the list or reports err.
func (h *Handler) done(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, override.ErrNotExist):
		http.Error(w, err.Error(), http.StatusNotFound)
	case err != nil:
		h.l.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	default:
		h.l.Info(fmt.Sprintf("%s item %s", r.Method, mux.Vars(r)["id"]), nil)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *Handler) id(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "bad item id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

func (h *Handler) name(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		http.Error(w, "name is required", http.StatusUnprocessableEntity)
		return "", false
	}

	return name, true
}

// newRanger constructs a Ranger serving the item routes.
func newRanger(opts ...ranger.Option) (*ranger.Ranger, error) {
	rng, err := ranger.New(opts...)
	if err != nil {
		return nil, err
	}

	h := &Handler{items: NewItems(), l: rng.EmitLogger()}
	rng.HandleRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Handler: h.list},
		{Path: "/items", Method: http.MethodPost, Handler: h.create},
		{Path: "/items/{id:[0-9]+}", Method: http.MethodPut, Handler: h.rename},
		{Path: "/items/{id:[0-9]+}", Method: http.MethodPatch, Handler: h.toggle},
		{Path: "/items/{id:[0-9]+}", Method: http.MethodDelete, Handler: h.remove},
	})
	rng.HandleMethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forms must name a method with ?_method=PUT, PATCH, or DELETE", http.StatusMethodNotAllowed)
	})

	return rng, nil
}

func main() {
	rng, err := newRanger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Error(err.Error(), &logger.LogContext{Error: err})
		os.Exit(1)
	}
}
