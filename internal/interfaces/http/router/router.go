// Package router assembles versioned API route groups on a gin engine.
package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar adds its routes beneath a gin group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouteInfo describes one declared route with its full path.
type RouteInfo struct {
	Group  string
	Method string
	Path   string
}

// Router collects registrars and mounts them under /api/<version>.
type Router struct {
	engine     *gin.Engine
	apiVersion string
	middleware []gin.HandlerFunc
	registrars []RouteRegistrar
}

type RouterOption func(*Router)

// WithAPIVersion changes the "v1" default.
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) { r.apiVersion = version }
}

func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine, apiVersion: "v1"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Use adds middleware to the versioned API only. Routes mounted straight on
// the engine, such as /health and /swagger, do not run it.
func (r *Router) Use(middleware ...gin.HandlerFunc) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

func (r *Router) BasePath() string {
	return "/api/" + r.apiVersion
}

// Setup mounts every registrar. Call it once, after all Register calls.
func (r *Router) Setup() {
	api := r.engine.Group(r.BasePath(), r.middleware...)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// Routes lists what the registered DomainGroups declare.
func (r *Router) Routes() []RouteInfo {
	var out []RouteInfo
	for _, registrar := range r.registrars {
		if dg, ok := registrar.(*DomainGroup); ok {
			out = dg.appendRoutes(out, r.BasePath())
		}
	}
	return out
}

// DomainGroup declares the routes of one area of the API. Nothing touches
// gin until RegisterRoutes runs, so groups can be listed before mounting.
type DomainGroup struct {
	name       string
	prefix     string
	middleware []gin.HandlerFunc
	routes     []route
	children   []*DomainGroup
}

type route struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

func (dg *DomainGroup) Name() string   { return dg.name }
func (dg *DomainGroup) Prefix() string { return dg.prefix }

// Use adds middleware to this group and its children.
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

// Handle declares a route for any method.
func (dg *DomainGroup) Handle(method, relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, route{method: method, path: relativePath, handlers: handlers})
	return dg
}

func (dg *DomainGroup) GET(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodGet, p, h...)
}

func (dg *DomainGroup) POST(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPost, p, h...)
}

func (dg *DomainGroup) PUT(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPut, p, h...)
}

func (dg *DomainGroup) PATCH(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPatch, p, h...)
}

func (dg *DomainGroup) DELETE(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodDelete, p, h...)
}

// Group declares a child group nested under this prefix.
func (dg *DomainGroup) Group(name, prefix string) *DomainGroup {
	child := NewDomainGroup(name, prefix)
	dg.children = append(dg.children, child)
	return child
}

func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix, dg.middleware...)
	for _, rt := range dg.routes {
		group.Handle(rt.method, rt.path, rt.handlers...)
	}
	for _, child := range dg.children {
		child.RegisterRoutes(group)
	}
}

func (dg *DomainGroup) appendRoutes(out []RouteInfo, base string) []RouteInfo {
	prefix := path.Join(base, dg.prefix)
	for _, rt := range dg.routes {
		out = append(out, RouteInfo{Group: dg.name, Method: rt.method, Path: path.Join(prefix, rt.path)})
	}
	for _, child := range dg.children {
		out = child.appendRoutes(out, prefix)
	}
	return out
}
